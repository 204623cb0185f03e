package handler

import (
	"net/http"
	"strconv"

	"welltix/internal/middleware"
	"welltix/internal/model"
	"welltix/internal/service"
	apperrors "welltix/pkg/app_errors"
	"welltix/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TransaksiHandler struct {
	service      service.TransaksiService
	eventService service.EventService
	authService  service.AuthService
}

func NewTransaksiHandler(
	service service.TransaksiService,
	eventService service.EventService,
	authService service.AuthService,
) *TransaksiHandler {
	return &TransaksiHandler{
		service:      service,
		eventService: eventService,
		authService:  authService,
	}
}

func (h *TransaksiHandler) RegisterRoutes(user, admin *gin.RouterGroup) {
	user.GET("/history", h.History)
	user.GET("/order/:id", h.OrderForm)
	user.POST("/transaksi", h.Create)

	admin.GET("/transaksiAll", h.ListAll)
	admin.PUT("/transaksiAll", h.MarkLunas)
}

func (h *TransaksiHandler) ListAll(c *gin.Context) {
	transaksis, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "ListAll")
		return
	}

	c.HTML(http.StatusOK, "transaksiAll.html", gin.H{
		"title":      "Transaksi",
		"transaksis": transaksis,
	})
}

func (h *TransaksiHandler) MarkLunas(c *gin.Context) {
	id, err := formInt(c, "id")
	if err != nil {
		h.handleError(c, err, "MarkLunas")
		return
	}

	if err := h.service.MarkLunas(c.Request.Context(), id); err != nil {
		h.handleError(c, err, "MarkLunas")
		return
	}

	c.Redirect(http.StatusFound, "/transaksiAll")
}

func (h *TransaksiHandler) History(c *gin.Context) {
	username, _ := middleware.Username(c)

	histories, err := h.service.HistoryForUser(c.Request.Context(), username)
	if err != nil {
		h.handleError(c, err, "History")
		return
	}

	c.HTML(http.StatusOK, "history.html", gin.H{
		"title":     "History",
		"histories": histories,
	})
}

func (h *TransaksiHandler) OrderForm(c *gin.Context) {
	// The id check runs before any query.
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.handleError(c, apperrors.ErrInvalidInput, "OrderForm")
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err, "OrderForm")
		return
	}

	username, _ := middleware.Username(c)
	user, err := h.authService.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		h.handleError(c, err, "OrderForm")
		return
	}

	c.HTML(http.StatusOK, "order.html", gin.H{
		"title": "Order",
		"event": event,
		"user":  user,
	})
}

func (h *TransaksiHandler) Create(c *gin.Context) {
	idUser, err := formInt(c, "id_user")
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	idEvent, err := formInt(c, "id_event")
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	harga, err := formInt(c, "harga")
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	jumlah, err := formInt(c, "jumlah")
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	total, err := formInt(c, "total")
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}

	params := model.CreateTransaksiParams{
		IDUser:     idUser,
		IDEvent:    idEvent,
		Harga:      harga,
		Jumlah:     jumlah,
		Total:      total,
		Pembayaran: c.PostForm("pembayaran"),
	}

	if _, err := h.service.Create(c.Request.Context(), params); err != nil {
		h.handleError(c, err, "Create")
		return
	}

	c.Redirect(http.StatusFound, "/history")
}

func (h *TransaksiHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrTransaksiNotFound:
		log.Warn("transaksi not found")
		c.String(http.StatusNotFound, "Transaksi not found")
	case err == apperrors.ErrEventNotFound:
		log.Warn("event not found")
		c.String(http.StatusNotFound, "Event not found")
	case err == apperrors.ErrUserNotFound:
		log.Warn("user not found")
		c.String(http.StatusNotFound, "User not found")
	case err == apperrors.ErrInvalidInput:
		log.Warn("invalid input")
		c.String(http.StatusBadRequest, "Invalid input")
	default:
		log.Error("unexpected error")
		c.String(http.StatusInternalServerError, "Error fetching transaksi")
	}
}
