package handler

import (
	"net/http"
	"strconv"
	"time"

	"welltix/internal/middleware"
	"welltix/internal/model"
	"welltix/internal/service"
	apperrors "welltix/pkg/app_errors"
	"welltix/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service        service.EventService
	maxPosterBytes int64
}

func NewEventHandler(service service.EventService, maxPosterBytes int64) *EventHandler {
	return &EventHandler{
		service:        service,
		maxPosterBytes: maxPosterBytes,
	}
}

func (h *EventHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/", h.Home)

	admin.GET("/events", h.List)
	admin.GET("/events/add", h.AddForm)
	admin.POST("/events/add", h.Add)
	admin.GET("/events/edit/:id", h.EditForm)
	admin.POST("/events/update/:id", h.Update)
	admin.DELETE("/events", h.Delete)
}

// Home lists every event for any visitor, logged in or not.
func (h *EventHandler) Home(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "Home")
		return
	}

	username, _ := middleware.Username(c)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":    "Home",
		"events":   events,
		"username": username,
	})
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "List")
		return
	}

	c.HTML(http.StatusOK, "events.html", gin.H{
		"title":  "Daftar Event",
		"events": events,
	})
}

func (h *EventHandler) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "eventsAdd.html", gin.H{
		"title": "Add Event",
	})
}

func (h *EventHandler) Add(c *gin.Context) {
	event, err := h.bindEventForm(c)
	if err != nil {
		h.handleError(c, err, "Add")
		return
	}

	poster, err := readPosterFile(c, "poster", h.maxPosterBytes)
	if err != nil {
		h.handleError(c, err, "Add")
		return
	}
	if poster == nil {
		// A new event cannot exist without a poster.
		h.handleError(c, apperrors.ErrInvalidInput, "Add")
		return
	}
	event.Poster = poster

	if _, err := h.service.Create(c.Request.Context(), event); err != nil {
		h.handleError(c, err, "Add")
		return
	}

	c.Redirect(http.StatusFound, "/events")
}

func (h *EventHandler) EditForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.handleError(c, apperrors.ErrInvalidInput, "EditForm")
		return
	}

	event, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err, "EditForm")
		return
	}

	c.HTML(http.StatusOK, "eventsEdit.html", gin.H{
		"title": "Edit Event",
		"event": event,
	})
}

func (h *EventHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.handleError(c, apperrors.ErrInvalidInput, "Update")
		return
	}

	event, err := h.bindEventForm(c)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}

	// nil poster keeps the stored bytes.
	poster, err := readPosterFile(c, "poster", h.maxPosterBytes)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}

	params := model.UpdateEventParams{
		NamaEvent: event.NamaEvent,
		Lokasi:    event.Lokasi,
		Harga:     event.Harga,
		Tgl:       event.Tgl,
		Stok:      event.Stok,
		Poster:    poster,
	}

	if _, err := h.service.Update(c.Request.Context(), id, params); err != nil {
		h.handleError(c, err, "Update")
		return
	}

	c.Redirect(http.StatusFound, "/events")
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, err := formInt(c, "id")
	if err != nil {
		h.handleError(c, err, "Delete")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err, "Delete")
		return
	}

	c.Redirect(http.StatusFound, "/events")
}

// bindEventForm reads the shared add/update form fields. The poster is
// handled separately by the callers.
func (h *EventHandler) bindEventForm(c *gin.Context) (*model.Event, error) {
	harga, err := formInt(c, "harga")
	if err != nil {
		return nil, err
	}
	stok, err := formInt(c, "stok")
	if err != nil {
		return nil, err
	}
	tgl, err := time.Parse("2006-01-02", c.PostForm("tanggal"))
	if err != nil {
		return nil, apperrors.ErrInvalidInput
	}

	return &model.Event{
		NamaEvent: c.PostForm("nama_event"),
		Lokasi:    c.PostForm("lokasi"),
		Harga:     harga,
		Tgl:       tgl,
		Stok:      stok,
	}, nil
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("event not found")
		c.String(http.StatusNotFound, "Event not found")
	case err == apperrors.ErrInvalidInput:
		log.Warn("invalid input")
		c.String(http.StatusBadRequest, "Invalid input")
	default:
		log.Error("unexpected error")
		c.String(http.StatusInternalServerError, "Error fetching event")
	}
}
