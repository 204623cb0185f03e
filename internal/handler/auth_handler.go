package handler

import (
	"net/http"

	"welltix/config"
	"welltix/internal/service"
	"welltix/internal/session"
	apperrors "welltix/pkg/app_errors"
	"welltix/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service  service.AuthService
	sessions session.Manager
	cfg      config.SessionConfig
}

func NewAuthHandler(service service.AuthService, sessions session.Manager, cfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		service:  service,
		sessions: sessions,
		cfg:      cfg,
	}
}

func (h *AuthHandler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/login", h.LoginForm)
	public.POST("/login", h.Login)
	public.GET("/logout", h.Logout)
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "Login",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.service.Login(c.Request.Context(), username, password)
	if err != nil {
		h.handleError(c, err, "Login")
		return
	}

	sessionID, err := h.sessions.Create(c.Request.Context(), user.Username)
	if err != nil {
		h.handleError(c, err, "Login")
		return
	}

	maxAge := int(h.cfg.TTL.Seconds())
	c.SetCookie(h.cfg.CookieName, sessionID, maxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(h.cfg.CookieName)
	if err == nil && sessionID != "" {
		if err := h.sessions.Destroy(c.Request.Context(), sessionID); err != nil {
			h.handleError(c, err, "Logout")
			return
		}
	}

	c.SetCookie(h.cfg.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrInvalidCredentials:
		log.Warn("invalid credentials")
		c.String(http.StatusUnauthorized, "Invalid username or password")
	default:
		log.Error("unexpected error")
		c.String(http.StatusInternalServerError, "Error during login")
	}
}
