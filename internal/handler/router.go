package handler

import (
	"html/template"
	"net/http"

	"welltix/config"
	"welltix/internal/middleware"
	"welltix/internal/service"
	"welltix/internal/session"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with the session-loading middleware
// and the three route groups. Admin and user routes only exist inside
// their guarded groups, so an unguarded registration is impossible by
// construction.
func NewRouter(
	cfg *config.Config,
	sessions session.Manager,
	authService service.AuthService,
	eventService service.EventService,
	transaksiService service.TransaksiService,
	templatesGlob string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = cfg.Upload.MaxPosterBytes

	if templatesGlob != "" {
		// html/template rejects data: URIs in src attributes, so poster
		// images go through a trusted helper.
		router.SetFuncMap(template.FuncMap{
			"posterURL": func(enc string) template.URL {
				return template.URL("data:image/jpeg;base64," + enc)
			},
		})
		router.LoadHTMLGlob(templatesGlob)
	}

	router.Use(middleware.LoadSession(sessions, cfg.Session.CookieName))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	public := router.Group("/")
	user := router.Group("/", middleware.RequireUser())
	admin := router.Group("/", middleware.RequireAdmin(cfg.Session.AdminUsername))

	authHandler := NewAuthHandler(authService, sessions, cfg.Session)
	authHandler.RegisterRoutes(public)

	eventHandler := NewEventHandler(eventService, cfg.Upload.MaxPosterBytes)
	eventHandler.RegisterRoutes(public, admin)

	transaksiHandler := NewTransaksiHandler(transaksiService, eventService, authService)
	transaksiHandler.RegisterRoutes(user, admin)

	return router
}
