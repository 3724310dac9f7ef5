// Package server wires the gin engine and runs the HTTP server.
package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cristianadrielbraun/qrgen/internal/handlers"
	"github.com/cristianadrielbraun/qrgen/internal/logging"
	"github.com/cristianadrielbraun/qrgen/internal/middleware"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	Handler      *handlers.Handler
	Logger       *logrus.Logger
	DevMode      bool
	MaxBodyBytes int64
}

// NewRouter builds the gin engine with the middleware chain and all routes.
func NewRouter(opts RouterOptions) (*gin.Engine, error) {
	if opts.DevMode {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Handler == nil {
		opts.Handler = handlers.New(handlers.Options{Logger: opts.Logger})
	}
	if err := handlers.RegisterBindings(); err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}

	r := gin.New()
	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.SecurityHeaders())
	if opts.MaxBodyBytes > 0 {
		r.Use(middleware.MaxBody(opts.MaxBodyBytes))
	}

	h := opts.Handler

	// API routes
	api := r.Group("/api")
	{
		api.GET("/qr", h.QRCodeHandler)
		api.GET("/sizes", h.Sizes)
		api.POST("/htmx/toast", h.GenericToast)
	}

	// Pages
	r.GET("/", h.Home)
	r.POST("/render", h.Render)

	r.GET("/sitemap.xml", h.SitemapXML)
	r.GET("/favicon.png", h.Favicon)
	r.GET("/favicon.ico", h.Favicon)
	r.GET("/favicon.svg", h.FaviconSVG)
	r.GET("/healthz", h.Health)

	return r, nil
}
