// Package web serves the onboarding flow, journey and dashboard pages and a
// small JSON API over gin.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"donorjourney/internal/articulation"
	"donorjourney/internal/catalog"
	"donorjourney/internal/config"
	"donorjourney/internal/dashboard"
	"donorjourney/internal/journey"
	"donorjourney/internal/logging"
	"donorjourney/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const (
	// SessionCookie carries the session id.
	SessionCookie = "journey_session"
	// RequestIDHeader is read from and echoed on every response.
	RequestIDHeader = "X-Request-ID"

	ctxController = "controller"
	ctxSessionID  = "session_id"
	ctxRequestID  = "request_id"

	shutdownTimeout = 10 * time.Second
)

// Server is the HTTP surface.
type Server struct {
	engine    *gin.Engine
	generator *journey.Generator
	catalog   *catalog.Catalog
	store     *session.Store
	dashboard dashboard.Dashboard
	cfg       config.ServerConfig
}

// New builds the router. store holds one session controller per browser.
func New(cfg config.ServerConfig, gen *journey.Generator, store *session.Store) (*Server, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		generator: gen,
		catalog:   gen.Catalog(),
		store:     store,
		dashboard: dashboard.Sample(),
		cfg:       cfg,
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(requestID())
	r.Use(accessLog())
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	pages := r.Group("/", s.sessionMiddleware())
	pages.GET("/", s.handleRoot)
	pages.GET("/onboarding", s.handleOnboardingForm)
	pages.POST("/onboarding", s.handleOnboardingSubmit)
	pages.GET("/journey", s.handleJourney)
	pages.POST("/reset", s.handleReset)
	pages.GET("/dashboard", s.handleDashboard)
	r.GET("/dashboard/export.json", s.handleExportJSON)
	r.GET("/dashboard/export.xlsx", s.handleExportXLSX)

	api := r.Group("/api")
	api.GET("/campaigns", s.handleListCampaigns)
	api.GET("/campaigns/:id", s.handleGetCampaign)
	api.POST("/journeys", s.handleCreateJourney)
	api.GET("/dashboard", s.handleAPIDashboard)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	s.engine = r
	return s, nil
}

// Handler exposes the router for tests and custom servers.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on cfg.Addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Get(logging.CategoryHTTP).Infow("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logging.Get(logging.CategoryHTTP).Infow("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	cfg.AddAllowHeaders(RequestIDHeader)
	cfg.AddExposeHeaders(RequestIDHeader, "Content-Disposition")
	return cfg
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"money":   articulation.Money,
		"image":   articulation.ImageFor,
		"percent": func(ratio float64) string { return fmt.Sprintf("%.0f%%", ratio*100) },
		"width":   func(ratio float64) string { return fmt.Sprintf("%.1f%%", ratio*100) },
	}
}
