package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/alkime/musclememory/internal/catalog"
	"github.com/alkime/musclememory/internal/config"
	"github.com/alkime/musclememory/internal/selection"
	"github.com/alkime/musclememory/internal/web"
	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	config    *config.Config
	logger    *slog.Logger
	router    *gin.Engine
	catalog   *catalog.Catalog
	templates *web.Templates
}

// New creates a new Server instance serving the given catalog.
func New(cfg *config.Config, logger *slog.Logger, cat *catalog.Catalog) (*Server, error) {
	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	templates, err := web.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.HTMLRender = templates

	// Configure proxy trust for production (Fly.io)
	if cfg.IsProduction() {
		router.TrustedPlatform = gin.PlatformFlyIO
		logger.Debug("Configured trusted platform", "platform", "fly.io")
	} else if err := router.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to reset trusted proxies: %w", err)
	}

	server := &Server{
		config:    cfg,
		logger:    logger,
		router:    router,
		catalog:   cat,
		templates: templates,
	}

	// Setup middleware and routes
	router.Use(gin.Recovery(), requestLogger(logger))
	setupSecurityMiddleware(router, cfg, logger)
	setupAssetMiddleware(router, cfg, logger)
	server.setupRoutes()

	return server, nil
}

// Run starts the HTTP server
func Run(s *Server) error {
	s.logger.Info("Server listening", "port", s.config.Port)
	return s.router.Run(":" + s.config.Port)
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/", s.handleHome)

	// One page per muscle group, all rendered from the same template.
	for _, g := range s.catalog.Groups {
		s.router.GET(g.Route, s.handleGroup(g))
	}

	s.router.StaticFS("/static", web.Assets())
	s.router.NoRoute(s.handleNotFound)

	s.logger.Debug("Configured routes", "groups", len(s.catalog.Groups))
}

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "musclememory",
		"groups":    len(s.catalog.Groups),
		"exercises": s.catalog.ExerciseCount(),
	})
}

// handleHome renders the home page. Every request mounts a fresh,
// unselected selection; highlighting happens in the browser.
func (s *Server) handleHome(c *gin.Context) {
	sel := selection.New(s.catalog.Groups)

	c.HTML(http.StatusOK, web.PageHome, web.HomePage{
		Site: s.catalog.Site,
		View: sel.View(),
	})
}

func (s *Server) handleGroup(g catalog.Group) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, web.PageGroup, web.GroupPage{
			Site:  s.catalog.Site,
			Group: g,
		})
	}
}

func (s *Server) handleNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, web.PageNotFound, web.NotFoundPage{
		Site: s.catalog.Site,
		Path: c.Request.URL.Path,
	})
}
