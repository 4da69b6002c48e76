package server

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/alkime/musclememory/internal/config"
	"github.com/gin-contrib/secure"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// setupSecurityMiddleware configures and applies security middleware to the router
func setupSecurityMiddleware(router *gin.Engine, cfg *config.Config, logger *slog.Logger) {
	// Configure HSTS for production only
	stsSeconds := int64(0)
	if cfg.IsProduction() {
		stsSeconds = int64(cfg.HSTSMaxAge)
	}

	secureMiddleware := secure.New(secure.Config{
		STSSeconds:            stsSeconds,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: config.BuildCSP(cfg.CSPMode),
	})
	router.Use(secureMiddleware)

	logger.Debug("Configured security middleware",
		"hsts_enabled", cfg.IsProduction(),
		"csp_mode", cfg.CSPMode,
	)
}

// setupAssetMiddleware serves backgrounds, logos and body diagrams from
// PublicDir/images. Missing files fall through to the 404 page.
func setupAssetMiddleware(router *gin.Engine, cfg *config.Config, logger *slog.Logger) {
	root := filepath.Join(cfg.PublicDir, "images")
	router.Use(static.Serve("/images", static.LocalFile(root, false)))

	logger.Debug("Configured image assets", "root", root)
}

// requestLogger logs one structured line per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= 500 {
			level = slog.LevelError
		}

		logger.Log(c.Request.Context(), level, "Request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}
