package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"photo2text-backend/internal/config"
	"photo2text-backend/internal/extractions"
	"photo2text-backend/internal/server/middleware"
)

// New builds the gin engine with middleware, templates and routes registered.
func New(cfg config.Config, handler *extractions.Handler) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID(), middleware.Logging(), middleware.Recovery())
	if len(cfg.CORSAllowOrigins) > 0 {
		engine.Use(middleware.CORS(cfg.CORSAllowOrigins))
	}
	engine.Use(middleware.RateLimit(rateLimitConfig()))
	engine.MaxMultipartMemory = cfg.MaxUploadBytes
	engine.SetHTMLTemplate(pageTemplates())

	registerRoutes(engine, handler)
	return engine
}

// rateLimitConfig keeps upload routes on a tight budget; each upload runs a
// CPU-bound recognition pass.
func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			switch c.FullPath() {
			case "/upload", "/api/extract":
				return middleware.UploadGroup
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":              {Rate: 20, Burst: 40},
			middleware.UploadGroup: {Rate: 1, Burst: 5},
		},
	}
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
