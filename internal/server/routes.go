package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photo2text-backend/internal/extractions"
	"photo2text-backend/internal/metrics"
)

func registerRoutes(r *gin.Engine, handler *extractions.Handler) {
	r.GET("/", handler.Index)
	r.POST("/upload", handler.Upload)
	r.GET("/extraction/:id", handler.Detail)
	r.GET("/history", handler.History)

	api := r.Group("/api")
	api.POST("/extract", handler.APIExtract)
	api.GET("/extractions", handler.APIList)
	api.GET("/extractions/:id", handler.APIGet)
	api.GET("/texts", handler.APITexts)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())
}
