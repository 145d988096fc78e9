package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tcn-coffee/fieldbook/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(advisory *handlers.AdvisoryHandler, backup *handlers.BackupHandler, records *handlers.RecordsHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")
	api.GET("/advisory/pesticide", advisory.CheckPesticide)
	api.GET("/advisory/ph", advisory.SoilPH)
	api.POST("/backup/export", backup.Export)
	api.POST("/backup/restore", backup.Restore)
	api.GET("/records/:collection", records.List)
	api.POST("/records/:collection", records.Create)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
