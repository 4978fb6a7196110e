package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/slst/slst-backend/utils"
)

func loggingMiddleware(logger *slog.Logger, level string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if level == "none" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		logger.InfoContext(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func InitRouterMiddlewares(ctx context.Context, conf Configuration) *gin.Engine {
	if conf.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.LoggerFromContext(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(loggingMiddleware(logger, conf.RequestLoggingLevel))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))

	return r
}
