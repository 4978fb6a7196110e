package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"

	"github.com/slst/slst-backend/usecases"
)

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(duration),
		timeout.WithHandler(func(c *gin.Context) {
			c.Next()
		}),
		timeout.WithResponse(func(c *gin.Context) {
			c.String(http.StatusRequestTimeout, "timeout")
		}),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe)

	r.POST("/screen", timeoutMiddleware(conf.DefaultTimeout), handleScreenName(uc))
	r.POST("/screen/batch", timeoutMiddleware(conf.BatchTimeout), handleScreenBatch(uc))

	// List refreshes download multi-megabyte documents from slow endpoints.
	r.POST("/lists/refresh", timeoutMiddleware(conf.ListRefreshTimeout), handleRefreshLists(uc))
	r.GET("/lists/status", handleListsStatus(uc))

	r.GET("/audit/events", handleListAuditEvents(uc))
	r.GET("/audit/events/:screening_id/matches", handleListAuditMatches(uc))
}
