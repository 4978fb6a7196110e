package api

import (
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/slst/slst-backend/dto"
	"github.com/slst/slst-backend/models"
	"github.com/slst/slst-backend/pure_utils"
	"github.com/slst/slst-backend/usecases"
)

func handleListAuditEvents(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		limit := 0
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				presentError(ctx, c, errors.Wrapf(models.BadParameterError,
					"limit %q is not an integer", raw))
				return
			}
			limit = parsed
		}

		events, err := uc.Audit.ListScreeningEvents(ctx, limit)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"events": pure_utils.Map(events, dto.AdaptAPIScreeningEvent),
		})
	}
}

func handleListAuditMatches(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		matches, err := uc.Audit.ListMatchEvents(ctx, c.Param("screening_id"))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"matches": pure_utils.Map(matches, dto.AdaptAPIMatchEvent),
		})
	}
}
