package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/slst/slst-backend/dto"
	"github.com/slst/slst-backend/models"
	"github.com/slst/slst-backend/pure_utils"
	"github.com/slst/slst-backend/usecases"
)

func handleScreenName(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.ScreenBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		result := uc.Screening.Screen(ctx, body.Name)

		c.JSON(http.StatusOK, dto.AdaptAPIScreeningResult(result))
	}
}

func handleScreenBatch(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.ScreenBatchBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		results, err := uc.Screening.ScreenBatch(ctx, body.Names)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"results": pure_utils.Map(results, dto.AdaptAPIScreeningResult),
		})
	}
}
