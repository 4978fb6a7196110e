package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slst/slst-backend/dto"
	"github.com/slst/slst-backend/usecases"
)

func handleRefreshLists(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		list, err := uc.ListRefresh.RefreshLists(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptAPIListStatus(list))
	}
}

func handleListsStatus(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		list, err := uc.ListRefresh.Status()
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptAPIListStatus(list))
	}
}
