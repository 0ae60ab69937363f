package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caminohealth/camino-backend/internal/domain"
)

func (c *Controller) RefreshFeeds(ctx echo.Context) error {
	results, err := c.feeds.Refresh(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.StatusResponse{
		Status:  "ok",
		Message: "feeds refreshed",
		Data:    results,
	})
}
