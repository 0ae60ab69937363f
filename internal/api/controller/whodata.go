package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/caminohealth/camino-backend/internal/service/whodata"
)

func (c *Controller) GetWhoData(ctx echo.Context) error {
	opts := whodata.QueryOpts{
		DataType:  ctx.QueryParam("data_type"),
		Country:   ctx.QueryParam("country"),
		Disease:   ctx.QueryParam("disease"),
		EventType: ctx.QueryParam("event_type"),
		Grade:     ctx.QueryParam("grade"),
		Status:    ctx.QueryParam("status"),
		Source:    ctx.QueryParam("source"),
		Category:  ctx.QueryParam("category"),
	}
	if raw := ctx.QueryParam("is_subnational"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err == nil {
			opts.IsSubnational = &v
		}
	}

	result, err := c.whoData.Query(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

func (c *Controller) GetWhoDataHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.whoData.Health(ctx.Request().Context()))
}

func (c *Controller) GetWhoDataDiseases(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.whoData.AvailableDiseases(ctx.Request().Context()))
}
