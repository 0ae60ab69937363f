package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/caminohealth/camino-backend/internal/pkg/constants"
	"github.com/caminohealth/camino-backend/internal/pkg/store"
	"github.com/caminohealth/camino-backend/internal/service/alerts"
)

func (c *Controller) CreateAlert(ctx echo.Context) error {
	var opts alerts.CreateOpts
	if err := ctx.Bind(&opts); err != nil {
		return err
	}

	alert, err := c.alerts.Create(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, alert)
}

func (c *Controller) GetAlert(ctx echo.Context) error {
	id, err := alertID(ctx)
	if err != nil {
		return err
	}

	alert, err := c.alerts.Get(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, alert)
}

func (c *Controller) ListAlerts(ctx echo.Context) error {
	var opts store.ListAlertsOpts
	if status := ctx.QueryParam("status"); status != "" {
		opts.Status = &status
	}
	if severity := ctx.QueryParam("severity"); severity != "" {
		opts.Severity = &severity
	}
	if category := ctx.QueryParam("category"); category != "" {
		opts.Category = &category
	}
	if country := ctx.QueryParam("country"); country != "" {
		opts.Country = &country
	}

	list, err := c.alerts.List(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, list)
}

func (c *Controller) AcknowledgeAlert(ctx echo.Context) error {
	id, err := alertID(ctx)
	if err != nil {
		return err
	}

	alert, err := c.alerts.Acknowledge(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, alert)
}

func (c *Controller) ResolveAlert(ctx echo.Context) error {
	id, err := alertID(ctx)
	if err != nil {
		return err
	}

	alert, err := c.alerts.Resolve(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, alert)
}

func alertID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, constants.NewCodedError("invalid alert id", http.StatusBadRequest)
	}
	return id, nil
}
