package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caminohealth/camino-backend/internal/pkg/store"
)

func (c *Controller) ListReadinessRows(ctx echo.Context) error {
	opts := store.ListReadinessRowsOpts{Hazard: ctx.Param("hazard")}
	if country := ctx.QueryParam("country"); country != "" {
		opts.Country = &country
	}
	if category := ctx.QueryParam("category"); category != "" {
		opts.Category = &category
	}

	rows, err := c.datasets.ListReadinessRows(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetReadinessSummary(ctx echo.Context) error {
	summary, err := c.datasets.SummarizeReadiness(ctx.Request().Context(), ctx.Param("hazard"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, summary)
}

func starRowsOpts(ctx echo.Context) store.ListStarRowsOpts {
	var opts store.ListStarRowsOpts
	if country := ctx.QueryParam("country"); country != "" {
		opts.Country = &country
	}
	if hazard := ctx.QueryParam("hazard"); hazard != "" {
		opts.Hazard = &hazard
	}
	if hazardType := ctx.QueryParam("hazard_type"); hazardType != "" {
		opts.HazardType = &hazardType
	}
	if severity := ctx.QueryParam("severity"); severity != "" {
		opts.Severity = &severity
	}
	if status := ctx.QueryParam("status"); status != "" {
		opts.Status = &status
	}

	return opts
}

func (c *Controller) ListStarRows(ctx echo.Context) error {
	rows, err := c.datasets.ListStarRows(ctx.Request().Context(), starRowsOpts(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetStarSummary(ctx echo.Context) error {
	summary, err := c.datasets.SummarizeStar(ctx.Request().Context(), starRowsOpts(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, summary)
}

func (c *Controller) ListEspar(ctx echo.Context) error {
	espars, err := c.datasets.ListEspar(ctx.Request().Context(), ctx.Param("sheet"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, espars)
}

func (c *Controller) ListCHW(ctx echo.Context) error {
	data, err := c.datasets.ListCHW(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, data)
}
