package controller

import (
	"github.com/caminohealth/camino-backend/internal/service/alerts"
	"github.com/caminohealth/camino-backend/internal/service/datasets"
	"github.com/caminohealth/camino-backend/internal/service/feeds"
	"github.com/caminohealth/camino-backend/internal/service/ingest"
	"github.com/caminohealth/camino-backend/internal/service/whodata"
)

type Controller struct {
	datasets *datasets.Service
	whoData  *whodata.Service
	alerts   *alerts.Service
	feeds    *feeds.Service
	runner   *ingest.Runner
}

func NewController(
	datasetsService *datasets.Service,
	whoDataService *whodata.Service,
	alertsService *alerts.Service,
	feedsService *feeds.Service,
	runner *ingest.Runner,
) *Controller {
	return &Controller{
		datasets: datasetsService,
		whoData:  whoDataService,
		alerts:   alertsService,
		feeds:    feedsService,
		runner:   runner,
	}
}
