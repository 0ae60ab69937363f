package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/caminohealth/camino-backend/internal/api/controller"
	"github.com/caminohealth/camino-backend/internal/pkg/logger"
	"github.com/caminohealth/camino-backend/internal/service/alerts"
	"github.com/caminohealth/camino-backend/internal/service/datasets"
	"github.com/caminohealth/camino-backend/internal/service/feeds"
	"github.com/caminohealth/camino-backend/internal/service/ingest"
	"github.com/caminohealth/camino-backend/internal/service/whodata"
)

// Services bundles everything the HTTP surface exposes.
type Services struct {
	Datasets *datasets.Service
	WhoData  *whodata.Service
	Alerts   *alerts.Service
	Feeds    *feeds.Service
	Runner   *ingest.Runner
}

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(services Services) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewSerializer()
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(
		services.Datasets,
		services.WhoData,
		services.Alerts,
		services.Feeds,
		services.Runner,
	)

	authGroup := api.Group("/auth")
	authGroup.POST("/session", cntrl.CreateSession)

	uploads := api.Group("/uploads")
	uploads.POST("/:domain", cntrl.UploadFile)
	uploads.GET("/jobs/:id", cntrl.GetUploadJob)

	readiness := api.Group("/readiness")
	readiness.GET("/:hazard", cntrl.ListReadinessRows)
	readiness.GET("/:hazard/summary", cntrl.GetReadinessSummary)

	stardata := api.Group("/stardata")
	stardata.GET("/list", cntrl.ListStarRows)
	stardata.GET("/summary", cntrl.GetStarSummary)

	espar := api.Group("/espar")
	espar.GET("/:sheet", cntrl.ListEspar)

	chw := api.Group("/chw")
	chw.GET("/list", cntrl.ListCHW)

	whoData := api.Group("/who-data")
	whoData.GET("", cntrl.GetWhoData)
	whoData.GET("/health", cntrl.GetWhoDataHealth)
	whoData.GET("/diseases", cntrl.GetWhoDataDiseases)

	feedsGroup := api.Group("/feeds")
	feedsGroup.POST("/refresh", cntrl.RefreshFeeds, svc.AdminMiddleware)

	alertsGroup := api.Group("/alerts")
	alertsGroup.GET("/list", cntrl.ListAlerts)
	alertsGroup.GET("/:id", cntrl.GetAlert)
	alertsGroup.POST("/create", cntrl.CreateAlert, svc.AuthMiddleware)
	alertsGroup.POST("/:id/acknowledge", cntrl.AcknowledgeAlert, svc.AuthMiddleware)
	alertsGroup.POST("/:id/resolve", cntrl.ResolveAlert, svc.AuthMiddleware)

	return svc, nil
}
