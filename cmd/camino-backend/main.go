package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"

	"github.com/caminohealth/camino-backend/internal/api"
	"github.com/caminohealth/camino-backend/internal/parser"
	"github.com/caminohealth/camino-backend/internal/pkg/constants"
	"github.com/caminohealth/camino-backend/internal/pkg/logger"
	"github.com/caminohealth/camino-backend/internal/pkg/store"
	"github.com/caminohealth/camino-backend/internal/pkg/store/xpgx"
	"github.com/caminohealth/camino-backend/internal/service/alerts"
	"github.com/caminohealth/camino-backend/internal/service/datasets"
	"github.com/caminohealth/camino-backend/internal/service/feeds"
	"github.com/caminohealth/camino-backend/internal/service/ingest"
	"github.com/caminohealth/camino-backend/internal/service/whodata"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	initConfig(ctx)
	logger.SetLevel(viper.GetString(constants.ViperLogLevel))

	pool, err := xpgx.NewPool(ctx, viper.GetString(constants.ViperDatabaseDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	st := store.NewStore(pool)

	whoParser := parser.New(parser.DefaultConfig(viper.GetString(constants.ViperWhoDataDir)))

	ingestService := ingest.NewIngestService(st)
	runner := ingest.NewRunner(ingestService)
	runner.Start(ctx)

	feedsService := feeds.NewFeedsService(
		viper.GetString(constants.ViperFeedIndexURL),
		viper.GetString(constants.ViperWhoDataDir),
	)

	scheduler := cron.New()
	if spec := viper.GetString(constants.ViperFeedCronSpec); spec != "" {
		_, err = scheduler.AddFunc(spec, func() {
			if _, err := feedsService.Refresh(ctx); err != nil {
				logger.Errorf(ctx, "scheduled feed refresh: %s", err.Error())
			}
		})
		if err != nil {
			logger.Fatal(ctx, err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	apiService, err := api.NewAPIService(api.Services{
		Datasets: datasets.NewDatasetsService(st),
		WhoData:  whodata.NewWhoDataService(st, whoParser),
		Alerts:   alerts.NewAlertsService(st),
		Feeds:    feedsService,
		Runner:   runner,
	})
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go apiService.Serve(viper.GetString(constants.ViperHTTPAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err = apiService.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "shutdown: %s", err.Error())
	}
}

func initConfig(ctx context.Context) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(constants.ViperHTTPAddr, ":8080")
	viper.SetDefault(constants.ViperWhoDataDir, "./data/who")
	viper.SetDefault(constants.ViperUploadDir, "./data/uploads")
	viper.SetDefault(constants.ViperLogLevel, "info")

	if err := viper.ReadInConfig(); err != nil {
		logger.Warnf(ctx, "no config file, using env and defaults: %s", err.Error())
	}
}
