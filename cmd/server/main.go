package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/food-catalog/internal/audit"
	"github.com/MKhiriev/food-catalog/internal/config"
	"github.com/MKhiriev/food-catalog/internal/handler"
	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/internal/metrics"
	"github.com/MKhiriev/food-catalog/internal/server"
	"github.com/MKhiriev/food-catalog/internal/service"
	"github.com/MKhiriev/food-catalog/internal/store"
	"github.com/MKhiriev/food-catalog/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("food-catalog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Str("storage_driver", cfg.Storage.DB.Driver).Str("http", cfg.Server.HTTPAddress).
		Str("grpc", cfg.Server.GRPCAddress).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	m := metrics.New()

	auditor, closeAuditor, err := audit.NewAuditor(cfg.Audit, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating access auditor")
	}
	defer closeAuditor()

	services, err := service.NewServices(storages, cfg, auditor, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(
		workers.NewStoreProbe(storages.ItemRepository, m, cfg.Workers.ProbeInterval, log),
	)
	background.Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server run error")
	}

	background.Wait()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
