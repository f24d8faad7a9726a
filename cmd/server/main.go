package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bitwise-notes/internal/config"
	"github.com/MKhiriev/bitwise-notes/internal/handler"
	"github.com/MKhiriev/bitwise-notes/internal/logger"
	"github.com/MKhiriev/bitwise-notes/internal/notifier"
	"github.com/MKhiriev/bitwise-notes/internal/server"
	"github.com/MKhiriev/bitwise-notes/internal/service"
	"github.com/MKhiriev/bitwise-notes/internal/store"
	"github.com/MKhiriev/bitwise-notes/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bitwise-notes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	var dispatcher service.NotificationDispatcher
	backgroundWorkers := workers.NewWorkers()
	if cfg.Notifier.Address != "" {
		sender, err := notifier.NewHTTPSender(cfg.Notifier, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating notification sender")
		}

		notifyPool := workers.NewNotifyPool(sender, cfg.Workers, cfg.Notifier.RequestTimeout, log)
		defer notifyPool.Stop()

		dispatcher = notifyPool
		backgroundWorkers = workers.NewWorkers(notifyPool)
	} else {
		log.Warn().Msg("notifier address is not set: share notifications are disabled")
	}
	backgroundWorkers.Run()

	services := service.NewServices(storages, *cfg, dispatcher, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
