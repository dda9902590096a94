package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/credcache/internal/adapter"
	"github.com/MKhiriev/credcache/internal/app"
	"github.com/MKhiriev/credcache/internal/client"
	"github.com/MKhiriev/credcache/internal/config"
	"github.com/MKhiriev/credcache/internal/logger"
	"github.com/MKhiriev/credcache/internal/service"
	"github.com/MKhiriev/credcache/internal/store"
	"github.com/MKhiriev/credcache/internal/tui"
	"github.com/MKhiriev/credcache/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("credcache").Error().Err(err).Msg("error getting configs")
		return 2
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, log := logger.NewClientLogger("credcache", cfg.Log.File).WithRunID(ctx)
	log.Debug().Str("version", buildInfo.Version).Str("data_dir", cfg.Storage.Files.DataDir).Msg("starting")

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create local storage")
		fmt.Fprintln(os.Stderr, "credcache:", err)
		return 1
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Warn().Err(err).Msg("close local storage")
		}
	}()

	homeserverAdapter := adapter.NewHTTPHomeserverAdapter(cfg.Adapter, buildInfo.Version, log)
	services := service.NewClientServices(storages, homeserverAdapter, cfg.App, log)

	application, err := client.NewApp(services, tui.New(), cfg, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintln(os.Stderr, "credcache:", err)
		return 1
	}

	err = application.Run(ctx, args)
	code := client.ExitCode(err)
	switch {
	case code == 1:
		fmt.Fprintln(os.Stderr, "credcache:", app.UserMessage(err))
	case code == 2 && !errors.Is(err, client.ErrNoCommand):
		fmt.Fprintln(os.Stderr, "credcache:", err)
	}

	return code
}
