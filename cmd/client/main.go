// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/sentiment-notes/internal/adapter"
	"github.com/MKhiriev/sentiment-notes/internal/client"
	"github.com/MKhiriev/sentiment-notes/internal/config"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/internal/service"
	"github.com/MKhiriev/sentiment-notes/internal/store"
	"github.com/MKhiriev/sentiment-notes/internal/tui"
	"github.com/MKhiriev/sentiment-notes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("sentiment-notes-client", logger.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	remote, err := adapter.NewRemoteSource(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote source")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, remote, cfg.Adapter.PageSize, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(ctx, services.NotesBrowser, buildInfo, log)

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "client run error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
