// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/sentiment-notes/internal/config"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/internal/service"
	"github.com/MKhiriev/sentiment-notes/internal/tui"
	"github.com/MKhiriev/sentiment-notes/internal/workers"
)

// App runs the UI with the refresh worker in the background.
type App struct {
	ui      UI
	workers *workers.Workers
	logger  *logger.Logger
}

// NewApp wires the periodic page refresh to ui. Refresh results are pushed
// through ui.Notify.
func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || services.NotesBrowser == nil {
		return nil, errNilServices
	}
	if ui == nil {
		return nil, errNilUI
	}

	job := service.NewNotesRefreshJob(services.NotesBrowser, ui.Notify, logger)

	return &App{
		ui:      ui,
		workers: workers.NewWorkers(workers.NewRefreshWorker(job, cfg)),
		logger:  logger,
	}, nil
}

// Run blocks until the UI exits. Quitting from the UI is not an error.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("starting client...")

	a.workers.Run(ctx)
	defer a.workers.Stop()

	err := a.ui.Run()
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client closed by user")
		return nil
	}
	if err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Msg("client ui stopped with error")
	}
	return err
}
