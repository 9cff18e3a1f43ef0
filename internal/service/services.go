// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/sentiment-notes/internal/config"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/internal/metrics"
	"github.com/MKhiriev/sentiment-notes/internal/store"
	"github.com/MKhiriev/sentiment-notes/models"
)

type Services struct {
	NoteService    NoteService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, buildInfo models.AppBuildInfo, collector *metrics.Collector, logger *logger.Logger) (*Services, error) {
	noteService, err := NewNoteService(storages.NoteStorage, cfg.App, collector, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		NoteService:    NewNoteValidationService().Wrap(noteService),
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, logger),
		HealthService:  NewHealthService(storages.NoteStorage),
	}, nil
}
