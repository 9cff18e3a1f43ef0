// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/sentiment-notes/internal/config"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/internal/metrics"
	"github.com/MKhiriev/sentiment-notes/internal/service"
)

type Handler struct {
	services *service.Services

	// apiKey is the expected x-api-key value. Empty disables the check.
	apiKey string

	// metrics may be nil, in which case /metrics is not served.
	metrics *metrics.Collector

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerApp, collector *metrics.Collector, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		apiKey:   cfg.APIKey,
		metrics:  collector,
		logger:   logger,
	}
}
