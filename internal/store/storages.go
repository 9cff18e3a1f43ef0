// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sentiment-notes/internal/config"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/internal/metrics"
	"github.com/MKhiriev/sentiment-notes/models"
)

// Storages groups the server-side storages passed to the service layer.
type Storages struct {
	NoteStorage NoteStorage
}

// NewStorages builds the note storage selected by cfg.Backend and wraps it
// with storage metrics when collector is not nil.
func NewStorages(ctx context.Context, cfg config.ServerStorage, collector *metrics.Collector, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	var (
		notes NoteStorage
		err   error
	)

	switch cfg.Backend {
	case config.BackendMemory, "":
		var seed []models.Note
		if cfg.SeedSamples {
			seed = models.SampleNotes
		}
		notes = NewMemoryNoteStorage(logger, seed...)
	case config.BackendDynamoDB:
		notes, err = NewDynamoNoteStorage(ctx, cfg.Dynamo, logger)
	case config.BackendPostgres:
		notes, err = NewPostgresNoteStorage(ctx, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		logger.Err(err).Str("func", "NewStorages").Str("backend", cfg.Backend).Msg("error creating note storage")
		return nil, err
	}

	if collector != nil {
		notes = NewMetricsNoteStorage(notes, cfg.Backend, collector)
	}

	return &Storages{NoteStorage: notes}, nil
}
