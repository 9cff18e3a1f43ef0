// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sentiment-notes/internal/config"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/migrations"
)

// LocalMemoryDSN selects the in-process fallback store instead of SQLite.
const LocalMemoryDSN = "memory"

// ClientStorages groups the client-side storages.
type ClientStorages struct {
	// LocalFallbackStore caches notes created while the remote was down.
	LocalFallbackStore LocalFallbackStore
}

// NewClientStorages initialises the client storage layer:
//  1. opens the SQLite file at cfg.DSN, creating it if needed, or uses the
//     in-memory store for [LocalMemoryDSN];
//  2. applies the local_slots schema;
//  3. clears the cached notes when cfg.ClearOnStart is set.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DSN == LocalMemoryDSN {
		return &ClientStorages{LocalFallbackStore: NewMemoryFallbackStore()}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = migrations.MigrateSQLite(db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	local := NewSlotFallbackStore(db, logger)
	if cfg.ClearOnStart {
		if err = local.Clear(ctx); err != nil {
			logger.Warn().Err(err).Msg("could not clear local notes on start")
		}
	}

	return &ClientStorages{LocalFallbackStore: local}, nil
}
