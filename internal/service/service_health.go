// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sentiment-notes/internal/store"
)

type healthService struct {
	storage store.NoteStorage
}

// NewHealthService reports the server healthy while storage answers pings.
func NewHealthService(storage store.NoteStorage) HealthService {
	return &healthService{storage: storage}
}

func (h *healthService) Check(ctx context.Context) error {
	if err := h.storage.Ping(ctx); err != nil {
		return fmt.Errorf("note storage: %w", err)
	}
	return nil
}
