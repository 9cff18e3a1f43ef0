// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/sentiment-notes/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalFallbackStore is the client-side cache of notes that could not be
// persisted remotely. All failures are reported as [ErrLocalStoreUnavailable].
type LocalFallbackStore interface {
	// Load returns every cached note.
	Load(ctx context.Context) ([]models.Note, error)

	// Save replaces the cached set with notes, dropping sample notes.
	Save(ctx context.Context, notes []models.Note) error

	// Append adds note to the cached set in one read-modify-write.
	Append(ctx context.Context, note models.Note) error

	// Clear empties the cached set.
	Clear(ctx context.Context) error
}
