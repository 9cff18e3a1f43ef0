// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/sentiment-notes/models"
)

// memoryFallbackStore is a [LocalFallbackStore] that lives for the process
// only.
type memoryFallbackStore struct {
	mu    sync.Mutex
	notes []models.Note
}

// NewMemoryFallbackStore returns an empty in-process [LocalFallbackStore].
func NewMemoryFallbackStore() LocalFallbackStore {
	return &memoryFallbackStore{notes: []models.Note{}}
}

func (m *memoryFallbackStore) Load(ctx context.Context) ([]models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.notes), nil
}

func (m *memoryFallbackStore) Save(ctx context.Context, notes []models.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes = withoutSamples(notes)
	return nil
}

func (m *memoryFallbackStore) Append(ctx context.Context, note models.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if slices.ContainsFunc(m.notes, func(n models.Note) bool { return n.ID == note.ID }) {
		return nil
	}
	m.notes = withoutSamples(append(m.notes, note))
	return nil
}

func (m *memoryFallbackStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes = []models.Note{}
	return nil
}
