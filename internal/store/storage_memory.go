// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/models"
)

// memoryNoteStorage keeps notes in a slice ordered by id.
type memoryNoteStorage struct {
	mu    sync.RWMutex
	notes []models.Note

	logger *logger.Logger
}

// NewMemoryNoteStorage constructs an in-process [NoteStorage] holding seed.
func NewMemoryNoteStorage(logger *logger.Logger, seed ...models.Note) NoteStorage {
	notes := make([]models.Note, len(seed))
	copy(notes, seed)
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })

	logger.Debug().Int("seeded", len(notes)).Msg("creating memory note storage")
	return &memoryNoteStorage{notes: notes, logger: logger}
}

func (m *memoryNoteStorage) PutNote(ctx context.Context, note models.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := sort.Search(len(m.notes), func(i int) bool { return m.notes[i].ID >= note.ID })
	if i < len(m.notes) && m.notes[i].ID == note.ID {
		return fmt.Errorf("%w: %s", ErrNoteAlreadyExists, note.ID)
	}

	m.notes = append(m.notes, models.Note{})
	copy(m.notes[i+1:], m.notes[i:])
	m.notes[i] = note

	return nil
}

func (m *memoryNoteStorage) ScanNotes(ctx context.Context, in ScanInput) (ScanOutput, error) {
	if in.Limit <= 0 {
		return ScanOutput{}, fmt.Errorf("%w: limit must be positive", ErrScanFailed)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	start := sort.Search(len(m.notes), func(i int) bool { return m.notes[i].ID > in.StartKey })
	end := min(start+in.Limit, len(m.notes))

	return scanWindow(m.notes[start:end], in, end < len(m.notes)), nil
}

func (m *memoryNoteStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

// scanWindow filters the evaluated window and sets the resume key when more
// notes follow it.
func scanWindow(evaluated []models.Note, in ScanInput, more bool) ScanOutput {
	out := ScanOutput{
		Items:        make([]models.Note, 0, len(evaluated)),
		ScannedCount: len(evaluated),
	}

	for _, n := range evaluated {
		if n.MatchesFilter(in.Sentiment) {
			out.Items = append(out.Items, n)
		}
	}

	if more && len(evaluated) > 0 {
		out.LastEvaluatedKey = evaluated[len(evaluated)-1].ID
	}

	return out
}
