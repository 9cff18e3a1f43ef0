// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/models"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// slotFallbackStore keeps the fallback notes as one JSON array in the
// local_slots table.
type slotFallbackStore struct {
	*DB
	mu     sync.Mutex
	logger *logger.Logger
}

// NewSlotFallbackStore returns a [LocalFallbackStore] over an SQLite
// database with the local_slots schema applied.
func NewSlotFallbackStore(db *DB, logger *logger.Logger) LocalFallbackStore {
	return &slotFallbackStore{DB: db, logger: logger}
}

func (s *slotFallbackStore) Load(ctx context.Context) ([]models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := readSlot(ctx, s.DB)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*slotFallbackStore.Load").Msg("failed to read local notes")
		return nil, err
	}
	return notes, nil
}

func (s *slotFallbackStore) Save(ctx context.Context, notes []models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeSlot(ctx, s.DB, notes); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*slotFallbackStore.Save").
			Int("notes", len(notes)).
			Msg("failed to write local notes")
		return err
	}
	return nil
}

func (s *slotFallbackStore) Append(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*slotFallbackStore.Append").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w: %w", ErrLocalStoreUnavailable, ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	notes, err := readSlot(ctx, tx)
	if err != nil {
		log.Err(err).Str("func", "*slotFallbackStore.Append").Str("note_id", note.ID).Msg("failed to read local notes")
		return err
	}

	for _, n := range notes {
		if n.ID == note.ID {
			return nil
		}
	}

	if err = writeSlot(ctx, tx, append(notes, note)); err != nil {
		log.Err(err).Str("func", "*slotFallbackStore.Append").Str("note_id", note.ID).Msg("failed to write local notes")
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*slotFallbackStore.Append").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w: %w", ErrLocalStoreUnavailable, ErrCommitingTransaction, err)
	}

	return nil
}

func (s *slotFallbackStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.DB.ExecContext(ctx, deleteSlot, localNotesSlot); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*slotFallbackStore.Clear").Msg("failed to clear local notes")
		return fmt.Errorf("%w: %w: %w", ErrLocalStoreUnavailable, ErrExecutingQuery, err)
	}
	return nil
}

func readSlot(ctx context.Context, q querier) ([]models.Note, error) {
	var payload string
	err := q.QueryRowContext(ctx, getSlotPayload, localNotesSlot).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrLocalStoreUnavailable, ErrExecutingQuery, err)
	}

	notes := make([]models.Note, 0)
	if err = json.Unmarshal([]byte(payload), &notes); err != nil {
		return nil, fmt.Errorf("%w: corrupt slot payload: %w", ErrLocalStoreUnavailable, err)
	}

	return notes, nil
}

func writeSlot(ctx context.Context, q querier, notes []models.Note) error {
	payload, err := json.Marshal(withoutSamples(notes))
	if err != nil {
		return fmt.Errorf("%w: encode notes: %w", ErrLocalStoreUnavailable, err)
	}

	if _, err = q.ExecContext(ctx, upsertSlotPayload, localNotesSlot, string(payload)); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrLocalStoreUnavailable, ErrExecutingQuery, err)
	}

	return nil
}

// withoutSamples drops the demonstration notes. The result is never nil.
func withoutSamples(notes []models.Note) []models.Note {
	kept := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if !models.IsSampleNote(n.ID) {
			kept = append(kept, n)
		}
	}
	return kept
}
