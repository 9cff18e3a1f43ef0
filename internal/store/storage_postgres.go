// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/sentiment-notes/internal/config"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/migrations"
	"github.com/MKhiriev/sentiment-notes/models"
	"github.com/jackc/pgerrcode"
)

const (
	maxAttempts  = 3
	retryBackoff = 100 * time.Millisecond
)

// postgresNoteStorage keeps notes in the "notes" table. Scans walk the
// primary key in ascending order and apply the sentiment filter to the
// evaluated window.
type postgresNoteStorage struct {
	*DB
	logger *logger.Logger
}

// NewPostgresNoteStorage connects to cfg.DSN, applies the schema and returns
// a [NoteStorage] over it.
func NewPostgresNoteStorage(ctx context.Context, cfg config.DB, logger *logger.Logger) (NoteStorage, error) {
	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = migrations.MigratePostgres(db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newPostgresNoteStorage(db, logger), nil
}

func newPostgresNoteStorage(db *DB, logger *logger.Logger) *postgresNoteStorage {
	return &postgresNoteStorage{DB: db, logger: logger}
}

func (p *postgresNoteStorage) PutNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(note)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = p.withRetry(ctx, func() error {
		_, execErr := p.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: %s", ErrNoteAlreadyExists, note.ID)
		}

		log.Err(err).
			Str("func", "*postgresNoteStorage.PutNote").
			Str("note_id", note.ID).
			Str("pg_code", postgresError(err)).
			Msg("failed to insert note")
		return fmt.Errorf("%w: %w: %w", ErrPutFailed, ErrExecutingQuery, err)
	}

	return nil
}

func (p *postgresNoteStorage) ScanNotes(ctx context.Context, in ScanInput) (ScanOutput, error) {
	log := logger.FromContext(ctx)

	if in.Limit <= 0 {
		return ScanOutput{}, fmt.Errorf("%w: limit must be positive", ErrScanFailed)
	}

	query, args, err := buildScanNotesQuery(in)
	if err != nil {
		return ScanOutput{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rowsRead []models.Note
	err = p.withRetry(ctx, func() error {
		var queryErr error
		rowsRead, queryErr = p.queryNotes(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*postgresNoteStorage.ScanNotes").
			Str("start_key", in.StartKey).
			Int("limit", in.Limit).
			Msg("failed to scan notes")
		return ScanOutput{}, fmt.Errorf("%w: %w", ErrScanFailed, err)
	}

	more := len(rowsRead) > in.Limit
	if more {
		rowsRead = rowsRead[:in.Limit]
	}

	return scanWindow(rowsRead, in, more), nil
}

func (p *postgresNoteStorage) queryNotes(ctx context.Context, query string, args []any) ([]models.Note, error) {
	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)
	for rows.Next() {
		var (
			n         models.Note
			sentiment string
		)
		if err = rows.Scan(&n.ID, &n.Text, &sentiment, &n.DateCreated); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		n.Sentiment = models.Sentiment(sentiment)
		n.DateCreated = n.DateCreated.UTC()
		notes = append(notes, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func (p *postgresNoteStorage) Ping(ctx context.Context) error {
	return p.DB.PingContext(ctx)
}

// withRetry runs op until it succeeds, fails with a non-retryable error or
// maxAttempts is reached.
func (p *postgresNoteStorage) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = op(); err == nil || !p.retryable(err) {
			return err
		}

		p.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying postgres statement")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return err
}
