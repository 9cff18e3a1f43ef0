// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noteColumns = []string{"id", "text", "sentiment", "date_created"}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newTestPostgresStorage(t *testing.T) (*postgresNoteStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return newPostgresNoteStorage(newDB(db, NewPostgresErrorClassifier(), logger.Nop()), logger.Nop()), mock
}

func TestPostgresNoteStorage_PutNote(t *testing.T) {
	created := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	n := models.Note{ID: "01J", Text: "hello", Sentiment: models.Happy, DateCreated: created}

	t.Run("inserted", func(t *testing.T) {
		s, mock := newTestPostgresStorage(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notes")).
			WithArgs("01J", "hello", "happy", created).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.PutNote(testContext(), n))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate id", func(t *testing.T) {
		s, mock := newTestPostgresStorage(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notes")).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		err := s.PutNote(testContext(), n)
		assert.ErrorIs(t, err, ErrNoteAlreadyExists)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retryable error is retried", func(t *testing.T) {
		s, mock := newTestPostgresStorage(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notes")).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notes")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.PutNote(testContext(), n))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-retryable error", func(t *testing.T) {
		s, mock := newTestPostgresStorage(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notes")).
			WillReturnError(errors.New("disk full"))

		err := s.PutNote(testContext(), n)
		assert.ErrorIs(t, err, ErrPutFailed)
		assert.NotErrorIs(t, err, ErrNoteAlreadyExists)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresNoteStorage_ScanNotes(t *testing.T) {
	created := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	t.Run("probe row sets resume key", func(t *testing.T) {
		s, mock := newTestPostgresStorage(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM notes ORDER BY id ASC LIMIT 3")).
			WillReturnRows(sqlmock.NewRows(noteColumns).
				AddRow("a", "first", "happy", created).
				AddRow("b", "second", "sad", created).
				AddRow("c", "third", "happy", created))

		out, err := s.ScanNotes(testContext(), ScanInput{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ids(out.Items))
		assert.Equal(t, "b", out.LastEvaluatedKey)
		assert.Equal(t, 2, out.ScannedCount)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("resume with filter", func(t *testing.T) {
		s, mock := newTestPostgresStorage(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM notes WHERE id > $1 ORDER BY id ASC LIMIT 3")).
			WithArgs("b").
			WillReturnRows(sqlmock.NewRows(noteColumns).
				AddRow("c", "third", "angry", created).
				AddRow("d", "fourth", "sad", created))

		out, err := s.ScanNotes(testContext(), ScanInput{Limit: 2, StartKey: "b", Sentiment: models.Angry})
		require.NoError(t, err)
		assert.Equal(t, []string{"c"}, ids(out.Items))
		assert.Empty(t, out.LastEvaluatedKey)
		assert.Equal(t, 2, out.ScannedCount)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		s, mock := newTestPostgresStorage(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM notes")).
			WillReturnError(errors.New("boom"))

		_, err := s.ScanNotes(testContext(), ScanInput{Limit: 2})
		assert.ErrorIs(t, err, ErrScanFailed)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("scan error", func(t *testing.T) {
		s, mock := newTestPostgresStorage(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM notes")).
			WillReturnRows(sqlmock.NewRows(noteColumns).AddRow("a", "first", "happy", "not a time"))

		_, err := s.ScanNotes(testContext(), ScanInput{Limit: 2})
		assert.ErrorIs(t, err, ErrScanningRows)
	})

	t.Run("invalid limit", func(t *testing.T) {
		s, _ := newTestPostgresStorage(t)
		_, err := s.ScanNotes(testContext(), ScanInput{})
		assert.ErrorIs(t, err, ErrScanFailed)
	})
}

func TestBuildScanNotesQuery(t *testing.T) {
	query, args, err := buildScanNotesQuery(ScanInput{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, text, sentiment, date_created FROM notes ORDER BY id ASC LIMIT 11", query)
	assert.Empty(t, args)

	query, args, err = buildScanNotesQuery(ScanInput{Limit: 10, StartKey: "k"})
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE id > $1")
	assert.Equal(t, []any{"k"}, args)
}

func TestBuildInsertNoteQuery(t *testing.T) {
	created := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	query, args, err := buildInsertNoteQuery(models.Note{ID: "x", Text: "t", Sentiment: models.Sad, DateCreated: created})
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO notes")
	assert.Contains(t, query, "$4")
	assert.Equal(t, []any{"x", "t", "sad", created}, args)
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}))
	assert.Equal(t, Retryable, c.Classify(&pgconn.PgError{Code: pgerrcode.ConnectionFailure}))
	assert.Equal(t, NonRetryable, c.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Empty(t, postgresError(errors.New("plain")))
}
