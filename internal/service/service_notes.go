// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/sentiment-notes/internal/config"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/internal/metrics"
	"github.com/MKhiriev/sentiment-notes/internal/store"
	"github.com/MKhiriev/sentiment-notes/internal/utils"
	"github.com/MKhiriev/sentiment-notes/models"
)

type idGenerator interface {
	Generate() string
}

type noteService struct {
	storage store.NoteStorage
	cursors *cursorCodec
	ids     idGenerator
	now     func() time.Time
	metrics *metrics.Collector

	logger *logger.Logger
}

// NewNoteService builds the core [NoteService] over storage. Continuation
// tokens are signed with a key derived from cfg.CursorSecret and expire after
// cfg.CursorTTL. collector may be nil.
func NewNoteService(storage store.NoteStorage, cfg config.ServerApp, collector *metrics.Collector, logger *logger.Logger) (NoteService, error) {
	cursors, err := newCursorCodec(cfg.CursorSecret, cfg.CursorTTL)
	if err != nil {
		return nil, err
	}

	return &noteService{
		storage: storage,
		cursors: cursors,
		ids:     utils.NewUUIDGenerator(),
		now:     time.Now,
		metrics: collector,
		logger:  logger,
	}, nil
}

func (s *noteService) CreateNote(ctx context.Context, input models.CreateNoteInput) (models.Note, error) {
	log := logger.FromContext(ctx)

	note := models.Note{
		ID:          s.ids.Generate(),
		Text:        input.Text,
		Sentiment:   input.Sentiment,
		DateCreated: s.now().UTC(),
	}

	if err := s.storage.PutNote(ctx, note); err != nil {
		log.Err(err).Str("func", "*noteService.CreateNote").Str("note_id", note.ID).Msg("error storing note")
		return models.Note{}, err
	}

	if s.metrics != nil {
		s.metrics.NotesCreated.WithLabelValues(string(note.Sentiment)).Inc()
	}

	return note, nil
}

func (s *noteService) GetNotes(ctx context.Context, query models.NotesQuery) (models.NotesPage, error) {
	log := logger.FromContext(ctx)

	query.Limit = query.EffectiveLimit()

	var startKey string
	if query.NextToken != "" {
		key, err := s.cursors.decode(query.NextToken, query.Sentiment, query.Limit)
		if err != nil {
			log.Warn().Err(err).Str("func", "*noteService.GetNotes").Msg("rejected continuation token")
			return models.NotesPage{}, err
		}
		startKey = key
	}

	out, err := s.storage.ScanNotes(ctx, toScanInput(query, startKey))
	if err != nil {
		if errors.Is(err, store.ErrInvalidStartKey) {
			return models.NotesPage{}, fmt.Errorf("%w: %w", ErrMalformedCursor, err)
		}
		log.Err(err).Str("func", "*noteService.GetNotes").Msg("error scanning notes")
		return models.NotesPage{}, err
	}

	page := toNotesPage(out)
	if out.LastEvaluatedKey != "" {
		page.NextToken, err = s.cursors.encode(out.LastEvaluatedKey, query.Sentiment, query.Limit)
		if err != nil {
			log.Err(err).Str("func", "*noteService.GetNotes").Msg("error encoding continuation token")
			return models.NotesPage{}, fmt.Errorf("encode continuation token: %w", err)
		}
	}

	return page, nil
}
