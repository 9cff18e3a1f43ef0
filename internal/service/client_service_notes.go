// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/sentiment-notes/internal/adapter"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/internal/store"
	"github.com/MKhiriev/sentiment-notes/internal/utils"
	"github.com/MKhiriev/sentiment-notes/models"
)

type notesBrowser struct {
	remote adapter.RemoteSource
	local  store.LocalFallbackStore

	mu        sync.Mutex
	pager     *pageController
	filter    sentimentFilter
	displayed []models.Note
	offline   bool

	ids idGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewNotesBrowser creates a [NotesBrowser] showing pageSize remote notes per
// page. Nothing is fetched until Load is called.
func NewNotesBrowser(remote adapter.RemoteSource, local store.LocalFallbackStore, pageSize int, logger *logger.Logger) NotesBrowser {
	return &notesBrowser{
		remote:    remote,
		local:     local,
		pager:     newPageController(pageSize),
		displayed: []models.Note{},
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (b *notesBrowser) Load(ctx context.Context) (View, error) {
	b.mu.Lock()
	ticket := b.pager.reset(b.filter.value())
	b.mu.Unlock()

	return b.fetch(ctx, ticket), nil
}

func (b *notesBrowser) SetFilter(ctx context.Context, sentiment models.Sentiment) (View, error) {
	b.mu.Lock()
	if err := b.filter.set(sentiment); err != nil {
		b.mu.Unlock()
		return b.View(), err
	}
	b.displayed = []models.Note{}
	ticket := b.pager.reset(b.filter.value())
	b.mu.Unlock()

	return b.fetch(ctx, ticket), nil
}

func (b *notesBrowser) NextPage(ctx context.Context) (View, error) {
	return b.navigate(ctx, b.pager.beginAdvance)
}

func (b *notesBrowser) PrevPage(ctx context.Context) (View, error) {
	return b.navigate(ctx, b.pager.beginRetreat)
}

func (b *notesBrowser) Refresh(ctx context.Context) (View, error) {
	return b.navigate(ctx, b.pager.beginRefresh)
}

func (b *notesBrowser) navigate(ctx context.Context, begin func(models.Sentiment) (fetchTicket, error)) (View, error) {
	b.mu.Lock()
	ticket, err := begin(b.filter.value())
	if err != nil {
		view := b.viewLocked()
		b.mu.Unlock()
		return view, err
	}
	b.mu.Unlock()

	return b.fetch(ctx, ticket), nil
}

func (b *notesBrowser) CreateNote(ctx context.Context, text string, sentiment models.Sentiment) (CreateOutcome, error) {
	log := b.logger.GetChildLogger()

	input, err := newCreateInput(text, sentiment)
	if err != nil {
		return CreateOutcome{View: b.View()}, err
	}

	note, err := b.remote.CreateNote(ctx, input)
	if err == nil {
		b.mu.Lock()
		ticket := b.pager.reset(b.filter.value())
		b.mu.Unlock()

		return CreateOutcome{Note: note, View: b.fetch(ctx, ticket)}, nil
	}

	log.Warn().Err(err).Str("func", "*notesBrowser.CreateNote").Msg("remote write failed, keeping note locally")

	note = models.Note{
		ID:          b.ids.Generate(),
		Text:        input.Text,
		Sentiment:   input.Sentiment,
		DateCreated: b.now().UTC(),
	}
	if err = b.local.Append(ctx, note); err != nil {
		log.Err(err).Str("func", "*notesBrowser.CreateNote").Str("note_id", note.ID).Msg("could not store note locally")
	}

	b.mu.Lock()
	b.pager.bump()
	b.offline = true
	b.displayed = append([]models.Note{note}, b.displayed...)
	view := b.viewLocked()
	b.mu.Unlock()

	return CreateOutcome{Note: note, Local: true, View: view}, nil
}

func (b *notesBrowser) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.viewLocked()
}

// fetch runs the remote call of ticket outside the lock and applies the
// result unless the ticket went stale meanwhile.
func (b *notesBrowser) fetch(ctx context.Context, ticket fetchTicket) View {
	log := b.logger.GetChildLogger()

	page, err := b.remote.FetchPage(ctx, models.NotesQuery{
		Sentiment: ticket.filter,
		Limit:     b.pager.pageSize,
		NextToken: ticket.cursor,
	})
	local := b.loadLocal(ctx)

	b.mu.Lock()

	if errors.Is(err, adapter.ErrMalformedCursor) && !ticket.fresh() {
		if !b.pager.current(ticket) {
			view := b.viewLocked()
			b.mu.Unlock()
			return view
		}
		log.Warn().Err(err).Str("func", "*notesBrowser.fetch").Int("page", ticket.page).Msg("cursor rejected, restarting from page 1")
		restart := b.pager.reset(ticket.filter)
		b.mu.Unlock()
		return b.fetch(ctx, restart)
	}

	defer b.mu.Unlock()

	if err != nil {
		if b.pager.fail(ticket) {
			log.Warn().Err(err).Str("func", "*notesBrowser.fetch").Int("page", ticket.page).Msg("remote unavailable, showing local notes")
			b.offline = true
			b.displayed = Merge(nil, local, ticket.filter)
		}
		return b.viewLocked()
	}

	if b.pager.complete(ticket, page) {
		b.offline = false
		b.displayed = Merge(&page, local, ticket.filter)
	}

	return b.viewLocked()
}

// loadLocal returns the local fallback set, or nothing when the store cannot
// be read.
func (b *notesBrowser) loadLocal(ctx context.Context) []models.Note {
	notes, err := b.local.Load(ctx)
	if err != nil {
		b.logger.Warn().Err(err).Str("func", "*notesBrowser.loadLocal").Msg("local notes unavailable, treating as empty")
		return nil
	}
	return notes
}

func (b *notesBrowser) viewLocked() View {
	notes := make([]models.Note, len(b.displayed))
	copy(notes, b.displayed)

	return View{
		Notes:   notes,
		Filter:  b.filter.value(),
		Page:    b.pager.snapshot(),
		Loading: b.pager.inFlight,
		Offline: b.offline,
	}
}

func newCreateInput(text string, sentiment models.Sentiment) (models.CreateNoteInput, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.CreateNoteInput{}, ErrEmptyNoteText
	}
	if utf8.RuneCountInString(text) > models.MaxNoteTextLength {
		return models.CreateNoteInput{}, ErrNoteTooLong
	}

	s, ok := models.ParseSentiment(string(sentiment))
	if !ok {
		return models.CreateNoteInput{}, ErrUnknownSentiment
	}

	return models.CreateNoteInput{Text: text, Sentiment: s}, nil
}
