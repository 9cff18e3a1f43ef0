// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/sentiment-notes/models"
)

// View is a consistent snapshot of what the client displays.
type View struct {
	// Notes is the merged, deduplicated list, newest first.
	Notes []models.Note

	// Filter is the active sentiment filter. Empty means none.
	Filter models.Sentiment

	Page PageState

	// Loading is true while a page fetch is in flight.
	Loading bool

	// Offline is true when the last remote call failed and Notes holds
	// local notes only, or a locally kept note was just added.
	Offline bool
}

// CreateOutcome reports which write path persisted a new note.
type CreateOutcome struct {
	Note models.Note

	// Local is true when the remote write failed and the note was kept in
	// the local fallback store instead.
	Local bool

	View View
}

// NotesBrowser is the client's note synchronization and pagination engine.
// It merges remote pages with the local fallback set and maps the remote's
// forward-only cursors onto page numbers.
//
// Remote failures never surface as errors: reads degrade to local-only
// results and writes fall back to the local store. Returned errors are
// rejections that leave the state untouched.
type NotesBrowser interface {
	// Load resets pagination and fetches page 1 of the active filter.
	Load(ctx context.Context) (View, error)

	// SetFilter clears the display, replaces the active filter and fetches
	// page 1. An empty sentiment removes the filter.
	SetFilter(ctx context.Context, sentiment models.Sentiment) (View, error)

	// NextPage fetches the page after the displayed one.
	// It fails with ErrNoNextPage or ErrFetchInFlight.
	NextPage(ctx context.Context) (View, error)

	// PrevPage re-fetches the page before the displayed one from its cached
	// start cursor. It fails with ErrAtFirstPage or ErrFetchInFlight.
	PrevPage(ctx context.Context) (View, error)

	// Refresh re-fetches the displayed page. It fails with ErrFetchInFlight.
	Refresh(ctx context.Context) (View, error)

	// CreateNote writes a note remotely, falling back to the local store
	// when the remote is unavailable. A remote success refreshes page 1.
	CreateNote(ctx context.Context, text string, sentiment models.Sentiment) (CreateOutcome, error)

	// View returns the current snapshot without fetching.
	View() View
}

// NotesRefreshJob periodically refreshes the displayed page.
type NotesRefreshJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 30 seconds if interval is zero or negative. Any
	// previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
