// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/sentiment-notes/internal/adapter"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/internal/mock"
	"github.com/MKhiriev/sentiment-notes/internal/store"
	"github.com/MKhiriev/sentiment-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var unavailable = fmt.Errorf("%w: status 503", adapter.ErrRemoteUnavailable)

func newTestBrowser(t *testing.T, remote adapter.RemoteSource, local store.LocalFallbackStore) *notesBrowser {
	t.Helper()

	b := NewNotesBrowser(remote, local, 10, logger.Nop()).(*notesBrowser)
	b.ids = fixedIDs{id: "local-1"}
	b.now = func() time.Time { return at(18) }

	return b
}

func query(s models.Sentiment, token string) models.NotesQuery {
	return models.NotesQuery{Sentiment: s, Limit: 10, NextToken: token}
}

// ── read path ────────────────────────────────────────────────────────────────

func TestNotesBrowser_Load_LocalOnlyWhenRemoteEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	local := store.NewMemoryFallbackStore()
	a := models.Note{ID: "A", DateCreated: at(10), Sentiment: models.Sad, Text: "x"}
	require.NoError(t, local.Save(context.Background(), []models.Note{a}))

	remote.EXPECT().FetchPage(gomock.Any(), query("", "")).Return(models.NotesPage{Items: []models.Note{}}, nil)

	view, err := newTestBrowser(t, remote, local).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Note{a}, view.Notes)
	assert.False(t, view.Page.HasNextPage)
	assert.False(t, view.Offline)
	assert.False(t, view.Loading)
}

func TestNotesBrowser_Load_MergesRemoteAndLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	local := store.NewMemoryFallbackStore()
	a := models.Note{ID: "A", DateCreated: at(10), Sentiment: models.Sad, Text: "x"}
	b := models.Note{ID: "B", DateCreated: at(12), Sentiment: models.Happy, Text: "y"}
	require.NoError(t, local.Append(context.Background(), a))

	remote.EXPECT().FetchPage(gomock.Any(), query("", "")).
		Return(models.NotesPage{Items: []models.Note{b}, NextToken: "tok1", ScannedCount: 1}, nil)

	view, err := newTestBrowser(t, remote, local).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Note{b, a}, view.Notes)
	assert.True(t, view.Page.HasNextPage)
	assert.Equal(t, 1, view.Page.PageIndex)
}

func TestNotesBrowser_Load_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	local := store.NewMemoryFallbackStore()
	require.NoError(t, local.Save(context.Background(), []models.Note{mkNote("l", models.Sad, 11)}))

	remote.EXPECT().FetchPage(gomock.Any(), query("", "")).
		Return(models.NotesPage{Items: []models.Note{mkNote("r1", models.Sad, 11), mkNote("r2", models.Sad, 9)}}, nil).
		Times(2)

	browser := newTestBrowser(t, remote, local)
	first, err := browser.Load(context.Background())
	require.NoError(t, err)
	second, err := browser.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNotesBrowser_Load_RemoteUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	local := store.NewMemoryFallbackStore()
	require.NoError(t, local.Save(context.Background(), []models.Note{mkNote("l", models.Sad, 11)}))

	remote.EXPECT().FetchPage(gomock.Any(), gomock.Any()).Return(models.NotesPage{}, unavailable)

	view, err := newTestBrowser(t, remote, local).Load(context.Background())

	require.NoError(t, err)
	assert.True(t, view.Offline)
	assert.False(t, view.Loading)
	assert.Equal(t, []string{"l"}, noteIDs(view.Notes))
	assert.Equal(t, PageState{PageIndex: 1}, view.Page)
}

func TestNotesBrowser_Load_LocalStoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	local := mock.NewMockLocalFallbackStore(ctrl)

	remote.EXPECT().FetchPage(gomock.Any(), gomock.Any()).
		Return(models.NotesPage{Items: []models.Note{mkNote("r", models.Sad, 9)}}, nil)
	local.EXPECT().Load(gomock.Any()).Return(nil, store.ErrLocalStoreUnavailable)

	view, err := newTestBrowser(t, remote, local).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"r"}, noteIDs(view.Notes))
}

// ── pagination ───────────────────────────────────────────────────────────────

func TestNotesBrowser_NextAndPrevPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	browser := newTestBrowser(t, remote, store.NewMemoryFallbackStore())
	ctx := context.Background()

	gomock.InOrder(
		remote.EXPECT().FetchPage(gomock.Any(), query("", "")).
			Return(models.NotesPage{Items: []models.Note{mkNote("p1", models.Sad, 1)}, NextToken: "tok1", ScannedCount: 10}, nil),
		remote.EXPECT().FetchPage(gomock.Any(), query("", "tok1")).
			Return(models.NotesPage{Items: []models.Note{mkNote("p2", models.Sad, 2)}, NextToken: "tok2", ScannedCount: 10}, nil),
		remote.EXPECT().FetchPage(gomock.Any(), query("", "tok2")).
			Return(models.NotesPage{Items: []models.Note{mkNote("p3", models.Sad, 3)}, ScannedCount: 4}, nil),
		remote.EXPECT().FetchPage(gomock.Any(), query("", "tok1")).
			Return(models.NotesPage{Items: []models.Note{mkNote("p2", models.Sad, 2)}, NextToken: "tok2", ScannedCount: 10}, nil),
	)

	_, err := browser.Load(ctx)
	require.NoError(t, err)

	view, err := browser.NextPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Page.PageIndex)
	assert.True(t, view.Page.HasNextPage)

	view, err = browser.NextPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Page.PageIndex)
	assert.False(t, view.Page.HasNextPage)
	assert.Equal(t, []string{"p3"}, noteIDs(view.Notes))

	_, err = browser.NextPage(ctx)
	assert.ErrorIs(t, err, ErrNoNextPage)

	view, err = browser.PrevPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Page.PageIndex)
	assert.Equal(t, []string{"p2"}, noteIDs(view.Notes))
	assert.Equal(t, 1, view.Page.EstimatedTotalPages)
}

func TestNotesBrowser_PrevPage_AtFirstPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	browser := newTestBrowser(t, remote, store.NewMemoryFallbackStore())

	remote.EXPECT().FetchPage(gomock.Any(), gomock.Any()).Return(models.NotesPage{Items: []models.Note{}}, nil)
	_, err := browser.Load(context.Background())
	require.NoError(t, err)

	_, err = browser.PrevPage(context.Background())
	assert.ErrorIs(t, err, ErrAtFirstPage)
}

func TestNotesBrowser_FilterChangeResetsPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	browser := newTestBrowser(t, remote, store.NewMemoryFallbackStore())
	ctx := context.Background()

	gomock.InOrder(
		remote.EXPECT().FetchPage(gomock.Any(), query("", "")).Return(pageWith("tok1", 10), nil),
		remote.EXPECT().FetchPage(gomock.Any(), query("", "tok1")).Return(pageWith("tok2", 10), nil),
		remote.EXPECT().FetchPage(gomock.Any(), query("", "tok2")).Return(pageWith("tok3", 10), nil),
		remote.EXPECT().FetchPage(gomock.Any(), query(models.Angry, "")).
			DoAndReturn(func(_ context.Context, _ models.NotesQuery) (models.NotesPage, error) {
				view := browser.View()
				assert.Equal(t, PageState{PageIndex: 1}, view.Page)
				assert.Empty(t, view.Notes)
				assert.True(t, view.Loading)
				return models.NotesPage{Items: []models.Note{mkNote("g", models.Angry, 5)}}, nil
			}),
	)

	_, err := browser.Load(ctx)
	require.NoError(t, err)
	_, err = browser.NextPage(ctx)
	require.NoError(t, err)
	view, err := browser.NextPage(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, view.Page.PageIndex)

	view, err = browser.SetFilter(ctx, "ANGRY")

	require.NoError(t, err)
	assert.Equal(t, models.Angry, view.Filter)
	assert.Equal(t, 1, view.Page.PageIndex)
	assert.Empty(t, view.Page.Cursor)
	assert.Equal(t, []string{"g"}, noteIDs(view.Notes))
}

func TestNotesBrowser_SetFilter_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	browser := newTestBrowser(t, mock.NewMockRemoteSource(ctrl), store.NewMemoryFallbackStore())

	_, err := browser.SetFilter(context.Background(), "joyful")

	assert.ErrorIs(t, err, ErrUnknownSentiment)
	assert.Empty(t, browser.View().Filter)
}

func TestNotesBrowser_MalformedCursorRestartsAtFirstPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	browser := newTestBrowser(t, remote, store.NewMemoryFallbackStore())
	ctx := context.Background()

	gomock.InOrder(
		remote.EXPECT().FetchPage(gomock.Any(), query(models.Sad, "")).Return(pageWith("tok1", 10), nil),
		remote.EXPECT().FetchPage(gomock.Any(), query(models.Sad, "tok1")).Return(models.NotesPage{}, adapter.ErrMalformedCursor),
		remote.EXPECT().FetchPage(gomock.Any(), query(models.Sad, "")).
			Return(models.NotesPage{Items: []models.Note{mkNote("s", models.Sad, 1)}, NextToken: "tok1b", ScannedCount: 10}, nil),
	)

	_, err := browser.SetFilter(ctx, models.Sad)
	require.NoError(t, err)

	view, err := browser.NextPage(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, view.Page.PageIndex)
	assert.Equal(t, "tok1b", view.Page.Cursor)
	assert.False(t, view.Offline)
	assert.Equal(t, []string{"s"}, noteIDs(view.Notes))
}

func TestNotesBrowser_RemoteUnavailableKeepsPageState(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	browser := newTestBrowser(t, remote, store.NewMemoryFallbackStore())
	ctx := context.Background()

	gomock.InOrder(
		remote.EXPECT().FetchPage(gomock.Any(), query("", "")).Return(pageWith("tok1", 10), nil),
		remote.EXPECT().FetchPage(gomock.Any(), query("", "tok1")).Return(models.NotesPage{}, unavailable),
	)

	before, err := browser.Load(ctx)
	require.NoError(t, err)

	view, err := browser.NextPage(ctx)

	require.NoError(t, err)
	assert.True(t, view.Offline)
	assert.Equal(t, before.Page, view.Page)
}

func TestNotesBrowser_RejectsNavigationWhileFetching(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	browser := newTestBrowser(t, remote, store.NewMemoryFallbackStore())
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	remote.EXPECT().FetchPage(gomock.Any(), query("", "")).Return(pageWith("tok1", 10), nil)
	remote.EXPECT().FetchPage(gomock.Any(), query("", "tok1")).
		DoAndReturn(func(_ context.Context, _ models.NotesQuery) (models.NotesPage, error) {
			close(started)
			<-release
			return pageWith("tok2", 10), nil
		})

	_, err := browser.Load(ctx)
	require.NoError(t, err)

	done := make(chan View)
	go func() {
		view, _ := browser.NextPage(ctx)
		done <- view
	}()
	<-started

	_, err = browser.NextPage(ctx)
	assert.ErrorIs(t, err, ErrFetchInFlight)
	_, err = browser.Refresh(ctx)
	assert.ErrorIs(t, err, ErrFetchInFlight)
	assert.True(t, browser.View().Loading)

	close(release)
	view := <-done
	assert.Equal(t, 2, view.Page.PageIndex)
}

func TestNotesBrowser_DiscardsStaleResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	browser := newTestBrowser(t, remote, store.NewMemoryFallbackStore())
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	remote.EXPECT().FetchPage(gomock.Any(), query("", "")).Return(pageWith("tok1", 10), nil)
	remote.EXPECT().FetchPage(gomock.Any(), query("", "tok1")).
		DoAndReturn(func(_ context.Context, _ models.NotesQuery) (models.NotesPage, error) {
			close(started)
			<-release
			return models.NotesPage{Items: []models.Note{mkNote("stale", models.Sad, 3)}, NextToken: "tok2"}, nil
		})
	remote.EXPECT().FetchPage(gomock.Any(), query(models.Happy, "")).
		Return(models.NotesPage{Items: []models.Note{mkNote("h", models.Happy, 4)}}, nil)

	_, err := browser.Load(ctx)
	require.NoError(t, err)

	done := make(chan View)
	go func() {
		view, _ := browser.NextPage(ctx)
		done <- view
	}()
	<-started

	_, err = browser.SetFilter(ctx, models.Happy)
	require.NoError(t, err)

	close(release)
	<-done

	view := browser.View()
	assert.Equal(t, []string{"h"}, noteIDs(view.Notes))
	assert.Equal(t, PageState{PageIndex: 1}, view.Page)
	assert.Equal(t, models.Happy, view.Filter)
}

func TestNotesBrowser_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	browser := newTestBrowser(t, remote, store.NewMemoryFallbackStore())
	ctx := context.Background()

	gomock.InOrder(
		remote.EXPECT().FetchPage(gomock.Any(), query("", "")).Return(pageWith("tok1", 10), nil),
		remote.EXPECT().FetchPage(gomock.Any(), query("", "tok1")).Return(pageWith("", 10), nil),
		remote.EXPECT().FetchPage(gomock.Any(), query("", "tok1")).
			Return(models.NotesPage{Items: []models.Note{mkNote("new", models.Sad, 9)}, NextToken: "tok2"}, nil),
	)

	_, err := browser.Load(ctx)
	require.NoError(t, err)
	_, err = browser.NextPage(ctx)
	require.NoError(t, err)

	view, err := browser.Refresh(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, view.Page.PageIndex)
	assert.True(t, view.Page.HasNextPage)
	assert.Equal(t, []string{"new"}, noteIDs(view.Notes))
}

// ── write path ───────────────────────────────────────────────────────────────

func TestNotesBrowser_CreateNote_RemoteSuccessRefreshesFirstPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	local := store.NewMemoryFallbackStore()
	browser := newTestBrowser(t, remote, local)
	ctx := context.Background()

	created := mkNote("srv-1", models.Happy, 20)

	gomock.InOrder(
		remote.EXPECT().FetchPage(gomock.Any(), query("", "")).Return(pageWith("tok1", 10), nil),
		remote.EXPECT().FetchPage(gomock.Any(), query("", "tok1")).Return(pageWith("", 10), nil),
		remote.EXPECT().CreateNote(gomock.Any(), models.CreateNoteInput{Text: "hello", Sentiment: models.Happy}).Return(created, nil),
		remote.EXPECT().FetchPage(gomock.Any(), query("", "")).
			Return(models.NotesPage{Items: []models.Note{created}, NextToken: "tok1"}, nil),
	)

	_, err := browser.Load(ctx)
	require.NoError(t, err)
	_, err = browser.NextPage(ctx)
	require.NoError(t, err)

	out, err := browser.CreateNote(ctx, "  hello ", "Happy")

	require.NoError(t, err)
	assert.False(t, out.Local)
	assert.Equal(t, created, out.Note)
	assert.Equal(t, 1, out.View.Page.PageIndex)
	assert.Equal(t, []models.Note{created}, out.View.Notes)

	cached, err := local.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cached)
}

func TestNotesBrowser_CreateNote_FallsBackToLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	local := store.NewMemoryFallbackStore()
	browser := newTestBrowser(t, remote, local)
	ctx := context.Background()

	existing := mkNote("r", models.Sad, 19)
	gomock.InOrder(
		remote.EXPECT().FetchPage(gomock.Any(), query("", "")).
			Return(models.NotesPage{Items: []models.Note{existing}}, nil),
		remote.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(models.Note{}, unavailable).Times(1),
		remote.EXPECT().FetchPage(gomock.Any(), query("", "")).
			Return(models.NotesPage{Items: []models.Note{existing}}, nil),
	)

	_, err := browser.Load(ctx)
	require.NoError(t, err)

	out, err := browser.CreateNote(ctx, "offline thought", models.Neutral)

	require.NoError(t, err)
	require.True(t, out.Local)
	want := models.Note{ID: "local-1", Text: "offline thought", Sentiment: models.Neutral, DateCreated: at(18)}
	assert.Equal(t, want, out.Note)
	require.NotEmpty(t, out.View.Notes)
	assert.Equal(t, want, out.View.Notes[0])
	assert.Equal(t, []string{"local-1", "r"}, noteIDs(out.View.Notes))

	cached, err := local.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Note{want}, cached)

	view, err := browser.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "local-1"}, noteIDs(view.Notes))
}

func TestNotesBrowser_CreateNote_LocalAppendFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	local := mock.NewMockLocalFallbackStore(ctrl)
	browser := newTestBrowser(t, remote, local)

	remote.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(models.Note{}, unavailable)
	local.EXPECT().Append(gomock.Any(), gomock.Any()).Return(store.ErrLocalStoreUnavailable)

	out, err := browser.CreateNote(context.Background(), "x", models.Sad)

	require.NoError(t, err)
	assert.True(t, out.Local)
	assert.Equal(t, []string{"local-1"}, noteIDs(out.View.Notes))
}

func TestNotesBrowser_CreateNote_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		sentiment models.Sentiment
		wantErr   error
	}{
		{name: "empty", text: "   ", sentiment: models.Sad, wantErr: ErrEmptyNoteText},
		{name: "too long", text: strings.Repeat("й", models.MaxNoteTextLength+1), sentiment: models.Sad, wantErr: ErrNoteTooLong},
		{name: "unknown sentiment", text: "x", sentiment: "joyful", wantErr: ErrUnknownSentiment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			browser := newTestBrowser(t, mock.NewMockRemoteSource(ctrl), store.NewMemoryFallbackStore())

			_, err := browser.CreateNote(context.Background(), tt.text, tt.sentiment)

			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
