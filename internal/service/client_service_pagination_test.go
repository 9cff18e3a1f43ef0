// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/sentiment-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageWith(next string, scanned int) models.NotesPage {
	return models.NotesPage{Items: []models.Note{}, NextToken: next, ScannedCount: scanned}
}

func TestPageController_AdvanceIncrementsByOne(t *testing.T) {
	p := newPageController(10)

	ticket := p.reset("")
	require.True(t, p.complete(ticket, pageWith("tok1", 10)))
	assert.Equal(t, 1, p.snapshot().PageIndex)

	for i, next := range []string{"tok2", "tok3", ""} {
		ticket, err := p.beginAdvance("")
		require.NoError(t, err)
		require.True(t, p.complete(ticket, pageWith(next, 10)))

		state := p.snapshot()
		assert.Equal(t, i+2, state.PageIndex)
		assert.Equal(t, next != "", state.HasNextPage)
	}

	_, err := p.beginAdvance("")
	assert.ErrorIs(t, err, ErrNoNextPage)
}

func TestPageController_AdvanceUsesCurrentCursor(t *testing.T) {
	p := newPageController(10)
	require.True(t, p.complete(p.reset(models.Sad), pageWith("tok1", 10)))

	ticket, err := p.beginAdvance(models.Sad)

	require.NoError(t, err)
	assert.Equal(t, "tok1", ticket.cursor)
	assert.Equal(t, models.Sad, ticket.filter)
	assert.Equal(t, 2, ticket.page)
}

func TestPageController_RejectsWhileInFlight(t *testing.T) {
	p := newPageController(10)
	require.True(t, p.complete(p.reset(""), pageWith("tok1", 10)))

	ticket, err := p.beginAdvance("")
	require.NoError(t, err)

	_, err = p.beginAdvance("")
	assert.ErrorIs(t, err, ErrFetchInFlight)
	_, err = p.beginRetreat("")
	assert.ErrorIs(t, err, ErrFetchInFlight)
	_, err = p.beginRefresh("")
	assert.ErrorIs(t, err, ErrFetchInFlight)

	require.True(t, p.fail(ticket))
	assert.Equal(t, 1, p.snapshot().PageIndex)
	assert.True(t, p.snapshot().HasNextPage)

	_, err = p.beginAdvance("")
	assert.NoError(t, err)
}

func TestPageController_RetreatUsesCachedStartCursor(t *testing.T) {
	p := newPageController(10)
	require.True(t, p.complete(p.reset(""), pageWith("tok1", 10)))

	for _, next := range []string{"tok2", ""} {
		ticket, err := p.beginAdvance("")
		require.NoError(t, err)
		require.True(t, p.complete(ticket, pageWith(next, 10)))
	}
	require.Equal(t, 3, p.snapshot().PageIndex)

	ticket, err := p.beginRetreat("")
	require.NoError(t, err)
	assert.Equal(t, "tok1", ticket.cursor)
	require.True(t, p.complete(ticket, pageWith("tok2", 10)))
	assert.Equal(t, PageState{Cursor: "tok2", PageIndex: 2, HasNextPage: true, EstimatedTotalPages: 1}, p.snapshot())

	ticket, err = p.beginRetreat("")
	require.NoError(t, err)
	assert.Empty(t, ticket.cursor)
	require.True(t, p.complete(ticket, pageWith("tok1", 10)))
	assert.Equal(t, 1, p.snapshot().PageIndex)

	_, err = p.beginRetreat("")
	assert.ErrorIs(t, err, ErrAtFirstPage)
}

func TestPageController_RefreshUsesCurrentPageStart(t *testing.T) {
	p := newPageController(10)
	require.True(t, p.complete(p.reset(""), pageWith("tok1", 10)))
	ticket, err := p.beginAdvance("")
	require.NoError(t, err)
	require.True(t, p.complete(ticket, pageWith("tok2", 10)))

	ticket, err = p.beginRefresh("")

	require.NoError(t, err)
	assert.Equal(t, "tok1", ticket.cursor)
	assert.Equal(t, 2, ticket.page)
}

func TestPageController_ResetDiscardsInFlightResult(t *testing.T) {
	p := newPageController(10)
	require.True(t, p.complete(p.reset(""), pageWith("tok1", 10)))
	ticket, err := p.beginAdvance("")
	require.NoError(t, err)
	require.True(t, p.complete(ticket, pageWith("tok2", 10)))

	stale, err := p.beginAdvance("")
	require.NoError(t, err)

	fresh := p.reset(models.Angry)
	assert.Equal(t, PageState{PageIndex: 1}, p.snapshot())

	assert.False(t, p.complete(stale, pageWith("tok9", 10)))
	assert.False(t, p.fail(stale))
	assert.True(t, p.inFlight)

	require.True(t, p.complete(fresh, pageWith("", 3)))
	assert.Equal(t, PageState{PageIndex: 1, EstimatedTotalPages: 1}, p.snapshot())
}

func TestPageController_EstimateOnlyOnFreshFetch(t *testing.T) {
	p := newPageController(10)

	require.True(t, p.complete(p.reset(""), pageWith("tok1", 25)))
	assert.Equal(t, 3, p.snapshot().EstimatedTotalPages)

	ticket, err := p.beginAdvance("")
	require.NoError(t, err)
	require.True(t, p.complete(ticket, pageWith("tok2", 100)))
	assert.Equal(t, 3, p.snapshot().EstimatedTotalPages)

	require.True(t, p.complete(p.reset(""), pageWith("", 0)))
	assert.Zero(t, p.snapshot().EstimatedTotalPages)
}

func TestNewPageController_DefaultPageSize(t *testing.T) {
	assert.Equal(t, models.DefaultPageSize, newPageController(0).pageSize)
}
