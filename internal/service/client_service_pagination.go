// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/sentiment-notes/models"
)

// PageState is the page-numbered view over the remote's forward-only scan.
type PageState struct {
	// Cursor continues the scan after the current page. Empty means the
	// current page is the last one, or nothing has been fetched yet.
	Cursor string

	// PageIndex is the 1-based number of the displayed page.
	PageIndex int

	// HasNextPage is true iff the last fetch returned a cursor.
	HasNextPage bool

	// EstimatedTotalPages is derived from the scanned count of the last
	// fresh fetch. Zero means unknown.
	EstimatedTotalPages int
}

// fetchTicket describes one page fetch between its begin and complete steps.
type fetchTicket struct {
	generation uint64
	filter     models.Sentiment
	cursor     string
	page       int
}

// fresh reports whether the ticket starts the scan from the beginning.
func (t fetchTicket) fresh() bool {
	return t.cursor == ""
}

// pageController owns PageState for one filter. It is not safe for
// concurrent use; the NotesBrowser serializes access to it.
type pageController struct {
	state    PageState
	pageSize int

	// startCursors[i] is the cursor that fetched page i+1 of the current scan.
	startCursors []string

	inFlight   bool
	generation uint64
}

func newPageController(pageSize int) *pageController {
	if pageSize <= 0 {
		pageSize = models.DefaultPageSize
	}

	return &pageController{
		state:        PageState{PageIndex: 1},
		pageSize:     pageSize,
		startCursors: []string{""},
	}
}

// bump invalidates every issued ticket.
func (p *pageController) bump() {
	p.generation++
	p.inFlight = false
}

// reset clears PageState and issues a fresh fetch of page 1. It never waits
// for a fetch in flight; that fetch's result is discarded on completion.
func (p *pageController) reset(filter models.Sentiment) fetchTicket {
	p.bump()
	p.state = PageState{PageIndex: 1}
	p.startCursors = []string{""}

	return p.begin(filter, "", 1)
}

func (p *pageController) beginAdvance(filter models.Sentiment) (fetchTicket, error) {
	if p.inFlight {
		return fetchTicket{}, ErrFetchInFlight
	}
	if !p.state.HasNextPage {
		return fetchTicket{}, ErrNoNextPage
	}

	return p.begin(filter, p.state.Cursor, p.state.PageIndex+1), nil
}

// beginRetreat re-fetches the previous page from its remembered start cursor.
func (p *pageController) beginRetreat(filter models.Sentiment) (fetchTicket, error) {
	if p.inFlight {
		return fetchTicket{}, ErrFetchInFlight
	}
	if p.state.PageIndex <= 1 {
		return fetchTicket{}, ErrAtFirstPage
	}

	target := p.state.PageIndex - 1
	return p.begin(filter, p.startCursors[target-1], target), nil
}

// beginRefresh re-fetches the displayed page.
func (p *pageController) beginRefresh(filter models.Sentiment) (fetchTicket, error) {
	if p.inFlight {
		return fetchTicket{}, ErrFetchInFlight
	}

	return p.begin(filter, p.startCursors[p.state.PageIndex-1], p.state.PageIndex), nil
}

func (p *pageController) begin(filter models.Sentiment, cursor string, page int) fetchTicket {
	p.inFlight = true
	return fetchTicket{
		generation: p.generation,
		filter:     filter,
		cursor:     cursor,
		page:       page,
	}
}

func (p *pageController) current(t fetchTicket) bool {
	return t.generation == p.generation
}

// complete applies a successful fetch. It returns false when the ticket is
// stale and the result must be discarded.
func (p *pageController) complete(t fetchTicket, page models.NotesPage) bool {
	if !p.current(t) {
		return false
	}

	p.inFlight = false
	p.startCursors = append(p.startCursors[:t.page-1], t.cursor)
	p.state.PageIndex = t.page
	p.state.Cursor = page.NextToken
	p.state.HasNextPage = page.HasNextPage()

	if t.fresh() && page.ScannedCount > 0 {
		p.state.EstimatedTotalPages = (page.ScannedCount + p.pageSize - 1) / p.pageSize
	}

	return true
}

// fail ends a fetch that did not produce a page, leaving PageState as it
// was. It returns false when the ticket is stale.
func (p *pageController) fail(t fetchTicket) bool {
	if !p.current(t) {
		return false
	}

	p.inFlight = false
	return true
}

func (p *pageController) snapshot() PageState {
	return p.state
}
