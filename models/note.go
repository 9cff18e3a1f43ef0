// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Sentiment is the mood label attached to every note.
// The canonical form is always lowercase.
type Sentiment string

const (
	// Happy marks a note written in a good mood.
	Happy Sentiment = "happy"

	// Sad marks a note written in a low mood.
	Sad Sentiment = "sad"

	// Angry marks a note written while annoyed or frustrated.
	Angry Sentiment = "angry"

	// Neutral marks a note without a notable mood.
	Neutral Sentiment = "neutral"
)

// Sentiments lists every accepted sentiment in display order.
var Sentiments = []Sentiment{Happy, Sad, Angry, Neutral}

// ParseSentiment converts raw into its canonical lowercase form.
// Surrounding whitespace and letter case are ignored, so "HAPPY" and " happy"
// both yield [Happy]. The second return value is false when raw does not name
// a known sentiment.
func ParseSentiment(raw string) (Sentiment, bool) {
	s := Sentiment(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.Valid()
}

// Valid reports whether s is one of the canonical sentiments.
func (s Sentiment) Valid() bool {
	switch s {
	case Happy, Sad, Angry, Neutral:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (s Sentiment) String() string {
	return string(s)
}

// Note is a single user-recorded thought tagged with a sentiment.
//
// Notes are immutable once created. ID is a lexicographically sortable unique
// identifier (UUIDv7) and DateCreated is authoritative for display order.
type Note struct {
	// ID uniquely identifies the note across remote and local sources.
	ID string `json:"id" dynamodbav:"id" validate:"required"`

	// Text is the user-supplied, non-empty content of the note.
	Text string `json:"text" dynamodbav:"text"`

	// Sentiment is the canonical lowercase sentiment label.
	Sentiment Sentiment `json:"sentiment" dynamodbav:"sentiment" validate:"sentiment"`

	// DateCreated is the creation timestamp, serialized as RFC 3339.
	DateCreated time.Time `json:"dateCreated" dynamodbav:"dateCreated"`
}

// MatchesFilter reports whether the note passes the sentiment filter.
// An empty filter matches every note.
func (n Note) MatchesFilter(filter Sentiment) bool {
	return filter == "" || n.Sentiment == filter
}

// MaxNoteTextLength is the maximum number of characters in a note text.
const MaxNoteTextLength = 1000

// CreateNoteInput carries the user-supplied fields of a new note.
// The server assigns the identifier and creation time.
type CreateNoteInput struct {
	Text      string    `json:"text" validate:"required,max=1000"`
	Sentiment Sentiment `json:"sentiment" validate:"required,sentiment"`
}

// DefaultPageSize is the number of notes requested per page when the caller
// does not specify a limit.
const DefaultPageSize = 10

// NotesQuery describes a single page request against the remote notes scan.
type NotesQuery struct {
	// Sentiment restricts results to the given sentiment. Empty means
	// unfiltered.
	Sentiment Sentiment `json:"sentiment,omitempty" validate:"omitempty,sentiment"`

	// Limit is the page size. Zero means [DefaultPageSize].
	Limit int `json:"limit,omitempty" validate:"gte=0,lte=100"`

	// NextToken resumes a previous scan. Empty starts a fresh scan.
	NextToken string `json:"nextToken,omitempty"`
}

// EffectiveLimit returns Limit, or [DefaultPageSize] when Limit is unset.
func (q NotesQuery) EffectiveLimit() int {
	if q.Limit <= 0 {
		return DefaultPageSize
	}
	return q.Limit
}

// NotesPage is one page of a notes scan.
type NotesPage struct {
	// Items are the notes returned for this page, in scan order.
	Items []Note `json:"items"`

	// NextToken continues the scan. Empty means the scan is exhausted.
	NextToken string `json:"nextToken,omitempty"`

	// ScannedCount is the number of records the remote evaluated to build
	// the page. It may be larger than len(Items) when a filter is applied.
	ScannedCount int `json:"scannedCount"`
}

// HasNextPage reports whether the scan can be continued.
func (p NotesPage) HasNextPage() bool {
	return p.NextToken != ""
}
