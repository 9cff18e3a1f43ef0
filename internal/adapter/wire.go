// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/MKhiriev/sentiment-notes/models"
)

// Query parameter names of GET /api/notes.
const (
	paramSentiment = "sentiment"
	paramLimit     = "limit"
	paramNextToken = "nextToken"
)

// noteWire is a note as sent by the remote. Fields stay raw strings so that
// decoding can reject them one by one.
type noteWire struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Sentiment   string `json:"sentiment"`
	DateCreated string `json:"dateCreated"`
}

// notesPageWire is the body of GET /api/notes.
type notesPageWire struct {
	Items        []noteWire `json:"items"`
	NextToken    *string    `json:"nextToken"`
	ScannedCount int        `json:"scannedCount"`
}

// createNoteWire is the body of POST /api/notes.
type createNoteWire struct {
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"`
}

// encodeNotesQuery maps a page request onto query parameters. Empty filter
// and token are omitted; the limit is always sent.
func encodeNotesQuery(query models.NotesQuery) url.Values {
	values := url.Values{}
	if query.Sentiment != "" {
		values.Set(paramSentiment, string(query.Sentiment))
	}
	values.Set(paramLimit, strconv.Itoa(query.EffectiveLimit()))
	if query.NextToken != "" {
		values.Set(paramNextToken, query.NextToken)
	}
	return values
}

// encodeCreateNote maps the user input onto the create request body.
func encodeCreateNote(input models.CreateNoteInput) createNoteWire {
	return createNoteWire{Text: input.Text, Sentiment: string(input.Sentiment)}
}

// decodeNotesPage validates a page body and normalizes item sentiments.
func decodeNotesPage(wire notesPageWire) (models.NotesPage, error) {
	page := models.NotesPage{
		Items:        make([]models.Note, 0, len(wire.Items)),
		ScannedCount: wire.ScannedCount,
	}
	if wire.NextToken != nil {
		page.NextToken = *wire.NextToken
	}

	for i, item := range wire.Items {
		n, err := decodeNote(item)
		if err != nil {
			return models.NotesPage{}, fmt.Errorf("item %d: %w", i, err)
		}
		page.Items = append(page.Items, n)
	}

	return page, nil
}

// decodeNote validates one note body and normalizes its sentiment.
func decodeNote(wire noteWire) (models.Note, error) {
	if wire.ID == "" {
		return models.Note{}, fmt.Errorf("%w: missing id", errSchema)
	}

	sentiment, ok := models.ParseSentiment(wire.Sentiment)
	if !ok {
		return models.Note{}, fmt.Errorf("%w: unknown sentiment %q for note %s", errSchema, wire.Sentiment, wire.ID)
	}

	created, err := time.Parse(time.RFC3339, wire.DateCreated)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: bad dateCreated for note %s: %w", errSchema, wire.ID, err)
	}

	return models.Note{
		ID:          wire.ID,
		Text:        wire.Text,
		Sentiment:   sentiment,
		DateCreated: created,
	}, nil
}
