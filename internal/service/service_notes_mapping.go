// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/MKhiriev/sentiment-notes/internal/store"
	"github.com/MKhiriev/sentiment-notes/models"
)

// toScanInput maps a validated page query and a decoded start key onto one
// storage scan step.
func toScanInput(query models.NotesQuery, startKey string) store.ScanInput {
	return store.ScanInput{
		Sentiment: query.Sentiment,
		Limit:     query.Limit,
		StartKey:  startKey,
	}
}

// toNotesPage maps a scan step onto the API page. Sentiments are lowercased
// regardless of how they were stored; the token is filled by the caller.
func toNotesPage(out store.ScanOutput) models.NotesPage {
	page := models.NotesPage{
		Items:        make([]models.Note, 0, len(out.Items)),
		ScannedCount: out.ScannedCount,
	}

	for _, n := range out.Items {
		n.Sentiment = models.Sentiment(strings.ToLower(string(n.Sentiment)))
		n.DateCreated = n.DateCreated.UTC()
		page.Items = append(page.Items, n)
	}

	return page
}

// normalizeCreateInput trims the text and lowercases the sentiment.
func normalizeCreateInput(input models.CreateNoteInput) models.CreateNoteInput {
	sentiment, _ := models.ParseSentiment(string(input.Sentiment))
	return models.CreateNoteInput{
		Text:      strings.TrimSpace(input.Text),
		Sentiment: sentiment,
	}
}

// normalizeNotesQuery lowercases the sentiment filter.
func normalizeNotesQuery(query models.NotesQuery) models.NotesQuery {
	if query.Sentiment != "" {
		query.Sentiment, _ = models.ParseSentiment(string(query.Sentiment))
	}
	return query
}
