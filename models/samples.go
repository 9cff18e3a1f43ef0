// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SampleNotes are demonstration notes used to seed an empty in-memory
// backend. They are never written into the local fallback cache.
var SampleNotes = []Note{
	{
		ID:          "01KA82YS8XM5ZAXF123",
		Text:        "Had an amazing day at the beach! The sunset was absolutely beautiful and I felt so peaceful.",
		Sentiment:   Happy,
		DateCreated: time.Date(2024, time.November, 15, 18, 30, 0, 0, time.UTC),
	},
	{
		ID:          "01KA82YS8XM5ZAXF456",
		Text:        "Feeling overwhelmed with work deadlines. Everything seems to be happening at once.",
		Sentiment:   Sad,
		DateCreated: time.Date(2024, time.November, 15, 14, 20, 0, 0, time.UTC),
	},
	{
		ID:          "01KA82YS8XM5ZAXF789",
		Text:        "Just another day. Nothing special happened, but nothing bad either.",
		Sentiment:   Neutral,
		DateCreated: time.Date(2024, time.November, 15, 10, 15, 0, 0, time.UTC),
	},
	{
		ID:          "01KA82YS8XM5ZAXF012",
		Text:        "Traffic was terrible this morning! Spent 2 hours in what should have been a 30-minute drive.",
		Sentiment:   Angry,
		DateCreated: time.Date(2024, time.November, 15, 8, 45, 0, 0, time.UTC),
	},
}

// IsSampleNote reports whether id belongs to one of [SampleNotes].
func IsSampleNote(id string) bool {
	for _, n := range SampleNotes {
		if n.ID == id {
			return true
		}
	}
	return false
}
