// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSentiment(t *testing.T) {
	tests := []struct {
		raw    string
		want   Sentiment
		wantOK bool
	}{
		{"happy", Happy, true},
		{"HAPPY", Happy, true},
		{"  Sad ", Sad, true},
		{"Angry", Angry, true},
		{"neutral", Neutral, true},
		{"", "", false},
		{"joyful", "joyful", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseSentiment(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNote_MatchesFilter(t *testing.T) {
	n := Note{ID: "a", Sentiment: Sad}

	assert.True(t, n.MatchesFilter(""))
	assert.True(t, n.MatchesFilter(Sad))
	assert.False(t, n.MatchesFilter(Happy))
}

func TestNote_JSONFieldNames(t *testing.T) {
	n := Note{
		ID:          "A",
		Text:        "x",
		Sentiment:   Sad,
		DateCreated: time.Date(2024, time.November, 15, 10, 0, 0, 0, time.UTC),
	}

	payload, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"A","text":"x","sentiment":"sad","dateCreated":"2024-11-15T10:00:00Z"}`, string(payload))
}

func TestNotesQuery_EffectiveLimit(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NotesQuery{}.EffectiveLimit())
	assert.Equal(t, DefaultPageSize, NotesQuery{Limit: -3}.EffectiveLimit())
	assert.Equal(t, 25, NotesQuery{Limit: 25}.EffectiveLimit())
}

func TestNotesPage_HasNextPage(t *testing.T) {
	assert.False(t, NotesPage{}.HasNextPage())
	assert.True(t, NotesPage{NextToken: "tok1"}.HasNextPage())
}

func TestIsSampleNote(t *testing.T) {
	for _, n := range SampleNotes {
		assert.True(t, IsSampleNote(n.ID))
	}
	assert.False(t, IsSampleNote("user-note"))
}

func TestNewAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, VersionResponse{Version: "N/A", Date: "2026-01-01", Commit: "N/A"}, info.Response())
}
