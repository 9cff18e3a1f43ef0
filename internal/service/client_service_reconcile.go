// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sort"

	"github.com/MKhiriev/sentiment-notes/models"
)

// Merge builds the display list from a remote page and the local fallback set.
//
// The remote page is already filtered; filter is applied to local only.
// Remote items come first, so for an id present in both sources the remote
// copy is kept. The result is ordered by DateCreated, newest first; equal
// timestamps keep merge order. A nil remote means the remote was unavailable
// and the result is local-only.
func Merge(remote *models.NotesPage, local []models.Note, filter models.Sentiment) []models.Note {
	var remoteItems []models.Note
	if remote != nil {
		remoteItems = remote.Items
	}

	merged := make([]models.Note, 0, len(remoteItems)+len(local))
	seen := make(map[string]struct{}, cap(merged))

	add := func(n models.Note) {
		if _, ok := seen[n.ID]; ok {
			return
		}
		seen[n.ID] = struct{}{}
		merged = append(merged, n)
	}

	for _, n := range remoteItems {
		add(n)
	}
	for _, n := range local {
		if n.MatchesFilter(filter) {
			add(n)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].DateCreated.After(merged[j].DateCreated)
	})

	return merged
}
