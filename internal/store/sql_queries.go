// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/sentiment-notes/models"
)

const notesTable = "notes"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildInsertNoteQuery builds a plain insert; the primary key rejects
// duplicate ids.
func buildInsertNoteQuery(note models.Note) (string, []any, error) {
	return psql.Insert(notesTable).
		Columns("id", "text", "sentiment", "date_created").
		Values(note.ID, note.Text, string(note.Sentiment), note.DateCreated).
		ToSql()
}

// buildScanNotesQuery selects one row more than in.Limit so the caller can
// tell whether the scan continues past the window.
func buildScanNotesQuery(in ScanInput) (string, []any, error) {
	q := psql.Select("id", "text", "sentiment", "date_created").
		From(notesTable).
		OrderBy("id ASC").
		Limit(uint64(in.Limit) + 1)

	if in.StartKey != "" {
		q = q.Where(sq.Gt{"id": in.StartKey})
	}

	return q.ToSql()
}
