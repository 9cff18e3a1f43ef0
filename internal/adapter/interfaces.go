// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/sentiment-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_source_mock.go -package=mock

// RemoteSource is the client's view of the remote notes API.
//
// Every failure is reported as [ErrRemoteUnavailable], except a rejected
// continuation token, which is [ErrMalformedCursor].
type RemoteSource interface {
	// FetchPage returns one page of the remote scan described by query.
	// Item sentiments are in canonical lowercase form.
	FetchPage(ctx context.Context, query models.NotesQuery) (models.NotesPage, error)

	// CreateNote persists input remotely and returns the note with its
	// server-assigned id and creation time.
	CreateNote(ctx context.Context, input models.CreateNoteInput) (models.Note, error)
}
