// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/sentiment-notes/models"
)

// NoteService is the business layer behind the notes API.
type NoteService interface {
	// CreateNote validates input, assigns a UUIDv7 id and the current UTC
	// time and stores the note.
	CreateNote(ctx context.Context, input models.CreateNoteInput) (models.Note, error)

	// GetNotes returns one page of the notes scan. query.NextToken must be a
	// token issued by a previous call with the same sentiment and limit.
	GetNotes(ctx context.Context, query models.NotesQuery) (models.NotesPage, error)
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}

// AppInfoService exposes the build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}

// HealthService reports whether the server dependencies are reachable.
type HealthService interface {
	Check(ctx context.Context) error
}
