// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the notes
// server handlers and by the client adapter that reads their responses.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of HTTP error bodies. Keeping them in one place lets the
// client recognise a response by its message.
package app

const (
	// MsgInvalidDataProvided is returned when the request body or query
	// cannot be decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgMalformedCursor is returned when a continuation token has a bad
	// signature, has expired or was issued for another filter or page size.
	MsgMalformedCursor = "malformed cursor"

	// MsgInvalidAPIKey is returned when the x-api-key header is missing or
	// does not match the configured key.
	MsgInvalidAPIKey = "invalid api key"

	// MsgNoteAlreadyExists is returned when a note id collides with a stored
	// note.
	MsgNoteAlreadyExists = "note already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
