// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidNote is returned when a create request or a page query fails
	// validation.
	ErrInvalidNote = errors.New("invalid data provided")

	// ErrMalformedCursor is returned when a continuation token has a bad
	// signature, has expired or was issued for other scan parameters.
	ErrMalformedCursor = errors.New("malformed cursor")

	// ErrEmptyCursorSecret is returned when the server is started without a
	// secret to sign continuation tokens with.
	ErrEmptyCursorSecret = errors.New("cursor secret is not specified")
)
