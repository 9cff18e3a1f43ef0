// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Rejections returned by the NotesBrowser. None of them changes state.
var (
	ErrFetchInFlight    = errors.New("a page fetch is already in flight")
	ErrNoNextPage       = errors.New("there is no next page")
	ErrAtFirstPage      = errors.New("already at the first page")
	ErrEmptyNoteText    = errors.New("note text is empty")
	ErrNoteTooLong      = errors.New("note text is too long")
	ErrUnknownSentiment = errors.New("unknown sentiment")
)
