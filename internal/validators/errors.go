// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidNoteID    = errors.New("invalid note id")
	ErrInvalidText      = errors.New("note text must be non-empty and at most 1000 characters")
	ErrInvalidSentiment = errors.New("unknown sentiment")
	ErrInvalidLimit     = errors.New("limit must be within 0..100")
)
