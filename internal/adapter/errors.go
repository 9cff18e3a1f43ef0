// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrRemoteUnavailable covers network, authorization, breaker-open and
	// response schema failures.
	ErrRemoteUnavailable = errors.New("remote unavailable")

	// ErrMalformedCursor is returned when the remote rejects the
	// continuation token of a page request.
	ErrMalformedCursor = errors.New("malformed cursor")

	errSchema = errors.New("unexpected response schema")
)
