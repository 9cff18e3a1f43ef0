// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by note storages to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteAlreadyExists is returned when a put targets an id that is
	// already stored.
	ErrNoteAlreadyExists = errors.New("note already exists")

	// ErrScanFailed is returned when reading a page of notes from the
	// backend fails.
	ErrScanFailed = errors.New("failed to scan notes")

	// ErrPutFailed is returned when persisting a note fails for any reason
	// other than a duplicate id.
	ErrPutFailed = errors.New("failed to put note")

	// ErrInvalidStartKey is returned when a scan is resumed from a key the
	// backend cannot use.
	ErrInvalidStartKey = errors.New("invalid scan start key")

	// ErrUnknownBackend is returned when the configured backend name is not
	// supported.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level database operation errors. These are wrapped by SQL-backed
// storages when a driver-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan note rows")
)

// ErrLocalStoreUnavailable is returned by every [LocalFallbackStore] failure:
// an unreachable database, a failed statement or a corrupt payload. Callers
// treat the local set as empty and continue.
var ErrLocalStoreUnavailable = errors.New("local store unavailable")
