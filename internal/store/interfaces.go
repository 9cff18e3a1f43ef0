// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for both sides of the application.
//
// Server side: [NoteStorage] is the notes table behind the remote API, with
// in-memory, DynamoDB and PostgreSQL backends. Every backend applies the
// Limit to the records it evaluates before the sentiment filter, the way a
// DynamoDB Scan does. The memory and PostgreSQL backends scan in ascending id
// order; DynamoDB scans in table order.
//
// Client side (client_* files): [LocalFallbackStore] is the local cache slot
// that holds notes created while the remote was unreachable.
package store

import (
	"context"

	"github.com/MKhiriev/sentiment-notes/models"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/note_storage_mock.go -package=mock

// NoteStorage persists notes and serves forward scans over them.
type NoteStorage interface {
	// PutNote stores note. It fails with [ErrNoteAlreadyExists] when the id
	// is taken.
	PutNote(ctx context.Context, note models.Note) error

	// ScanNotes evaluates up to in.Limit notes following in.StartKey and
	// returns the evaluated notes matching in.Sentiment.
	ScanNotes(ctx context.Context, in ScanInput) (ScanOutput, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

// ScanInput describes one bounded scan step.
type ScanInput struct {
	// Sentiment filters evaluated notes. Empty keeps every note.
	Sentiment models.Sentiment

	// Limit is the maximum number of notes evaluated. It must be positive.
	Limit int

	// StartKey is the id of the last note evaluated by the previous step.
	// Empty starts from the beginning.
	StartKey string
}

// ScanOutput is the result of one scan step.
type ScanOutput struct {
	// Items are the evaluated notes that passed the filter.
	Items []models.Note

	// LastEvaluatedKey is the id to resume from. Empty means the scan is
	// exhausted.
	LastEvaluatedKey string

	// ScannedCount is the number of notes evaluated, before filtering.
	ScannedCount int
}

// DynamoAPI is the subset of the DynamoDB client used by the note storage.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}
