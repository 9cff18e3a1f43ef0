// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/sentiment-notes/internal/metrics"
	"github.com/MKhiriev/sentiment-notes/models"
)

// metricsNoteStorage records count and latency of every call to inner.
type metricsNoteStorage struct {
	inner   NoteStorage
	backend string
	metrics *metrics.Collector
}

// NewMetricsNoteStorage decorates inner with storage metrics labelled with
// backend.
func NewMetricsNoteStorage(inner NoteStorage, backend string, collector *metrics.Collector) NoteStorage {
	return &metricsNoteStorage{inner: inner, backend: backend, metrics: collector}
}

func (m *metricsNoteStorage) PutNote(ctx context.Context, note models.Note) (err error) {
	defer func(started time.Time) { m.metrics.ObserveStorage("put", m.backend, started, err) }(time.Now())
	return m.inner.PutNote(ctx, note)
}

func (m *metricsNoteStorage) ScanNotes(ctx context.Context, in ScanInput) (out ScanOutput, err error) {
	defer func(started time.Time) { m.metrics.ObserveStorage("scan", m.backend, started, err) }(time.Now())
	return m.inner.ScanNotes(ctx, in)
}

func (m *metricsNoteStorage) Ping(ctx context.Context) (err error) {
	defer func(started time.Time) { m.metrics.ObserveStorage("ping", m.backend, started, err) }(time.Now())
	return m.inner.Ping(ctx)
}
