// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/sentiment-notes/internal/config"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/models"
	"github.com/sony/gobreaker"
)

// breakerRemoteSource stops calling inner after a run of consecutive
// failures and fails fast with [ErrRemoteUnavailable] until the breaker
// half-opens again.
type breakerRemoteSource struct {
	inner RemoteSource
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerRemoteSource wraps inner with a circuit breaker that trips after
// cfg.BreakerFailures consecutive failures and stays open for
// cfg.BreakerTimeout. A rejected cursor is the caller's fault and does not
// count as a failure.
func NewBreakerRemoteSource(inner RemoteSource, cfg config.ClientAdapter, log *logger.Logger) RemoteSource {
	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 1
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "remote-notes",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("remote breaker state changed")
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrMalformedCursor)
		},
	})

	return &breakerRemoteSource{inner: inner, cb: cb}
}

func (b *breakerRemoteSource) FetchPage(ctx context.Context, query models.NotesQuery) (models.NotesPage, error) {
	res, err := b.cb.Execute(func() (any, error) {
		return b.inner.FetchPage(ctx, query)
	})
	if err != nil {
		return models.NotesPage{}, breakerError(err)
	}
	return res.(models.NotesPage), nil
}

func (b *breakerRemoteSource) CreateNote(ctx context.Context, input models.CreateNoteInput) (models.Note, error) {
	res, err := b.cb.Execute(func() (any, error) {
		return b.inner.CreateNote(ctx, input)
	})
	if err != nil {
		return models.Note{}, breakerError(err)
	}
	return res.(models.Note), nil
}

// breakerError keeps errors from inner as they are and maps the breaker's
// own rejections onto [ErrRemoteUnavailable].
func breakerError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	return err
}

// NewRemoteSource builds the HTTP remote source guarded by a circuit breaker.
func NewRemoteSource(cfg config.ClientAdapter, log *logger.Logger) (RemoteSource, error) {
	httpSource, err := NewHTTPRemoteSource(cfg, log)
	if err != nil {
		return nil, err
	}
	return NewBreakerRemoteSource(httpSource, cfg, log), nil
}
