// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/sentiment-notes/internal/logger"
)

const defaultRefreshInterval = 30 * time.Second

type notesRefreshJob struct {
	browser NotesBrowser
	notify  func(View)

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewNotesRefreshJob creates a job that calls browser.Refresh on a ticker and
// passes every applied refresh to notify. notify may be nil. The job is idle
// until Start is called.
func NewNotesRefreshJob(browser NotesBrowser, notify func(View), logger *logger.Logger) NotesRefreshJob {
	return &notesRefreshJob{browser: browser, notify: notify, logger: logger}
}

func (j *notesRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx)
			}
		}
	}()
}

func (j *notesRefreshJob) refresh(ctx context.Context) {
	view, err := j.browser.Refresh(ctx)
	if err != nil {
		if !errors.Is(err, ErrFetchInFlight) {
			j.logger.Warn().Err(err).Str("func", "*notesRefreshJob.refresh").Msg("refresh rejected")
		}
		return
	}

	if j.notify != nil {
		j.notify(view)
	}
}

// Stop is a no-op when the job is not running.
func (j *notesRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
