// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/sentiment-notes/internal/config"
	"github.com/MKhiriev/sentiment-notes/internal/service"
)

type refreshWorker struct {
	job      service.NotesRefreshJob
	interval time.Duration
}

// NewRefreshWorker runs job every cfg.RefreshInterval. A zero interval
// disables the worker.
func NewRefreshWorker(job service.NotesRefreshJob, cfg config.ClientWorkers) Worker {
	return &refreshWorker{job: job, interval: cfg.RefreshInterval}
}

func (r *refreshWorker) Run(ctx context.Context) {
	if r.interval <= 0 {
		return
	}
	r.job.Start(ctx, r.interval)
}

func (r *refreshWorker) Stop() {
	r.job.Stop()
}
