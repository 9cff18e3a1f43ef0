// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns; the work itself happens in goroutines
// owned by the worker until ctx is done or Stop is called. Stop blocks until
// those goroutines have exited.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
