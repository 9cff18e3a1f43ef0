// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/sentiment-notes/internal/service"

// viewLoadedMsg carries the outcome of a user-initiated fetch.
type viewLoadedMsg struct {
	view service.View
	err  error
}

// refreshedMsg carries a view produced by the background refresh job.
type refreshedMsg struct {
	view service.View
}

type noteCreatedMsg struct {
	outcome service.CreateOutcome
	err     error
}

type copiedMsg struct {
	err error
}
