// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/sentiment-notes/internal/app"
	"github.com/MKhiriev/sentiment-notes/internal/service"
	"github.com/MKhiriev/sentiment-notes/internal/store"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []errorStatus{
	{service.ErrInvalidNote, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrMalformedCursor, http.StatusBadRequest, app.MsgMalformedCursor},
	{store.ErrNoteAlreadyExists, http.StatusConflict, app.MsgNoteAlreadyExists},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
