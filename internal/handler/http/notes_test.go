// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/sentiment-notes/internal/config"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/internal/service"
	"github.com/MKhiriev/sentiment-notes/internal/store"
	"github.com/MKhiriev/sentiment-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, notes *stubNoteService, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := NewHandler(newTestServices(notes), config.ServerApp{}, nil, logger.Nop()).Init()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	return rr
}

func TestGetNotes_PassesQueryParameters(t *testing.T) {
	notes := &stubNoteService{page: models.NotesPage{Items: []models.Note{}}}

	rr := serve(t, notes, http.MethodGet, "/api/notes?sentiment=angry&limit=25&nextToken=tok1", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.NotesQuery{Sentiment: models.Angry, Limit: 25, NextToken: "tok1"}, notes.lastQuery)
}

func TestGetNotes_ResponseBody(t *testing.T) {
	note := models.Note{ID: "A", Text: "x", Sentiment: models.Sad, DateCreated: time.Date(2024, time.November, 15, 10, 0, 0, 0, time.UTC)}

	tests := []struct {
		name string
		page models.NotesPage
		want string
	}{
		{
			name: "with next token",
			page: models.NotesPage{Items: []models.Note{note}, NextToken: "tok1", ScannedCount: 3},
			want: `{"items":[{"id":"A","text":"x","sentiment":"sad","dateCreated":"2024-11-15T10:00:00Z"}],"nextToken":"tok1","scannedCount":3}`,
		},
		{
			name: "exhausted scan",
			page: models.NotesPage{},
			want: `{"items":[],"nextToken":null,"scannedCount":0}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, &stubNoteService{page: tt.page}, http.MethodGet, "/api/notes", "")

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, rr.Body.String())
		})
	}
}

func TestGetNotes_InvalidLimit(t *testing.T) {
	rr := serve(t, &stubNoteService{}, http.MethodGet, "/api/notes?limit=ten", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"invalid data provided"}`, rr.Body.String())
}

func TestNotesHandlers_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "validation", err: fmt.Errorf("%w: text", service.ErrInvalidNote), wantStatus: http.StatusBadRequest, wantBody: `{"error":"invalid data provided"}`},
		{name: "cursor", err: fmt.Errorf("%w: expired", service.ErrMalformedCursor), wantStatus: http.StatusBadRequest, wantBody: `{"error":"malformed cursor"}`},
		{name: "duplicate", err: store.ErrNoteAlreadyExists, wantStatus: http.StatusConflict, wantBody: `{"error":"note already exists"}`},
		{name: "storage", err: store.ErrScanFailed, wantStatus: http.StatusInternalServerError, wantBody: `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			get := serve(t, &stubNoteService{err: tt.err}, http.MethodGet, "/api/notes", "")
			post := serve(t, &stubNoteService{err: tt.err}, http.MethodPost, "/api/notes", `{"text":"x","sentiment":"sad"}`)

			for _, rr := range []*httptest.ResponseRecorder{get, post} {
				assert.Equal(t, tt.wantStatus, rr.Code)
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestCreateNote_Created(t *testing.T) {
	created := models.Note{ID: "0190a1b2", Text: "hello", Sentiment: models.Happy, DateCreated: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)}
	notes := &stubNoteService{note: created}

	rr := serve(t, notes, http.MethodPost, "/api/notes", `{"text":"hello","sentiment":"happy"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, models.CreateNoteInput{Text: "hello", Sentiment: models.Happy}, notes.lastInput)
	assert.JSONEq(t, `{"id":"0190a1b2","text":"hello","sentiment":"happy","dateCreated":"2026-03-01T12:00:00Z"}`, rr.Body.String())
}

func TestCreateNote_InvalidJSON(t *testing.T) {
	rr := serve(t, &stubNoteService{}, http.MethodPost, "/api/notes", `{"text":`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"invalid data provided"}`, rr.Body.String())
}

func TestGetServerVersion(t *testing.T) {
	rr := serve(t, &stubNoteService{}, http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"1.2.3","date":"N/A","commit":"abc"}`, rr.Body.String())
}

func TestHealthz(t *testing.T) {
	svcs := newTestServices(&stubNoteService{})
	svcs.HealthService = &stubHealthService{err: store.ErrScanFailed}
	router := NewHandler(svcs, config.ServerApp{}, nil, logger.Nop()).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "unavailable", rr.Body.String())
}
