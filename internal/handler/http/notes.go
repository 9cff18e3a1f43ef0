// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/sentiment-notes/internal/app"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/internal/utils"
	"github.com/MKhiriev/sentiment-notes/models"
)

// notesPageResponse is the body of GET /api/notes. An exhausted scan carries
// "nextToken": null.
type notesPageResponse struct {
	Items        []models.Note `json:"items"`
	NextToken    *string       `json:"nextToken"`
	ScannedCount int           `json:"scannedCount"`
}

func newNotesPageResponse(page models.NotesPage) notesPageResponse {
	resp := notesPageResponse{Items: page.Items, ScannedCount: page.ScannedCount}
	if resp.Items == nil {
		resp.Items = []models.Note{}
	}
	if page.NextToken != "" {
		token := page.NextToken
		resp.NextToken = &token
	}
	return resp
}

func (h *Handler) getNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query, err := parseNotesQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNotes").Msg("invalid query parameters")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	page, err := h.services.NoteService.GetNotes(r.Context(), query)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.getNotes", err)
		return
	}

	if _, err = utils.WriteJSON(w, newNotesPageResponse(page), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getNotes").Msg("error writing response")
	}
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var input models.CreateNoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.createNote", err)
		return
	}

	if _, err = utils.WriteJSON(w, note, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error writing response")
	}
}

func parseNotesQuery(r *http.Request) (models.NotesQuery, error) {
	values := r.URL.Query()

	query := models.NotesQuery{
		Sentiment: models.Sentiment(values.Get("sentiment")),
		NextToken: values.Get("nextToken"),
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return models.NotesQuery{}, errInvalidLimit
		}
		query.Limit = limit
	}

	return query, nil
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status, message := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	utils.WriteError(w, message, status)
}
