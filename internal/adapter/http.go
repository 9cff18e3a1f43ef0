// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/sentiment-notes/internal/config"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/internal/utils"
	"github.com/MKhiriev/sentiment-notes/models"
)

const (
	notesPath    = "/api/notes"
	apiKeyHeader = "x-api-key"
)

type httpRemoteSource struct {
	client   *utils.HTTPClient
	pageSize int

	logger *logger.Logger
}

// NewHTTPRemoteSource constructs the REST implementation of [RemoteSource].
// It normalises and validates the base URL from cfg.HTTPAddress and sends
// cfg.APIKey in the x-api-key header of every request when it is set.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a valid
// URL.
func NewHTTPRemoteSource(cfg config.ClientAdapter, logger *logger.Logger) (RemoteSource, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	headers := map[string]string{"Accept": "application/json"}
	if cfg.APIKey != "" {
		headers[apiKeyHeader] = cfg.APIKey
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL: baseURL,
		Timeout: cfg.RequestTimeout,
		Headers: headers,
	})

	return &httpRemoteSource{client: client, pageSize: cfg.PageSize, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchPage implements [RemoteSource]. It GETs /api/notes with the query
// encoded by [encodeNotesQuery]; a zero query.Limit is replaced with the
// configured page size.
func (h *httpRemoteSource) FetchPage(ctx context.Context, query models.NotesQuery) (models.NotesPage, error) {
	log := logger.FromContext(ctx)

	if query.Limit == 0 {
		query.Limit = h.pageSize
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(encodeNotesQuery(query)).
		Get(notesPath)
	if err != nil {
		log.Err(err).Str("func", "*httpRemoteSource.FetchPage").Msg("notes request failed")
		return models.NotesPage{}, fmt.Errorf("%w: notes request: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).
			Str("func", "*httpRemoteSource.FetchPage").
			Int("status", resp.StatusCode()).
			Bool("with_cursor", query.NextToken != "").
			Msg("notes request rejected")
		return models.NotesPage{}, err
	}

	var wire notesPageWire
	if err = json.Unmarshal(resp.Body(), &wire); err != nil {
		return models.NotesPage{}, fmt.Errorf("%w: %w: %w", ErrRemoteUnavailable, errSchema, err)
	}

	page, err := decodeNotesPage(wire)
	if err != nil {
		log.Err(err).Str("func", "*httpRemoteSource.FetchPage").Msg("invalid notes page")
		return models.NotesPage{}, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	return page, nil
}

// CreateNote implements [RemoteSource]. It POSTs the note to /api/notes and
// decodes the created note from the response.
func (h *httpRemoteSource) CreateNote(ctx context.Context, input models.CreateNoteInput) (models.Note, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(encodeCreateNote(input)).
		Post(notesPath)
	if err != nil {
		log.Err(err).Str("func", "*httpRemoteSource.CreateNote").Msg("create request failed")
		return models.Note{}, fmt.Errorf("%w: create request: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).
			Str("func", "*httpRemoteSource.CreateNote").
			Int("status", resp.StatusCode()).
			Msg("create request rejected")
		return models.Note{}, fmt.Errorf("%w: http %d: %s", ErrRemoteUnavailable, resp.StatusCode(), errorMessage(resp.Body()))
	}

	var wire noteWire
	if err = json.Unmarshal(resp.Body(), &wire); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w: %w", ErrRemoteUnavailable, errSchema, err)
	}

	note, err := decodeNote(wire)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	return note, nil
}
