// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/sentiment-notes/internal/app"
	"github.com/MKhiriev/sentiment-notes/internal/utils"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into [ErrMalformedCursor] when the
// server rejected the continuation token and [ErrRemoteUnavailable]
// otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}

	if resp.StatusCode() == http.StatusBadRequest && msg == app.MsgMalformedCursor {
		return fmt.Errorf("%w: %s", ErrMalformedCursor, msg)
	}

	return fmt.Errorf("%w: http %d: %s", ErrRemoteUnavailable, resp.StatusCode(), msg)
}

// errorMessage extracts the "error" field of a JSON error body, falling back
// to the raw text.
func errorMessage(body []byte) string {
	var payload utils.ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(body))
}
