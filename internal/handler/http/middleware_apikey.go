// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/sentiment-notes/internal/app"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/internal/utils"
)

const (
	apiKeyHeader = "x-api-key"

	// apiKeyHashKey keys the HMAC used for the constant-time comparison.
	apiKeyHashKey = "sentiment-notes/api-key"
)

// withAPIKey rejects requests whose x-api-key header does not match the
// configured key with 401. It lets every request through when no key is
// configured.
func (h *Handler) withAPIKey(next http.Handler) http.Handler {
	if h.apiKey == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := r.Header.Get(apiKeyHeader)
		if got == "" || !utils.EqualHashed(got, h.apiKey, apiKeyHashKey) {
			log := logger.FromRequest(r).Warn().Str("func", "*Handler.withAPIKey").Bool("header_present", got != "")
			if got != "" {
				// a short digest lets repeated bad keys be correlated without logging them
				log = log.Str("key_digest", utils.HashString(got, apiKeyHashKey)[:12])
			}
			log.Msg("rejected api key")
			utils.WriteError(w, app.MsgInvalidAPIKey, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
