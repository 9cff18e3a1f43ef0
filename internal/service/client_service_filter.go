// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/sentiment-notes/models"
)

// sentimentFilter holds the active sentiment filter. The zero value means
// unfiltered.
type sentimentFilter struct {
	active models.Sentiment
}

// set replaces the active filter. raw is parsed case-insensitively; an empty
// raw clears the filter.
func (f *sentimentFilter) set(raw models.Sentiment) error {
	if raw == "" {
		f.active = ""
		return nil
	}

	s, ok := models.ParseSentiment(string(raw))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSentiment, raw)
	}

	f.active = s
	return nil
}

func (f *sentimentFilter) value() models.Sentiment {
	return f.active
}
