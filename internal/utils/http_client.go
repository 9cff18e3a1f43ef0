// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{BaseURL: "http://localhost:8080"})
//	resp, err := client.R().Get("/api/notes")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures a new [HTTPClient].
type HTTPClientOptions struct {
	// BaseURL is prepended to relative request paths.
	BaseURL string
	// Timeout bounds every request. Zero keeps the resty default.
	Timeout time.Duration
	// Headers are sent with every request.
	Headers map[string]string
}

// NewHTTPClient creates an independent HTTPClient with its own connection
// pool. Requests whose context carries a trace id (see [WithTraceID]) get
// an X-Trace-ID header.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New()

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if len(opts.Headers) > 0 {
		client.SetHeaders(opts.Headers)
	}

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if traceID, ok := GetTraceIDFromContext(r.Context()); ok {
			r.SetHeader(traceIDHeader, traceID)
		}
		return nil
	})

	return &HTTPClient{Client: client}
}
