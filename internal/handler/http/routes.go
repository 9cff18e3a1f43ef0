// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// routes without api key
	router.Get("/healthz", h.healthz)
	router.Get("/api/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Group(func(r chi.Router) {
		r.Use(h.withAPIKey)
		r.Get("/api/notes", h.getNotes)
		r.Post("/api/notes", h.createNote)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
