// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_ObserveStorage(t *testing.T) {
	c := NewCollector("notes")

	c.ObserveStorage("scan", "memory", time.Now(), nil)
	c.ObserveStorage("scan", "memory", time.Now(), errors.New("boom"))
	c.ObserveStorage("put", "memory", time.Now(), nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.StorageOperations.WithLabelValues("scan", "memory", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.StorageOperations.WithLabelValues("scan", "memory", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.StorageOperations.WithLabelValues("put", "memory", "ok")))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector("notes")
	c.NotesCreated.WithLabelValues("happy").Inc()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `notes_notes_created_total{sentiment="happy"} 1`))
}

func TestNewCollector_IndependentRegistries(t *testing.T) {
	a := NewCollector("notes")
	b := NewCollector("notes")

	a.NotesCreated.WithLabelValues("sad").Inc()

	assert.Equal(t, 0.0, testutil.ToFloat64(b.NotesCreated.WithLabelValues("sad")))
}
