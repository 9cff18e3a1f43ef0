// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type stubHealthService struct {
	err error
}

func (s *stubHealthService) Check(context.Context) error {
	return s.err
}

func statusOf(t *testing.T, h *Handler, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_StartsNotServing(t *testing.T) {
	h := NewHandler(&service.Services{HealthService: &stubHealthService{}}, logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, statusOf(t, h, ""))
}

func TestHandler_ProbeFollowsStorage(t *testing.T) {
	probe := &stubHealthService{}
	h := NewHandler(&service.Services{HealthService: probe}, logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, h.Probe(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, statusOf(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, statusOf(t, h, NotesServiceName))

	probe.err = errors.New("down")
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, h.Probe(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, statusOf(t, h, NotesServiceName))
}

func TestHandler_WatchStopsWithContext(t *testing.T) {
	h := NewHandler(&service.Services{HealthService: &stubHealthService{}}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		h.Watch(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return statusOf(t, h, "") == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestHandler_Shutdown(t *testing.T) {
	h := NewHandler(&service.Services{HealthService: &stubHealthService{}}, logger.Nop())
	h.Probe(context.Background())

	h.Shutdown()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, statusOf(t, h, ""))
}
