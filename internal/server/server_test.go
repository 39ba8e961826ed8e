// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/bvc-digitalhub/internal/config"
	"github.com/MKhiriev/bvc-digitalhub/internal/handler"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/service"
	"github.com/MKhiriev/bvc-digitalhub/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type workerFunc func(ctx context.Context)

func (f workerFunc) Run(ctx context.Context) { f(ctx) }

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer_Errors(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":0"}
	handlers := newTestHandlers(t, cfg)

	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{name: "nil handlers", cfg: cfg},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: cfg},
		{name: "no address", handlers: handlers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, nil, tt.cfg, logger.Nop())

			assert.ErrorIs(t, err, errNoServersAreCreated)
			assert.Nil(t, s)
		})
	}
}

func TestRun_StopsWorkersAfterShutdown(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}

	started := make(chan struct{})
	stopped := make(chan struct{})
	ws := workers.NewWorkers(workerFunc(func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		close(stopped)
	}))

	s, err := NewServer(newTestHandlers(t, cfg), ws, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("worker was not started")
	}

	// the worker keeps running while the server is up
	select {
	case <-stopped:
		t.Fatal("worker stopped before shutdown")
	default:
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	select {
	case <-stopped:
	default:
		t.Fatal("Run returned before the workers stopped")
	}
}

func TestRun_ListenFailure(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:-1"}

	s, err := NewServer(newTestHandlers(t, cfg), nil, cfg, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Run(t.Context()) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after listen failure")
	}
}
