// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the DigitalHub API.
package handler

import (
	"github.com/MKhiriev/bvc-digitalhub/internal/config"
	"github.com/MKhiriev/bvc-digitalhub/internal/handler/http"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/service"
	"github.com/MKhiriev/bvc-digitalhub/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, validators.NewRequestValidator(), cfg, logger),
	}, nil
}
