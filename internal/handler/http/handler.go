// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/bvc-digitalhub/internal/config"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/service"
	"github.com/MKhiriev/bvc-digitalhub/internal/utils"
	"github.com/MKhiriev/bvc-digitalhub/internal/validators"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	cfg       config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validator,
		cfg:       cfg,
		logger:    logger,
	}
}

// decode reads the JSON body into dst and validates it. Any failure is
// reported as invalid data.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := utils.DecodeJSON(w, r, dst); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return h.validator.Validate(r.Context(), dst)
}

// principal returns the principal attached by the authentication middleware.
func principal(r *http.Request) (models.Principal, error) {
	p, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok || p.IsZero() {
		return models.Principal{}, errNoPrincipal
	}
	return p, nil
}
