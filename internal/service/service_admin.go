// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/bvc-digitalhub/internal/crypto"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/store"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

type adminService struct {
	admins store.AdminRepository
	hasher crypto.PasswordHasher
	ids    idGenerator

	logger *logger.Logger
}

// NewAdminService constructs an [AdminService].
func NewAdminService(admins store.AdminRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AdminService {
	return &adminService{admins: admins, hasher: hasher, ids: newIDGenerator(), logger: logger}
}

// EnsureSeedAdmin implements [AdminService]. An existing admin keeps its id;
// its hash is only rewritten when password no longer matches.
func (s *adminService) EnsureSeedAdmin(ctx context.Context, email, password string) error {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		log.Info().Str("func", "*adminService.EnsureSeedAdmin").Msg("seed admin is not configured, skipping")
		return nil
	}

	existing, err := s.admins.FindAdminByEmail(ctx, email)
	switch {
	case err == nil:
		if s.hasher.Compare(password, existing.PasswordHash) {
			log.Debug().Str("func", "*adminService.EnsureSeedAdmin").Str("principal_id", existing.ID).Msg("seed admin is up to date")
			return nil
		}
	case errors.Is(err, store.ErrNotFound):
		existing = models.Admin{ID: s.ids.Generate(), Email: email}
	default:
		return mapStoreError(err)
	}

	hash, err := hashPassword(s.hasher, password)
	if err != nil {
		return err
	}
	existing.PasswordHash = hash

	admin, err := s.admins.UpsertAdmin(ctx, existing)
	if err != nil {
		log.Err(err).Str("func", "*adminService.EnsureSeedAdmin").Msg("error saving seed admin")
		return mapStoreError(err)
	}

	log.Info().Str("func", "*adminService.EnsureSeedAdmin").Str("principal_id", admin.ID).Msg("seed admin saved")
	return nil
}
