// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/store"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

// principalResolver resolves tokens against the three principal stores.
// It keeps no cache: a deleted account is observed on the next request.
type principalResolver struct {
	tokens   TokenService
	students store.StudentRepository
	staff    store.StaffRepository
	admins   store.AdminRepository

	logger *logger.Logger
}

// NewPrincipalResolver constructs a [PrincipalResolver].
func NewPrincipalResolver(tokens TokenService, students store.StudentRepository, staff store.StaffRepository,
	admins store.AdminRepository, logger *logger.Logger) PrincipalResolver {
	return &principalResolver{
		tokens:   tokens,
		students: students,
		staff:    staff,
		admins:   admins,
		logger:   logger,
	}
}

// Resolve implements [PrincipalResolver].
//
// Stores are searched in [models.LookupOrder] and the first hit wins. A token
// carrying a role claim is looked up in that role's store only. Store
// failures other than "not found" abort resolution with
// [ErrStoreUnavailable] and are not retried.
func (r *principalResolver) Resolve(ctx context.Context, tokenString string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	token, err := r.tokens.ParseToken(ctx, tokenString)
	if err != nil {
		return models.Principal{}, err
	}

	roles := models.LookupOrder
	if token.Role != "" {
		if !token.Role.Valid() {
			log.Warn().Str("func", "*principalResolver.Resolve").
				Str("principal_id", token.PrincipalID).
				Str("role", token.Role.String()).
				Msg("token carries unknown role")
			return models.Principal{}, ErrInvalidToken
		}
		roles = []models.Role{token.Role}
	}

	for _, role := range roles {
		record, err := r.lookup(ctx, role, token.PrincipalID)
		if err == nil {
			return models.NewPrincipal(record), nil
		}
		if errors.Is(err, store.ErrNotFound) {
			continue
		}

		log.Err(err).Str("func", "*principalResolver.Resolve").
			Str("principal_id", token.PrincipalID).
			Str("store", role.String()).
			Msg("principal lookup failed")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	log.Warn().Str("func", "*principalResolver.Resolve").
		Str("principal_id", token.PrincipalID).
		Msg("no principal for token, possibly stale after account deletion")
	return models.Principal{}, ErrPrincipalNotFound
}

func (r *principalResolver) lookup(ctx context.Context, role models.Role, id string) (models.PrincipalRecord, error) {
	switch role {
	case models.RoleStudent:
		return found(r.students.FindStudentByID(ctx, id))
	case models.RoleStaff:
		return found(r.staff.FindStaffByID(ctx, id))
	case models.RoleAdmin:
		return found(r.admins.FindAdminByID(ctx, id))
	default:
		return nil, store.ErrNotFound
	}
}

// found converts a typed repository result into a [models.PrincipalRecord],
// keeping a nil record on error.
func found[T models.PrincipalRecord](record T, err error) (models.PrincipalRecord, error) {
	if err != nil {
		return nil, err
	}
	return record, nil
}
