// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/utils"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

// adminRepository is the PostgreSQL-backed implementation of
// [AdminRepository] over the "admins" table.
type adminRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAdminRepository constructs an [AdminRepository] backed by db.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

func (r *adminRepository) FindAdminByID(ctx context.Context, id string) (models.Admin, error) {
	if !utils.IsValidID(id) {
		return models.Admin{}, ErrNotFound
	}

	return r.findOne(ctx, "*adminRepository.FindAdminByID", findAdminByID, id)
}

func (r *adminRepository) FindAdminByEmail(ctx context.Context, email string) (models.Admin, error) {
	return r.findOne(ctx, "*adminRepository.FindAdminByEmail", findAdminByEmail, normalizeEmail(email))
}

func (r *adminRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.Admin, error) {
	log := logger.FromContext(ctx)

	admin, err := scanAdmin(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		err = r.db.mapError(err)
		if errors.Is(err, ErrNotFound) {
			log.Debug().Str("func", funcName).Msg("admin not found")
		} else {
			log.Err(err).Str("func", funcName).Msg("error looking up admin")
		}
		return models.Admin{}, err
	}

	return admin, nil
}

// UpsertAdmin inserts admin or, when the e-mail is already taken, replaces
// the stored password hash. The id of an existing row is kept.
func (r *adminRepository) UpsertAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertAdmin, admin.ID, normalizeEmail(admin.Email), admin.PasswordHash)

	saved, err := scanAdmin(row)
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*adminRepository.UpsertAdmin").Msg("error upserting admin")
		return models.Admin{}, err
	}

	return saved, nil
}

func scanAdmin(row rowScanner) (models.Admin, error) {
	var a models.Admin
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	return a, err
}
