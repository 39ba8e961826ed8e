// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/utils"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

// staffRepository is the PostgreSQL-backed implementation of
// [StaffRepository] over the "staff" table.
type staffRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewStaffRepository constructs a [StaffRepository] backed by db.
func NewStaffRepository(db *DB, logger *logger.Logger) StaffRepository {
	logger.Debug().Msg("creating staff repository")
	return &staffRepository{
		db:     db,
		logger: logger,
	}
}

func (r *staffRepository) CreateStaff(ctx context.Context, staff models.Staff) (models.Staff, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createStaff,
		staff.ID, staff.Name, normalizeEmail(staff.Email), staff.PasswordHash, staff.Position,
		staff.Department, staff.Qualification, staff.Experience, staff.Bio, staff.Subjects, staff.Photo,
	)

	created, err := scanStaff(row)
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*staffRepository.CreateStaff").Msg("error creating staff")
		return models.Staff{}, err
	}

	return created, nil
}

func (r *staffRepository) FindStaffByID(ctx context.Context, id string) (models.Staff, error) {
	if !utils.IsValidID(id) {
		return models.Staff{}, ErrNotFound
	}

	return r.findOne(ctx, "*staffRepository.FindStaffByID", findStaffByID, id)
}

func (r *staffRepository) FindStaffByEmail(ctx context.Context, email string) (models.Staff, error) {
	return r.findOne(ctx, "*staffRepository.FindStaffByEmail", findStaffByEmail, normalizeEmail(email))
}

func (r *staffRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.Staff, error) {
	log := logger.FromContext(ctx)

	staff, err := scanStaff(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		err = r.db.mapError(err)
		if errors.Is(err, ErrNotFound) {
			log.Debug().Str("func", funcName).Msg("staff not found")
		} else {
			log.Err(err).Str("func", funcName).Msg("error looking up staff")
		}
		return models.Staff{}, err
	}

	return staff, nil
}

// ListStaff returns all staff members in the requested order.
func (r *staffRepository) ListStaff(ctx context.Context, order models.StaffOrder) ([]models.Staff, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListStaffQuery(order)
	if err != nil {
		log.Err(err).Str("func", "*staffRepository.ListStaff").Msg("error building list query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*staffRepository.ListStaff").Msg("error listing staff")
		return nil, err
	}
	defer rows.Close()

	members := make([]models.Staff, 0)
	for rows.Next() {
		member, err := scanStaff(rows)
		if err != nil {
			log.Err(err).Str("func", "*staffRepository.ListStaff").Msg("error scanning staff row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*staffRepository.ListStaff").Msg("error iterating staff rows")
		return nil, err
	}

	return members, nil
}

func (r *staffRepository) UpdateStaff(ctx context.Context, id string, update models.StaffUpdate) (models.Staff, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return models.Staff{}, ErrNotFound
	}

	query, args, err := buildStaffUpdateQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*staffRepository.UpdateStaff").Msg("error building update query")
		return models.Staff{}, err
	}

	updated, err := scanStaff(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*staffRepository.UpdateStaff").Str("staff_id", id).Msg("error updating staff")
		return models.Staff{}, err
	}

	return updated, nil
}

func (r *staffRepository) DeleteStaff(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return ErrNotFound
	}

	result, err := r.db.ExecContext(ctx, deleteStaff, id)
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*staffRepository.DeleteStaff").Str("staff_id", id).Msg("error deleting staff")
		return err
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *staffRepository) CountStaff(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countStaff).Scan(&count); err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*staffRepository.CountStaff").Msg("error counting staff")
		return 0, err
	}

	return count, nil
}

func scanStaff(row rowScanner) (models.Staff, error) {
	var s models.Staff
	err := row.Scan(
		&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.Position, &s.Department,
		&s.Qualification, &s.Experience, &s.Bio, &s.Subjects, &s.Photo, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}
