// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/bvc-digitalhub/internal/crypto"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/store"
	"github.com/MKhiriev/bvc-digitalhub/internal/workers"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

type staffService struct {
	staff  store.StaffRepository
	hasher crypto.PasswordHasher
	mail   workers.MailQueue
	ids    idGenerator

	logger *logger.Logger
}

// NewStaffService constructs a [StaffService].
func NewStaffService(staff store.StaffRepository, hasher crypto.PasswordHasher, mail workers.MailQueue, logger *logger.Logger) StaffService {
	return &staffService{
		staff:  staff,
		hasher: hasher,
		mail:   mail,
		ids:    newIDGenerator(),
		logger: logger,
	}
}

// CreateStaff implements [StaffService]. A failure to queue the credentials
// e-mail is logged and does not undo the account.
func (s *staffService) CreateStaff(ctx context.Context, req models.CreateStaffRequest) (models.Staff, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || name == "" || req.Password == "" {
		return models.Staff{}, ErrInvalidDataProvided
	}

	hash, err := hashPassword(s.hasher, req.Password)
	if err != nil {
		return models.Staff{}, err
	}

	staff, err := s.staff.CreateStaff(ctx, models.Staff{
		ID:            s.ids.Generate(),
		Name:          name,
		Email:         email,
		PasswordHash:  hash,
		Position:      req.Position,
		Department:    req.Department,
		Qualification: req.Qualification,
		Experience:    req.Experience,
		Bio:           req.Bio,
		Subjects:      models.StringList(req.Subjects),
		Photo:         req.Photo,
	})
	if err != nil {
		log.Err(err).Str("func", "*staffService.CreateStaff").Msg("error creating staff")
		return models.Staff{}, mapStoreError(err)
	}

	message, err := staffCredentialsEmail(staff, req.Password)
	if err == nil {
		err = s.mail.Enqueue(ctx, message)
	}
	if err != nil {
		log.Err(err).Str("func", "*staffService.CreateStaff").Str("principal_id", staff.ID).
			Msg("staff created but credentials e-mail was not queued")
	}

	log.Info().Str("func", "*staffService.CreateStaff").Str("principal_id", staff.ID).Msg("staff created")
	return staff, nil
}

func (s *staffService) GetStaff(ctx context.Context, id string) (models.Staff, error) {
	staff, err := s.staff.FindStaffByID(ctx, id)
	if err != nil {
		return models.Staff{}, mapStoreError(err)
	}
	return staff, nil
}

func (s *staffService) ListStaff(ctx context.Context, order models.StaffOrder) ([]models.Staff, error) {
	members, err := s.staff.ListStaff(ctx, order)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return members, nil
}

func (s *staffService) UpdateStaff(ctx context.Context, id string, req models.StaffProfileRequest) (models.Staff, error) {
	update := staffUpdateFromRequest(req)

	if req.Password != nil {
		hash, err := hashPassword(s.hasher, *req.Password)
		if err != nil {
			return models.Staff{}, err
		}
		update.PasswordHash = &hash
	}

	return s.update(ctx, id, update)
}

func (s *staffService) UpdateOwnProfile(ctx context.Context, id string, req models.StaffProfileRequest) (models.Staff, error) {
	update := staffUpdateFromRequest(req)
	update.Email = nil

	update.Name = nonEmpty(update.Name)
	update.Position = nonEmpty(update.Position)
	update.Department = nonEmpty(update.Department)
	update.Qualification = nonEmpty(update.Qualification)
	update.Experience = nonEmpty(update.Experience)
	update.Bio = nonEmpty(update.Bio)
	update.Photo = nonEmpty(update.Photo)
	if update.Subjects != nil && len(*update.Subjects) == 0 {
		update.Subjects = nil
	}

	return s.update(ctx, id, update)
}

func (s *staffService) update(ctx context.Context, id string, update models.StaffUpdate) (models.Staff, error) {
	log := logger.FromContext(ctx)

	staff, err := s.staff.UpdateStaff(ctx, id, update)
	if err != nil {
		log.Err(err).Str("func", "*staffService.update").Str("principal_id", id).Msg("error updating staff")
		return models.Staff{}, mapStoreError(err)
	}

	log.Info().Str("func", "*staffService.update").Str("principal_id", id).Msg("staff updated")
	return staff, nil
}

func (s *staffService) DeleteStaff(ctx context.Context, id string) error {
	if err := s.staff.DeleteStaff(ctx, id); err != nil {
		return mapStoreError(err)
	}

	logger.FromContext(ctx).Info().Str("func", "*staffService.DeleteStaff").Str("principal_id", id).Msg("staff deleted")
	return nil
}

func staffUpdateFromRequest(req models.StaffProfileRequest) models.StaffUpdate {
	return models.StaffUpdate{
		Name:          req.Name,
		Email:         req.Email,
		Position:      req.Position,
		Department:    req.Department,
		Qualification: req.Qualification,
		Experience:    req.Experience,
		Bio:           req.Bio,
		Subjects:      toStringList(req.Subjects),
		Photo:         req.Photo,
	}
}
