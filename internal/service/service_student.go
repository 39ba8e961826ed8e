// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/bvc-digitalhub/internal/crypto"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/store"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

type studentService struct {
	students store.StudentRepository
	hasher   crypto.PasswordHasher

	logger *logger.Logger
}

// NewStudentService constructs a [StudentService].
func NewStudentService(students store.StudentRepository, hasher crypto.PasswordHasher, logger *logger.Logger) StudentService {
	return &studentService{students: students, hasher: hasher, logger: logger}
}

func (s *studentService) GetStudent(ctx context.Context, id string) (models.Student, error) {
	student, err := s.students.FindStudentByID(ctx, id)
	if err != nil {
		return models.Student{}, mapStoreError(err)
	}
	return student, nil
}

func (s *studentService) ListStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.students.ListStudents(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return students, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, id string, req models.StudentProfileRequest) (models.Student, error) {
	update := studentUpdateFromRequest(req)

	if req.Password != nil {
		hash, err := hashPassword(s.hasher, *req.Password)
		if err != nil {
			return models.Student{}, err
		}
		update.PasswordHash = &hash
	}

	return s.update(ctx, id, update)
}

func (s *studentService) UpdateOwnProfile(ctx context.Context, id string, req models.StudentProfileRequest) (models.Student, error) {
	update := studentUpdateFromRequest(req)
	update.Email = nil

	return s.update(ctx, id, update)
}

func (s *studentService) update(ctx context.Context, id string, update models.StudentUpdate) (models.Student, error) {
	log := logger.FromContext(ctx)

	student, err := s.students.UpdateStudent(ctx, id, update)
	if err != nil {
		log.Err(err).Str("func", "*studentService.update").Str("principal_id", id).Msg("error updating student")
		return models.Student{}, mapStoreError(err)
	}

	log.Info().Str("func", "*studentService.update").Str("principal_id", id).Msg("student updated")
	return student, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, id string) error {
	if err := s.students.DeleteStudent(ctx, id); err != nil {
		return mapStoreError(err)
	}

	logger.FromContext(ctx).Info().Str("func", "*studentService.DeleteStudent").Str("principal_id", id).Msg("student deleted")
	return nil
}

// studentUpdateFromRequest copies the profile fields of req. The password
// is left out because it needs hashing first.
func studentUpdateFromRequest(req models.StudentProfileRequest) models.StudentUpdate {
	return models.StudentUpdate{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Year:       req.Year,
		RollNumber: req.RollNumber,
		Bio:        req.Bio,
		Skills:     toStringList(req.Skills),
		ProfilePic: req.ProfilePic,
	}
}
