// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/store"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

type infoService struct {
	students store.StudentRepository
	staff    store.StaffRepository

	logger *logger.Logger
}

// NewInfoService constructs an [InfoService].
func NewInfoService(students store.StudentRepository, staff store.StaffRepository, logger *logger.Logger) InfoService {
	return &infoService{students: students, staff: staff, logger: logger}
}

func (s *infoService) Stats(ctx context.Context) (models.Stats, error) {
	students, err := s.students.CountStudents(ctx)
	if err != nil {
		return models.Stats{}, mapStoreError(err)
	}

	staff, err := s.staff.CountStaff(ctx)
	if err != nil {
		return models.Stats{}, mapStoreError(err)
	}

	return models.Stats{Students: students, Staff: staff}, nil
}
