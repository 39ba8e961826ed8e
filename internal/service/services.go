// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/bvc-digitalhub/internal/config"
	"github.com/MKhiriev/bvc-digitalhub/internal/crypto"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/store"
	"github.com/MKhiriev/bvc-digitalhub/internal/workers"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

type Services struct {
	TokenService      TokenService
	PrincipalResolver PrincipalResolver
	AuthService       AuthService
	StudentService    StudentService
	StaffService      StaffService
	EventService      EventService
	JobService        JobService
	InfoService       InfoService
	AdminService      AdminService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, mail workers.MailQueue, buildInfo models.AppBuildInfo,
	cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher := crypto.NewBcryptHasher(cfg.App.BcryptCost)
	tokens := NewTokenService(cfg.App, logger)

	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		TokenService: tokens,
		PrincipalResolver: NewPrincipalResolver(tokens, storages.StudentRepository, storages.StaffRepository,
			storages.AdminRepository, logger),
		AuthService: NewAuthService(AuthDeps{
			Tokens:   tokens,
			Students: storages.StudentRepository,
			Staff:    storages.StaffRepository,
			Admins:   storages.AdminRepository,
			OTP:      storages.OTPStore,
			Hasher:   hasher,
			Codes:    crypto.NewOTPGenerator(),
			Mail:     mail,
		}, cfg.App.OTPDuration, logger),
		StudentService: NewStudentService(storages.StudentRepository, hasher, logger),
		StaffService:   NewStaffService(storages.StaffRepository, hasher, mail, logger),
		EventService:   NewEventService(storages.EventRepository, storages.RecipientRepository, mail, logger),
		JobService:     NewJobService(storages.JobRepository, storages.RecipientRepository, mail, logger),
		InfoService:    NewInfoService(storages.StudentRepository, storages.StaffRepository, logger),
		AdminService:   NewAdminService(storages.AdminRepository, hasher, logger),
		AppInfoService: appInfo,
	}, nil
}
