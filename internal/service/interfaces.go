// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the DigitalHub server: token
// issuance, principal resolution, the role gate and the account flows built
// on top of them.
package service

import (
	"context"

	"github.com/MKhiriev/bvc-digitalhub/models"
)

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	// IssueToken signs a token for principalID. role is written into the
	// token only when role embedding is switched on.
	IssueToken(ctx context.Context, principalID string, role models.Role) (models.Token, error)

	// ParseToken verifies signature, algorithm and expiry. Every failure is
	// reported as [ErrInvalidToken].
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PrincipalResolver maps a bearer token to the principal it was issued for.
type PrincipalResolver interface {
	// Resolve returns the principal for tokenString or one of
	// [ErrInvalidToken], [ErrPrincipalNotFound], [ErrStoreUnavailable].
	Resolve(ctx context.Context, tokenString string) (models.Principal, error)
}

// AuthService implements the login and signup flows of all three roles.
type AuthService interface {
	LoginStudent(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	LoginStaff(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	LoginAdmin(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// SendSignupOTP mails a fresh verification code to an e-mail address
	// that is not yet registered.
	SendSignupOTP(ctx context.Context, email string) error
	// VerifySignupOTP checks the code and marks the address verified.
	VerifySignupOTP(ctx context.Context, email, code string) error
	// Signup creates a student for a verified address and logs them in.
	Signup(ctx context.Context, req models.SignupRequest) (models.LoginResponse, error)
}

// StudentService manages student accounts.
type StudentService interface {
	GetStudent(ctx context.Context, id string) (models.Student, error)
	ListStudents(ctx context.Context) ([]models.Student, error)
	// UpdateStudent applies an admin edit, including an optional password reset.
	UpdateStudent(ctx context.Context, id string, req models.StudentProfileRequest) (models.Student, error)
	// UpdateOwnProfile applies a student's own onboarding or profile edit.
	// E-mail and password are not editable this way.
	UpdateOwnProfile(ctx context.Context, id string, req models.StudentProfileRequest) (models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
}

// StaffService manages staff accounts.
type StaffService interface {
	// CreateStaff creates a staff account and queues an e-mail with the
	// initial credentials.
	CreateStaff(ctx context.Context, req models.CreateStaffRequest) (models.Staff, error)
	GetStaff(ctx context.Context, id string) (models.Staff, error)
	ListStaff(ctx context.Context, order models.StaffOrder) ([]models.Staff, error)
	// UpdateStaff applies an admin edit, including an optional password reset.
	UpdateStaff(ctx context.Context, id string, req models.StaffProfileRequest) (models.Staff, error)
	// UpdateOwnProfile applies a staff member's own edit. Empty values are
	// ignored and e-mail and password are not editable this way.
	UpdateOwnProfile(ctx context.Context, id string, req models.StaffProfileRequest) (models.Staff, error)
	DeleteStaff(ctx context.Context, id string) error
}

// EventService manages portal events. Creating or changing an event
// announces it by e-mail to every student and staff member.
type EventService interface {
	CreateEvent(ctx context.Context, req models.EventRequest) (models.Event, error)
	GetEvent(ctx context.Context, id string) (models.Event, error)
	ListEvents(ctx context.Context, order models.EventOrder) ([]models.Event, error)
	UpdateEvent(ctx context.Context, id string, req models.EventUpdateRequest) (models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

// JobService manages job openings and applications. Creating or changing a
// job announces it like an event.
type JobService interface {
	CreateJob(ctx context.Context, req models.JobRequest) (models.Job, error)
	GetJob(ctx context.Context, id string) (models.Job, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	UpdateJob(ctx context.Context, id string, req models.JobUpdateRequest) (models.Job, error)
	DeleteJob(ctx context.Context, id string) error
	// Apply queues a confirmation e-mail to the applicant of job id.
	Apply(ctx context.Context, id string, req models.JobApplicationRequest) error
}

// InfoService serves the public portal statistics.
type InfoService interface {
	Stats(ctx context.Context) (models.Stats, error)
}

// AdminService provisions admin accounts.
type AdminService interface {
	// EnsureSeedAdmin creates the configured admin or resets its password
	// when it differs. Empty credentials are a no-op.
	EnsureSeedAdmin(ctx context.Context, email, password string) error
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
