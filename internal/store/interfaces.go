// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/bvc-digitalhub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StudentRepository is the persistence contract for student accounts.
//
// Lookups that match nothing return [ErrNotFound]. Any failure to reach the
// database is reported as [ErrDatabaseUnavailable].
type StudentRepository interface {
	CreateStudent(ctx context.Context, student models.Student) (models.Student, error)
	FindStudentByID(ctx context.Context, id string) (models.Student, error)
	FindStudentByEmail(ctx context.Context, email string) (models.Student, error)
	ListStudents(ctx context.Context) ([]models.Student, error)
	UpdateStudent(ctx context.Context, id string, update models.StudentUpdate) (models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
	CountStudents(ctx context.Context) (int64, error)
}

// StaffRepository is the persistence contract for staff accounts.
type StaffRepository interface {
	CreateStaff(ctx context.Context, staff models.Staff) (models.Staff, error)
	FindStaffByID(ctx context.Context, id string) (models.Staff, error)
	FindStaffByEmail(ctx context.Context, email string) (models.Staff, error)
	ListStaff(ctx context.Context, order models.StaffOrder) ([]models.Staff, error)
	UpdateStaff(ctx context.Context, id string, update models.StaffUpdate) (models.Staff, error)
	DeleteStaff(ctx context.Context, id string) error
	CountStaff(ctx context.Context) (int64, error)
}

// AdminRepository is the persistence contract for admin accounts.
type AdminRepository interface {
	FindAdminByID(ctx context.Context, id string) (models.Admin, error)
	FindAdminByEmail(ctx context.Context, email string) (models.Admin, error)
	// UpsertAdmin creates the admin or replaces the password hash of the
	// one with the same e-mail.
	UpsertAdmin(ctx context.Context, admin models.Admin) (models.Admin, error)
}

// EventRepository is the persistence contract for portal events.
type EventRepository interface {
	CreateEvent(ctx context.Context, event models.Event) (models.Event, error)
	FindEventByID(ctx context.Context, id string) (models.Event, error)
	ListEvents(ctx context.Context, order models.EventOrder) ([]models.Event, error)
	UpdateEvent(ctx context.Context, id string, update models.EventUpdate) (models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

// JobRepository is the persistence contract for job openings. Listings are
// newest first.
type JobRepository interface {
	CreateJob(ctx context.Context, job models.Job) (models.Job, error)
	FindJobByID(ctx context.Context, id string) (models.Job, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	UpdateJob(ctx context.Context, id string, update models.JobUpdate) (models.Job, error)
	DeleteJob(ctx context.Context, id string) error
}

// RecipientRepository lists the addresses portal announcements go to.
type RecipientRepository interface {
	// ListRecipients returns every student and staff e-mail exactly once.
	ListRecipients(ctx context.Context) ([]string, error)
}

// OTPStore keeps short-lived signup verification codes.
type OTPStore interface {
	// SaveOTP stores code for email, replacing any previous one and
	// resetting its failed attempts.
	SaveOTP(ctx context.Context, email, code string, ttl time.Duration) error
	// VerifyOTP checks code against the stored one. On match the code is
	// removed and email is marked verified for ttl in one step. A missing,
	// expired or different code yields [ErrOTPInvalid]; after
	// [MaxOTPAttempts] misses the code is discarded.
	VerifyOTP(ctx context.Context, email, code string, ttl time.Duration) error
	// IsVerified reports whether email holds a verified mark.
	IsVerified(ctx context.Context, email string) (bool, error)
	// ConsumeVerified removes the verified mark of email.
	ConsumeVerified(ctx context.Context, email string) error
}

// ErrorClassificator decides how a driver error should be surfaced.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
