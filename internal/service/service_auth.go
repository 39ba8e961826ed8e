// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/bvc-digitalhub/internal/crypto"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/store"
	"github.com/MKhiriev/bvc-digitalhub/internal/workers"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against the store of the requested role, runs the
// e-mail OTP signup flow for students and issues tokens through a
// TokenService.
type authService struct {
	tokens TokenService

	students store.StudentRepository
	staff    store.StaffRepository
	admins   store.AdminRepository
	otp      store.OTPStore

	hasher crypto.PasswordHasher
	codes  crypto.CodeGenerator
	mail   workers.MailQueue
	ids    idGenerator

	// otpDuration is how long a mailed code and the resulting verified mark
	// stay valid.
	otpDuration time.Duration

	logger *logger.Logger
}

// AuthDeps groups the collaborators of [NewAuthService].
type AuthDeps struct {
	Tokens   TokenService
	Students store.StudentRepository
	Staff    store.StaffRepository
	Admins   store.AdminRepository
	OTP      store.OTPStore
	Hasher   crypto.PasswordHasher
	Codes    crypto.CodeGenerator
	Mail     workers.MailQueue
}

// NewAuthService constructs an [AuthService].
func NewAuthService(deps AuthDeps, otpDuration time.Duration, logger *logger.Logger) AuthService {
	return &authService{
		tokens:      deps.Tokens,
		students:    deps.Students,
		staff:       deps.Staff,
		admins:      deps.Admins,
		otp:         deps.OTP,
		hasher:      deps.Hasher,
		codes:       deps.Codes,
		mail:        deps.Mail,
		ids:         newIDGenerator(),
		otpDuration: otpDuration,
		logger:      logger,
	}
}

// credentialFinder looks up an account by e-mail and returns it together
// with its password hash.
type credentialFinder func(ctx context.Context, email string) (models.PrincipalRecord, string, error)

func (a *authService) LoginStudent(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	return a.login(ctx, models.RoleStudent, req, func(ctx context.Context, email string) (models.PrincipalRecord, string, error) {
		student, err := a.students.FindStudentByEmail(ctx, email)
		return student, student.PasswordHash, err
	})
}

func (a *authService) LoginStaff(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	return a.login(ctx, models.RoleStaff, req, func(ctx context.Context, email string) (models.PrincipalRecord, string, error) {
		staff, err := a.staff.FindStaffByEmail(ctx, email)
		return staff, staff.PasswordHash, err
	})
}

func (a *authService) LoginAdmin(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	return a.login(ctx, models.RoleAdmin, req, func(ctx context.Context, email string) (models.PrincipalRecord, string, error) {
		admin, err := a.admins.FindAdminByEmail(ctx, email)
		return admin, admin.PasswordHash, err
	})
}

// login checks the credentials in the store of role. An unknown e-mail and
// a wrong password both yield [ErrInvalidCredentials].
func (a *authService) login(ctx context.Context, role models.Role, req models.LoginRequest, find credentialFinder) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return models.LoginResponse{}, ErrInvalidDataProvided
	}

	record, hash, err := find(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		log.Info().Str("func", "*authService.login").Str("role", role.String()).
			Str("reason", "unknown e-mail").Msg("login failed")
		return models.LoginResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.login").Str("role", role.String()).Msg("error looking up account")
		return models.LoginResponse{}, mapStoreError(err)
	}

	if !a.hasher.Compare(req.Password, hash) {
		log.Info().Str("func", "*authService.login").Str("role", role.String()).
			Str("principal_id", record.PrincipalID()).
			Str("reason", "wrong password").Msg("login failed")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	return a.issue(ctx, record)
}

// issue creates the login response for record.
func (a *authService) issue(ctx context.Context, record models.PrincipalRecord) (models.LoginResponse, error) {
	principal := models.NewPrincipal(record)

	token, err := a.tokens.IssueToken(ctx, principal.ID, principal.Role)
	if err != nil {
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{
		Token: token.SignedString,
		Role:  principal.Role,
		User:  principal.Record,
	}, nil
}

func (a *authService) SendSignupOTP(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" {
		return ErrInvalidDataProvided
	}

	_, err := a.students.FindStudentByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrEmailAlreadyRegistered
	case !errors.Is(err, store.ErrNotFound):
		log.Err(err).Str("func", "*authService.SendSignupOTP").Msg("error checking e-mail")
		return mapStoreError(err)
	}

	code, err := a.codes.Generate()
	if err != nil {
		return fmt.Errorf("error generating otp: %w", err)
	}

	if err = a.otp.SaveOTP(ctx, email, code, a.otpDuration); err != nil {
		return mapStoreError(err)
	}

	message, err := otpEmail(email, code, a.otpDuration)
	if err != nil {
		return err
	}
	if err = a.mail.Enqueue(ctx, message); err != nil {
		return fmt.Errorf("%w: %w", ErrMailUnavailable, err)
	}

	log.Info().Str("func", "*authService.SendSignupOTP").Str("email", email).Msg("signup otp queued")
	return nil
}

func (a *authService) VerifySignupOTP(ctx context.Context, email, code string) error {
	email = normalizeEmail(email)
	if email == "" || code == "" {
		return ErrInvalidDataProvided
	}

	if err := a.otp.VerifyOTP(ctx, email, code, a.otpDuration); err != nil {
		return mapStoreError(err)
	}

	return nil
}

func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || name == "" || req.Password == "" {
		return models.LoginResponse{}, ErrInvalidDataProvided
	}

	verified, err := a.otp.IsVerified(ctx, email)
	if err != nil {
		return models.LoginResponse{}, mapStoreError(err)
	}
	if !verified {
		return models.LoginResponse{}, ErrEmailNotVerified
	}

	hash, err := hashPassword(a.hasher, req.Password)
	if err != nil {
		return models.LoginResponse{}, err
	}

	student, err := a.students.CreateStudent(ctx, models.Student{
		ID:           a.ids.Generate(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("error creating student")
		return models.LoginResponse{}, mapStoreError(err)
	}

	if err = a.otp.ConsumeVerified(ctx, email); err != nil {
		log.Warn().Err(err).Str("func", "*authService.Signup").Msg("error clearing verified mark")
	}

	log.Info().Str("func", "*authService.Signup").Str("principal_id", student.ID).Msg("student signed up")
	return a.issue(ctx, student)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
