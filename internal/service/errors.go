// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Authentication and authorization failures. The HTTP layer maps
// ErrInvalidToken and ErrPrincipalNotFound to 401, ErrForbidden to 403 and
// ErrStoreUnavailable to 503.
var (
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrPrincipalNotFound = errors.New("principal not found")
	ErrForbidden         = errors.New("role not permitted")
	ErrStoreUnavailable  = errors.New("principal store unavailable")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

var (
	ErrInvalidDataProvided    = errors.New("invalid data provided")
	ErrInvalidCredentials     = errors.New("invalid e-mail or password")
	ErrEmailAlreadyRegistered = errors.New("e-mail is already registered")
	ErrEmailNotVerified       = errors.New("e-mail is not verified")
	ErrInvalidOTP             = errors.New("invalid or expired verification code")
	ErrNotFound               = errors.New("not found")
	ErrNothingToUpdate        = errors.New("nothing to update")
	ErrMailUnavailable        = errors.New("mail delivery unavailable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
