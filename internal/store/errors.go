// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a lookup by id or e-mail matches no row.
	// A malformed id is reported the same way.
	ErrNotFound = errors.New("record not found")

	// ErrEmailAlreadyExists is returned when an insert or update violates the
	// unique e-mail constraint of a table.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNothingToUpdate is returned when an update carries no fields.
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrDatabaseUnavailable is returned when the backing store cannot be
	// reached or does not answer in time.
	ErrDatabaseUnavailable = errors.New("database unavailable")

	// ErrOTPInvalid is returned when a verification code is missing, expired
	// or does not match.
	ErrOTPInvalid = errors.New("otp is invalid or expired")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails for a reason that
	// is neither a constraint violation nor a connectivity problem.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
