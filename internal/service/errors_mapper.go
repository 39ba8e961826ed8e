// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/bvc-digitalhub/internal/store"
)

// mapStoreError translates a repository error into a service error. The
// original error stays in the chain for logging.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrEmailAlreadyRegistered
	case errors.Is(err, store.ErrNothingToUpdate):
		return ErrNothingToUpdate
	case errors.Is(err, store.ErrOTPInvalid):
		return ErrInvalidOTP
	case errors.Is(err, store.ErrDatabaseUnavailable):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("unexpected store error: %w", err)
	}
}
