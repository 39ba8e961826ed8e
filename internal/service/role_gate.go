// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/bvc-digitalhub/models"

// RequireRole returns [ErrForbidden] unless p has one of the allowed roles.
// It runs after resolution and never touches storage.
func RequireRole(p models.Principal, allowed ...models.Role) error {
	if p.HasRole(allowed...) {
		return nil
	}
	return ErrForbidden
}
