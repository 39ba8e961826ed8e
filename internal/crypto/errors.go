// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// ErrPasswordTooLong is returned by [PasswordHasher.Hash] for a password
// longer than [MaxPasswordBytes].
var ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
