// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/bvc-digitalhub/internal/crypto"
	"github.com/MKhiriev/bvc-digitalhub/internal/utils"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

// idGenerator yields identifiers for new accounts.
type idGenerator interface {
	Generate() string
}

func newIDGenerator() idGenerator {
	return utils.NewUUIDGenerator()
}

// hashPassword rejects passwords bcrypt cannot hash as invalid client data.
func hashPassword(hasher crypto.PasswordHasher, plain string) (string, error) {
	if plain == "" || len(plain) > crypto.MaxPasswordBytes {
		return "", ErrInvalidDataProvided
	}
	hash, err := hasher.Hash(plain)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return hash, nil
}

func toStringList(values *[]string) *models.StringList {
	if values == nil {
		return nil
	}
	list := models.StringList(*values)
	return &list
}

// nonEmpty drops a value that is blank after trimming.
func nonEmpty(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	return value
}
