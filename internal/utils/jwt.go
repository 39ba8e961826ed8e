// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/bvc-digitalhub/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidJWTParams is returned by GenerateJWTToken for an empty
	// principal id, non-positive duration or empty key.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")
	// ErrEmptyPrincipalID is returned when a verified token carries no "id".
	ErrEmptyPrincipalID = errors.New("token has empty id claim")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for principalID.
//
// The token carries the following claims:
//   - id  : the principal identifier
//   - role: only when role is non-empty
//   - iat : now
//   - exp : now plus tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("e3b0...", "", 7*24*time.Hour, "secret", time.Now())
func GenerateJWTToken(principalID string, role models.Role, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if principalID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	expiresAt := now.Add(tokenDuration)
	claims := &models.TokenClaims{
		PrincipalID: principalID,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		PrincipalID:  principalID,
		Role:         role,
		ExpiresAt:    expiresAt,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - HS256 as the only accepted algorithm
//   - Signature verification using tokenSignKey
//   - Presence of the exp claim and expiry against now()
//   - Presence of a non-empty id claim
//
// A nil now uses time.Now.
func ValidateAndParseJWTToken(tokenString, tokenSignKey string, now func() time.Time) (models.Token, error) {
	if now == nil {
		now = time.Now
	}

	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.PrincipalID == "" {
		return models.Token{}, ErrEmptyPrincipalID
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		PrincipalID:  claims.PrincipalID,
		Role:         claims.Role,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
