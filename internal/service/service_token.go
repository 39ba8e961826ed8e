// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/bvc-digitalhub/internal/config"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/utils"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

// tokenService is the HS256 implementation of [TokenService]. Issuance is a
// pure function of the principal id, the signing key and the clock.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenDuration is the server-wide lifetime of an issued token.
	tokenDuration time.Duration

	// embedRole switches on the "role" claim.
	embedRole bool

	// now is the clock used for iat, exp and expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] from the app configuration.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return newTokenService(cfg, time.Now, logger)
}

func newTokenService(cfg config.App, now func() time.Time, logger *logger.Logger) *tokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenDuration: cfg.TokenDuration,
		embedRole:     cfg.EmbedRoleInToken,
		now:           now,
		logger:        logger,
	}
}

// IssueToken implements [TokenService].
func (s *tokenService) IssueToken(ctx context.Context, principalID string, role models.Role) (models.Token, error) {
	if !s.embedRole {
		role = ""
	}

	token, err := utils.GenerateJWTToken(principalID, role, s.tokenDuration, s.tokenSignKey, s.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*tokenService.IssueToken").
			Str("principal_id", principalID).
			Msg("error issuing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken implements [TokenService]. The cause of a failure is logged at
// debug level and never returned, so callers cannot tell an expired token
// from a forged one.
func (s *tokenService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "*tokenService.ParseToken").
			Msg("token rejected")
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}
