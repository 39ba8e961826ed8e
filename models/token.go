// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set of a bearer token.
//
// The "id" claim carries the principal identifier. The "role" claim is only
// present on tokens issued with role embedding switched on; tokens without it
// are resolved by searching the principal stores in [LookupOrder].
type TokenClaims struct {
	// PrincipalID is the identifier of the principal the token was issued for.
	PrincipalID string `json:"id"`

	// Role is the principal kind. Empty on tokens issued without role embedding.
	Role Role `json:"role,omitempty"`

	// RegisteredClaims carries iat and exp.
	jwt.RegisteredClaims
}

// Token wraps a signed bearer token together with the values extracted from it.
type Token struct {
	// Token is the underlying JWT. Excluded from JSON serialization because
	// only the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// PrincipalID is a parsed copy of the "id" claim.
	PrincipalID string `json:"-"`

	// Role is a parsed copy of the "role" claim, empty when absent.
	Role Role `json:"-"`

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
