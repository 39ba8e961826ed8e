// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/bvc-digitalhub/models"
	"github.com/golang-jwt/jwt/v5"
)

const testKey = "secret-key"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateJWTToken_Success(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	token, err := GenerateJWTToken("p-1", "", time.Hour, testKey, now)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.PrincipalID != "p-1" {
		t.Errorf("expected principal 'p-1', got %s", token.PrincipalID)
	}
	if !token.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Errorf("expected expiry %v, got %v", now.Add(time.Hour), token.ExpiresAt)
	}
}

// TestGenerateJWTToken_PayloadShape checks the wire claims: id, iat and exp
// only, with no role unless asked for.
func TestGenerateJWTToken_PayloadShape(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name     string
		role     models.Role
		wantKeys []string
	}{
		{name: "without role", role: "", wantKeys: []string{"exp", "iat", "id"}},
		{name: "with role", role: models.RoleStaff, wantKeys: []string{"exp", "iat", "id", "role"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateJWTToken("p-1", tt.role, time.Hour, testKey, now)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}

			payload := decodePayload(t, token.SignedString)
			if len(payload) != len(tt.wantKeys) {
				t.Fatalf("expected keys %v, got %v", tt.wantKeys, payload)
			}
			for _, k := range tt.wantKeys {
				if _, ok := payload[k]; !ok {
					t.Errorf("expected claim %q in %v", k, payload)
				}
			}
			if payload["id"] != "p-1" {
				t.Errorf("expected id 'p-1', got %v", payload["id"])
			}
		})
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		duration time.Duration
		key      string
	}{
		{"empty id", "", time.Hour, "key"},
		{"zero duration", "p-1", 0, "key"},
		{"negative duration", "p-1", -time.Hour, "key"},
		{"empty key", "p-1", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.id, "", tt.duration, tt.key, time.Now())
			if !errors.Is(err, ErrInvalidJWTParams) {
				t.Errorf("expected ErrInvalidJWTParams, got: %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	generated, _ := GenerateJWTToken("p-42", models.RoleAdmin, time.Hour, testKey, now)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testKey, fixedClock(now.Add(time.Minute)))

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.PrincipalID != "p-42" {
		t.Errorf("expected principal 'p-42', got %s", parsed.PrincipalID)
	}
	if parsed.Role != models.RoleAdmin {
		t.Errorf("expected role admin, got %s", parsed.Role)
	}
}

func TestValidateAndParseJWTToken_Expiry(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	generated, _ := GenerateJWTToken("p-1", "", time.Hour, testKey, now)

	if _, err := ValidateAndParseJWTToken(generated.SignedString, testKey, fixedClock(now.Add(59*time.Minute))); err != nil {
		t.Errorf("expected token to be valid before ttl, got: %v", err)
	}

	_, err := ValidateAndParseJWTToken(generated.SignedString, testKey, fixedClock(now.Add(time.Hour+time.Second)))
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	generated, _ := GenerateJWTToken("p-1", "", time.Hour, testKey, time.Now())

	_, err := ValidateAndParseJWTToken(generated.SignedString, "other-key", nil)
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected ErrTokenSignatureInvalid, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := &models.TokenClaims{
		PrincipalID: "p-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(signed, testKey, nil); err == nil {
		t.Error("expected HS512 token to be rejected")
	}
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	claims := &models.TokenClaims{PrincipalID: "p-1"}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))

	if _, err := ValidateAndParseJWTToken(signed, testKey, nil); err == nil {
		t.Error("expected token without exp to be rejected")
	}
}

func TestValidateAndParseJWTToken_EmptyID(t *testing.T) {
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))

	_, err := ValidateAndParseJWTToken(signed, testKey, nil)
	if !errors.Is(err, ErrEmptyPrincipalID) {
		t.Errorf("expected ErrEmptyPrincipalID, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.jwt", testKey, nil); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lower case scheme", header: "bearer abc", want: "abc"},
		{name: "extra spaces", header: "  Bearer   abc  ", want: "abc"},
		{name: "missing token", header: "Bearer", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "too many parts", header: "Bearer a b", wantErr: true},
		{name: "empty", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got token %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func decodePayload(t *testing.T, signed string) map[string]any {
	t.Helper()
	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(parts))
	}
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	return payload
}
