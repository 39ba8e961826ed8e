// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher hashes and verifies account passwords. It is used by the
// login and account management flows, never by token resolution.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of plain suitable for storage.
	Hash(plain string) (string, error)

	// Compare reports whether plain matches hash. A malformed hash is a
	// mismatch, not an error.
	Compare(plain, hash string) bool
}

// CodeGenerator produces the numeric one-time codes mailed during signup.
type CodeGenerator interface {
	// Generate returns a uniformly random code of fixed length.
	Generate() (string, error)
}
