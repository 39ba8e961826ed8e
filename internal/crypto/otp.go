// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OTPLength is the number of digits in a signup verification code.
const OTPLength = 6

type numericCodeGenerator struct {
	length int
	max    *big.Int
}

// NewOTPGenerator returns a [CodeGenerator] producing zero-padded
// [OTPLength]-digit codes from the OS CSPRNG.
func NewOTPGenerator() CodeGenerator {
	return &numericCodeGenerator{
		length: OTPLength,
		max:    big.NewInt(1_000_000),
	}
}

func (g *numericCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, g.max)
	if err != nil {
		return "", fmt.Errorf("error generating code: %w", err)
	}
	return fmt.Sprintf("%0*d", g.length, n.Int64()), nil
}
