// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Petrenko

package models

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

var (
	// ErrInvalidLoginAttemptID is returned by [ParseLoginAttemptID] when the
	// supplied string is not a valid UUID.
	ErrInvalidLoginAttemptID = errors.New("invalid login attempt id")

	// ErrInvalidTwoFACode is returned by [ParseTwoFACode] when the supplied
	// string is not exactly six ASCII digits.
	ErrInvalidTwoFACode = errors.New("invalid 2FA code")
)

// LoginAttemptID correlates a client-presented two-factor confirmation with
// the pending server-side challenge. A fresh one is generated for every login
// that requires a second factor.
type LoginAttemptID struct {
	value string
}

// NewLoginAttemptID generates a fresh random attempt identifier.
func NewLoginAttemptID() LoginAttemptID {
	return LoginAttemptID{value: uuid.NewString()}
}

// ParseLoginAttemptID validates a client-supplied attempt identifier.
func ParseLoginAttemptID(raw string) (LoginAttemptID, error) {
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return LoginAttemptID{}, fmt.Errorf("%w: %w", ErrInvalidLoginAttemptID, err)
	}
	return LoginAttemptID{value: parsed.String()}, nil
}

// String returns the canonical UUID form of the identifier.
func (id LoginAttemptID) String() string {
	return id.value
}

// TwoFACode is a six-digit one-time code generated per pending challenge and
// delivered to the user out-of-band.
type TwoFACode struct {
	value string
}

// NewTwoFACode generates a fresh code in the range 100000-999999 using
// crypto/rand.
func NewTwoFACode() TwoFACode {
	n, err := rand.Int(rand.Reader, big.NewInt(900_000))
	if err != nil {
		// crypto/rand failing means the platform RNG is broken; there is no
		// safe code to hand out.
		panic(fmt.Sprintf("generating 2FA code: %v", err))
	}
	return TwoFACode{value: fmt.Sprintf("%06d", n.Int64()+100_000)}
}

// ParseTwoFACode validates a client-supplied code: exactly six ASCII digits.
func ParseTwoFACode(raw string) (TwoFACode, error) {
	if len(raw) != 6 {
		return TwoFACode{}, ErrInvalidTwoFACode
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return TwoFACode{}, ErrInvalidTwoFACode
		}
	}
	return TwoFACode{value: raw}, nil
}

// String returns the six-digit code.
func (c TwoFACode) String() string {
	return c.value
}
