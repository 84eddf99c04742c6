// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Petrenko

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT session token with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transported in a cookie or header.
// The type alone makes no validity claim: a Token is trusted only after its
// signature and expiry have been verified and the revocation store has been
// consulted.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Email is the bearer identity extracted from the "sub" claim.
	// Internal server-side cache; excluded from JSON serialization.
	Email Email `json:"-"`
}

// GetEmail extracts the subject claim, validates it as an email address, and
// returns the result. An error is returned when the claim is missing, empty,
// or not a well-formed address.
func (t *Token) GetEmail() (Email, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return Email{}, fmt.Errorf("error extracting subject from token: %w", err)
	}

	email, err := ParseEmail(subject)
	if err != nil {
		return Email{}, fmt.Errorf("token subject is not a valid email: %w", err)
	}

	return email, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
