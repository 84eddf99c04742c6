// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Petrenko

package models

import (
	"errors"
	"strings"
)

// ErrInvalidEmail is returned by [ParseEmail] when the supplied string does
// not look like an email address.
var ErrInvalidEmail = errors.New("invalid email address")

// Email is a validated email address. The zero value is invalid; obtain
// instances via [ParseEmail]. Email is comparable and is used as the user
// directory key, so equality is value equality on the normalised string.
type Email struct {
	value string
}

// ParseEmail validates raw and returns it as an [Email].
//
// The check is deliberately shallow: the address must contain a non-empty
// local part, exactly one separating '@', and a domain with an interior dot.
// Full RFC 5322 parsing is a non-goal; anything that passes here still has to
// survive an actual delivery attempt.
func ParseEmail(raw string) (Email, error) {
	at := strings.LastIndexByte(raw, '@')
	if at <= 0 || at == len(raw)-1 {
		return Email{}, ErrInvalidEmail
	}

	local, domain := raw[:at], raw[at+1:]
	if strings.ContainsAny(local, " \t@") {
		return Email{}, ErrInvalidEmail
	}

	dot := strings.IndexByte(domain, '.')
	if dot <= 0 || dot == len(domain)-1 {
		return Email{}, ErrInvalidEmail
	}
	if strings.ContainsAny(domain, " \t@") {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: raw}, nil
}

// String returns the address in its original textual form.
func (e Email) String() string {
	return e.value
}

// IsZero reports whether e is the invalid zero value.
func (e Email) IsZero() bool {
	return e.value == ""
}
