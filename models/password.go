// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Petrenko

package models

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// MinPasswordLength is the minimum accepted raw password length.
const MinPasswordLength = 8

// argon2id parameters, fixed process-wide. Changing them invalidates no
// stored hash: each PHC string carries its own parameters and Verify honours
// them.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // KiB
	argon2Threads = 4
	argon2SaltLen = 16
	argon2KeyLen  = 32
)

var (
	// ErrPasswordTooShort is returned by [ParsePassword] for passwords
	// shorter than [MinPasswordLength].
	ErrPasswordTooShort = errors.New("password is too short")

	// ErrInvalidPasswordHash is returned when a stored hash string is not a
	// well-formed argon2id PHC string.
	ErrInvalidPasswordHash = errors.New("invalid password hash")
)

// Password is a validated raw password. It exists only transiently during
// signup and login and must never be persisted; persist a [HashedPassword]
// instead.
type Password struct {
	raw string
}

// ParsePassword validates raw and returns it as a [Password].
// The only format rule is a minimum length of [MinPasswordLength] bytes.
func ParsePassword(raw string) (Password, error) {
	if len(raw) < MinPasswordLength {
		return Password{}, ErrPasswordTooShort
	}
	return Password{raw: raw}, nil
}

// HashedPassword is the one-way argon2id hash of a raw password, stored as a
// self-describing PHC string ($argon2id$v=19$m=...,t=...,p=...$salt$digest).
type HashedPassword struct {
	encoded string
}

// HashPassword derives a fresh [HashedPassword] from password using argon2id
// with a random 16-byte salt.
func HashPassword(password Password) (HashedPassword, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return HashedPassword{}, fmt.Errorf("error generating password salt: %w", err)
	}

	digest := argon2.IDKey([]byte(password.raw), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory,
		argon2Time,
		argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)

	return HashedPassword{encoded: encoded}, nil
}

// ParseHashedPassword wraps an already-encoded PHC string loaded from
// storage. It checks the shape of the string, not the strength of the hash.
func ParseHashedPassword(encoded string) (HashedPassword, error) {
	if _, _, err := decodePHC(encoded); err != nil {
		return HashedPassword{}, err
	}
	return HashedPassword{encoded: encoded}, nil
}

// Verify recomputes the argon2id digest of password using the salt and
// parameters embedded in h and compares it to the stored digest in constant
// time. It returns true on a match and false otherwise; an error is returned
// only when h itself cannot be decoded.
func (h HashedPassword) Verify(password Password) (bool, error) {
	params, salt, err := decodePHC(h.encoded)
	if err != nil {
		return false, err
	}

	digest, err := base64.RawStdEncoding.DecodeString(params.digest)
	if err != nil {
		return false, ErrInvalidPasswordHash
	}
	if len(digest) == 0 {
		return false, ErrInvalidPasswordHash
	}

	computed := argon2.IDKey([]byte(password.raw), salt, params.time, params.memory, params.threads, uint32(len(digest)))

	return subtle.ConstantTimeCompare(computed, digest) == 1, nil
}

// String returns the PHC-encoded hash, suitable for storage.
func (h HashedPassword) String() string {
	return h.encoded
}

// IsZero reports whether h holds no hash.
func (h HashedPassword) IsZero() bool {
	return h.encoded == ""
}

type phcParams struct {
	memory  uint32
	time    uint32
	threads uint8
	digest  string
}

func decodePHC(encoded string) (phcParams, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return phcParams{}, nil, ErrInvalidPasswordHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return phcParams{}, nil, ErrInvalidPasswordHash
	}

	var memory, time, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return phcParams{}, nil, ErrInvalidPasswordHash
	}
	if threads == 0 || threads > 255 {
		return phcParams{}, nil, ErrInvalidPasswordHash
	}
	// argon2.IDKey panics on zero rounds or zero memory
	if time == 0 || memory == 0 {
		return phcParams{}, nil, ErrInvalidPasswordHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return phcParams{}, nil, ErrInvalidPasswordHash
	}

	return phcParams{
		memory:  memory,
		time:    time,
		threads: uint8(threads),
		digest:  parts[5],
	}, salt, nil
}
