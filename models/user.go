// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Petrenko

// Package models holds the validated value types and wire DTOs shared by the
// store, service, and transport layers: email addresses, passwords and their
// argon2id hashes, session tokens, and the two-factor challenge identifiers.
package models

// User is an account entity owned by the user store. The email is the unique
// directory key for the lifetime of the account; the password is stored only
// as its one-way hash.
type User struct {
	// Email is the unique account identifier.
	Email Email

	// Password is the argon2id hash of the account password.
	// Raw passwords never reach this struct.
	Password HashedPassword

	// Requires2FA marks accounts whose login must pass a second-factor
	// confirmation before a session token is issued.
	Requires2FA bool
}

// TableName returns the name of the database table associated with the User
// model.
func (u User) TableName() string {
	return "users"
}
