package store

import "errors"

var (
	// ErrUserAlreadyExists is returned by UserStore.Add when the email is
	// already registered.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no user is registered under the
	// given email.
	ErrUserNotFound = errors.New("no user was found")

	// ErrIncorrectCredentials is returned by VerifyCredentials when the
	// user exists but the password does not match. Kept distinct from
	// ErrUserNotFound so the boundary can choose its disclosure policy.
	ErrIncorrectCredentials = errors.New("incorrect credentials")

	// ErrEmailNotFound is returned by the TwoFACodeStore when no pending
	// challenge exists for the given email.
	ErrEmailNotFound = errors.New("no pending challenge for email")
)
