package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The store keeps the two cases distinct; the service
	// collapses them so the boundary cannot leak which accounts exist.
	ErrInvalidCredentials = errors.New("incorrect credentials")

	// ErrTwoFAChallengeFailed covers a missing, superseded, or mismatched
	// two-factor challenge.
	ErrTwoFAChallengeFailed = errors.New("two-factor challenge failed")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsBanned       = errors.New("token is banned")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
