package service

import (
	"context"

	"github.com/mpetrenko/authd/models"
)

// LoginResult is the outcome of a successful first authentication step.
// Exactly one branch is populated: either Token carries a freshly issued
// session token, or TwoFARequired is set and LoginAttemptID identifies the
// pending challenge the client must confirm via Verify2FA. The generated
// code itself is never part of the result; it travels out-of-band.
type LoginResult struct {
	Token          models.Token
	TwoFARequired  bool
	LoginAttemptID models.LoginAttemptID
}

// AuthService orchestrates the authentication flows: registration, the
// two-step login state machine, logout revocation, and token verification.
type AuthService interface {
	// Signup registers a new user account with an argon2id-hashed password.
	Signup(ctx context.Context, email models.Email, password models.Password, requires2FA bool) error

	// Login verifies credentials and either issues a session token or opens
	// a two-factor challenge, depending on the account's Requires2FA flag.
	Login(ctx context.Context, email models.Email, password models.Password) (LoginResult, error)

	// Verify2FA redeems a pending two-factor challenge. The presented
	// attempt ID and code must both match the stored challenge exactly; a
	// redeemed challenge is consumed and cannot be replayed.
	Verify2FA(ctx context.Context, email models.Email, attemptID models.LoginAttemptID, code models.TwoFACode) (models.Token, error)

	// Logout validates the presented token and revokes it. An invalid or
	// expired token is rejected without touching the revocation store.
	Logout(ctx context.Context, tokenString string) error

	// VerifyToken checks the revocation store first, then the token's
	// signature, issuer and expiry.
	VerifyToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes application metadata such as the running version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
