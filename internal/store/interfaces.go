// Package store defines the persistence contracts of the authentication
// core — the user directory, the revoked-token store, and the pending
// two-factor challenge store — together with their concurrency-safe
// in-memory implementations and a PostgreSQL-backed user directory.
//
// Each store guards its own state; there are no cross-store transactions.
// Callers depend only on the interfaces below.
package store

import (
	"context"
	"time"

	"github.com/mpetrenko/authd/models"
)

// UserStore is the user directory: it owns the set of registered users keyed
// by email. All operations are atomic with respect to concurrent callers —
// two concurrent Add calls for the same email never both succeed.
type UserStore interface {
	// Add inserts a new user. Returns ErrUserAlreadyExists when an entry
	// with the same email is already present.
	Add(ctx context.Context, user models.User) error

	// Get returns the user registered under email, or ErrUserNotFound.
	Get(ctx context.Context, email models.Email) (models.User, error)

	// VerifyCredentials looks up the user by email and checks the raw
	// password against the stored hash. Returns ErrUserNotFound for an
	// unknown email and ErrIncorrectCredentials for a wrong password; the
	// two are kept distinct so callers can decide whether to collapse them
	// at the boundary.
	VerifyCredentials(ctx context.Context, email models.Email, password models.Password) (models.User, error)

	// Delete removes and returns the user registered under email, or
	// ErrUserNotFound.
	Delete(ctx context.Context, email models.Email) (models.User, error)
}

// BanResult reports the outcome of a revocation-store mutation.
type BanResult int

const (
	// TokenBanned: the token was not banned before and is banned now.
	TokenBanned BanResult = iota
	// TokenAlreadyBanned: the token was already banned; the store is
	// unchanged.
	TokenAlreadyBanned
	// TokenUnbanned: the token was banned and has been removed.
	TokenUnbanned
	// TokenNotBanned: the token was not banned; the store is unchanged.
	TokenNotBanned
)

// String implements fmt.Stringer for log output.
func (r BanResult) String() string {
	switch r {
	case TokenBanned:
		return "banned"
	case TokenAlreadyBanned:
		return "already banned"
	case TokenUnbanned:
		return "unbanned"
	case TokenNotBanned:
		return "not banned"
	default:
		return "unknown"
	}
}

// BannedTokenStore tracks tokens that must no longer be trusted even though
// their signature and expiry would still check out (post-logout revocation).
// Ban and Unban are idempotent: repeating them reports the already-applied
// state without error.
type BannedTokenStore interface {
	// Ban revokes token. expiresAt is the token's own expiry; entries past
	// it are eligible for janitor eviction since expiry alone already
	// rejects them.
	Ban(ctx context.Context, token string, expiresAt time.Time) BanResult

	// IsBanned reports whether token is currently revoked.
	IsBanned(ctx context.Context, token string) bool

	// Unban lifts a revocation.
	Unban(ctx context.Context, token string) BanResult

	// DeleteExpired evicts entries whose recorded expiry is before now and
	// returns the number of evicted entries.
	DeleteExpired(ctx context.Context, now time.Time) int
}

// TwoFACodeStore tracks pending two-factor challenges, at most one per
// email. Concurrent Put calls for the same email race; last writer wins — a
// new login intentionally supersedes a stale pending challenge.
type TwoFACodeStore interface {
	// Put stores a pending challenge for email, unconditionally overwriting
	// any existing one.
	Put(ctx context.Context, email models.Email, attemptID models.LoginAttemptID, code models.TwoFACode) error

	// Get returns the pending challenge for email, or ErrEmailNotFound.
	Get(ctx context.Context, email models.Email) (models.LoginAttemptID, models.TwoFACode, error)

	// Remove deletes the pending challenge for email, or returns
	// ErrEmailNotFound when there is none.
	Remove(ctx context.Context, email models.Email) error

	// DeleteStale evicts challenges created before olderThan and returns
	// the number of evicted entries.
	DeleteStale(ctx context.Context, olderThan time.Time) int
}
