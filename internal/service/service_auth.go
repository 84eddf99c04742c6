// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Petrenko

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mpetrenko/authd/internal/config"
	"github.com/mpetrenko/authd/internal/logger"
	"github.com/mpetrenko/authd/internal/store"
	"github.com/mpetrenko/authd/internal/utils"
	"github.com/mpetrenko/authd/models"
)

// authService is the concrete implementation of AuthService.
// It drives the login state machine across the three stores: the user
// directory for credential checks, the two-factor challenge store for the
// second step, and the revocation store for logout.
type authService struct {
	// users is the user directory used for registration and credential
	// verification.
	users store.UserStore

	// bannedTokens tracks tokens revoked by logout.
	bannedTokens store.BannedTokenStore

	// twoFACodes tracks pending two-factor challenges, one per email.
	twoFACodes store.TwoFACodeStore

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenTTL controls how long a newly issued JWT remains valid.
	tokenTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given stores and
// populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction and the stores guard their own state.
func NewAuthService(storages *store.Storages, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		users:        storages.Users,
		bannedTokens: storages.BannedTokens,
		twoFACodes:   storages.TwoFACodes,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		tokenTTL:     cfg.TokenTTL,
		logger:       logger,
	}
}

// Signup registers a new user account.
//
// The password is hashed with argon2id before it reaches the store; the
// plain text is never persisted.
//
// Returns a wrapped store.ErrUserAlreadyExists when the email is taken, or
// a wrapped hashing/storage error otherwise.
func (a *authService) Signup(ctx context.Context, email models.Email, password models.Password, requires2FA bool) error {
	log := logger.FromContext(ctx)

	hashedPassword, err := models.HashPassword(password)
	if err != nil {
		log.Err(err).Str("email", email.String()).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Email:       email,
		Password:    hashedPassword,
		Requires2FA: requires2FA,
	}

	if err := a.users.Add(ctx, user); err != nil {
		log.Err(err).Str("email", email.String()).Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("email", email.String()).Bool("requires2FA", requires2FA).Msg("user registered")
	return nil
}

// Login performs the first step of authentication.
//
// Credentials are checked against the user directory. For accounts without a
// second factor a session token is issued immediately. For accounts with
// Requires2FA set, a fresh challenge (attempt ID plus six-digit code)
// replaces any pending one for the email, and only the attempt ID is
// returned to the caller.
//
// Returns ErrInvalidCredentials for an unknown email or a wrong password,
// or a wrapped error if challenge storage or token signing fails.
func (a *authService) Login(ctx context.Context, email models.Email, password models.Password) (LoginResult, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.VerifyCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) || errors.Is(err, store.ErrIncorrectCredentials) {
			log.Error().Str("email", email.String()).Msg("credential verification failed")
			return LoginResult{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email.String()).Msg("credential verification errored")
		return LoginResult{}, fmt.Errorf("credential verification errored: %w", err)
	}

	if user.Requires2FA {
		attemptID := models.NewLoginAttemptID()
		code := models.NewTwoFACode()

		if err := a.twoFACodes.Put(ctx, email, attemptID, code); err != nil {
			log.Err(err).Str("email", email.String()).Msg("storing two-factor challenge failed")
			return LoginResult{}, fmt.Errorf("storing two-factor challenge failed: %w", err)
		}

		// The code reaches the user out-of-band. Until a mail transport
		// is wired in it is only visible in the debug log.
		log.Debug().
			Str("email", email.String()).
			Str("loginAttemptId", attemptID.String()).
			Str("code", code.String()).
			Msg("two-factor challenge opened")

		return LoginResult{TwoFARequired: true, LoginAttemptID: attemptID}, nil
	}

	token, err := a.createToken(email)
	if err != nil {
		log.Err(err).Str("email", email.String()).Msg("token creation failed")
		return LoginResult{}, err
	}

	log.Info().Str("email", email.String()).Msg("login succeeded")
	return LoginResult{Token: token}, nil
}

// Verify2FA completes the second step of authentication.
//
// The presented attempt ID and code must both match the pending challenge
// for the email. On match the challenge is consumed before the token is
// issued, so a redeemed challenge cannot be replayed.
//
// Returns ErrTwoFAChallengeFailed when there is no pending challenge, when
// either value mismatches, or when the challenge was consumed concurrently.
func (a *authService) Verify2FA(ctx context.Context, email models.Email, attemptID models.LoginAttemptID, code models.TwoFACode) (models.Token, error) {
	log := logger.FromContext(ctx)

	storedAttemptID, storedCode, err := a.twoFACodes.Get(ctx, email)
	if err != nil {
		log.Error().Str("email", email.String()).Msg("no pending two-factor challenge")
		return models.Token{}, ErrTwoFAChallengeFailed
	}

	if storedAttemptID != attemptID || storedCode != code {
		log.Error().Str("email", email.String()).Msg("two-factor challenge mismatch")
		return models.Token{}, ErrTwoFAChallengeFailed
	}

	// Remove failing here means a concurrent redeem or a superseding login
	// won the race; the challenge is no longer ours to consume.
	if err := a.twoFACodes.Remove(ctx, email); err != nil {
		log.Error().Str("email", email.String()).Msg("two-factor challenge already consumed")
		return models.Token{}, ErrTwoFAChallengeFailed
	}

	token, err := a.createToken(email)
	if err != nil {
		log.Err(err).Str("email", email.String()).Msg("token creation failed")
		return models.Token{}, err
	}

	log.Info().Str("email", email.String()).Msg("two-factor login succeeded")
	return token, nil
}

// Logout revokes a session token.
//
// The token is verified first, revocation store included: only a token that
// currently verifies is banned, so garbage input cannot grow the store and a
// second logout of the same token is rejected like any other use of it.
func (a *authService) Logout(ctx context.Context, tokenString string) error {
	log := logger.FromContext(ctx)

	token, err := a.VerifyToken(ctx, tokenString)
	if err != nil {
		log.Error().Msg("logout with invalid token")
		return err
	}

	expiresAt := time.Now().Add(a.tokenTTL)
	if exp, expErr := token.Claims.GetExpirationTime(); expErr == nil && exp != nil {
		expiresAt = exp.Time
	}

	result := a.bannedTokens.Ban(ctx, token.SignedString, expiresAt)
	log.Info().
		Str("email", token.Email.String()).
		Stringer("result", result).
		Msg("session token revoked")

	return nil
}

// VerifyToken checks whether a presented token is currently trustworthy.
//
// The revocation store is consulted before any cryptographic work: a banned
// token is rejected even while its signature and expiry still check out.
//
// Returns ErrTokenIsBanned, ErrTokenIsExpired, or ErrTokenIsInvalid.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if a.bannedTokens.IsBanned(ctx, tokenString) {
		log.Debug().Msg("presented token is banned")
		return models.Token{}, ErrTokenIsBanned
	}

	return a.parseToken(tokenString)
}

// createToken issues a signed JWT bound to email with the configured issuer,
// TTL, and sign key.
func (a *authService) createToken(email models.Email) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, email, a.tokenTTL, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// parseToken validates tokenString and normalises failures: expiry maps to
// ErrTokenIsExpired, everything else to ErrTokenIsInvalid, so callers never
// inspect low-level JWT errors.
func (a *authService) parseToken(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
