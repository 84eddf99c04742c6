// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Petrenko

package models

// SignupRequest is the JSON body accepted by POST /signup.
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Requires2FA bool   `json:"requires2FA"`
}

// SignupResponse is the JSON body returned on successful signup.
type SignupResponse struct {
	Message string `json:"message"`
}

// LoginRequest is the JSON body accepted by POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TwoFactorAuthResponse is returned by POST /login with 206 Partial Content
// when the account requires a second factor. It carries the attempt id that
// must be echoed back on confirmation — never the code itself.
type TwoFactorAuthResponse struct {
	Message        string `json:"message"`
	LoginAttemptID string `json:"loginAttemptId"`
}

// Verify2FARequest is the JSON body accepted by POST /verify-2fa.
type Verify2FARequest struct {
	Email          string `json:"email"`
	LoginAttemptID string `json:"loginAttemptId"`
	TwoFACode      string `json:"2FACode"`
}

// VerifyTokenRequest is the JSON body accepted by POST /verify-token.
type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// ErrorResponse is the JSON body returned on request failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
