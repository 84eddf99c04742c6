// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Petrenko

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mpetrenko/authd/internal/logger"
	"github.com/mpetrenko/authd/internal/store"
	"github.com/mpetrenko/authd/internal/utils"
	"github.com/mpetrenko/authd/models"
)

// writeError sends a JSON error body with the given status.
func writeError(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	email, err := models.ParseEmail(req.Email)
	if err != nil {
		log.Err(err).Msg("invalid email provided")
		writeError(w, "Invalid credentials", http.StatusBadRequest)
		return
	}

	password, err := models.ParsePassword(req.Password)
	if err != nil {
		log.Err(err).Msg("invalid password provided")
		writeError(w, "Invalid credentials", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.Signup(ctx, email, password, req.Requires2FA); err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			log.Err(err).Msg("user already exists")
			writeError(w, "User already exists", http.StatusConflict)
			return
		}
		log.Err(err).Msg("unexpected error occurred during signup")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.SignupResponse{Message: "User created successfully!"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	email, err := models.ParseEmail(req.Email)
	if err != nil {
		log.Err(err).Msg("invalid email provided")
		writeError(w, "Invalid credentials", http.StatusBadRequest)
		return
	}

	password, err := models.ParsePassword(req.Password)
	if err != nil {
		log.Err(err).Msg("invalid password provided")
		writeError(w, "Invalid credentials", http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Login(ctx, email, password)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusUnauthorized {
			log.Err(err).Msg("login rejected")
			writeError(w, "Incorrect credentials", status)
			return
		}
		log.Err(err).Msg("unexpected error occurred during login")
		writeError(w, http.StatusText(status), status)
		return
	}

	if result.TwoFARequired {
		// the code itself never appears in the response
		utils.WriteJSON(w, models.TwoFactorAuthResponse{
			Message:        "2FA required",
			LoginAttemptID: result.LoginAttemptID.String(),
		}, http.StatusPartialContent)
		return
	}

	setJWTCookie(w, result.Token)
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Login successful"))
}

func (h *Handler) verify2FA(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.Verify2FARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	email, err := models.ParseEmail(req.Email)
	if err != nil {
		log.Err(err).Msg("invalid email provided")
		writeError(w, "Invalid credentials", http.StatusBadRequest)
		return
	}

	attemptID, err := models.ParseLoginAttemptID(req.LoginAttemptID)
	if err != nil {
		log.Err(err).Msg("invalid login attempt id provided")
		writeError(w, "Invalid credentials", http.StatusBadRequest)
		return
	}

	code, err := models.ParseTwoFACode(req.TwoFACode)
	if err != nil {
		log.Err(err).Msg("invalid 2FA code provided")
		writeError(w, "Invalid credentials", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Verify2FA(ctx, email, attemptID, code)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusUnauthorized {
			log.Err(err).Msg("two-factor confirmation rejected")
			writeError(w, "Incorrect credentials", status)
			return
		}
		log.Err(err).Msg("unexpected error occurred during two-factor confirmation")
		writeError(w, http.StatusText(status), status)
		return
	}

	setJWTCookie(w, token)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenString, err := tokenFromRequest(r)
	if err != nil {
		log.Err(err).Msg("no token presented on logout")
		writeError(w, "Missing token", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.Logout(ctx, tokenString); err != nil {
		status := statusFromError(err)
		if status == http.StatusUnauthorized {
			log.Err(err).Msg("logout with invalid token")
			writeError(w, "Invalid token", status)
			return
		}
		log.Err(err).Msg("unexpected error occurred during logout")
		writeError(w, http.StatusText(status), status)
		return
	}

	clearJWTCookie(w)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) verifyToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.Token == "" {
		log.Error().Msg("no token provided for verification")
		writeError(w, "Missing token", http.StatusBadRequest)
		return
	}

	if _, err := h.services.AuthService.VerifyToken(ctx, req.Token); err != nil {
		status := statusFromError(err)
		if status == http.StatusUnauthorized {
			log.Err(err).Msg("token verification rejected")
			writeError(w, "Invalid token", status)
			return
		}
		log.Err(err).Msg("unexpected error occurred during token verification")
		writeError(w, http.StatusText(status), status)
		return
	}

	w.WriteHeader(http.StatusOK)
}
