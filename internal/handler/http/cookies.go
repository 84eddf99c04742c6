package http

import (
	"net/http"
	"strings"

	"github.com/mpetrenko/authd/models"
)

// jwtCookieName is the cookie carrying the session token.
const jwtCookieName = "jwt"

// setJWTCookie attaches the session token to the response. The cookie is
// HttpOnly so scripts cannot read it, and SameSite=Lax so it is not sent on
// cross-site POSTs.
func setJWTCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwtCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearJWTCookie tells the client to drop the session cookie.
func clearJWTCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwtCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// tokenFromRequest extracts the session token from the request: the "jwt"
// cookie when present, the "Authorization: Bearer <token>" header otherwise.
func tokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(jwtCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}
	if parts[1] == "" {
		return "", ErrEmptyToken
	}

	return parts[1], nil
}
