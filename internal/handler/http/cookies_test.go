package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFromRequest_Cookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: jwtCookieName, Value: "cookie.jwt.token"})

	token, err := tokenFromRequest(req)

	require.NoError(t, err)
	assert.Equal(t, "cookie.jwt.token", token)
}

func TestTokenFromRequest_CookieWinsOverHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: jwtCookieName, Value: "cookie.jwt.token"})
	req.Header.Set("Authorization", "Bearer header.jwt.token")

	token, err := tokenFromRequest(req)

	require.NoError(t, err)
	assert.Equal(t, "cookie.jwt.token", token)
}

func TestTokenFromRequest_HeaderFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer header.jwt.token")

	token, err := tokenFromRequest(req)

	require.NoError(t, err)
	assert.Equal(t, "header.jwt.token", token)
}

func TestTokenFromRequest_NoTokenAnywhere(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)

	_, err := tokenFromRequest(req)

	require.ErrorIs(t, err, ErrEmptyAuthorizationHeader)
}

func TestTokenFromRequest_HeaderWithoutValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer")

	_, err := tokenFromRequest(req)

	require.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
}

func TestTokenFromRequest_HeaderWithEmptyToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer ")

	_, err := tokenFromRequest(req)

	require.ErrorIs(t, err, ErrEmptyToken)
}
