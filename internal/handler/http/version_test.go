package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrenko/authd/internal/logger"
	"github.com/mpetrenko/authd/internal/service"
)

func TestGetServerVersion_ReturnsPlainTextVersion(t *testing.T) {
	svcs := &service.Services{
		AppInfoService: &mockAppInfoService{version: "1.2.3"},
	}
	h := NewHandler(svcs, logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}
