package server_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apppkg "nodal-oilgas/internal/app"
	"nodal-oilgas/internal/config"
	"nodal-oilgas/internal/metrics"
	"nodal-oilgas/internal/server"
)

func TestMCPRouter(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	apppkg.New(&config.Config{}, log, apppkg.Deps{})
	m := metrics.New()
	h := server.NewMCPRouter("k", log, m)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/route", strings.NewReader(`{"tool":"ipr_summary"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/tools/nodal_analysis", strings.NewReader(`{"grid":"reference"}`))
	req.Header.Set("X-API-Key", "k")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"system"`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `nodal_http_requests_total{route="/tools/{name}",status="2xx"} 1`)
}
