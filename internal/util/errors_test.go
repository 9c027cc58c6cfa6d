package util_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nodal-oilgas/internal/util"
)

func TestCodeOfWrapped(t *testing.T) {
	err := fmt.Errorf("vogel rate: %w", util.Domain("pr must be positive, got %g", -1.0))
	assert.True(t, util.IsDomain(err))
	assert.False(t, util.IsConfiguration(err))
	assert.Equal(t, "", util.CodeOf(errors.New("plain")))
	assert.Equal(t, "domain: pr must be positive, got -1", util.Domain("pr must be positive, got %g", -1.0).Error())
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 422, util.HTTPStatus(util.Domain("x")))
	assert.Equal(t, 400, util.HTTPStatus(util.Configuration("x")))
	assert.Equal(t, 400, util.HTTPStatus(util.BadInput("x")))
	assert.Equal(t, 404, util.HTTPStatus(util.NotFound("x")))
	assert.Equal(t, 500, util.HTTPStatus(errors.New("boom")))
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	util.WriteError(rec, util.Configuration("unknown IPR method %q", "Jones"))

	assert.Equal(t, 400, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "configuration", body["error"])
	assert.Contains(t, body["message"], "Jones")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, util.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, util.ParseLevel("warning"))
	assert.Equal(t, slog.LevelInfo, util.ParseLevel(""))
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := util.NewLoggerTo(&buf, "json", "info")
	log.Debug("hidden")
	log.Info("ipr.curve", "method", "Composite")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ipr.curve", line["msg"])
	assert.Equal(t, "Composite", line["method"])
}
