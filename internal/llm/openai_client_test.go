package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nodal-oilgas/internal/config"
	"nodal-oilgas/internal/llm"
)

func TestNewWithoutKey(t *testing.T) {
	c, err := llm.New(config.LLM{})
	assert.Nil(t, c)
	assert.ErrorIs(t, err, llm.ErrNoAPIKey)
}

func TestCompleteAgainstFakeServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"  Sumur mengalir alami.  "},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c, err := llm.New(config.LLM{APIKey: "k", APIBase: srv.URL, Model: "test-model"})
	require.NoError(t, err)
	assert.Equal(t, "test-model", c.Model())

	out, err := c.Complete(context.Background(), "sys", "prompt")
	require.NoError(t, err)
	assert.Equal(t, "Sumur mengalir alami.", out)
}
