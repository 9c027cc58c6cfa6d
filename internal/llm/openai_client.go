// [FILE] internal/llm/openai_client.go
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"nodal-oilgas/internal/config"
)

// ======================
// Interface (kontrak umum)
// ======================
type Client interface {
	// Jawaban naratif (non-JSON, non-stream)
	Complete(ctx context.Context, system, prompt string) (string, error)

	// Ambil nama model aktif
	Model() string
}

// ErrNoAPIKey dikembalikan New bila OPENAI_API_KEY kosong; pemanggil memakai fallback.
var ErrNoAPIKey = errors.New("OPENAI_API_KEY not set")

// ======================
// Implementasi OpenAIClient
// ======================
type OpenAIClient struct {
	api   *openai.Client
	model string
}

// New membangun client dari config.LLM
// - APIKey (wajib)
// - Model (opsional, default gpt-4o-mini)
// - APIBase (opsional, untuk proxy/self-hosted endpoint)
func New(cfg config.LLM) (Client, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, ErrNoAPIKey
	}

	oc := openai.DefaultConfig(key)
	if base := strings.TrimSpace(cfg.APIBase); base != "" {
		oc.BaseURL = base
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIClient{
		api:   openai.NewClientWithConfig(oc),
		model: model,
	}, nil
}

func (c *OpenAIClient) Model() string { return c.model }

// Complete: satu kali chat completion, temperature rendah.
func (c *OpenAIClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	}

	var cancel context.CancelFunc
	if _, ok := ctx.Deadline(); !ok {
		ctx, cancel = context.WithTimeout(ctx, 18*time.Second)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
