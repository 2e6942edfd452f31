package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brieflabs/briefgen/internal/core/ports/driven"
)

func TestNewLLMService_RequiresAPIKey(t *testing.T) {
	_, err := NewLLMService(Config{})
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "the prompt", req.Messages[0].Content)
		assert.Equal(t, 256, req.MaxTokens)
		assert.InDelta(t, 0.3, req.Temperature, 1e-9)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": `{"slides": []}`}},
			},
		})
	}))
	defer server.Close()

	svc, err := NewLLMService(Config{APIKey: "sk-test", BaseURL: server.URL, RequestsPerSecond: 1000})
	require.NoError(t, err)

	answer, err := svc.Generate(context.Background(), "the prompt", driven.GenerateOptions{
		MaxTokens:   256,
		Temperature: 0.3,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"slides": []}`, answer)
}

func TestGenerate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limit exceeded", "type": "rate_limit"},
		})
	}))
	defer server.Close()

	svc, err := NewLLMService(Config{APIKey: "sk-test", BaseURL: server.URL, RequestsPerSecond: 1000})
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), "prompt", driven.GenerateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestGenerate_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	svc, err := NewLLMService(Config{APIKey: "sk-test", BaseURL: server.URL, RequestsPerSecond: 1000})
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), "prompt", driven.GenerateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no response choices")
}
