// Package ai provides factory functions for creating AI service adapters
// from stored settings.
package ai

import (
	"context"
	"fmt"
	"os"
	"time"

	ollamaembed "github.com/brieflabs/briefgen/internal/adapters/driven/embedding/ollama"
	openaiembed "github.com/brieflabs/briefgen/internal/adapters/driven/embedding/openai"
	ollamallm "github.com/brieflabs/briefgen/internal/adapters/driven/llm/ollama"
	openaillm "github.com/brieflabs/briefgen/internal/adapters/driven/llm/openai"
	"github.com/brieflabs/briefgen/internal/core/ports/driven"
)

// Supported provider names.
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

// pingTimeout is the maximum time to wait for connectivity validation.
const pingTimeout = 5 * time.Second

// CreateEmbeddingService creates the embedding service selected by
// `embedding.provider` in the config store, defaulting to ollama.
// OPENAI_API_KEY in the environment overrides the stored key.
func CreateEmbeddingService(config driven.ConfigStore) (driven.EmbeddingService, error) {
	provider := config.GetString("embedding.provider")
	if provider == "" {
		provider = ProviderOllama
	}

	switch provider {
	case ProviderOllama:
		return ollamaembed.NewEmbeddingService(ollamaembed.Config{
			BaseURL:    config.GetString("embedding.base_url"),
			Model:      config.GetString("embedding.model"),
			Dimensions: config.GetInt("embedding.dimensions"),
		}), nil

	case ProviderOpenAI:
		return openaiembed.NewEmbeddingService(openaiembed.Config{
			APIKey:     apiKey(config, "embedding.api_key"),
			BaseURL:    config.GetString("embedding.base_url"),
			Model:      config.GetString("embedding.model"),
			Dimensions: config.GetInt("embedding.dimensions"),
		})

	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", provider)
	}
}

// CreateLLMService creates the LLM service selected by `llm.provider` in
// the config store. Returns nil when no provider is configured; the
// caller then runs with the rule-based strategy only.
func CreateLLMService(config driven.ConfigStore) (driven.LLMService, error) {
	provider := config.GetString("llm.provider")
	if provider == "" {
		return nil, nil
	}

	switch provider {
	case ProviderOllama:
		return ollamallm.NewLLMService(ollamallm.Config{
			BaseURL: config.GetString("llm.base_url"),
			Model:   config.GetString("llm.model"),
		}), nil

	case ProviderOpenAI:
		return openaillm.NewLLMService(openaillm.Config{
			APIKey:  apiKey(config, "llm.api_key"),
			BaseURL: config.GetString("llm.base_url"),
			Model:   config.GetString("llm.model"),
		})

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}

// ValidateEmbeddingService pings the embedding backend with a short
// timeout.
func ValidateEmbeddingService(svc driven.EmbeddingService) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return svc.Ping(ctx)
}

// ValidateLLMService pings the LLM backend with a short timeout.
func ValidateLLMService(svc driven.LLMService) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return svc.Ping(ctx)
}

// apiKey resolves an API key: the environment wins over the stored value.
func apiKey(config driven.ConfigStore, key string) string {
	if env := os.Getenv("OPENAI_API_KEY"); env != "" {
		return env
	}
	return config.GetString(key)
}
