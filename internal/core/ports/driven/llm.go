package driven

import "context"

// LLMService provides text generation for the model-backed content strategy.
// This is an optional service - when nil, only the rule-based strategy is
// available.
//
// Implementations may include:
//   - OpenAI (GPT-4o, GPT-4o-mini)
//   - Ollama (local models)
//   - Any chat-completion compatible inference server
type LLMService interface {
	// Generate produces raw text (possibly non-JSON) from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// StopWords are sequences that stop generation when encountered.
	StopWords []string
}
