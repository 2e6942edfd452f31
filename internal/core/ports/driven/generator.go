package driven

import (
	"context"

	"github.com/brieflabs/briefgen/internal/core/domain"
)

// Generator turns ranked retrieval matches plus a request and an audience
// profile into a structured generation output, every block carrying
// provenance copied from its originating match.
//
// Exactly two strategies exist: the deterministic rule-based generator and
// the LLM-backed generator, which falls back to the rule-based one when the
// model's answer cannot be decoded.
type Generator interface {
	// GenerateOutputs produces the artifact bundle for one request.
	GenerateOutputs(
		ctx context.Context,
		instruction string,
		matches []domain.RetrievalMatch,
		config domain.GenerationConfig,
		audience domain.AudienceProfile,
	) (*domain.GenerationOutput, error)

	// Name identifies the strategy ("rule" or "llm").
	Name() string
}
