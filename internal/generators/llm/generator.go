// Package llm implements the model-backed content-generation strategy.
//
// It builds a single grounded prompt over the retrieval matches, asks the
// configured language model for a JSON answer and maps it onto the output
// sections. When the model's answer cannot be decoded, the strategy falls
// back to the rule-based generator in full, so callers always receive a
// well-formed output.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/brieflabs/briefgen/internal/core/domain"
	"github.com/brieflabs/briefgen/internal/core/ports/driven"
	"github.com/brieflabs/briefgen/internal/generators"
	"github.com/brieflabs/briefgen/internal/generators/rulebased"
	"github.com/brieflabs/briefgen/internal/logger"
)

// Ensure Generator implements the interface.
var _ driven.Generator = (*Generator)(nil)

// Generator is the model-backed strategy.
type Generator struct {
	model    driven.LLMService
	fallback *rulebased.Generator
}

// New creates a model-backed generator over the given LLM service.
func New(model driven.LLMService) *Generator {
	return &Generator{
		model:    model,
		fallback: rulebased.New(),
	}
}

// Name identifies the strategy.
func (g *Generator) Name() string { return "llm" }

// modelAnswer is the JSON shape requested from the model.
type modelAnswer struct {
	Slides   []json.RawMessage `json:"slides"`
	Script   []json.RawMessage `json:"script"`
	Notes    []json.RawMessage `json:"notes"`
	Tweets   []json.RawMessage `json:"tweets"`
	LinkedIn []json.RawMessage `json:"linkedin"`
}

// GenerateOutputs prompts the model and decodes its answer. A backend
// failure propagates to the caller; a malformed answer triggers the full
// rule-based fallback instead.
func (g *Generator) GenerateOutputs(
	ctx context.Context,
	instruction string,
	matches []domain.RetrievalMatch,
	config domain.GenerationConfig,
	audience domain.AudienceProfile,
) (*domain.GenerationOutput, error) {
	prompt := buildPrompt(instruction, matches, audience, config.Duration, generators.SafetyDirectives())

	raw, err := g.model.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   2048,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("model generate: %w", errors.Join(domain.ErrBackendFailure, err))
	}

	var answer modelAnswer
	if err := json.Unmarshal([]byte(raw), &answer); err != nil {
		logger.Warn("Model answer is not valid JSON, falling back to rule-based generation: %v", err)
		return g.fallback.GenerateOutputs(ctx, instruction, matches, config, audience)
	}

	return &domain.GenerationOutput{
		Slides:   decodeBlocks(answer.Slides),
		Script:   decodeBlocks(answer.Script),
		Notes:    decodeBlocks(answer.Notes),
		Tweets:   decodeBlocks(answer.Tweets),
		LinkedIn: decodeBlocks(answer.LinkedIn),
		Metadata: map[string]string{
			"instruction": instruction,
			"audience":    audience.Label,
			"style":       string(audience.Style),
			"duration":    string(config.Duration),
			"generator":   "llm",
		},
	}, nil
}

// blockItem is the object form a section item may take. Items may equally
// be bare strings.
type blockItem struct {
	Text       string           `json:"text"`
	Provenance []provenanceItem `json:"provenance"`
}

// provenanceItem tolerates missing or oddly typed citation fields.
type provenanceItem struct {
	ChunkID any `json:"chunk_id"`
	Page    any `json:"page"`
	Score   any `json:"score"`
}

// decodeBlocks maps one section's items onto content blocks, defaulting
// missing or malformed fields rather than failing.
func decodeBlocks(items []json.RawMessage) []domain.ContentBlock {
	blocks := make([]domain.ContentBlock, 0, len(items))
	for _, item := range items {
		var text string
		if err := json.Unmarshal(item, &text); err == nil {
			blocks = append(blocks, domain.ContentBlock{Text: text})
			continue
		}

		var obj blockItem
		if err := json.Unmarshal(item, &obj); err != nil {
			blocks = append(blocks, domain.ContentBlock{})
			continue
		}
		block := domain.ContentBlock{Text: obj.Text}
		for _, prov := range obj.Provenance {
			block.Provenance = append(block.Provenance, domain.Provenance{
				ChunkID: coerceString(prov.ChunkID, domain.PageUnknown),
				Page:    coerceString(prov.Page, domain.PageUnknown),
				Score:   coerceFloat(prov.Score),
			})
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// coerceString renders a loosely typed JSON value as a string.
func coerceString(v any, fallback string) string {
	switch val := v.(type) {
	case nil:
		return fallback
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// coerceFloat renders a loosely typed JSON value as a float, 0.0 when it
// is not numeric.
func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
