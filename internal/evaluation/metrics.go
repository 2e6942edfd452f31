// Package evaluation scores generated outputs against reference texts.
//
// It sits outside the core and reads outputs without mutating them. Four
// metrics are reported per case: ROUGE-L F-measure over the script,
// embedding cosine similarity, provenance coverage of the script and
// citation coverage across slides, script and notes.
package evaluation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/brieflabs/briefgen/internal/core/domain"
	"github.com/brieflabs/briefgen/internal/core/ports/driven"
)

// epsilon guards the cosine denominator against zero vectors.
const epsilon = 1e-8

// EvaluationRecord holds the metric values for one evaluated case.
type EvaluationRecord struct {
	PaperID            string  `json:"paper_id"`
	Audience           string  `json:"audience"`
	RougeL             float64 `json:"rouge_l"`
	SemanticSimilarity float64 `json:"semantic_similarity"`
	ProvenanceCoverage float64 `json:"provenance_coverage"`
	CitationCoverage   float64 `json:"citation_coverage"`
}

// SimilarityComputer scores semantic closeness of two texts with the
// configured embedding service.
type SimilarityComputer struct {
	embedder driven.EmbeddingService
}

// NewSimilarityComputer creates a similarity computer over the embedder.
func NewSimilarityComputer(embedder driven.EmbeddingService) *SimilarityComputer {
	return &SimilarityComputer{embedder: embedder}
}

// Score embeds both texts in one batch and returns their cosine
// similarity.
func (c *SimilarityComputer) Score(ctx context.Context, generated, reference string) (float64, error) {
	vectors, err := c.embedder.EmbedBatch(ctx, []string{generated, reference})
	if err != nil {
		return 0, fmt.Errorf("embed texts: %w", errors.Join(domain.ErrBackendFailure, err))
	}
	if len(vectors) != 2 {
		return 0, fmt.Errorf("embed texts: %w: got %d vectors for two texts",
			domain.ErrBackendFailure, len(vectors))
	}
	return cosine(vectors[0], vectors[1]), nil
}

// cosine computes cosine similarity between two vectors.
func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, v := range a {
		normA += float64(v) * float64(v)
	}
	for _, v := range b {
		normB += float64(v) * float64(v)
	}
	return dot / (math.Sqrt(normA)*math.Sqrt(normB) + epsilon)
}

// RougeL computes the ROUGE-L F-measure between a generated text and a
// reference, over whitespace tokens.
func RougeL(generated, reference string) float64 {
	genTokens := strings.Fields(generated)
	refTokens := strings.Fields(reference)
	if len(genTokens) == 0 || len(refTokens) == 0 {
		return 0
	}

	lcs := lcsLength(genTokens, refTokens)
	if lcs == 0 {
		return 0
	}

	precision := float64(lcs) / float64(len(genTokens))
	recall := float64(lcs) / float64(len(refTokens))
	return 2 * precision * recall / (precision + recall)
}

// lcsLength computes the longest common subsequence length with a
// two-row table.
func lcsLength(a, b []string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// ProvenanceCoverage is the share of blocks carrying at least one
// provenance entry. An empty section scores zero.
func ProvenanceCoverage(blocks []domain.ContentBlock) float64 {
	if len(blocks) == 0 {
		return 0
	}
	cited := 0
	for _, block := range blocks {
		if len(block.Provenance) > 0 {
			cited++
		}
	}
	return float64(cited) / float64(len(blocks))
}

// CitationCoverage is provenance coverage across slides, script and
// notes combined.
func CitationCoverage(output *domain.GenerationOutput) float64 {
	blocks := make([]domain.ContentBlock, 0, len(output.Slides)+len(output.Script)+len(output.Notes))
	blocks = append(blocks, output.Slides...)
	blocks = append(blocks, output.Script...)
	blocks = append(blocks, output.Notes...)
	return ProvenanceCoverage(blocks)
}

// EvaluateOutput scores one generation against a reference script. The
// generated text is the script section joined by spaces.
func EvaluateOutput(
	ctx context.Context,
	output *domain.GenerationOutput,
	referenceScript string,
	paperID string,
	audience string,
	similarity *SimilarityComputer,
) (EvaluationRecord, error) {
	parts := make([]string, len(output.Script))
	for i, block := range output.Script {
		parts[i] = block.Text
	}
	generated := strings.Join(parts, " ")

	sim, err := similarity.Score(ctx, generated, referenceScript)
	if err != nil {
		return EvaluationRecord{}, err
	}

	return EvaluationRecord{
		PaperID:            paperID,
		Audience:           audience,
		RougeL:             RougeL(generated, referenceScript),
		SemanticSimilarity: sim,
		ProvenanceCoverage: ProvenanceCoverage(output.Script),
		CitationCoverage:   CitationCoverage(output),
	}, nil
}
