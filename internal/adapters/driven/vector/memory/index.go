// Package memory provides an in-memory vector index using brute-force
// cosine similarity. The index is single-session state: it is built once
// per ingested document and discarded with the session.
package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/brieflabs/briefgen/internal/core/domain"
	"github.com/brieflabs/briefgen/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// epsilon guards the cosine denominator against zero vectors.
const epsilon = 1e-8

// Index holds chunk/vector pairs in insertion order.
type Index struct {
	mu      sync.RWMutex
	chunks  []*domain.Chunk
	vectors [][]float32
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{}
}

// Add appends a chunk and its embedding to the index.
func (idx *Index) Add(_ context.Context, chunk *domain.Chunk, embedding []float32) error {
	if chunk == nil || len(embedding) == 0 {
		return domain.ErrInvalidInput
	}
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.chunks = append(idx.chunks, chunk)
	idx.vectors = append(idx.vectors, embedding)
	return nil
}

// Search returns the min(k, size) best matches for the query vector,
// ranked by cosine similarity descending. Ties keep insertion order.
func (idx *Index) Search(_ context.Context, query []float32, k int) ([]domain.RetrievalMatch, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if len(idx.vectors) == 0 || k <= 0 {
		return []domain.RetrievalMatch{}, nil
	}

	scores := make([]float64, len(idx.vectors))
	for i, vec := range idx.vectors {
		scores[i] = cosine(query, vec)
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if k > len(order) {
		k = len(order)
	}
	matches := make([]domain.RetrievalMatch, 0, k)
	for _, i := range order[:k] {
		matches = append(matches, domain.RetrievalMatch{Chunk: idx.chunks[i], Score: scores[i]})
	}
	return matches, nil
}

// Size returns the number of indexed chunks.
func (idx *Index) Size() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.chunks)
}

// Chunks returns the indexed chunks in insertion order.
func (idx *Index) Chunks() []*domain.Chunk {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]*domain.Chunk, len(idx.chunks))
	copy(out, idx.chunks)
	return out
}

// cosine computes dot(a,b) / (|a|*|b| + epsilon). Vectors of unequal
// length are compared over the shorter prefix.
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
