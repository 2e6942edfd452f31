package driven

import (
	"context"

	"github.com/brieflabs/briefgen/internal/core/domain"
)

// VectorIndex stores chunk embeddings in insertion order and answers top-k
// similarity queries.
//
// The index is single-session state: there is no delete operation, it is
// rebuilt wholesale when a new document is ingested.
type VectorIndex interface {
	// Add appends a chunk and its embedding to the index.
	Add(ctx context.Context, chunk *domain.Chunk, embedding []float32) error

	// Search returns the min(k, size) best matches for the query vector,
	// ranked by cosine similarity descending with ties broken by
	// insertion order. An empty index returns an empty result.
	Search(ctx context.Context, query []float32, k int) ([]domain.RetrievalMatch, error)

	// Size returns the number of indexed chunks.
	Size() int

	// Chunks returns the indexed chunks in insertion order.
	Chunks() []*domain.Chunk
}
