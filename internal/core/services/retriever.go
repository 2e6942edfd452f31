package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/brieflabs/briefgen/internal/core/domain"
	"github.com/brieflabs/briefgen/internal/core/ports/driven"
	"github.com/brieflabs/briefgen/internal/logger"
)

// Retriever composes an embedding service with a vector index: it embeds a
// free-text query and returns ranked matches from the session's chunks.
//
// A retriever is built once per ingested document and is stateless across
// calls after Build.
type Retriever struct {
	embedder driven.EmbeddingService
	index    driven.VectorIndex
}

// NewRetriever creates a retriever over the given embedding service and
// empty index.
func NewRetriever(embedder driven.EmbeddingService, index driven.VectorIndex) *Retriever {
	return &Retriever{embedder: embedder, index: index}
}

// Build embeds every chunk's text in one batch call, populates the index
// and back-fills each chunk's Embedding field. The chunks slice is owned
// by the caller; the index holds pointers into it.
//
// An embedding backend failure propagates uncaught - the ingest that
// triggered the build fails as a whole.
func (r *Retriever) Build(ctx context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		logger.Debug("Retriever built over empty chunk set")
		return nil
	}

	texts := make([]string, len(chunks))
	for i := range chunks {
		texts[i] = chunks[i].Text
	}

	vectors, err := r.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed chunks: %w", errors.Join(domain.ErrBackendFailure, err))
	}
	if len(vectors) != len(chunks) {
		return fmt.Errorf("embed chunks: %w: got %d vectors for %d chunks",
			domain.ErrBackendFailure, len(vectors), len(chunks))
	}

	for i := range chunks {
		chunks[i].Embedding = vectors[i]
		if err := r.index.Add(ctx, &chunks[i], vectors[i]); err != nil {
			return fmt.Errorf("index chunk %s: %w", chunks[i].ID, err)
		}
	}
	logger.Debug("Retriever built: %d chunks, %d dimensions", len(chunks), r.embedder.Dimensions())
	return nil
}

// Query embeds the query text as a single-item batch and delegates to the
// index. k defaults to 5 when not positive.
func (r *Retriever) Query(ctx context.Context, text string, k int) ([]domain.RetrievalMatch, error) {
	if k <= 0 {
		k = 5
	}
	vectors, err := r.embedder.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", errors.Join(domain.ErrBackendFailure, err))
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embed query: %w: got %d vectors for one text",
			domain.ErrBackendFailure, len(vectors))
	}

	matches, err := r.index.Search(ctx, vectors[0], k)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}
	logger.Debug("Query %q: %d matches", text, len(matches))
	return matches, nil
}

// Index exposes the underlying vector index.
func (r *Retriever) Index() driven.VectorIndex {
	return r.index
}
