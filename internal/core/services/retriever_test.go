package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brieflabs/briefgen/internal/adapters/driven/vector/memory"
	"github.com/brieflabs/briefgen/internal/core/domain"
)

func buildChunks(texts ...string) []domain.Chunk {
	chunks := make([]domain.Chunk, len(texts))
	for i, text := range texts {
		chunks[i] = domain.Chunk{
			ID:   "chunk_" + string(rune('0'+i)),
			Text: text,
			Page: "1",
		}
	}
	return chunks
}

func TestRetriever_BuildBackfillsEmbeddings(t *testing.T) {
	retriever := NewRetriever(&mockEmbedder{}, memory.NewIndex())
	chunks := buildChunks("wind turbines", "solar panels")

	require.NoError(t, retriever.Build(context.Background(), chunks))

	assert.Equal(t, 2, retriever.Index().Size())
	for _, chunk := range chunks {
		assert.Len(t, chunk.Embedding, 26)
	}
}

func TestRetriever_BuildEmptyChunkSet(t *testing.T) {
	retriever := NewRetriever(&mockEmbedder{}, memory.NewIndex())

	require.NoError(t, retriever.Build(context.Background(), nil))
	assert.Equal(t, 0, retriever.Index().Size())
}

func TestRetriever_BuildEmbedderFailure(t *testing.T) {
	retriever := NewRetriever(&mockEmbedder{err: errors.New("timeout")}, memory.NewIndex())

	err := retriever.Build(context.Background(), buildChunks("some text"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendFailure)
}

func TestRetriever_QueryRanksBySimilarity(t *testing.T) {
	retriever := NewRetriever(&mockEmbedder{}, memory.NewIndex())
	chunks := buildChunks("zzzz qqqq", "wind wind wind")
	require.NoError(t, retriever.Build(context.Background(), chunks))

	matches, err := retriever.Query(context.Background(), "wind", 2)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	// The character-frequency embedder scores the wind chunk highest.
	assert.Equal(t, "chunk_1", matches[0].Chunk.ID)
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestRetriever_QueryDefaultsK(t *testing.T) {
	retriever := NewRetriever(&mockEmbedder{}, memory.NewIndex())
	require.NoError(t, retriever.Build(context.Background(), buildChunks("a b", "c d", "e f")))

	matches, err := retriever.Query(context.Background(), "anything", 0)
	require.NoError(t, err)
	assert.Len(t, matches, 3)
}

func TestRetriever_QueryEmbedderFailure(t *testing.T) {
	retriever := NewRetriever(&mockEmbedder{}, memory.NewIndex())
	require.NoError(t, retriever.Build(context.Background(), buildChunks("a b")))

	failing := NewRetriever(&mockEmbedder{err: errors.New("down")}, retriever.Index())
	_, err := failing.Query(context.Background(), "anything", 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendFailure)
}
