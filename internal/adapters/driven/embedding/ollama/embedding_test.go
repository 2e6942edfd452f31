package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmbeddingService_Defaults(t *testing.T) {
	svc := NewEmbeddingService(Config{})

	assert.Equal(t, DefaultModel, svc.ModelName())
	assert.Equal(t, DefaultDimensions, svc.Dimensions())
}

func TestEmbed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embeddings", r.URL.Path)

		var req embedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "the text", req.Prompt)

		_ = json.NewEncoder(w).Encode(embedResponse{Embedding: []float64{0.5, 0.25}})
	}))
	defer server.Close()

	svc := NewEmbeddingService(Config{BaseURL: server.URL})
	vector, err := svc.Embed(context.Background(), "the text")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.25}, vector)
}

func TestEmbedBatch_SequentialCalls(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(embedResponse{Embedding: []float64{float64(calls)}})
	}))
	defer server.Close()

	svc := NewEmbeddingService(Config{BaseURL: server.URL})
	vectors, err := svc.EmbedBatch(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)

	assert.Equal(t, 3, calls)
	require.Len(t, vectors, 3)
	assert.Equal(t, []float32{1}, vectors[0])
	assert.Equal(t, []float32{3}, vectors[2])
}

func TestEmbed_EmptyEmbedding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(embedResponse{})
	}))
	defer server.Close()

	svc := NewEmbeddingService(Config{BaseURL: server.URL, Model: "llama3"})
	_, err := svc.Embed(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `empty embedding for model "llama3"`)
}

func TestEmbed_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewEmbeddingService(Config{BaseURL: server.URL})
	_, err := svc.Embed(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewEmbeddingService(Config{BaseURL: server.URL})
	assert.NoError(t, svc.Ping(context.Background()))
}
