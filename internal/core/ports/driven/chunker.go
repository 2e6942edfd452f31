package driven

import "github.com/brieflabs/briefgen/internal/core/domain"

// TextChunker splits normalized document text into provenance-bearing
// chunks. Chunk identifiers must be unique and strictly increasing in
// emission order within one call.
type TextChunker interface {
	Chunk(text string, pages []domain.PageText) []domain.Chunk
}
