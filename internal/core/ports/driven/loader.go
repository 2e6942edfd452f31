package driven

import (
	"context"

	"github.com/brieflabs/briefgen/internal/core/domain"
)

// DocumentLoader reads a source document into plain text plus an ordered
// page table. Raw format decoding (PDF, LaTeX, JSON payloads) lives behind
// this port; the core only sees text and page boundaries.
//
// Implementations return domain.ErrNotFound for missing paths and
// domain.ErrUnsupportedFormat for unrecognised document types.
type DocumentLoader interface {
	// Load reads the document at path. The returned pages are ordered by
	// page number; an empty table means page attribution is unavailable.
	Load(ctx context.Context, path string) (text string, pages []domain.PageText, err error)
}
