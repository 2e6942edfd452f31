// Package file provides a document loader for local plain-text and
// pre-extracted JSON documents.
//
// PDF extraction is out of scope here: papers are expected to arrive as
// .txt/.md/.tex exports, or as a JSON payload carrying text plus an
// explicit page table produced by an external extractor.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brieflabs/briefgen/internal/core/domain"
	"github.com/brieflabs/briefgen/internal/core/ports/driven"
	"github.com/brieflabs/briefgen/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Loader reads documents from the local filesystem.
type Loader struct{}

// NewLoader creates a filesystem document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// jsonDocument is the pre-extracted payload format: full text plus an
// ordered page table.
type jsonDocument struct {
	Text  string `json:"text"`
	Pages []struct {
		Number int    `json:"number"`
		Text   string `json:"text"`
	} `json:"pages"`
}

// Load reads the document at path. Plain-text formats treat each line as
// one page, numbered from 1; .json payloads carry their own page table.
func (l *Loader) Load(_ context.Context, path string) (string, []domain.PageText, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("document %q: %w", path, domain.ErrNotFound)
		}
		return "", nil, fmt.Errorf("read document %q: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md", ".tex":
		text := string(data)
		pages := linePages(text)
		logger.Debug("Loaded %q: %d bytes, %d pages", path, len(data), len(pages))
		return text, pages, nil
	case ".json":
		var doc jsonDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return "", nil, fmt.Errorf("parse document %q: %w", path, err)
		}
		pages := make([]domain.PageText, len(doc.Pages))
		for i, p := range doc.Pages {
			pages[i] = domain.PageText{Number: p.Number, Text: p.Text}
		}
		logger.Debug("Loaded %q: %d bytes, %d pages", path, len(data), len(pages))
		return doc.Text, pages, nil
	default:
		return "", nil, fmt.Errorf("document %q: extension %q: %w", path, ext, domain.ErrUnsupportedFormat)
	}
}

// linePages builds the page table for plain-text documents, one page per
// line numbered from 1.
func linePages(text string) []domain.PageText {
	lines := strings.Split(text, "\n")
	pages := make([]domain.PageText, len(lines))
	for i, line := range lines {
		pages[i] = domain.PageText{Number: i + 1, Text: line}
	}
	return pages
}
