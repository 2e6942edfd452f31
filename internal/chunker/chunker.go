// Package chunker splits normalized document text into overlapping,
// page-attributed chunks suitable for retrieval indexing.
package chunker

import (
	"fmt"
	"strings"

	"github.com/brieflabs/briefgen/internal/core/domain"
)

// DefaultChunkSize is the default chunk length in characters.
const DefaultChunkSize = 500

// DefaultOverlap is the default overlap between chunks in words.
const DefaultOverlap = 120

// Chunker accumulates sentences into a growing window and emits a chunk
// whenever the joined window reaches the configured size. The window then
// restarts from the last Overlap words of the emitted text, so consecutive
// chunks share context.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in words.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Chunk splits text into page-attributed chunks. The page table maps each
// chunk to the first page whose cumulative text length reaches the chunk's
// character offset; with no table every chunk gets domain.PageUnknown.
//
// Empty input yields no chunks. A chunk size larger than the whole text
// yields exactly one chunk. Zero overlap yields non-overlapping chunks.
func (c *Chunker) Chunk(text string, pages []domain.PageText) []domain.Chunk {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return nil
	}

	var (
		chunks  []domain.Chunk
		window  []string
		pointer int
	)
	for _, sentence := range sentences {
		window = append(window, sentence)
		pointer += len(sentence)
		joined := strings.Join(window, " ")
		if len(joined) < c.chunkSize {
			continue
		}
		chunks = append(chunks, c.emit(len(chunks), joined, pointer, pages))
		if c.overlap > 0 {
			words := strings.Fields(joined)
			if len(words) > c.overlap {
				words = words[len(words)-c.overlap:]
			}
			window = []string{strings.Join(words, " ")}
		} else {
			window = nil
		}
	}
	if len(window) > 0 {
		chunks = append(chunks, c.emit(len(chunks), strings.Join(window, " "), pointer, pages))
	}
	return chunks
}

func (c *Chunker) emit(seq int, text string, pointer int, pages []domain.PageText) domain.Chunk {
	return domain.Chunk{
		ID:       fmt.Sprintf("chunk_%d", seq),
		Text:     text,
		Page:     inferPage(pointer, pages),
		Metadata: map[string]string{},
	}
}

// inferPage maps a cumulative character offset into the page table: the
// first page whose cumulative text length reaches the offset wins. Offsets
// past the end of the table map to the last page.
func inferPage(pointer int, pages []domain.PageText) string {
	if len(pages) == 0 {
		return domain.PageUnknown
	}
	cumulative := 0
	for _, page := range pages {
		cumulative += len(page.Text)
		if pointer <= cumulative {
			return fmt.Sprintf("%d", page.Number)
		}
	}
	return fmt.Sprintf("%d", pages[len(pages)-1].Number)
}

// SplitSentences splits text on sentence-ending punctuation (. ! ?)
// followed by whitespace. The heuristic has no lookahead for
// abbreviations; "Dr. Smith" splits after "Dr.".
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var (
		sentences []string
		start     int
		runes     = []rune(text)
	)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if (ch == '.' || ch == '!' || ch == '?') && i+1 < len(runes) && isSpace(runes[i+1]) {
			sentence := strings.TrimSpace(string(runes[start : i+1]))
			if sentence != "" {
				sentences = append(sentences, sentence)
			}
			// skip the whitespace run
			j := i + 1
			for j < len(runes) && isSpace(runes[j]) {
				j++
			}
			start = j
			i = j - 1
		}
	}
	if start < len(runes) {
		tail := strings.TrimSpace(string(runes[start:]))
		if tail != "" {
			sentences = append(sentences, tail)
		}
	}
	return sentences
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}
