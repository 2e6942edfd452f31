package domain

// PageUnknown is the page marker used when a document carries no page table.
const PageUnknown = "?"

// Chunk represents a contiguous slice of source text with a stable identifier
// and an inferred source page. It is the unit of retrieval and citation.
//
// Chunks live for exactly one session: they are produced by the chunker at
// ingest time and discarded when the next document is ingested.
type Chunk struct {
	// ID is the chunk identifier, unique and stable within a session.
	// Identifiers follow the emission order: "chunk_0", "chunk_1", ...
	ID string

	// Text is the chunk content, sentences joined with single spaces.
	Text string

	// Page is the inferred source page, or PageUnknown when the
	// document carries no page table.
	Page string

	// Embedding is the vector representation for similarity search.
	// It is nil until the retriever is built and immutable afterwards.
	Embedding []float32

	// Metadata contains chunk-specific key-value pairs.
	Metadata map[string]string
}

// RetrievalMatch pairs a chunk with its similarity score for one query.
// Matches are ephemeral: they are recomputed per query and never persisted
// beyond a single generation call.
type RetrievalMatch struct {
	// Chunk references the matched chunk. The match does not own it;
	// the session's index does.
	Chunk *Chunk

	// Score is the cosine similarity against the query embedding.
	Score float64
}

// PageText is one entry of a document's ordered page table.
type PageText struct {
	// Number is the 1-based page number.
	Number int

	// Text is the raw text of that page.
	Text string
}
