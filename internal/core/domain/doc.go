// Package domain defines the core business entities for briefgen.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Chunk: A provenance-bearing slice of source text, the unit of retrieval
//   - RetrievalMatch: A chunk ranked against a free-text request
//   - Provenance: A citation snapshot attached to generated content
//   - GenerationOutput: The audience-tailored artifact bundle
//   - ConversationLog: The append-only record of one session
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
