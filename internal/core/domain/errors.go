package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedFormat indicates a document type the loader cannot read.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotIngested indicates generate was called before a document
	// was ingested.
	ErrNotIngested = errors.New("no document ingested")

	// ErrNoOutput indicates a revision was requested before any
	// generation produced an output.
	ErrNoOutput = errors.New("no generation output to revise")

	// ErrUnknownSection indicates a revision targeted a section other
	// than slides, script or notes.
	ErrUnknownSection = errors.New("section not supported for revisions")

	// ErrIndexOutOfRange indicates a revision index outside the target
	// section's block count.
	ErrIndexOutOfRange = errors.New("index outside section range")

	// ErrBackendFailure indicates an embedding or generation backend
	// call failed. The cause is wrapped alongside.
	ErrBackendFailure = errors.New("backend failure")
)
