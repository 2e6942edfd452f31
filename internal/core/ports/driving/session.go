package driving

import (
	"context"

	"github.com/brieflabs/briefgen/internal/core/domain"
)

// SessionService owns one document's lifecycle: ingest, generate and an
// optional revision loop, with every turn recorded in the conversation log.
//
// Sessions are single-threaded: callers serialize access, no internal
// locking is provided.
type SessionService interface {
	// Ingest loads and chunks the document at path and builds a fresh
	// retrieval index, discarding any prior index and output.
	Ingest(ctx context.Context, path string) error

	// Generate retrieves the topK best chunks for the request and runs
	// the configured generation strategy. Fails with domain.ErrNotIngested
	// before the first successful Ingest.
	Generate(ctx context.Context, request string, audience domain.AudienceProfile, config domain.GenerationConfig, topK int) (*domain.GenerationOutput, error)

	// ReviseSection applies a directive-pattern transform to one block
	// of the current output and returns the resulting change record.
	ReviseSection(section string, index int, directive string) (*domain.ChangeRecord, error)

	// CurrentOutput returns the output of the last Generate call, or nil.
	CurrentOutput() *domain.GenerationOutput

	// SessionID returns the session's unique identifier.
	SessionID() string

	// SaveConversation persists the conversation log to path.
	SaveConversation(path string) error
}
