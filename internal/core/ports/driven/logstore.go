package driven

import "github.com/brieflabs/briefgen/internal/core/domain"

// ConversationStore persists a session's conversation log.
//
// The persisted document (session id plus ordered turns, each turn's change
// record flattened to scalar fields) is the only durable format the core
// owns. Output snapshots are not persisted.
type ConversationStore interface {
	// Save writes the log to path, replacing any existing file.
	Save(log *domain.ConversationLog, path string) error
}
