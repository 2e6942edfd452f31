// Package file persists conversation logs as JSON documents.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/brieflabs/briefgen/internal/core/domain"
	"github.com/brieflabs/briefgen/internal/core/ports/driven"
	"github.com/brieflabs/briefgen/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.ConversationStore = (*Store)(nil)

// Store writes conversation logs to local JSON files.
type Store struct{}

// NewStore creates a filesystem conversation store.
func NewStore() *Store {
	return &Store{}
}

// persistedLog is the on-disk document shape. Output snapshots are
// deliberately not persisted: the log records the dialogue and the
// applied changes, not full generations.
type persistedLog struct {
	SessionID string          `json:"session_id"`
	SavedAt   string          `json:"saved_at"`
	Turns     []persistedTurn `json:"turns"`
}

// persistedTurn flattens the change record into the turn.
type persistedTurn struct {
	Role          string `json:"role"`
	Content       string `json:"content"`
	Timestamp     string `json:"timestamp,omitempty"`
	UserRequest   string `json:"user_request,omitempty"`
	TargetSection string `json:"target_section,omitempty"`
	Before        string `json:"before,omitempty"`
	After         string `json:"after,omitempty"`
	Rationale     string `json:"rationale,omitempty"`
}

// Save writes the log to path as indented JSON.
func (s *Store) Save(log *domain.ConversationLog, path string) error {
	doc := persistedLog{
		SessionID: log.SessionID,
		SavedAt:   time.Now().UTC().Format(time.RFC3339),
		Turns:     make([]persistedTurn, len(log.Turns)),
	}
	for i, turn := range log.Turns {
		p := persistedTurn{
			Role:    turn.Role,
			Content: turn.Content,
		}
		if change := turn.ChangeRecord; change != nil {
			p.Timestamp = change.Timestamp.Format(time.RFC3339)
			p.UserRequest = change.UserRequest
			p.TargetSection = change.TargetSection
			p.Before = change.Before
			p.After = change.After
			p.Rationale = change.Rationale
		}
		doc.Turns[i] = p
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal conversation log: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write conversation log: %w", err)
	}
	logger.Info("Saved conversation log to %q (%d turns)", path, len(log.Turns))
	return nil
}
