package domain

import "time"

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChangeRecord captures one applied revision. Records are immutable once
// created; the session log keeps them for audit.
type ChangeRecord struct {
	// Timestamp is when the revision was applied (UTC).
	Timestamp time.Time

	// UserRequest is the revision directive as typed by the user.
	UserRequest string

	// TargetSection names the revised block, e.g. "slides[3]".
	TargetSection string

	// Before is the block text prior to the revision.
	Before string

	// After is the block text after the revision.
	After string

	// Rationale explains which transformation was applied.
	Rationale string
}

// ConversationTurn is one entry in a session's conversation log.
type ConversationTurn struct {
	// Role is RoleUser or RoleAssistant.
	Role string

	// Content is the turn text: the request or directive for user turns,
	// a one-line summary for assistant turns.
	Content string

	// OutputSnapshot carries the full generation output on assistant
	// turns that answered a generate call. Not persisted.
	OutputSnapshot *GenerationOutput

	// ChangeRecord carries the applied change on assistant turns that
	// answered a revision.
	ChangeRecord *ChangeRecord
}

// ConversationLog records every turn of one session in order.
// It is append-only for the life of the session.
type ConversationLog struct {
	// SessionID identifies the owning session.
	SessionID string

	// Turns is the ordered turn sequence.
	Turns []ConversationTurn
}

// Append adds a turn to the log.
func (l *ConversationLog) Append(turn ConversationTurn) {
	l.Turns = append(l.Turns, turn)
}
