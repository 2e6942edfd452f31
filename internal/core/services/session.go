package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brieflabs/briefgen/internal/core/domain"
	"github.com/brieflabs/briefgen/internal/core/ports/driven"
	"github.com/brieflabs/briefgen/internal/core/ports/driving"
	"github.com/brieflabs/briefgen/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.SessionService = (*Session)(nil)

// DefaultTopK is the retrieval depth used when the caller passes none.
const DefaultTopK = 5

// Session owns one document's ingest -> generate -> revise lifecycle and
// its conversation log. A session holds exactly one index at a time;
// ingesting a new document discards the previous one.
//
// Sessions are not safe for concurrent use - callers serialize access.
type Session struct {
	id        string
	loader    driven.DocumentLoader
	chunker   driven.TextChunker
	embedder  driven.EmbeddingService
	generator driven.Generator
	logStore  driven.ConversationStore
	newIndex  func() driven.VectorIndex

	retriever *Retriever
	chunks    []domain.Chunk
	output    *domain.GenerationOutput
	log       domain.ConversationLog

	// now is replaceable for deterministic tests.
	now func() time.Time
}

// NewSession creates an empty session. newIndex is invoked once per ingest
// to build a fresh vector index.
func NewSession(
	loader driven.DocumentLoader,
	textChunker driven.TextChunker,
	embedder driven.EmbeddingService,
	generator driven.Generator,
	logStore driven.ConversationStore,
	newIndex func() driven.VectorIndex,
) *Session {
	id := uuid.New().String()
	return &Session{
		id:        id,
		loader:    loader,
		chunker:   textChunker,
		embedder:  embedder,
		generator: generator,
		logStore:  logStore,
		newIndex:  newIndex,
		log:       domain.ConversationLog{SessionID: id},
		now:       time.Now,
	}
}

// SessionID returns the session's unique identifier.
func (s *Session) SessionID() string {
	return s.id
}

// CurrentOutput returns the output of the last Generate call, or nil.
func (s *Session) CurrentOutput() *domain.GenerationOutput {
	return s.output
}

// Conversation returns the session's conversation log.
func (s *Session) Conversation() *domain.ConversationLog {
	return &s.log
}

// Ingest loads and chunks the document at path and builds a fresh
// retriever over it. Any prior index and output are discarded; the
// conversation log carries over for the life of the session.
func (s *Session) Ingest(ctx context.Context, path string) error {
	logger.Section("Ingest")
	text, pages, err := s.loader.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	chunks := s.chunker.Chunk(text, pages)
	logger.Info("Chunked %q into %d chunks", path, len(chunks))

	retriever := NewRetriever(s.embedder, s.newIndex())
	if err := retriever.Build(ctx, chunks); err != nil {
		return fmt.Errorf("build retriever: %w", err)
	}

	s.chunks = chunks
	s.retriever = retriever
	s.output = nil
	return nil
}

// Generate retrieves the topK best chunks for the request, runs the
// configured generation strategy, stores the result as the current output
// and records a user and an assistant turn.
//
// Output replacement and turn appends happen only after every fallible
// step succeeded, so a failed call leaves prior state untouched.
func (s *Session) Generate(
	ctx context.Context,
	request string,
	audience domain.AudienceProfile,
	config domain.GenerationConfig,
	topK int,
) (*domain.GenerationOutput, error) {
	if s.retriever == nil {
		return nil, domain.ErrNotIngested
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	logger.Section("Generate")
	matches, err := s.retriever.Query(ctx, request, topK)
	if err != nil {
		return nil, err
	}

	output, err := s.generator.GenerateOutputs(ctx, request, matches, config, audience)
	if err != nil {
		return nil, fmt.Errorf("generate outputs: %w", err)
	}

	s.output = output
	s.log.Append(domain.ConversationTurn{Role: domain.RoleUser, Content: request})
	s.log.Append(domain.ConversationTurn{
		Role:           domain.RoleAssistant,
		Content:        summariseOutput(output),
		OutputSnapshot: output,
	})
	return output, nil
}

// ReviseSection applies a directive-pattern transform to one block of the
// current output, mutating its text in place. Provenance is untouched.
// The applied change is returned and recorded as two conversation turns.
func (s *Session) ReviseSection(section string, index int, directive string) (*domain.ChangeRecord, error) {
	if s.output == nil {
		return nil, domain.ErrNoOutput
	}
	blocks := s.output.Section(section)
	if blocks == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSection, section)
	}
	if index < 0 || index >= len(blocks) {
		return nil, fmt.Errorf("%w: %s[%d] with %d blocks", domain.ErrIndexOutOfRange, section, index, len(blocks))
	}

	before := blocks[index].Text
	after := applyDirective(before, directive)
	blocks[index].Text = after

	change := &domain.ChangeRecord{
		Timestamp:     s.now().UTC(),
		UserRequest:   directive,
		TargetSection: fmt.Sprintf("%s[%d]", section, index),
		Before:        before,
		After:         after,
		Rationale:     fmt.Sprintf("Applied directive %q via rule-based mutation.", directive),
	}

	s.log.Append(domain.ConversationTurn{Role: domain.RoleUser, Content: directive})
	s.log.Append(domain.ConversationTurn{
		Role:         domain.RoleAssistant,
		Content:      fmt.Sprintf("Updated %s[%d]", section, index),
		ChangeRecord: change,
	})
	logger.Info("Revised %s[%d]", section, index)
	return change, nil
}

// SaveConversation persists the conversation log to path.
func (s *Session) SaveConversation(path string) error {
	return s.logStore.Save(&s.log, path)
}

// summariseOutput builds the one-line assistant summary of a generation.
func summariseOutput(output *domain.GenerationOutput) string {
	return fmt.Sprintf("Slides=%d, script sentences=%d, notes=%d, tweets=%d",
		len(output.Slides), len(output.Script), len(output.Notes), len(output.Tweets))
}
