package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brieflabs/briefgen/internal/core/domain"
)

func sampleLog() *domain.ConversationLog {
	return &domain.ConversationLog{
		SessionID: "session-1",
		Turns: []domain.ConversationTurn{
			{Role: domain.RoleUser, Content: "summarize for policymakers"},
			{
				Role:    domain.RoleAssistant,
				Content: "Slides=3, script sentences=6, notes=3, tweets=2",
				OutputSnapshot: &domain.GenerationOutput{
					Slides: []domain.ContentBlock{{Text: "Slide 1 - Insight: costs fell."}},
				},
			},
			{Role: domain.RoleUser, Content: "shorter"},
			{
				Role:    domain.RoleAssistant,
				Content: "Updated slides[0]",
				ChangeRecord: &domain.ChangeRecord{
					Timestamp:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
					UserRequest:   "shorter",
					TargetSection: "slides[0]",
					Before:        "long text",
					After:         "long...",
					Rationale:     `Applied directive "shorter" via rule-based mutation.`,
				},
			},
		},
	}
}

func TestStore_SaveWritesIndentedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	require.NoError(t, NewStore().Save(sampleLog(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"session_id\"")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "session-1", doc["session_id"])
	assert.NotEmpty(t, doc["saved_at"])
}

func TestStore_FlattensChangeRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	require.NoError(t, NewStore().Save(sampleLog(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Turns []map[string]any `json:"turns"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Turns, 4)

	revision := doc.Turns[3]
	assert.Equal(t, "2025-06-01T12:00:00Z", revision["timestamp"])
	assert.Equal(t, "shorter", revision["user_request"])
	assert.Equal(t, "slides[0]", revision["target_section"])
	assert.Equal(t, "long text", revision["before"])
	assert.Equal(t, "long...", revision["after"])

	// Plain turns carry only role and content.
	assert.NotContains(t, doc.Turns[0], "target_section")
}

func TestStore_DoesNotPersistOutputSnapshots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	require.NoError(t, NewStore().Save(sampleLog(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Slide 1 - Insight")
}

func TestStore_SaveFailsOnBadPath(t *testing.T) {
	err := NewStore().Save(sampleLog(), filepath.Join(t.TempDir(), "missing", "log.json"))
	assert.Error(t, err)
}
