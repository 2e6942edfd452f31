package rulebased

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brieflabs/briefgen/internal/core/domain"
)

// matchFixture builds retrieval matches whose chunks together carry the
// given number of single-clause sentences.
func matchFixture(sentences int) []domain.RetrievalMatch {
	var matches []domain.RetrievalMatch
	perChunk := 5
	for start := 0; start < sentences; start += perChunk {
		end := start + perChunk
		if end > sentences {
			end = sentences
		}
		var parts []string
		for i := start; i < end; i++ {
			parts = append(parts, fmt.Sprintf("Finding number %d holds.", i))
		}
		chunk := &domain.Chunk{
			ID:   fmt.Sprintf("chunk_%d", len(matches)),
			Text: strings.Join(parts, " "),
			Page: fmt.Sprintf("%d", len(matches)+1),
		}
		matches = append(matches, domain.RetrievalMatch{Chunk: chunk, Score: 0.9 - 0.1*float64(len(matches))})
	}
	return matches
}

func plainAudience() domain.AudienceProfile {
	return domain.AudienceProfile{Label: "Policymakers", Style: domain.StylePlain}
}

func generate(t *testing.T, matches []domain.RetrievalMatch, config domain.GenerationConfig) *domain.GenerationOutput {
	t.Helper()
	output, err := New().GenerateOutputs(context.Background(), "summarize", matches, config, plainAudience())
	require.NoError(t, err)
	return output
}

func TestGenerator_Name(t *testing.T) {
	assert.Equal(t, "rule", New().Name())
}

func TestGenerator_Budgets30s(t *testing.T) {
	config := domain.NewGenerationConfig(domain.Duration30s, domain.StylePlain)
	output := generate(t, matchFixture(12), config)

	assert.Len(t, output.Slides, 3)
	assert.LessOrEqual(t, len(output.Script), 6)
	assert.Len(t, output.Notes, 3)
	assert.Len(t, output.Tweets, 6)
}

func TestGenerator_Budgets5min(t *testing.T) {
	config := domain.NewGenerationConfig(domain.Duration5min, domain.StylePlain)
	output := generate(t, matchFixture(40), config)

	assert.Len(t, output.Slides, 7)
	assert.LessOrEqual(t, len(output.Script), 30)
	assert.Len(t, output.Tweets, 14)
}

func TestGenerator_SlidesCappedByAvailableSentences(t *testing.T) {
	config := domain.NewGenerationConfig(domain.Duration30s, domain.StylePlain)
	output := generate(t, matchFixture(1), config)

	assert.Len(t, output.Slides, 1)
	assert.Len(t, output.Script, 1)
}

func TestGenerator_SlideFormat(t *testing.T) {
	config := domain.NewGenerationConfig(domain.Duration30s, domain.StylePlain)
	output := generate(t, matchFixture(3), config)

	require.NotEmpty(t, output.Slides)
	assert.Equal(t, "Slide 1 - Plain-language take: Finding number 0 holds.", output.Slides[0].Text)
}

func TestGenerator_StylePrefixes(t *testing.T) {
	tests := []struct {
		style  domain.AudienceStyle
		prefix string
	}{
		{domain.StyleTechnical, "Technical insight:"},
		{domain.StylePlain, "Plain-language take:"},
		{domain.StylePress, "Headline:"},
		{domain.AudienceStyle("casual"), "Insight:"},
	}
	for _, tc := range tests {
		t.Run(string(tc.style), func(t *testing.T) {
			config := domain.NewGenerationConfig(domain.Duration30s, tc.style)
			audience := domain.AudienceProfile{Label: "A", Style: tc.style}
			output, err := New().GenerateOutputs(context.Background(), "summarize", matchFixture(2), config, audience)
			require.NoError(t, err)
			require.NotEmpty(t, output.Slides)
			assert.Contains(t, output.Slides[0].Text, tc.prefix)
		})
	}
}

func TestGenerator_SpeakerNotesInheritSlideProvenance(t *testing.T) {
	config := domain.NewGenerationConfig(domain.Duration30s, domain.StylePlain)
	output := generate(t, matchFixture(5), config)

	require.Len(t, output.Notes, 3)
	assert.Equal(t, "Speaker note 1: Expand on Finding number 0 holds. with a visual cue.", output.Notes[0].Text)
	assert.Equal(t, output.Slides[0].Provenance, output.Notes[0].Provenance)
}

func TestGenerator_NotesDisabled(t *testing.T) {
	config := domain.NewGenerationConfig(domain.Duration30s, domain.StylePlain)
	config.IncludeSpeakerNotes = false
	output := generate(t, matchFixture(5), config)

	assert.Empty(t, output.Notes)
	assert.Len(t, output.Slides, 3)
}

func TestGenerator_TweetFormat(t *testing.T) {
	config := domain.NewGenerationConfig(domain.Duration30s, domain.StylePlain)
	output := generate(t, matchFixture(2), config)

	require.NotEmpty(t, output.Tweets)
	assert.Equal(t, "Finding number 0 holds. (chunk_0@p1)", output.Tweets[0].Text)
}

func TestGenerator_TweetTruncatedTo260(t *testing.T) {
	long := strings.Repeat("Very long clause keeps going and going. ", 12)
	chunk := &domain.Chunk{ID: "chunk_0", Text: long, Page: "1"}
	matches := []domain.RetrievalMatch{{Chunk: chunk, Score: 0.5}}

	config := domain.NewGenerationConfig(domain.Duration30s, domain.StylePlain)
	output := generate(t, matches, config)

	for _, tweet := range output.Tweets {
		assert.LessOrEqual(t, len([]rune(tweet.Text)), 260)
	}
}

func TestGenerator_LinkedInMergesProvenance(t *testing.T) {
	config := domain.NewGenerationConfig(domain.Duration90s, domain.StylePlain)
	output := generate(t, matchFixture(8), config)

	require.Len(t, output.LinkedIn, 1)
	summary := output.LinkedIn[0]
	assert.LessOrEqual(t, len([]rune(summary.Text)), 900)
	// One provenance entry per merged sentence, duplicates preserved.
	assert.Len(t, summary.Provenance, 5)
	for _, p := range summary.Provenance {
		assert.Equal(t, "chunk_0", p.ChunkID)
	}
}

func TestGenerator_OptionalSectionsDisabled(t *testing.T) {
	config := domain.NewGenerationConfig(domain.Duration30s, domain.StylePlain)
	config.IncludeTweets = false
	config.IncludeLinkedIn = false
	output := generate(t, matchFixture(5), config)

	assert.Empty(t, output.Tweets)
	assert.Empty(t, output.LinkedIn)
}

func TestGenerator_ProvenanceInvariant(t *testing.T) {
	matches := matchFixture(12)
	known := map[string]bool{}
	for _, m := range matches {
		known[m.Chunk.ID] = true
	}

	config := domain.NewGenerationConfig(domain.Duration90s, domain.StylePlain)
	output := generate(t, matches, config)

	sections := [][]domain.ContentBlock{output.Slides, output.Script, output.Notes, output.Tweets, output.LinkedIn}
	for _, blocks := range sections {
		for _, block := range blocks {
			require.NotEmpty(t, block.Provenance)
			for _, p := range block.Provenance {
				assert.True(t, known[p.ChunkID], "unknown chunk id %s", p.ChunkID)
			}
		}
	}
}

func TestGenerator_ProvenanceIsSnapshot(t *testing.T) {
	matches := matchFixture(3)
	config := domain.NewGenerationConfig(domain.Duration30s, domain.StylePlain)
	output := generate(t, matches, config)

	require.NotEmpty(t, output.Slides)
	cite := output.Slides[0].Provenance[0]
	assert.Equal(t, "chunk_0", cite.ChunkID)
	assert.Equal(t, "1", cite.Page)

	// Mutating the chunk after generation must not affect the citation.
	matches[0].Chunk.Page = "99"
	assert.Equal(t, "1", output.Slides[0].Provenance[0].Page)
}

func TestGenerator_SafetyFilterApplied(t *testing.T) {
	chunk := &domain.Chunk{ID: "chunk_0", Text: "Models kill uncertainty. Anthropogenic drivers dominate.", Page: "1"}
	matches := []domain.RetrievalMatch{{Chunk: chunk, Score: 1}}

	config := domain.NewGenerationConfig(domain.Duration30s, domain.StylePlain)
	output := generate(t, matches, config)

	require.NotEmpty(t, output.Script)
	assert.Equal(t, "Models [removed] uncertainty.", output.Script[0].Text)
	assert.Contains(t, output.Script[1].Text, `human-caused (formerly "anthropogenic")`)
}

func TestGenerator_Metadata(t *testing.T) {
	config := domain.NewGenerationConfig(domain.Duration90s, domain.StylePlain)
	output := generate(t, matchFixture(4), config)

	assert.Equal(t, map[string]string{
		"instruction": "summarize",
		"audience":    "Policymakers",
		"style":       "plain",
		"duration":    "90s",
	}, output.Metadata)
}

func TestGenerator_Deterministic(t *testing.T) {
	matches := matchFixture(10)
	config := domain.NewGenerationConfig(domain.Duration90s, domain.StylePlain)

	first := generate(t, matches, config)
	second := generate(t, matches, config)
	assert.Equal(t, first, second)
}

func TestGenerator_NoMatches(t *testing.T) {
	config := domain.NewGenerationConfig(domain.Duration30s, domain.StylePlain)
	output := generate(t, nil, config)

	assert.Empty(t, output.Slides)
	assert.Empty(t, output.Script)
	assert.Empty(t, output.Tweets)
	// The summary block is emitted even when no sentences are available.
	require.Len(t, output.LinkedIn, 1)
	assert.Empty(t, output.LinkedIn[0].Text)
}
