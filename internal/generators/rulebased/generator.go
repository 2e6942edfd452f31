// Package rulebased implements the deterministic content-generation
// strategy. It allocates safety-filtered sentences from the retrieval
// matches into duration-budgeted output sections without any model call,
// so identical inputs always produce identical output.
package rulebased

import (
	"context"
	"fmt"
	"strings"

	"github.com/brieflabs/briefgen/internal/chunker"
	"github.com/brieflabs/briefgen/internal/core/domain"
	"github.com/brieflabs/briefgen/internal/core/ports/driven"
	"github.com/brieflabs/briefgen/internal/generators"
)

// Ensure Generator implements the interface.
var _ driven.Generator = (*Generator)(nil)

// slideBudgets caps the slide count per duration.
var slideBudgets = map[domain.Duration]int{
	domain.Duration30s:  3,
	domain.Duration90s:  5,
	domain.Duration5min: 7,
}

// scriptBudgets caps the narration script sentence count per duration.
var scriptBudgets = map[domain.Duration]int{
	domain.Duration30s:  6,
	domain.Duration90s:  14,
	domain.Duration5min: 30,
}

// tweetLimit is the tweet character cap (260, leaving headroom for a
// client-added link).
const tweetLimit = 260

// linkedInLimit is the LinkedIn summary character cap.
const linkedInLimit = 900

// linkedInSentences is how many leading sentences the summary merges.
const linkedInSentences = 5

// stylePrefixes label each slide according to the audience register.
var stylePrefixes = map[domain.AudienceStyle]string{
	domain.StyleTechnical: "Technical insight:",
	domain.StylePlain:     "Plain-language take:",
	domain.StylePress:     "Headline:",
}

// defaultPrefix is used when the style is not one of the known registers.
const defaultPrefix = "Insight:"

// Generator is the rule-based strategy.
type Generator struct{}

// New creates a rule-based generator.
func New() *Generator {
	return &Generator{}
}

// Name identifies the strategy.
func (g *Generator) Name() string { return "rule" }

// GenerateOutputs allocates the matches' sentences into the output
// sections. Every emitted block carries provenance copied from its
// originating match.
func (g *Generator) GenerateOutputs(
	_ context.Context,
	instruction string,
	matches []domain.RetrievalMatch,
	config domain.GenerationConfig,
	audience domain.AudienceProfile,
) (*domain.GenerationOutput, error) {
	sentences := collectSentences(matches, config.SafetyChecks)

	slideBudget := budget(slideBudgets, config.Duration)
	scriptBudget := budget(scriptBudgets, config.Duration)

	output := &domain.GenerationOutput{
		Slides:   []domain.ContentBlock{},
		Script:   []domain.ContentBlock{},
		Notes:    []domain.ContentBlock{},
		Tweets:   []domain.ContentBlock{},
		LinkedIn: []domain.ContentBlock{},
		Metadata: map[string]string{
			"instruction": instruction,
			"audience":    audience.Label,
			"style":       string(audience.Style),
			"duration":    string(config.Duration),
		},
	}

	slideCount := slideBudget
	if len(sentences) < slideCount {
		slideCount = len(sentences)
	}
	for idx := 0; idx < slideCount; idx++ {
		output.Slides = append(output.Slides, domain.ContentBlock{
			Text:       fmt.Sprintf("Slide %d - %s %s", idx+1, stylePrefix(audience.Style), sentences[idx].Text),
			Provenance: sentences[idx].Provenance,
		})
		if config.IncludeSpeakerNotes {
			output.Notes = append(output.Notes, domain.ContentBlock{
				Text:       fmt.Sprintf("Speaker note %d: Expand on %s with a visual cue.", idx+1, sentences[idx].Text),
				Provenance: sentences[idx].Provenance,
			})
		}
	}

	scriptCount := scriptBudget
	if len(sentences) < scriptCount {
		scriptCount = len(sentences)
	}
	output.Script = append(output.Script, sentences[:scriptCount]...)

	if config.IncludeTweets {
		tweetCount := slideBudget * 2
		if len(sentences) < tweetCount {
			tweetCount = len(sentences)
		}
		for _, block := range sentences[:tweetCount] {
			cite := block.Provenance[0]
			text := fmt.Sprintf("%s (%s@p%s)", block.Text, cite.ChunkID, cite.Page)
			output.Tweets = append(output.Tweets, domain.ContentBlock{
				Text:       truncate(text, tweetLimit),
				Provenance: block.Provenance,
			})
		}
	}

	if config.IncludeLinkedIn {
		lead := sentences
		if len(lead) > linkedInSentences {
			lead = lead[:linkedInSentences]
		}
		var (
			parts  []string
			merged []domain.Provenance
		)
		for _, block := range lead {
			parts = append(parts, block.Text)
			merged = append(merged, block.Provenance...)
		}
		output.LinkedIn = []domain.ContentBlock{{
			Text:       truncate(strings.Join(parts, " "), linkedInLimit),
			Provenance: merged,
		}}
	}

	return output, nil
}

// collectSentences splits every match into sentences, applies the safety
// filter and attaches a provenance snapshot of the originating match.
func collectSentences(matches []domain.RetrievalMatch, safety bool) []domain.ContentBlock {
	var sentences []domain.ContentBlock
	for _, match := range matches {
		for _, sentence := range chunker.SplitSentences(match.Chunk.Text) {
			text := sentence
			if safety {
				text = generators.EnforceSafety(text)
			}
			sentences = append(sentences, domain.ContentBlock{
				Text: text,
				Provenance: []domain.Provenance{{
					ChunkID: match.Chunk.ID,
					Page:    match.Chunk.Page,
					Score:   match.Score,
				}},
			})
		}
	}
	return sentences
}

func stylePrefix(style domain.AudienceStyle) string {
	if prefix, ok := stylePrefixes[style]; ok {
		return prefix
	}
	return defaultPrefix
}

// budget looks up a duration-indexed cap, defaulting to the medium
// duration for values that slipped past boundary validation.
func budget(table map[domain.Duration]int, duration domain.Duration) int {
	if b, ok := table[duration]; ok {
		return b
	}
	return table[domain.Duration90s]
}

// truncate cuts text to at most limit runes.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
