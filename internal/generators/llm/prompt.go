package llm

import (
	"fmt"
	"strings"

	"github.com/brieflabs/briefgen/internal/core/domain"
)

// styleTips maps each audience register to a writing hint for the model.
var styleTips = map[domain.AudienceStyle]string{
	domain.StyleTechnical: "Use precise terminology, cite equations inline with LaTeX",
	domain.StylePlain:     "Favor analogies, avoid acronyms without expansion",
	domain.StylePress:     "Write punchy, quotable bullets with impact stats",
}

// durationBudgets maps the target duration to the context budget quoted
// in the prompt.
var durationBudgets = map[domain.Duration]int{
	domain.Duration30s:  120,
	domain.Duration90s:  260,
	domain.Duration5min: 700,
}

// defaultDurationBudget is quoted for durations outside the table.
const defaultDurationBudget = 300

// defaultSafetyLine is quoted when no safety directives are supplied.
const defaultSafetyLine = "Avoid offensive or exclusionary language. Prefer accessible descriptions."

// formatHint tells the model what shape each output key takes.
const formatHint = `{"slides": ["Slide text", "Provenance chunk id"], ` +
	`"script": ["Sentence", "Provenance chunk id"], ` +
	`"notes": ["Note", "Reference"], ` +
	`"tweets": ["Tweet"], ` +
	`"linkedin": ["Summary"]}`

// buildPrompt renders the single grounded prompt for one generation call:
// instruction, audience, tone and style guidance, context budget, safety
// directives, every retrieved chunk as a tagged source block, and the
// JSON answer contract.
func buildPrompt(
	instruction string,
	matches []domain.RetrievalMatch,
	audience domain.AudienceProfile,
	duration domain.Duration,
	safetyDirectives []string,
) string {
	sources := make([]string, 0, len(matches))
	for i, match := range matches {
		sources = append(sources, fmt.Sprintf("[Source %d | chunk=%s | page=%s | score=%.3f]\n%s",
			i+1, match.Chunk.ID, match.Chunk.Page, match.Score, match.Chunk.Text))
	}

	tone := strings.Join(audience.ToneDirectives, ", ")
	if tone == "" {
		tone = "default"
	}
	safety := strings.Join(safetyDirectives, "\n")
	if safety == "" {
		safety = defaultSafetyLine
	}
	maxSentences, ok := durationBudgets[duration]
	if !ok {
		maxSentences = defaultDurationBudget
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are briefgen, a fact-grounded assistant that writes audience-specific presentations.\n")
	fmt.Fprintf(&b, "Instruction: %s\n", instruction)
	fmt.Fprintf(&b, "Audience: %s\n", audience.Label)
	fmt.Fprintf(&b, "Tone guidance: %s\n", tone)
	fmt.Fprintf(&b, "Style tips: %s\n", styleTips[audience.Style])
	fmt.Fprintf(&b, "Context budget: %d sentences.\n", maxSentences)
	fmt.Fprintf(&b, "Safety requirements: %s\n", safety)
	fmt.Fprintf(&b, "Use inline citations of the form (chunk-id @ page) for every sentence referencing the sources below.\n")
	fmt.Fprintf(&b, "\nSources:\n%s\n", strings.Join(sources, "\n\n"))
	fmt.Fprintf(&b, "\nReturn valid JSON with keys: slides, script, notes, tweets, linkedin.\n")
	fmt.Fprintf(&b, "Format hint: %s", formatHint)
	return b.String()
}
