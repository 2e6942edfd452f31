package generators

import (
	"regexp"
	"strings"
)

// RedactionMarker replaces blocked terms in filtered text.
const RedactionMarker = "[removed]"

// blockedTerms is the closed blocklist. Matching is a naive substring
// scan with no context awareness.
var blockedTerms = []string{
	"hate",
	"kill",
	"slur",
}

// jargonGlosses maps domain jargon to a plain-language gloss. The original
// term is kept in parentheses so the rewrite stays traceable.
var jargonGlosses = []struct {
	jargon  string
	plain   string
	pattern *regexp.Regexp
}{
	{
		jargon:  "non-stationary diffusion",
		plain:   "changing diffusion patterns",
		pattern: regexp.MustCompile(`(?i)non-stationary diffusion`),
	},
	{
		jargon:  "anthropogenic",
		plain:   "human-caused",
		pattern: regexp.MustCompile(`(?i)anthropogenic`),
	},
}

// EnforceSafety applies the lexical safety filter: blocked terms become
// the redaction marker, jargon becomes its gloss followed by the original
// in parentheses.
func EnforceSafety(text string) string {
	lowered := strings.ToLower(text)
	for _, term := range blockedTerms {
		if strings.Contains(lowered, term) {
			text = strings.ReplaceAll(text, term, RedactionMarker)
		}
	}
	for _, gloss := range jargonGlosses {
		replacement := gloss.plain + ` (formerly "` + gloss.jargon + `")`
		text = gloss.pattern.ReplaceAllLiteralString(text, replacement)
	}
	return text
}

// SafetyDirectives returns the safety rules included in generation
// prompts.
func SafetyDirectives() []string {
	return []string{
		"Do not include hateful or violent language.",
		"Prefer people-first, accessible phrasing.",
		"Flag if provenance is missing before presenting a claim.",
	}
}
