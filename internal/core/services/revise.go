package services

import "strings"

// reviseJargon is the closed substitution table for "less technical"
// directives. Naive substring replacement, no context awareness.
var reviseJargon = map[string]string{
	"electrolyzer": "hydrogen machine",
	"provenance":   "source",
}

// visualCue is appended verbatim for "more visual" directives.
const visualCue = " [Add: photo cue or chart icon]"

// minShortenWords is the floor for the "shorter" directive: a block never
// shrinks below this many words.
const minShortenWords = 5

// applyDirective transforms block text according to the fixed directive
// patterns. Every matching pattern applies, in this order: less technical,
// more visual, shorter. Unmatched directives leave the text unchanged.
func applyDirective(text, directive string) string {
	lowered := strings.ToLower(directive)
	if strings.Contains(lowered, "less technical") {
		for jargon, plain := range reviseJargon {
			text = strings.ReplaceAll(text, jargon, plain)
		}
	}
	if strings.Contains(lowered, "more visual") {
		text += visualCue
	}
	if strings.Contains(lowered, "shorter") {
		words := strings.Fields(text)
		keep := len(words) / 2
		if keep < minShortenWords {
			keep = minShortenWords
		}
		if keep > len(words) {
			keep = len(words)
		}
		// Trimming a previous ellipsis keeps repeated "shorter" stable
		// once the word floor is reached.
		text = strings.TrimSuffix(strings.Join(words[:keep], " "), "...") + "..."
	}
	return text
}
