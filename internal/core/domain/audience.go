package domain

// AudienceStyle selects the register generated content is written in.
type AudienceStyle string

// Supported audience styles.
const (
	StyleTechnical AudienceStyle = "technical"
	StylePlain     AudienceStyle = "plain"
	StylePress     AudienceStyle = "press"
)

// ParseAudienceStyle validates a style string. Unknown values return
// ErrInvalidInput.
func ParseAudienceStyle(s string) (AudienceStyle, error) {
	switch AudienceStyle(s) {
	case StyleTechnical, StylePlain, StylePress:
		return AudienceStyle(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// Duration is the target presentation length. It indexes the slide and
// script budgets used during generation.
type Duration string

// Supported durations.
const (
	Duration30s  Duration = "30s"
	Duration90s  Duration = "90s"
	Duration5min Duration = "5min"
)

// ParseDuration validates a duration string. Unknown values return
// ErrInvalidInput.
func ParseDuration(s string) (Duration, error) {
	switch Duration(s) {
	case Duration30s, Duration90s, Duration5min:
		return Duration(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// AudienceProfile describes who the generated content is for.
type AudienceProfile struct {
	// Label is the display name, e.g. "Policymakers".
	Label string

	// Style is the writing register for this audience.
	Style AudienceStyle

	// ToneDirectives are free-text tone hints passed to generation,
	// in priority order.
	ToneDirectives []string

	// ExpertiseNotes records what the audience can be assumed to know.
	ExpertiseNotes string
}

// GenerationConfig controls which artifacts a generation call produces.
type GenerationConfig struct {
	// Duration selects the slide and script budgets.
	Duration Duration

	// Style is the writing register, normally the audience's.
	Style AudienceStyle

	// IncludeTweets enables the tweet section.
	IncludeTweets bool

	// IncludeLinkedIn enables the LinkedIn summary section.
	IncludeLinkedIn bool

	// IncludeSpeakerNotes enables one speaker note per slide.
	IncludeSpeakerNotes bool

	// SafetyChecks enables the lexical safety filter.
	SafetyChecks bool
}

// NewGenerationConfig returns a config with every optional section enabled,
// which is the default behaviour.
func NewGenerationConfig(duration Duration, style AudienceStyle) GenerationConfig {
	return GenerationConfig{
		Duration:            duration,
		Style:               style,
		IncludeTweets:       true,
		IncludeLinkedIn:     true,
		IncludeSpeakerNotes: true,
		SafetyChecks:        true,
	}
}
