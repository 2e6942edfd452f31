package domain

// Provenance is a citation snapshot attached to generated content.
//
// It is copied from the originating retrieval match at generation time,
// never held as a reference into the index: a provenance entry stays valid
// even after the chunk that produced it is mutated or discarded.
type Provenance struct {
	// ChunkID is the identifier of the cited chunk.
	ChunkID string `json:"chunk_id"`

	// Page is the cited source page, or PageUnknown.
	Page string `json:"page"`

	// Score is the retrieval score at generation time.
	Score float64 `json:"score"`
}

// ContentBlock is one unit of generated content with its citations.
// Text is mutable so revisions can rewrite it in place; provenance is
// untouched by revisions.
type ContentBlock struct {
	Text       string       `json:"text"`
	Provenance []Provenance `json:"provenance,omitempty"`
}

// GenerationOutput is the audience-tailored artifact bundle produced by one
// generation call: five named ordered sections plus a metadata map.
//
// Invariant: every block's provenance, if non-empty, references chunk IDs
// that existed in the session's index at generation time.
type GenerationOutput struct {
	Slides   []ContentBlock `json:"slides"`
	Script   []ContentBlock `json:"script"`
	Notes    []ContentBlock `json:"notes"`
	Tweets   []ContentBlock `json:"tweets"`
	LinkedIn []ContentBlock `json:"linkedin"`

	// Metadata carries instruction, audience, style, duration and an
	// optional generator tag.
	Metadata map[string]string `json:"metadata"`
}

// Revisable section names accepted by SessionService.ReviseSection.
const (
	SectionSlides = "slides"
	SectionScript = "script"
	SectionNotes  = "notes"
)

// Section returns the named revisable section, or nil when the name is not
// one of slides, script or notes. The returned slice aliases the output so
// callers can mutate blocks in place.
func (o *GenerationOutput) Section(name string) []ContentBlock {
	switch name {
	case SectionSlides:
		return o.Slides
	case SectionScript:
		return o.Script
	case SectionNotes:
		return o.Notes
	default:
		return nil
	}
}
