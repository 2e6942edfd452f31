// Package styles provides the colour theme and output rendering shared
// by the CLI and the chat TUI.
package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brieflabs/briefgen/internal/core/domain"
)

// Theme defines the colour palette.
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Muted:     lipgloss.Color("#6C7086"), // Medium gray
		Success:   lipgloss.Color("#A6E3A1"), // Green
		Error:     lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the output header.
	Title lipgloss.Style

	// Section style for section headers.
	Section lipgloss.Style

	// Block style for content block text.
	Block lipgloss.Style

	// Citation style for provenance annotations.
	Citation lipgloss.Style

	// Success style for confirmation messages.
	Success lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Block: lipgloss.NewStyle(),

		Citation: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// sectionOrder fixes the rendering order of output sections.
var sectionOrder = []struct {
	title  string
	blocks func(*domain.GenerationOutput) []domain.ContentBlock
}{
	{"Slides", func(o *domain.GenerationOutput) []domain.ContentBlock { return o.Slides }},
	{"Script", func(o *domain.GenerationOutput) []domain.ContentBlock { return o.Script }},
	{"Speaker notes", func(o *domain.GenerationOutput) []domain.ContentBlock { return o.Notes }},
	{"Tweets", func(o *domain.GenerationOutput) []domain.ContentBlock { return o.Tweets }},
	{"LinkedIn", func(o *domain.GenerationOutput) []domain.ContentBlock { return o.LinkedIn }},
}

// RenderOutput renders a full generation output for terminal display.
func (s *Styles) RenderOutput(output *domain.GenerationOutput) string {
	var b strings.Builder

	title := "Generated content"
	if audience := output.Metadata["audience"]; audience != "" {
		title = fmt.Sprintf("Generated content for %s", audience)
	}
	b.WriteString(s.Title.Render(title))
	b.WriteString("\n")

	for _, section := range sectionOrder {
		blocks := section.blocks(output)
		if len(blocks) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(s.Section.Render(section.title))
		b.WriteString("\n")
		for i, block := range blocks {
			b.WriteString(s.Block.Render(fmt.Sprintf("  [%d] %s", i, block.Text)))
			b.WriteString("\n")
			if citation := formatProvenance(block.Provenance); citation != "" {
				b.WriteString(s.Citation.Render("      " + citation))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

// formatProvenance renders a block's citations on one line.
func formatProvenance(entries []domain.Provenance) string {
	if len(entries) == 0 {
		return ""
	}
	parts := make([]string, len(entries))
	for i, p := range entries {
		parts[i] = fmt.Sprintf("%s@p%s (%.3f)", p.ChunkID, p.Page, p.Score)
	}
	return "sources: " + strings.Join(parts, ", ")
}
