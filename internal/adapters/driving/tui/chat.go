// Package tui implements the interactive revision loop for chat
// sessions.
//
// The model renders the current output bundle and accepts line commands:
//
//	revise <section> <index> <directive>
//	save <path>
//	quit
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brieflabs/briefgen/internal/adapters/driving/styles"
	"github.com/brieflabs/briefgen/internal/core/ports/driving"
)

// Model is the bubbletea model for the revision loop.
type Model struct {
	session driving.SessionService
	styles  *styles.Styles
	input   textinput.Model
	status  string
	isError bool
}

// New creates a revision loop over an already-generated session.
func New(session driving.SessionService) Model {
	input := textinput.New()
	input.Placeholder = "revise <section> <index> <directive>  |  save <path>  |  quit"
	input.Focus()
	input.CharLimit = 256

	return Model{
		session: session,
		styles:  styles.DefaultStyles(),
		input:   input,
		status:  "Session ready. Revise a block or type quit to exit.",
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			return m.runCommand(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runCommand dispatches one input line.
func (m Model) runCommand(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "quit", "exit":
		return m, tea.Quit

	case "save":
		if len(fields) != 2 {
			return m.fail("usage: save <path>"), nil
		}
		if err := m.session.SaveConversation(fields[1]); err != nil {
			return m.fail(fmt.Sprintf("save failed: %v", err)), nil
		}
		return m.ok(fmt.Sprintf("Conversation log saved to %s", fields[1])), nil

	case "revise":
		section, index, directive, err := parseRevise(fields)
		if err != nil {
			return m.fail(err.Error()), nil
		}
		change, err := m.session.ReviseSection(section, index, directive)
		if err != nil {
			return m.fail(fmt.Sprintf("revise failed: %v", err)), nil
		}
		return m.ok(fmt.Sprintf("Updated %s\n  before: %s\n  after:  %s",
			change.TargetSection, change.Before, change.After)), nil

	default:
		return m.fail(fmt.Sprintf("unknown command %q (revise, save, quit)", fields[0])), nil
	}
}

// parseRevise validates a revise command line.
func parseRevise(fields []string) (section string, index int, directive string, err error) {
	if len(fields) < 4 {
		return "", 0, "", fmt.Errorf("usage: revise <section> <index> <directive>")
	}
	index, err = strconv.Atoi(fields[2])
	if err != nil {
		return "", 0, "", fmt.Errorf("invalid index %q", fields[2])
	}
	return fields[1], index, strings.Join(fields[3:], " "), nil
}

func (m Model) ok(status string) Model {
	m.status = status
	m.isError = false
	return m
}

func (m Model) fail(status string) Model {
	m.status = status
	m.isError = true
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	if output := m.session.CurrentOutput(); output != nil {
		b.WriteString(m.styles.RenderOutput(output))
		b.WriteString("\n")
	}

	if m.status != "" {
		if m.isError {
			b.WriteString(m.styles.Error.Render(m.status))
		} else {
			b.WriteString(m.styles.Success.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}
