package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/brieflabs/briefgen/internal/adapters/driving/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat [paper] [instruction]",
	Short: "Generate content, then revise it interactively",
	Long: `Ingests the paper, generates the initial content bundle and opens
an interactive loop where individual blocks can be revised:

  revise <section> <index> <directive>
  save <path>
  quit

Sections: slides, script, notes. Directives are pattern matched, e.g.
"less technical", "more visual", "shorter".`,
	Args: cobra.ExactArgs(2),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&generateAudience, "audience", "a", "General audience", "audience label")
	chatCmd.Flags().StringVarP(&generateStyle, "style", "s", "plain", "writing style: technical, plain or press")
	chatCmd.Flags().StringVarP(&generateDuration, "duration", "d", "90s", "target duration: 30s, 90s or 5min")
	chatCmd.Flags().StringSliceVar(&generateTone, "tone", nil, "tone directives, highest priority first")
	chatCmd.Flags().IntVarP(&generateTopK, "top-k", "k", 0, "retrieval depth (default 5)")
	chatCmd.Flags().StringVarP(&generateGenerator, "generator", "g", generatorRules, "generation strategy: rules or llm")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	paper, instruction := args[0], args[1]

	audience, config, err := buildRequest()
	if err != nil {
		return err
	}

	session, cleanup, err := buildSession(generateGenerator)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()
	if err := session.Ingest(ctx, paper); err != nil {
		return fmt.Errorf("ingest %q: %w", paper, err)
	}
	if _, err := session.Generate(ctx, instruction, audience, config, generateTopK); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	program := tea.NewProgram(tui.New(session))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("chat session: %w", err)
	}
	return nil
}
