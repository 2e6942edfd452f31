package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brieflabs/briefgen/internal/adapters/driving/styles"
	"github.com/brieflabs/briefgen/internal/core/domain"
)

var (
	generateAudience  string
	generateStyle     string
	generateDuration  string
	generateTone      []string
	generateTopK      int
	generateGenerator string
	generateSaveLog   string
	generateNoTweets  bool
	generateNoLinked  bool
	generateNoNotes   bool
	generateNoSafety  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [paper] [instruction]",
	Short: "Generate presentation content from a paper",
	Long: `Ingests the paper, retrieves the chunks most relevant to the
instruction and generates the full content bundle in one shot.

Example:
  briefgen generate paper.txt "summarize the key findings" --audience Policymakers --style plain --duration 90s`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateAudience, "audience", "a", "General audience", "audience label")
	generateCmd.Flags().StringVarP(&generateStyle, "style", "s", "plain", "writing style: technical, plain or press")
	generateCmd.Flags().StringVarP(&generateDuration, "duration", "d", "90s", "target duration: 30s, 90s or 5min")
	generateCmd.Flags().StringSliceVar(&generateTone, "tone", nil, "tone directives, highest priority first")
	generateCmd.Flags().IntVarP(&generateTopK, "top-k", "k", 0, "retrieval depth (default 5)")
	generateCmd.Flags().StringVarP(&generateGenerator, "generator", "g", generatorRules, "generation strategy: rules or llm")
	generateCmd.Flags().StringVar(&generateSaveLog, "save-log", "", "write the conversation log to this path")
	generateCmd.Flags().BoolVar(&generateNoTweets, "no-tweets", false, "skip the tweet section")
	generateCmd.Flags().BoolVar(&generateNoLinked, "no-linkedin", false, "skip the LinkedIn summary")
	generateCmd.Flags().BoolVar(&generateNoNotes, "no-notes", false, "skip speaker notes")
	generateCmd.Flags().BoolVar(&generateNoSafety, "no-safety", false, "disable the lexical safety filter")
	rootCmd.AddCommand(generateCmd)
}

// buildRequest turns the generate flags into an audience profile and
// generation config.
func buildRequest() (domain.AudienceProfile, domain.GenerationConfig, error) {
	style, err := domain.ParseAudienceStyle(generateStyle)
	if err != nil {
		return domain.AudienceProfile{}, domain.GenerationConfig{},
			fmt.Errorf("invalid style %q (want technical, plain or press): %w", generateStyle, err)
	}
	duration, err := domain.ParseDuration(generateDuration)
	if err != nil {
		return domain.AudienceProfile{}, domain.GenerationConfig{},
			fmt.Errorf("invalid duration %q (want 30s, 90s or 5min): %w", generateDuration, err)
	}

	tone := generateTone
	if len(tone) == 0 && configStore != nil {
		tone = configStore.GetStringSlice("audience.tone")
	}

	audience := domain.AudienceProfile{
		Label:          generateAudience,
		Style:          style,
		ToneDirectives: tone,
	}
	config := domain.NewGenerationConfig(duration, style)
	config.IncludeTweets = !generateNoTweets
	config.IncludeLinkedIn = !generateNoLinked
	config.IncludeSpeakerNotes = !generateNoNotes
	config.SafetyChecks = !generateNoSafety
	return audience, config, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
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

	output, err := session.Generate(ctx, instruction, audience, config, generateTopK)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	cmd.Println(styles.DefaultStyles().RenderOutput(output))

	if generateSaveLog != "" {
		if err := session.SaveConversation(generateSaveLog); err != nil {
			return fmt.Errorf("save conversation log: %w", err)
		}
		cmd.Printf("Conversation log saved to %s\n", generateSaveLog)
	}
	return nil
}
