// Package cli implements the briefgen command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brieflabs/briefgen/internal/adapters/driven/ai"
	loaderfile "github.com/brieflabs/briefgen/internal/adapters/driven/loader/file"
	logfile "github.com/brieflabs/briefgen/internal/adapters/driven/logstore/file"
	"github.com/brieflabs/briefgen/internal/adapters/driven/vector/memory"
	"github.com/brieflabs/briefgen/internal/chunker"
	"github.com/brieflabs/briefgen/internal/core/ports/driven"
	"github.com/brieflabs/briefgen/internal/core/services"
	llmgen "github.com/brieflabs/briefgen/internal/generators/llm"
	"github.com/brieflabs/briefgen/internal/generators/rulebased"
	"github.com/brieflabs/briefgen/internal/logger"
)

// version is set by Execute.
var version = "dev"

// configStore holds the application settings, set by Execute.
var configStore driven.ConfigStore

// verbose toggles debug logging.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "briefgen",
	Short: "Retrieval-grounded presentation content from research papers",
	Long: `briefgen ingests a research paper, indexes it for retrieval and
generates audience-tailored presentation content: slides, a narration
script, speaker notes, tweets and a LinkedIn summary. Every generated
block carries provenance back to the source chunks.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the CLI with the given version and config store.
func Execute(v string, store driven.ConfigStore) error {
	version = v
	configStore = store
	return rootCmd.Execute()
}

// Generator strategy names accepted by --generator.
const (
	generatorRules = "rules"
	generatorLLM   = "llm"
)

// buildSession assembles a session from stored settings. The returned
// cleanup closes the backend services.
func buildSession(generatorName string) (*services.Session, func(), error) {
	embedder, err := ai.CreateEmbeddingService(configStore)
	if err != nil {
		return nil, nil, fmt.Errorf("create embedding service: %w", err)
	}
	cleanup := func() { _ = embedder.Close() }

	var generator driven.Generator
	switch generatorName {
	case generatorRules:
		generator = rulebased.New()
	case generatorLLM:
		model, err := ai.CreateLLMService(configStore)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("create llm service: %w", err)
		}
		if model == nil {
			cleanup()
			return nil, nil, fmt.Errorf("no llm provider configured, run 'briefgen settings set llm.provider <name>' or use --generator rules")
		}
		generator = llmgen.New(model)
		embedderCleanup := cleanup
		cleanup = func() {
			_ = model.Close()
			embedderCleanup()
		}
	default:
		cleanup()
		return nil, nil, fmt.Errorf("unknown generator %q (want %q or %q)", generatorName, generatorRules, generatorLLM)
	}

	session := services.NewSession(
		loaderfile.NewLoader(),
		chunker.New(),
		embedder,
		generator,
		logfile.NewStore(),
		func() driven.VectorIndex { return memory.NewIndex() },
	)
	return session, cleanup, nil
}
