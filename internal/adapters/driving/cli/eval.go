package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/brieflabs/briefgen/internal/adapters/driven/ai"
	loaderfile "github.com/brieflabs/briefgen/internal/adapters/driven/loader/file"
	logfile "github.com/brieflabs/briefgen/internal/adapters/driven/logstore/file"
	"github.com/brieflabs/briefgen/internal/adapters/driven/vector/memory"
	"github.com/brieflabs/briefgen/internal/chunker"
	"github.com/brieflabs/briefgen/internal/core/domain"
	"github.com/brieflabs/briefgen/internal/core/ports/driven"
	"github.com/brieflabs/briefgen/internal/core/services"
	"github.com/brieflabs/briefgen/internal/evaluation"
	"github.com/brieflabs/briefgen/internal/generators/rulebased"
)

var evalOutput string

// evalPlan is the YAML evaluation plan format.
type evalPlan struct {
	Cases []evalCase `yaml:"cases"`
}

// evalCase describes one paper-audience pairing to score.
type evalCase struct {
	Paper       string   `yaml:"paper"`
	Instruction string   `yaml:"instruction"`
	Audience    string   `yaml:"audience"`
	Style       string   `yaml:"style"`
	Duration    string   `yaml:"duration"`
	Tone        []string `yaml:"tone"`
	Reference   string   `yaml:"reference"`
	PaperID     string   `yaml:"paper_id"`
}

var evalCmd = &cobra.Command{
	Use:   "eval [plan]",
	Short: "Score generated content against reference scripts",
	Long: `Runs the evaluation plan: for every case the paper is ingested,
content is generated and scored against the reference script. The plan
is a YAML file:

  cases:
    - paper: examples/papers/solar.txt
      instruction: summarize the key findings
      audience: Policymakers
      style: plain
      duration: 90s
      reference: examples/references/solar_plain.txt

Metrics per case: ROUGE-L, semantic similarity, provenance coverage and
citation coverage. The report is written as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&evalOutput, "output", "o", "eval_report.json", "where to write the JSON report")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	planData, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read evaluation plan: %w", err)
	}
	var plan evalPlan
	if err := yaml.Unmarshal(planData, &plan); err != nil {
		return fmt.Errorf("parse evaluation plan: %w", err)
	}
	if len(plan.Cases) == 0 {
		return fmt.Errorf("evaluation plan has no cases")
	}

	embedder, err := ai.CreateEmbeddingService(configStore)
	if err != nil {
		return fmt.Errorf("create embedding service: %w", err)
	}
	defer embedder.Close()
	similarity := evaluation.NewSimilarityComputer(embedder)

	ctx := context.Background()
	records := make([]evaluation.EvaluationRecord, 0, len(plan.Cases))
	for _, c := range plan.Cases {
		cmd.Printf("Evaluating %s for %s\n", c.Paper, c.Audience)

		record, err := runEvalCase(ctx, c, embedder, similarity)
		if err != nil {
			return fmt.Errorf("case %s: %w", c.Paper, err)
		}
		records = append(records, record)
	}

	report, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(evalOutput, report, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	cmd.Printf("Saved results to %s\n", evalOutput)
	return nil
}

// runEvalCase ingests, generates and scores one case.
func runEvalCase(
	ctx context.Context,
	c evalCase,
	embedder driven.EmbeddingService,
	similarity *evaluation.SimilarityComputer,
) (evaluation.EvaluationRecord, error) {
	style, err := domain.ParseAudienceStyle(c.Style)
	if err != nil {
		return evaluation.EvaluationRecord{}, fmt.Errorf("invalid style %q: %w", c.Style, err)
	}
	duration, err := domain.ParseDuration(c.Duration)
	if err != nil {
		return evaluation.EvaluationRecord{}, fmt.Errorf("invalid duration %q: %w", c.Duration, err)
	}

	session := services.NewSession(
		loaderfile.NewLoader(),
		chunker.New(),
		embedder,
		rulebased.New(),
		logfile.NewStore(),
		func() driven.VectorIndex { return memory.NewIndex() },
	)
	if err := session.Ingest(ctx, c.Paper); err != nil {
		return evaluation.EvaluationRecord{}, err
	}

	audience := domain.AudienceProfile{Label: c.Audience, Style: style, ToneDirectives: c.Tone}
	output, err := session.Generate(ctx, c.Instruction, audience, domain.NewGenerationConfig(duration, style), 0)
	if err != nil {
		return evaluation.EvaluationRecord{}, err
	}

	reference, err := os.ReadFile(c.Reference)
	if err != nil {
		return evaluation.EvaluationRecord{}, fmt.Errorf("read reference: %w", err)
	}

	paperID := c.PaperID
	if paperID == "" {
		paperID = strings.TrimSuffix(filepath.Base(c.Paper), filepath.Ext(c.Paper))
	}
	return evaluation.EvaluateOutput(ctx, output, string(reference), paperID, c.Audience, similarity)
}
