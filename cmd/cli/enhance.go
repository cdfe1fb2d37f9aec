package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/TestRank-hq/testrank/internal/config"
	"github.com/TestRank-hq/testrank/internal/jira"
	"github.com/TestRank-hq/testrank/internal/llm"
	"github.com/TestRank-hq/testrank/internal/priority"
	"github.com/TestRank-hq/testrank/internal/report"
	"github.com/TestRank-hq/testrank/pkg/model"
)

func enhanceCmd() *cobra.Command {
	var (
		inputFile     string
		outputFile    string
		format        string
		requirement   string
		testType      string
		useLLM        bool
		fileIssues    bool
		minConfidence float64
	)

	cmd := &cobra.Command{
		Use:   "enhance",
		Short: "Score test cases for execution priority",
		Long: `Reads a JSON array of test cases, scores each one and writes the
enhanced cases back out with priority, confidence, score and reasoning.

Example:
  testrank enhance -i cases.json -r "Users must log in securely" -t smoke -o ranked.csv --format csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cases, err := loadCases(inputFile)
			if err != nil {
				return err
			}
			if len(cases) == 0 {
				return fmt.Errorf("no test cases in input")
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			scoring, err := config.LoadScoring(cfg.ScoringFile, cfg.BulkWorkers)
			if err != nil {
				return fmt.Errorf("failed to load scoring config: %w", err)
			}
			enhancer := priority.NewEnhancer(scoring)

			if useLLM {
				if err := suggestPriorities(ctx, cfg, cases, requirement, testType); err != nil {
					return err
				}
			}

			enhanced := enhancer.BulkEnhance(ctx, cases, requirement, testType)

			if err := writeCases(outputFile, format, enhanced); err != nil {
				return err
			}

			if fileIssues {
				if err := fileLowConfidenceIssues(ctx, cfg, enhanced, minConfidence); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "JSON file with test cases (default stdin)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "json", "Output format (json, csv)")
	cmd.Flags().StringVarP(&requirement, "requirement", "r", "", "Requirement text the cases cover")
	cmd.Flags().StringVarP(&testType, "test-type", "t", "", "Test type (smoke, regression, unit, ...)")
	cmd.Flags().BoolVar(&useLLM, "llm", false, "Ask the configured LLM for a priority hint per case")
	cmd.Flags().BoolVar(&fileIssues, "jira", false, "File a JIRA issue for each low-confidence result")
	cmd.Flags().Float64Var(&minConfidence, "min-confidence", 0.5, "Confidence below which a JIRA issue is filed")

	return cmd
}

// suggestPriorities asks the LLM for a one-word priority per case and stores
// it as the case's incoming priority, which bulk enhancement treats as the
// hint. Failures on individual cases are logged and skipped.
func suggestPriorities(ctx context.Context, cfg *config.Config, cases []model.TestCase, requirement, testType string) error {
	router, err := llm.NewRouter(cfg)
	if err != nil {
		return fmt.Errorf("failed to create LLM router: %w", err)
	}
	if err := router.HealthCheck(); err != nil {
		return fmt.Errorf("LLM not available: %w", err)
	}

	for i := range cases {
		resp, err := router.Complete(ctx, &llm.Request{
			System:    llm.SystemPromptPrioritySuggestion,
			Messages:  []llm.Message{{Role: "user", Content: llm.PrioritySuggestionPrompt(cases[i], requirement, testType)}},
			MaxTokens: 8,
		})
		if err != nil {
			log.Warn().Err(err).Str("title", cases[i].Title).Msg("priority suggestion failed")
			continue
		}
		if label := llm.ParsePriorityLabel(resp.Content); label != "" {
			cases[i].Priority = model.Priority(label)
		}
	}
	return nil
}

func fileLowConfidenceIssues(ctx context.Context, cfg *config.Config, cases []model.TestCase, minConfidence float64) error {
	client := jira.NewClient(cfg.JIRA)
	if !client.Available() {
		return fmt.Errorf("JIRA not configured, set JIRA_BASE and JIRA_BEARER")
	}

	filed := 0
	for _, tc := range cases {
		if tc.PriorityConfidence >= minConfidence {
			continue
		}
		summary := fmt.Sprintf("Review priority for test case: %s", tc.Title)
		description := fmt.Sprintf("Assigned %s with confidence %.2f (score %.2f).\n\n%s",
			tc.Priority, tc.PriorityConfidence, tc.PriorityScore, tc.PriorityReasoning)

		issue, err := client.CreateIssue(ctx, summary, description, "Task")
		if err != nil {
			return fmt.Errorf("failed to create JIRA issue: %w", err)
		}
		log.Info().Str("issue", issue.Key).Str("title", tc.Title).Msg("filed review issue")
		filed++
	}
	fmt.Fprintf(os.Stderr, "Filed %d JIRA issue(s) for low-confidence results\n", filed)
	return nil
}

func loadCases(path string) ([]model.TestCase, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var cases []model.TestCase
	if err := json.NewDecoder(r).Decode(&cases); err != nil {
		return nil, fmt.Errorf("failed to parse test cases: %w", err)
	}
	return cases, nil
}

func writeCases(path, format string, cases []model.TestCase) error {
	switch strings.ToLower(format) {
	case "json":
		if path == "" {
			return report.WriteJSON(os.Stdout, cases)
		}
		return report.SaveJSON(path, cases)
	case "csv":
		if path == "" {
			return report.WriteCSV(os.Stdout, cases)
		}
		return report.SaveCSV(path, cases)
	default:
		return fmt.Errorf("unknown format %q, expected json or csv", format)
	}
}
