// Package priority implements multi-factor priority scoring for generated
// test cases. Three independent signals feed one deterministic decision:
// lexical keyword analysis of the test case and its source requirement, a
// per-test-type priority profile, and an optional externally supplied
// priority hint. The result carries a numeric score, a confidence value and
// human-readable reasoning that can never contradict each other.
package priority

import (
	"strings"

	"github.com/TestRank-hq/testrank/pkg/model"
)

// Config is the immutable reference data an Enhancer scores against.
// Injecting it at construction time lets multiple configurations (for
// example localized keyword sets) coexist in one process.
type Config struct {
	Lexicon  Lexicon
	Profiles map[TestType]Profile

	// Workers bounds bulk-enhancement parallelism. Zero means sequential.
	Workers int
}

// DefaultConfig returns the built-in lexicon and profile table.
func DefaultConfig() Config {
	return Config{
		Lexicon:  DefaultLexicon(),
		Profiles: DefaultProfiles(),
	}
}

// Enhancer scores test cases. It holds only read-only configuration and is
// safe for concurrent use.
type Enhancer struct {
	cfg Config
}

// NewEnhancer creates an enhancer. Missing config sections fall back to the
// built-in defaults.
func NewEnhancer(cfg Config) *Enhancer {
	if len(cfg.Lexicon.Critical) == 0 && len(cfg.Lexicon.High) == 0 &&
		len(cfg.Lexicon.Medium) == 0 && len(cfg.Lexicon.Low) == 0 {
		cfg.Lexicon = DefaultLexicon()
	}
	if cfg.Profiles == nil {
		cfg.Profiles = DefaultProfiles()
	}
	return &Enhancer{cfg: cfg}
}

// Profiles returns the profile table the enhancer was configured with.
func (e *Enhancer) Profiles() map[TestType]Profile {
	return e.cfg.Profiles
}

// Enhance scores a single test case against its requirement and test type.
// llmSuggested is an optional externally supplied label; values other than
// the exact strings "High", "Medium" and "Low" carry neutral weight. The
// function is total: every input shape yields a complete result.
func (e *Enhancer) Enhance(tc model.TestCase, requirement, testType string, llmSuggested string) model.EnhancementResult {
	text := extractText(tc, requirement)

	keywordScore, keywordLabel := classifyKeywords(e.cfg.Lexicon, text)

	profile, _ := profileFor(e.cfg.Profiles, testType)
	baseScore, _ := labelScore(profile.BasePriority)

	hint := model.Priority(llmSuggested)
	llmScore, recognized := labelScore(hint)
	if !recognized {
		llmScore = neutralScore
	}

	finalScore := combineScores(keywordScore, baseScore, llmScore, profile.Multiplier)

	var hintForConfidence model.Priority
	if llmSuggested != "" {
		hintForConfidence = hint
	}

	suggested := llmSuggested
	if suggested == "" {
		suggested = "N/A"
	}

	return model.EnhancementResult{
		Priority:   finalFromScore(finalScore),
		Confidence: estimateConfidence(keywordLabel, profile.BasePriority, hintForConfidence),
		Score:      round2(finalScore),
		Reasoning:  buildReasoning(profile, e.cfg.Lexicon, text, finalScore),
		Breakdown: model.ScoreBreakdown{
			KeywordBased:   keywordLabel,
			TestTypeBase:   profile.BasePriority,
			LLMSuggested:   suggested,
			KeywordScore:   round2(keywordScore),
			TypeMultiplier: profile.Multiplier,
		},
	}
}

// extractText combines the analyzable text of a test case and its
// requirement into one normalized lowercase string.
func extractText(tc model.TestCase, requirement string) string {
	parts := []string{
		tc.Title,
		strings.Join(tc.Steps, " "),
		tc.Expected,
		requirement,
	}
	return strings.ToLower(strings.Join(parts, " "))
}
