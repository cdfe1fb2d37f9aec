// Package quality provides heuristic quality assessment for generated test
// cases: per-case clarity, completeness, specificity and testability scores
// derived from the case structure alone, with no external service involved.
package quality

import (
	"fmt"
	"math"
	"strings"

	"github.com/TestRank-hq/testrank/pkg/model"
)

// defaultCoverageScore is assigned when no scenario-level analysis is
// available; coverage cannot be judged from a single case in isolation.
const defaultCoverageScore = 7.0

// specificityIndicators mark concrete, checkable expected results.
var specificityIndicators = []string{
	"should display", "should show", "should redirect",
	"error message", "success message", "specific value",
	"status code", "response contains",
}

// actionableVerbs mark steps that can be executed directly.
var actionableVerbs = []string{
	"click", "enter", "select", "navigate", "verify",
	"check", "validate", "confirm", "submit", "open",
}

// Score assesses a batch of test cases and aggregates the results.
func Score(cases []model.TestCase, testCategory, testType string) model.QualityReport {
	report := model.QualityReport{
		TestContext: fmt.Sprintf("%s %s Testing", titleCase(testCategory), FormatTestType(testType)),
	}

	var sum float64
	for i, tc := range cases {
		a := assessCase(tc, i)
		report.Individual = append(report.Individual, a)
		sum += a.TotalScore
	}

	if len(report.Individual) > 0 {
		report.OverallScore = round1(sum / float64(len(report.Individual)))
	} else {
		report.OverallScore = 6.0
	}
	return report
}

func assessCase(tc model.TestCase, index int) model.QualityAssessment {
	id := tc.ID
	if id == "" {
		id = fmt.Sprintf("TC-%03d", index+1)
	}

	scores := model.QualityScores{
		Clarity:      scoreClarity(tc),
		Completeness: scoreCompleteness(tc),
		Specificity:  scoreSpecificity(tc),
		Testability:  scoreTestability(tc),
		Coverage:     defaultCoverageScore,
	}
	total := (scores.Clarity + scores.Completeness + scores.Specificity +
		scores.Testability + scores.Coverage) / 5

	return model.QualityAssessment{
		TestID:     id,
		Scores:     scores,
		TotalScore: round1(total),
		Strengths:  caseStrengths(tc, scores),
		Weaknesses: caseWeaknesses(tc, scores),
	}
}

// scoreClarity rates step descriptiveness. Longer steps generally carry
// enough detail to follow without guessing.
func scoreClarity(tc model.TestCase) float64 {
	if len(tc.Steps) == 0 {
		return 3.0
	}

	total := 0
	for _, s := range tc.Steps {
		total += len(s)
	}
	avg := float64(total) / float64(len(tc.Steps))

	switch {
	case avg > 50:
		return 8.5
	case avg > 30:
		return 7.0
	case avg > 15:
		return 6.0
	default:
		return 4.0
	}
}

// scoreCompleteness rates presence of the required fields plus a small
// bonus for optional metadata.
func scoreCompleteness(tc model.TestCase) float64 {
	present := 0
	if tc.Title != "" {
		present++
	}
	if len(tc.Steps) > 0 {
		present++
	}
	if tc.Expected != "" {
		present++
	}

	score := float64(present) / 3 * 10
	if tc.Priority != "" {
		score += 0.5
	}
	if tc.Preconditions != "" {
		score += 0.5
	}
	return math.Min(score, 10.0)
}

// scoreSpecificity rates how concrete the expected result is.
func scoreSpecificity(tc model.TestCase) float64 {
	if tc.Expected == "" {
		return 2.0
	}

	expected := strings.ToLower(tc.Expected)
	n := 0
	for _, indicator := range specificityIndicators {
		if strings.Contains(expected, indicator) {
			n++
		}
	}
	return math.Min(float64(n)*2+5, 10.0)
}

// scoreTestability rates how directly the steps can be executed, from the
// ratio of actionable verbs to steps.
func scoreTestability(tc model.TestCase) float64 {
	if len(tc.Steps) == 0 {
		return 3.0
	}

	actionable := 0
	for _, step := range tc.Steps {
		s := strings.ToLower(step)
		for _, verb := range actionableVerbs {
			if strings.Contains(s, verb) {
				actionable++
			}
		}
	}

	ratio := float64(actionable) / float64(len(tc.Steps))
	return math.Min(ratio*10+5, 10.0)
}

func caseStrengths(tc model.TestCase, scores model.QualityScores) []string {
	var out []string
	if scores.Clarity >= 7.0 {
		out = append(out, "Clear step descriptions")
	}
	if scores.Specificity >= 7.0 {
		out = append(out, "Specific expected results")
	}
	if len(out) == 0 {
		out = append(out, "Basic test structure present")
	}
	return out
}

func caseWeaknesses(tc model.TestCase, scores model.QualityScores) []string {
	var out []string
	if len(tc.Steps) == 0 {
		out = append(out, "No test steps defined")
	}
	if tc.Expected == "" {
		out = append(out, "No expected result defined")
	}
	if scores.Testability < 6.0 {
		out = append(out, "Steps are hard to execute directly")
	}
	if len(out) == 0 {
		out = append(out, "Limited assessment available")
	}
	return out
}

// FormatTestType formats a test type for display, handling the API
// initialism.
func FormatTestType(testType string) string {
	if strings.EqualFold(testType, "api") {
		return "API"
	}
	return titleCase(testType)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
