// Package model defines the shared data types for test-case priority
// enhancement: the test case record consumed by the engine, the priority
// labels, and the scoring result returned to callers.
package model

// Priority is a test-case priority label.
type Priority string

const (
	// PriorityCritical only appears as an intermediate keyword-classifier
	// label. The final combined priority is always High, Medium or Low.
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// Valid reports whether p is one of the known labels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// TestCase is a single generated test case. The priority engine reads
// Title, Steps, Expected and Priority; every other field passes through
// bulk enhancement untouched.
type TestCase struct {
	ID            string   `json:"id,omitempty"`
	Title         string   `json:"title"`
	Steps         []string `json:"steps"`
	Expected      string   `json:"expected"`
	Preconditions string   `json:"preconditions,omitempty"`

	// Priority fields, overwritten by enhancement.
	Priority           Priority `json:"priority,omitempty"`
	PriorityConfidence float64  `json:"priority_confidence,omitempty"`
	PriorityScore      float64  `json:"priority_score,omitempty"`
	PriorityReasoning  string   `json:"priority_reasoning,omitempty"`
}

// ScoreBreakdown exposes each signal that fed the combined score. It exists
// purely for explainability and is never re-derived from the final score.
type ScoreBreakdown struct {
	KeywordBased   Priority `json:"keyword_based"`
	TestTypeBase   Priority `json:"test_type_base"`
	LLMSuggested   string   `json:"llm_suggested"`
	KeywordScore   float64  `json:"keyword_score"`
	TypeMultiplier float64  `json:"type_multiplier"`
}

// EnhancementResult is the outcome of scoring one test case. It is
// immutable once returned.
type EnhancementResult struct {
	Priority   Priority       `json:"priority"`
	Confidence float64        `json:"confidence"`
	Score      float64        `json:"score"`
	Reasoning  string         `json:"reasoning"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
}

// QualityScores holds the per-metric heuristic quality scores for one
// test case, each in [0,10].
type QualityScores struct {
	Clarity      float64 `json:"clarity"`
	Completeness float64 `json:"completeness"`
	Specificity  float64 `json:"specificity"`
	Testability  float64 `json:"testability"`
	Coverage     float64 `json:"coverage"`
}

// QualityAssessment is the quality report for a single test case.
type QualityAssessment struct {
	TestID     string        `json:"test_id"`
	Scores     QualityScores `json:"scores"`
	TotalScore float64       `json:"total_score"`
	Strengths  []string      `json:"strengths"`
	Weaknesses []string      `json:"weaknesses"`
}

// QualityReport aggregates the assessments for a batch of test cases.
type QualityReport struct {
	OverallScore float64             `json:"overall_score"`
	Individual   []QualityAssessment `json:"individual_scores"`
	TestContext  string              `json:"test_context"`
}
