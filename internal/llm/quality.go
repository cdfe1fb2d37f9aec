package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TestRank-hq/testrank/pkg/model"
)

// AssessQuality asks the model to score a batch of test cases and parses
// the structured JSON reply. Callers fall back to the heuristic scorer in
// internal/quality when this returns an error.
func (r *Router) AssessQuality(ctx context.Context, cases []model.TestCase, requirement string) (model.QualityReport, error) {
	data, err := json.Marshal(cases)
	if err != nil {
		return model.QualityReport{}, fmt.Errorf("failed to marshal test cases: %w", err)
	}

	resp, err := r.Complete(ctx, &Request{
		System:    SystemPromptQualityAssessment,
		Messages:  []Message{{Role: "user", Content: QualityAssessmentPrompt(string(data), requirement)}},
		MaxTokens: 2048,
		JSONMode:  true,
	})
	if err != nil {
		return model.QualityReport{}, err
	}

	var report model.QualityReport
	if err := json.Unmarshal([]byte(resp.Content), &report); err != nil {
		return model.QualityReport{}, fmt.Errorf("failed to parse quality assessment: %w", err)
	}
	if len(report.Individual) == 0 {
		return model.QualityReport{}, fmt.Errorf("quality assessment missing individual scores")
	}
	return report, nil
}
