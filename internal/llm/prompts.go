package llm

import (
	"fmt"
	"strings"

	"github.com/TestRank-hq/testrank/pkg/model"
)

// Prompt templates for priority suggestion and quality assessment

const SystemPromptPrioritySuggestion = `You are an expert QA engineer. Given a test case and the requirement it
covers, suggest a testing priority.

Respond with exactly one word: High, Medium or Low. No explanation.`

const SystemPromptQualityAssessment = `You are an expert QA quality assessor. Evaluate test cases based on
industry best practices and provide detailed scoring with actionable feedback.

Return your assessment as JSON with this exact structure:
{
  "overall_score": 8.5,
  "individual_scores": [
    {
      "test_id": "TC-001",
      "scores": {"clarity": 9.0, "completeness": 8.5, "specificity": 8.0, "testability": 9.0, "coverage": 7.5},
      "total_score": 8.4,
      "strengths": ["Clear step descriptions"],
      "weaknesses": ["Missing error handling"]
    }
  ]
}

Quality Criteria:
- Clarity (1-10): How clear and understandable are the test steps?
- Completeness (1-10): Does the test cover all aspects of the requirement?
- Specificity (1-10): Are expected results specific and measurable?
- Testability (1-10): Can the test be executed reliably?
- Coverage (1-10): How well does it cover different scenarios?`

// PrioritySuggestionPrompt builds the user prompt for a priority hint.
func PrioritySuggestionPrompt(tc model.TestCase, requirement, testType string) string {
	return fmt.Sprintf("Requirement:\n%s\n\n"+
		"Test type: %s\n\n"+
		"Test case:\nTitle: %s\nSteps:\n%s\nExpected: %s\n\n"+
		"Suggest the testing priority (High, Medium or Low).",
		requirement, testType, tc.Title, strings.Join(tc.Steps, "\n"), tc.Expected)
}

// QualityAssessmentPrompt builds the user prompt for batch quality scoring.
func QualityAssessmentPrompt(testCasesJSON, requirement string) string {
	return fmt.Sprintf("Assess the quality of these test cases against the given requirement:\n\n"+
		"REQUIREMENT:\n%s\n\n"+
		"TEST CASES:\n%s\n\n"+
		"Provide detailed quality scoring and actionable improvement suggestions.",
		requirement, testCasesJSON)
}

// ParsePriorityLabel extracts a priority label from a model response.
// Returns an empty string when the response does not contain a usable
// label; callers treat that as no hint.
func ParsePriorityLabel(content string) string {
	normalized := strings.ToLower(strings.TrimSpace(content))
	switch {
	case strings.HasPrefix(normalized, "high"):
		return "High"
	case strings.HasPrefix(normalized, "medium"):
		return "Medium"
	case strings.HasPrefix(normalized, "low"):
		return "Low"
	}
	return ""
}
