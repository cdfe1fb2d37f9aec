package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TestRank-hq/testrank/pkg/model"
)

func TestAssessQuality(t *testing.T) {
	ollama := newMockClient(ProviderOllama, true)
	ollama.responses = []*Response{{
		Content: `{
			"overall_score": 8.2,
			"individual_scores": [
				{
					"test_id": "TC-001",
					"scores": {"clarity": 9.0, "completeness": 8.5, "specificity": 8.0, "testability": 9.0, "coverage": 7.5},
					"total_score": 8.4,
					"strengths": ["Clear step descriptions"],
					"weaknesses": ["Missing error handling"]
				}
			]
		}`,
		Provider: ProviderOllama,
	}}

	r := newRouterWithClients(ProviderOllama, map[Provider]Client{
		ProviderOllama: ollama,
	})

	cases := []model.TestCase{{
		ID:       "TC-001",
		Title:    "Verify login",
		Steps:    []string{"Open page", "Enter credentials"},
		Expected: "User logged in",
	}}

	report, err := r.AssessQuality(context.Background(), cases, "Users must log in")
	require.NoError(t, err)

	assert.Equal(t, 8.2, report.OverallScore)
	require.Len(t, report.Individual, 1)
	assert.Equal(t, "TC-001", report.Individual[0].TestID)
	assert.Equal(t, 9.0, report.Individual[0].Scores.Clarity)

	// Structured output goes through JSON mode with the assessment prompts.
	require.NotNil(t, ollama.lastReq)
	assert.True(t, ollama.lastReq.JSONMode)
	assert.Equal(t, SystemPromptQualityAssessment, ollama.lastReq.System)
	require.Len(t, ollama.lastReq.Messages, 1)
	assert.True(t, strings.Contains(ollama.lastReq.Messages[0].Content, "Verify login"))
	assert.True(t, strings.Contains(ollama.lastReq.Messages[0].Content, "Users must log in"))
}

func TestAssessQuality_MalformedReply(t *testing.T) {
	ollama := newMockClient(ProviderOllama, true)
	ollama.responses = []*Response{{Content: "not json", Provider: ProviderOllama}}

	r := newRouterWithClients(ProviderOllama, map[Provider]Client{
		ProviderOllama: ollama,
	})

	_, err := r.AssessQuality(context.Background(), []model.TestCase{{Title: "x"}}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse quality assessment")
}

func TestAssessQuality_EmptyScores(t *testing.T) {
	ollama := newMockClient(ProviderOllama, true)
	ollama.responses = []*Response{{Content: `{"overall_score": 7.0, "individual_scores": []}`, Provider: ProviderOllama}}

	r := newRouterWithClients(ProviderOllama, map[Provider]Client{
		ProviderOllama: ollama,
	})

	_, err := r.AssessQuality(context.Background(), []model.TestCase{{Title: "x"}}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing individual scores")
}
