package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TestRank-hq/testrank/pkg/model"
)

// Integration tests require a running Postgres; set TEST_DATABASE_URL to
// enable them.
func testStore(t *testing.T) *Store {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping store integration test")
	}

	s, err := Open(url)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.EnsureSchema(context.Background()))
	return s
}

func TestSaveAndGetRun(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	cases := []model.TestCase{
		{
			ID:                 "TC-001",
			Title:              "Verify login",
			Priority:           model.PriorityHigh,
			PriorityConfidence: 0.82,
			PriorityScore:      8.73,
			PriorityReasoning:  "Critical path validation (High base)",
		},
		{
			Title:              "Check footer",
			Priority:           model.PriorityLow,
			PriorityConfidence: 0.5,
			PriorityScore:      3.1,
			PriorityReasoning:  "Secondary feature or enhancement",
		},
	}

	run, err := s.SaveRun(ctx, "Users must log in", "smoke", cases)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, 2, run.CaseCount)

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Users must log in", got.Requirement)
	assert.Equal(t, "smoke", got.TestType)

	results, err := s.GetResults(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 0, results[0].Position)
	assert.Equal(t, "TC-001", results[0].CaseID)
	assert.Equal(t, model.PriorityHigh, results[0].Priority)
	assert.Equal(t, 1, results[1].Position)
}
