package priority

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TestRank-hq/testrank/pkg/model"
)

func TestProfileFor_KnownTypes(t *testing.T) {
	profiles := DefaultProfiles()

	tests := []struct {
		testType string
		wantBase model.Priority
		wantMult float64
	}{
		{"smoke", model.PriorityHigh, 1.3},
		{"sanity", model.PriorityHigh, 1.2},
		{"regression", model.PriorityHigh, 1.15},
		{"integration", model.PriorityHigh, 1.25},
		{"e2e", model.PriorityHigh, 1.2},
		{"api", model.PriorityHigh, 1.15},
		{"unit", model.PriorityMedium, 1.0},
		{"functional", model.PriorityMedium, 1.05},
		{"exploratory", model.PriorityLow, 0.9},
		{"usability", model.PriorityLow, 0.85},
	}

	for _, tt := range tests {
		p, ok := profileFor(profiles, tt.testType)
		assert.True(t, ok, tt.testType)
		assert.Equal(t, tt.wantBase, p.BasePriority, tt.testType)
		assert.Equal(t, tt.wantMult, p.Multiplier, tt.testType)
	}
}

func TestProfileFor_CaseInsensitive(t *testing.T) {
	profiles := DefaultProfiles()

	for _, s := range []string{"Smoke", "SMOKE", "sMoKe"} {
		p, ok := profileFor(profiles, s)
		assert.True(t, ok, s)
		assert.Equal(t, "Critical path validation", p.Description)
	}
}

func TestProfileFor_UnknownFallsBackToDefault(t *testing.T) {
	profiles := DefaultProfiles()

	// Matching is exact apart from case: padded or otherwise mangled
	// spellings of a known type miss the table like any unknown string.
	for _, s := range []string{"fuzz", "chaos", "", " smoke ", "smoke ", "\tsmoke"} {
		p, ok := profileFor(profiles, s)
		assert.False(t, ok, s)
		assert.Equal(t, DefaultProfile, p)
	}
}

func TestSortedTypes(t *testing.T) {
	types := SortedTypes(DefaultProfiles())

	assert.Len(t, types, 10)
	assert.Equal(t, TestTypeAPI, types[0])
	for i := 1; i < len(types); i++ {
		assert.Less(t, types[i-1], types[i])
	}
}

func TestDefaultProfiles_PositiveMultipliers(t *testing.T) {
	for typ, p := range DefaultProfiles() {
		assert.Greater(t, p.Multiplier, 0.0, string(typ))
		assert.True(t, p.BasePriority.Valid(), string(typ))
		assert.NotEqual(t, model.PriorityCritical, p.BasePriority, string(typ))
	}
}
