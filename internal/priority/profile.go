package priority

import (
	"sort"
	"strings"

	"github.com/TestRank-hq/testrank/pkg/model"
)

// TestType identifies a kind of test (smoke, unit, api, ...). Lookups are
// case-insensitive; unknown types resolve to the default profile.
type TestType string

const (
	TestTypeSmoke       TestType = "smoke"
	TestTypeSanity      TestType = "sanity"
	TestTypeRegression  TestType = "regression"
	TestTypeIntegration TestType = "integration"
	TestTypeE2E         TestType = "e2e"
	TestTypeAPI         TestType = "api"
	TestTypeUnit        TestType = "unit"
	TestTypeFunctional  TestType = "functional"
	TestTypeExploratory TestType = "exploratory"
	TestTypeUsability   TestType = "usability"
)

// Profile describes how a test type weighs into the combined score.
type Profile struct {
	BasePriority model.Priority `yaml:"base_priority" json:"base_priority"`
	Multiplier   float64        `yaml:"multiplier" json:"multiplier"`
	Description  string         `yaml:"description" json:"description"`
}

// DefaultProfile is returned for unrecognized test types.
var DefaultProfile = Profile{
	BasePriority: model.PriorityMedium,
	Multiplier:   1.0,
	Description:  "Standard testing",
}

// DefaultProfiles returns the built-in test-type profile table.
func DefaultProfiles() map[TestType]Profile {
	return map[TestType]Profile{
		TestTypeSmoke:       {model.PriorityHigh, 1.3, "Critical path validation"},
		TestTypeSanity:      {model.PriorityHigh, 1.2, "Recent changes validation"},
		TestTypeRegression:  {model.PriorityHigh, 1.15, "Existing functionality protection"},
		TestTypeIntegration: {model.PriorityHigh, 1.25, "System integration points"},
		TestTypeE2E:         {model.PriorityHigh, 1.2, "End-to-end workflows"},
		TestTypeAPI:         {model.PriorityHigh, 1.15, "API contract validation"},
		TestTypeUnit:        {model.PriorityMedium, 1.0, "Component-level testing"},
		TestTypeFunctional:  {model.PriorityMedium, 1.05, "Feature functionality"},
		TestTypeExploratory: {model.PriorityLow, 0.9, "Exploratory scenarios"},
		TestTypeUsability:   {model.PriorityLow, 0.85, "User experience testing"},
	}
}

// profileFor resolves a test-type string against the table. Matching is
// case-insensitive but otherwise exact: " smoke " is not "smoke" and takes
// the default. The second return value reports whether the type was
// recognized; unrecognized types take the explicit default branch rather
// than an implicit map miss.
func profileFor(profiles map[TestType]Profile, testType string) (Profile, bool) {
	key := TestType(strings.ToLower(testType))
	if p, ok := profiles[key]; ok {
		return p, true
	}
	return DefaultProfile, false
}

// SortedTypes returns the table's test types in lexical order, for stable
// listings.
func SortedTypes(profiles map[TestType]Profile) []TestType {
	types := make([]TestType, 0, len(profiles))
	for typ := range profiles {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
