package priority

import (
	"fmt"

	"github.com/TestRank-hq/testrank/pkg/model"
)

// ValidationError reports a caller-side contract violation detected at the
// input boundary, before any scoring logic runs. The engine itself is total
// and has no failure mode; only malformed containers are rejected. Unknown
// test types, empty text and missing hints all take documented defaults.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// ValidateCase checks that the test-case container is present.
func ValidateCase(tc *model.TestCase) error {
	if tc == nil {
		return &ValidationError{Field: "test_case", Reason: "missing"}
	}
	return nil
}

// ValidateCases checks that the bulk container is present.
func ValidateCases(cases []model.TestCase) error {
	if cases == nil {
		return &ValidationError{Field: "test_cases", Reason: "missing"}
	}
	return nil
}
