package priority

import (
	"fmt"
	"strings"
)

// maxIndicators caps how many matched phrases the reasoning lists.
const maxIndicators = 3

// buildReasoning composes the human-readable explanation as a
// semicolon-joined list of clauses. It only uses inputs the other
// components already consumed, so the explanation can never contradict the
// score. Same inputs always yield the same string.
func buildReasoning(profile Profile, lex Lexicon, text string, finalScore float64) string {
	reasons := []string{
		fmt.Sprintf("%s (%s base)", profile.Description, profile.BasePriority),
	}

	if critical := findMatches(lex.Critical, text, maxIndicators); len(critical) > 0 {
		reasons = append(reasons, "Critical indicators: "+strings.Join(critical, ", "))
	} else if high := findMatches(lex.High, text, maxIndicators); len(high) > 0 {
		reasons = append(reasons, "High-impact areas: "+strings.Join(high, ", "))
	}

	switch {
	case finalScore >= 9.0:
		reasons = append(reasons, "Essential for system stability")
	case finalScore >= 7.0:
		reasons = append(reasons, "Important for core functionality")
	case finalScore >= 5.0:
		reasons = append(reasons, "Standard feature validation")
	default:
		reasons = append(reasons, "Secondary feature or enhancement")
	}

	return strings.Join(reasons, "; ")
}
