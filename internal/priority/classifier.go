package priority

import "github.com/TestRank-hq/testrank/pkg/model"

// classifyKeywords scores normalized lowercase text against the lexicon.
// The tie-break ladder runs top to bottom, first match wins. Absence of any
// indicator is not treated as absence of importance: an unmatched text
// defaults to a mid-range Medium.
func classifyKeywords(lex Lexicon, text string) (float64, model.Priority) {
	critical, high, medium, low := lex.countMatches(text)

	switch {
	case critical >= 2:
		return 10.0, model.PriorityCritical
	case critical >= 1:
		return 8.5, model.PriorityHigh
	case high >= 3:
		return 8.0, model.PriorityHigh
	case high >= 2:
		return 7.0, model.PriorityHigh
	case high >= 1:
		return 6.0, model.PriorityMedium
	case medium >= 2:
		return 5.0, model.PriorityMedium
	case medium >= 1:
		return 4.0, model.PriorityMedium
	case low >= 1:
		return 2.5, model.PriorityLow
	default:
		return 4.5, model.PriorityMedium
	}
}
