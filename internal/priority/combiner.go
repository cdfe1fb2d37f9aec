package priority

import (
	"math"

	"github.com/TestRank-hq/testrank/pkg/model"
)

// Signal fusion weights. Changing these changes the product's scoring
// behavior and is a versioned decision, not a per-call knob.
const (
	keywordWeight  = 0.5
	baseTypeWeight = 0.3
	llmWeight      = 0.2

	scoreCeiling = 10.0

	// neutralScore is used when no LLM hint is supplied or the supplied
	// label is unrecognized.
	neutralScore = 5.0
)

// labelScore maps a priority label to its canonical numeric score.
// Lookups are case-sensitive exact matches.
func labelScore(p model.Priority) (float64, bool) {
	switch p {
	case model.PriorityHigh:
		return 8.0, true
	case model.PriorityMedium:
		return 5.0, true
	case model.PriorityLow:
		return 2.0, true
	}
	return 0, false
}

// combineScores fuses the keyword score, the profile base score and the
// hint score, then applies the test-type multiplier and clamps to the
// ceiling. No rounding happens here; rounding is an output concern.
func combineScores(keywordScore, baseScore, llmScore, multiplier float64) float64 {
	base := keywordScore*keywordWeight + baseScore*baseTypeWeight + llmScore*llmWeight
	return math.Min(base*multiplier, scoreCeiling)
}

// finalFromScore maps the combined score to the output label via ordered
// descending thresholds. This mapping never produces Critical: the Critical
// keyword signal is absorbed into High at the output boundary, keeping the
// product's three output tiers.
func finalFromScore(score float64) model.Priority {
	switch {
	case score >= 6.5:
		return model.PriorityHigh
	case score >= 3.5:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

// round2 rounds to two decimal places for output serialization.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
