package priority

import (
	"math"

	"github.com/TestRank-hq/testrank/pkg/model"
)

// agreementBonus is added when the keyword label and the profile base label
// agree, the two signals that are always present.
const agreementBonus = 0.15

// estimateConfidence measures agreement across the categorical signals that
// fed the combiner. llmLabel is ignored when empty. Returns a value in
// [0,1] rounded to two decimals.
func estimateConfidence(keywordLabel, typeLabel model.Priority, llmLabel model.Priority) float64 {
	labels := []model.Priority{keywordLabel, typeLabel}
	if llmLabel != "" {
		labels = append(labels, llmLabel)
	}
	if len(labels) == 0 {
		return 0.5
	}

	counts := make(map[model.Priority]int, len(labels))
	maxAgreement := 0
	for _, l := range labels {
		counts[l]++
		if counts[l] > maxAgreement {
			maxAgreement = counts[l]
		}
	}

	confidence := float64(maxAgreement) / float64(len(labels))
	if keywordLabel == typeLabel {
		confidence = math.Min(confidence+agreementBonus, 1.0)
	}
	return round2(confidence)
}
