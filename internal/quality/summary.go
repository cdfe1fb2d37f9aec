package quality

import (
	"fmt"
	"strings"

	"github.com/TestRank-hq/testrank/pkg/model"
)

// Summary renders a human-readable digest of a quality report.
func Summary(report model.QualityReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Overall Quality Score: %.1f/10\n", report.OverallScore)
	fmt.Fprintf(&b, "Total Test Cases: %d\n", len(report.Individual))
	if report.TestContext != "" {
		fmt.Fprintf(&b, "Context: %s\n", report.TestContext)
	}

	if len(report.Individual) > 0 {
		high, medium, low := 0, 0, 0
		for _, a := range report.Individual {
			switch {
			case a.TotalScore >= 8.0:
				high++
			case a.TotalScore >= 6.0:
				medium++
			default:
				low++
			}
		}
		b.WriteString("\nQuality Distribution:\n")
		fmt.Fprintf(&b, "  High (8.0+):      %d tests\n", high)
		fmt.Fprintf(&b, "  Medium (6.0-7.9): %d tests\n", medium)
		fmt.Fprintf(&b, "  Low (<6.0):       %d tests\n", low)
	}

	weaknesses := collectWeaknesses(report, 3)
	if len(weaknesses) > 0 {
		b.WriteString("\nCommon Weaknesses:\n")
		for _, w := range weaknesses {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}

	return b.String()
}

// collectWeaknesses returns up to limit distinct weaknesses across the
// report, in first-seen order.
func collectWeaknesses(report model.QualityReport, limit int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range report.Individual {
		for _, w := range a.Weaknesses {
			if seen[w] {
				continue
			}
			seen[w] = true
			out = append(out, w)
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}
