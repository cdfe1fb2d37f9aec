package priority

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/TestRank-hq/testrank/pkg/model"
)

// BulkEnhance applies the single-case pipeline to an ordered sequence of
// test cases sharing one requirement and test type. Each case's existing
// priority (Medium when unset) is consumed as the external hint, and its
// priority fields are overwritten with the new values. The output slice has
// the same length and order as the input, and every non-priority field
// passes through unchanged.
//
// Per-case work is independent, so with Workers > 1 cases are scored in
// parallel; results are still written back by input index.
func (e *Enhancer) BulkEnhance(ctx context.Context, cases []model.TestCase, requirement, testType string) []model.TestCase {
	if e.cfg.Workers > 1 {
		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(e.cfg.Workers)
		for i := range cases {
			g.Go(func() error {
				e.enhanceInPlace(&cases[i], requirement, testType)
				return nil
			})
		}
		// Workers never return errors; Wait is just a barrier.
		_ = g.Wait()
		return cases
	}

	for i := range cases {
		e.enhanceInPlace(&cases[i], requirement, testType)
	}
	return cases
}

func (e *Enhancer) enhanceInPlace(tc *model.TestCase, requirement, testType string) {
	hint := tc.Priority
	if hint == "" {
		hint = model.PriorityMedium
	}

	res := e.Enhance(*tc, requirement, testType, string(hint))

	tc.Priority = res.Priority
	tc.PriorityConfidence = res.Confidence
	tc.PriorityScore = res.Score
	tc.PriorityReasoning = res.Reasoning
}
