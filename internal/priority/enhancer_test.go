package priority

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TestRank-hq/testrank/pkg/model"
)

func TestEnhance_PaymentSmoke(t *testing.T) {
	e := NewEnhancer(DefaultConfig())

	tc := model.TestCase{
		Title:    "Test payment transaction processing",
		Steps:    []string{"Open checkout page", "Submit payment"},
		Expected: "Transaction completes successfully",
	}
	res := e.Enhance(tc, "System must handle secure payment transactions", "smoke", "Medium")

	// Multiple critical indicators push the keyword signal to its maximum;
	// the smoke multiplier clamps the combined score at the ceiling.
	assert.Equal(t, model.PriorityCritical, res.Breakdown.KeywordBased)
	assert.Equal(t, 10.0, res.Breakdown.KeywordScore)
	assert.Equal(t, model.PriorityHigh, res.Breakdown.TestTypeBase)
	assert.Equal(t, "Medium", res.Breakdown.LLMSuggested)
	assert.Equal(t, 1.3, res.Breakdown.TypeMultiplier)

	assert.Equal(t, model.PriorityHigh, res.Priority)
	assert.Equal(t, 10.0, res.Score)
	// Three-way disagreement: Critical vs High vs Medium.
	assert.Equal(t, 0.33, res.Confidence)
}

func TestEnhance_CosmeticLowerThanPayment(t *testing.T) {
	e := NewEnhancer(DefaultConfig())

	payment := e.Enhance(model.TestCase{
		Title: "Test payment transaction processing",
	}, "secure payment transactions", "smoke", "Medium")

	cosmetic := e.Enhance(model.TestCase{
		Title: "Change button color on hover",
	}, "Button should change color when user hovers", "smoke", "Medium")

	assert.Equal(t, model.PriorityLow, cosmetic.Breakdown.KeywordBased)
	assert.Less(t, cosmetic.Score, payment.Score)
}

func TestEnhance_UnknownTestTypeFallsBack(t *testing.T) {
	e := NewEnhancer(DefaultConfig())

	res := e.Enhance(model.TestCase{Title: "hello world"}, "", "fuzz", "")

	assert.Equal(t, model.PriorityMedium, res.Breakdown.TestTypeBase)
	assert.Equal(t, 1.0, res.Breakdown.TypeMultiplier)
	assert.Contains(t, res.Reasoning, "Standard testing (Medium base)")
}

func TestEnhance_PaddedTestTypeTakesDefault(t *testing.T) {
	e := NewEnhancer(DefaultConfig())

	// Whitespace padding is not normalized away: " smoke " is an unknown
	// type and must score with the default profile, not the smoke one.
	res := e.Enhance(model.TestCase{Title: "hello world"}, "", " smoke ", "")

	assert.Equal(t, model.PriorityMedium, res.Breakdown.TestTypeBase)
	assert.Equal(t, 1.0, res.Breakdown.TypeMultiplier)
	assert.Equal(t, 4.75, res.Score)
	assert.Equal(t, model.PriorityMedium, res.Priority)
	assert.Contains(t, res.Reasoning, "Standard testing (Medium base)")
}

func TestEnhance_EmptyInputsDefaultToMedium(t *testing.T) {
	e := NewEnhancer(DefaultConfig())

	res := e.Enhance(model.TestCase{}, "", "unit", "")

	// No indicators at all: keyword signal defaults to mid-range Medium.
	assert.Equal(t, 4.5, res.Breakdown.KeywordScore)
	assert.Equal(t, model.PriorityMedium, res.Breakdown.KeywordBased)
	assert.Equal(t, "N/A", res.Breakdown.LLMSuggested)

	// 4.5*0.5 + 5*0.3 + 5*0.2 = 4.75, unit multiplier 1.0.
	assert.Equal(t, 4.75, res.Score)
	assert.Equal(t, model.PriorityMedium, res.Priority)
	// Keyword and profile both say Medium.
	assert.Equal(t, 1.0, res.Confidence)
}

func TestEnhance_TestTypeCaseInsensitive(t *testing.T) {
	e := NewEnhancer(DefaultConfig())
	tc := model.TestCase{Title: "verify dashboard report export"}

	lower := e.Enhance(tc, "", "smoke", "High")
	upper := e.Enhance(tc, "", "SMOKE", "High")
	mixed := e.Enhance(tc, "", "Smoke", "High")

	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, mixed)
}

func TestEnhance_HintRecognition(t *testing.T) {
	e := NewEnhancer(DefaultConfig())
	tc := model.TestCase{Title: "hello world"}

	recognized := e.Enhance(tc, "", "unit", "High")
	neutralTypo := e.Enhance(tc, "", "unit", "high")
	absent := e.Enhance(tc, "", "unit", "")

	// Recognized labels move the score; anything else carries the neutral
	// 5.0 weight, same as an absent hint.
	assert.Greater(t, recognized.Score, neutralTypo.Score)
	assert.Equal(t, absent.Score, neutralTypo.Score)

	// The raw string still shows up in the breakdown for auditability.
	assert.Equal(t, "high", neutralTypo.Breakdown.LLMSuggested)
	assert.Equal(t, "N/A", absent.Breakdown.LLMSuggested)
}

func TestEnhance_Deterministic(t *testing.T) {
	e := NewEnhancer(DefaultConfig())
	tc := model.TestCase{
		Title:    "Verify user login with valid credentials",
		Steps:    []string{"Navigate to login page", "Enter credentials", "Submit"},
		Expected: "User is authenticated and redirected to dashboard",
	}

	first := e.Enhance(tc, "Users must be able to log in securely", "e2e", "High")
	for i := 0; i < 10; i++ {
		again := e.Enhance(tc, "Users must be able to log in securely", "e2e", "High")
		require.Equal(t, first, again)
	}
}

func TestEnhance_ScoreAndConfidenceRanges(t *testing.T) {
	e := NewEnhancer(DefaultConfig())

	titles := []string{
		"", "hello world", "payment security breach attack",
		"adjust spacing and font", "search upload download export",
		"open the settings menu dialog",
	}
	types := []string{"smoke", "unit", "usability", "fuzz", ""}
	hints := []string{"", "High", "Medium", "Low", "bogus"}

	for _, title := range titles {
		for _, typ := range types {
			for _, hint := range hints {
				res := e.Enhance(model.TestCase{Title: title}, title, typ, hint)
				assert.GreaterOrEqual(t, res.Score, 0.0)
				assert.LessOrEqual(t, res.Score, 10.0)
				assert.GreaterOrEqual(t, res.Confidence, 0.0)
				assert.LessOrEqual(t, res.Confidence, 1.0)
				assert.Contains(t, []model.Priority{
					model.PriorityHigh, model.PriorityMedium, model.PriorityLow,
				}, res.Priority, "final priority is never Critical")
			}
		}
	}
}

func TestEnhance_MonotonicSeverity(t *testing.T) {
	e := NewEnhancer(DefaultConfig())

	twoCritical := e.Enhance(model.TestCase{Title: "login with wrong password"}, "", "unit", "Medium")
	oneHigh := e.Enhance(model.TestCase{Title: "confirmation email is sent"}, "", "unit", "Medium")
	noMatch := e.Enhance(model.TestCase{Title: "hello world"}, "", "unit", "Medium")

	assert.GreaterOrEqual(t, twoCritical.Score, oneHigh.Score)
	assert.GreaterOrEqual(t, oneHigh.Score, noMatch.Score)
}

func TestEnhance_ReasoningSnapshot(t *testing.T) {
	e := NewEnhancer(DefaultConfig())

	res := e.Enhance(model.TestCase{
		Title: "Test payment transaction processing",
	}, "secure payment transactions", "smoke", "Medium")
	assert.Equal(t,
		"Critical path validation (High base); Critical indicators: payment, transaction; Essential for system stability",
		res.Reasoning)

	res = e.Enhance(model.TestCase{}, "", "unit", "")
	assert.Equal(t,
		"Component-level testing (Medium base); Secondary feature or enhancement",
		res.Reasoning)
}

func TestNewEnhancer_EmptyConfigUsesDefaults(t *testing.T) {
	e := NewEnhancer(Config{})

	res := e.Enhance(model.TestCase{Title: "payment crash"}, "", "smoke", "")
	assert.Equal(t, model.PriorityCritical, res.Breakdown.KeywordBased)
	assert.Equal(t, 1.3, res.Breakdown.TypeMultiplier)
}

func TestNewEnhancer_CustomLexicon(t *testing.T) {
	cfg := Config{
		Lexicon: Lexicon{
			Critical: []string{"zahlung"},
			Low:      []string{"farbe"},
		},
		Profiles: DefaultProfiles(),
	}
	e := NewEnhancer(cfg)

	res := e.Enhance(model.TestCase{Title: "Zahlung wird verarbeitet"}, "", "unit", "")
	assert.Equal(t, 8.5, res.Breakdown.KeywordScore)

	// Default lexicon phrases mean nothing to a custom configuration.
	res = e.Enhance(model.TestCase{Title: "payment processing"}, "", "unit", "")
	assert.Equal(t, 4.5, res.Breakdown.KeywordScore)
}
