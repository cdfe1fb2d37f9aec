package priority

import "strings"

// Lexicon holds the severity-indicating phrase sets used by the keyword
// classifier. Phrases are lowercase and may be multi-word; they are matched
// by substring containment against normalized text, not by token. That is a
// deliberate heuristic: "transaction" matches "transactions" and
// "credit card" matches across word boundaries.
type Lexicon struct {
	Critical []string `yaml:"critical"`
	High     []string `yaml:"high"`
	Medium   []string `yaml:"medium"`
	Low      []string `yaml:"low"`
}

// DefaultLexicon returns the built-in severity lexicon.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Critical: []string{
			"payment", "transaction", "checkout", "purchase", "billing",
			"security", "authentication", "authorization", "login", "password",
			"data loss", "crash", "unauthorized", "breach", "vulnerability",
			"encryption", "critical", "emergency", "backup", "recovery",
			"corruption", "financial", "money", "credit card", "sensitive data",
			"admin access", "root", "privilege escalation", "sql injection",
			"xss", "csrf", "malicious", "attack",
		},
		High: []string{
			"search", "upload", "download", "notification", "email",
			"integration", "api", "database", "performance", "sync",
			"workflow", "core feature", "main functionality", "sign up",
			"registration", "profile", "account", "session", "timeout",
			"export", "import", "batch", "bulk", "report", "analytics",
			"dashboard", "error handling", "validation", "mandatory",
			"required field", "user management", "role", "permission",
		},
		Medium: []string{
			"filter", "sort", "sorting", "formatting", "display", "layout",
			"ui", "settings", "preferences", "configuration", "customize",
			"optional", "helper", "tooltip", "hint", "placeholder",
			"pagination", "navigation", "breadcrumb", "menu", "dropdown",
			"modal", "dialog", "popup", "tab", "accordion", "calendar",
			"date picker", "color picker", "toggle", "switch",
		},
		Low: []string{
			"cosmetic", "aesthetic", "styling", "theme", "appearance",
			"icon", "logo", "spacing", "margin", "padding", "alignment",
			"font", "color scheme", "animation", "transition", "hover",
			"informational", "help text", "documentation", "readme",
			"optional feature", "nice to have", "future enhancement",
		},
	}
}

// countMatches returns how many phrases from each tier occur in text.
// The text must already be lowercase.
func (l Lexicon) countMatches(text string) (critical, high, medium, low int) {
	critical = countContained(l.Critical, text)
	high = countContained(l.High, text)
	medium = countContained(l.Medium, text)
	low = countContained(l.Low, text)
	return
}

// findMatches returns the phrases from a tier found in text, in declared
// order, up to limit. Declared order keeps the reasoning output stable.
func findMatches(phrases []string, text string, limit int) []string {
	var found []string
	for _, p := range phrases {
		if strings.Contains(text, p) {
			found = append(found, p)
			if len(found) == limit {
				break
			}
		}
	}
	return found
}

func countContained(phrases []string, text string) int {
	n := 0
	for _, p := range phrases {
		if strings.Contains(text, p) {
			n++
		}
	}
	return n
}
