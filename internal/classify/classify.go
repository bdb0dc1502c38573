// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify assigns an intent category to a query by ordered
// keyword matching. The first rule whose keywords appear in the lowercased
// query wins; a query matching no rule falls back to the ruleset default.
package classify

import (
	"strings"

	"github.com/pdiddy/research-agent/pkg/types"
)

// Rule pairs a category with the keywords that select it.
type Rule struct {
	Category types.Category
	Keywords []string
}

// Ruleset is an ordered list of rules plus the category assigned when no
// rule matches. Order is significant: earlier rules shadow later ones.
type Ruleset struct {
	Rules    []Rule
	Fallback types.Category
}

// Advanced routes across all four tool groups, falling back to reasoning.
// Arithmetic symbols are matched by the number extractor, not here.
var Advanced = Ruleset{
	Rules: []Rule{
		{types.CategoryMath, []string{
			"calculate", "add", "sum", "plus", "subtract", "minus",
			"difference", "multiply", "product", "times", "divide",
			"quotient", "power", "exponent", "squared", "cubed",
		}},
		{types.CategoryKnowledge, []string{
			"research", "paper", "article", "study", "academic",
			"science", "scientific", "physics", "math",
			"computer science", "biology", "publication",
		}},
		{types.CategoryReasoning, []string{
			"explain", "why", "how", "reason", "analyze", "consider",
			"evaluate", "what is", "define", "meaning of",
		}},
		{types.CategorySearch, []string{
			"search", "find", "look up", "information about",
			"tell me about", "what do you know about",
		}},
	},
	Fallback: types.CategoryReasoning,
}

// Simplified routes across math and web search only, falling back to
// general handling.
var Simplified = Ruleset{
	Rules: []Rule{
		{types.CategoryMath, []string{
			"calculate", "add", "sum", "plus", "subtract", "minus",
			"difference", "multiply", "product", "times", "divide",
			"quotient", "power", "exponent", "squared", "cubed",
		}},
		{types.CategorySearch, []string{
			"search", "find", "look up", "google",
			"information about", "tell me about",
		}},
	},
	Fallback: types.CategoryGeneral,
}

// ForVariant returns the ruleset for an agent variant. Unknown variants
// get the advanced ruleset.
func ForVariant(v types.AgentVariant) Ruleset {
	if v == types.VariantSimplified {
		return Simplified
	}
	return Advanced
}

// Classify returns the category of the first matching rule, or the
// fallback when no keyword appears in the query.
func (rs Ruleset) Classify(query string) types.Category {
	q := strings.ToLower(query)
	for _, rule := range rs.Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(q, kw) {
				return rule.Category
			}
		}
	}
	return rs.Fallback
}
