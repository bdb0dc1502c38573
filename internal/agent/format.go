// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdiddy/research-agent/internal/knowledge"
	"github.com/pdiddy/research-agent/internal/mathquery"
	"github.com/pdiddy/research-agent/pkg/types"
)

// capabilityMenu answers greetings and test inputs with what the agent
// can do.
const capabilityMenu = `I can help you with various types of questions:

1. Math questions - Try asking "Calculate 25 + 17" or "What is 8 times 9?"
2. Research paper searches - Try asking "Find research papers about quantum computing"
3. General knowledge questions - Try asking "Tell me about artificial intelligence"

What would you like to know about?`

// searchDisclaimer is appended to search replies built from the simulated
// backend.
const searchDisclaimer = "These are simulated results. Set up API keys for real search functionality."

// reasoningDisclaimer is appended to reasoning replies produced by the
// local simulator.
const reasoningDisclaimer = "(Note: This is a simulated response. Set up an OpenAI API key for real reasoning.)"

// formatShortQuery answers a one- or two-word query with suggestions for
// more specific questions.
func formatShortQuery(query string) string {
	return fmt.Sprintf(`I notice you've asked about %q. I can provide more information if you ask a more specific question.

Try asking something like:
1. "Tell me about %s"
2. "What is %s used for?"
3. "Find research papers about %s"
4. "Calculate 25 + 17" (for math questions)`, query, query, query, query)
}

// formatGeneral answers queries no rule matched under the simplified
// ruleset.
func formatGeneral(query string) string {
	return fmt.Sprintf("I received your question: '%s'. This is a simplified version of the agent "+
		"that only handles math and search queries. Try asking a math question like "+
		"'What is 5 plus 7?' or a search query like 'Search for information about artificial intelligence'.", query)
}

// formatMath renders one result line per evaluated operation. Extraction
// failure short-circuits to the apology line; a query with numbers but no
// recognizable operation gets its own message.
func formatMath(query string, calcs []mathquery.Calculation, err error) string {
	if err != nil {
		return fmt.Sprintf("I couldn't process your math query: %s", sentence(err.Error()))
	}
	if len(calcs) == 0 {
		return "I couldn't identify any math operations to perform in your query."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "For your query: '%s'\n\n", query)
	for _, c := range calcs {
		if c.Err != nil {
			fmt.Fprintf(&b, "%s result: Error: %s\n", c.Operation.Label(), sentence(c.Err.Error()))
			continue
		}
		fmt.Fprintf(&b, "%s result: %s\n", c.Operation.Label(), formatNumber(c.Value))
	}
	return b.String()
}

// formatNumber renders a float in its minimal form: "60", "1024", "3.5".
// Non-finite values (e.g. math.Pow on a negative base with a fractional
// exponent) render as strconv prints them, "NaN" or "+Inf".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatKnowledge renders up to three retrieved articles with a
// total-count footer.
func formatKnowledge(query string, rs types.ResultSet) string {
	if rs.IsEmpty() {
		return fmt.Sprintf("I couldn't find specific research articles about '%s'. "+
			"Would you like me to try a different approach?", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here's what I found about '%s' from scientific research:\n\n", query)

	entries := rs.Entries
	if len(entries) > 3 {
		entries = entries[:3]
	}
	for i, e := range entries {
		f := knowledge.FormatEntry(e, true)
		fmt.Fprintf(&b, "%d. %s\n", i+1, f.Title)
		fmt.Fprintf(&b, "   Authors: %s\n", orUnknown(f.Authors))
		fmt.Fprintf(&b, "   Summary: %s\n", f.Summary)
		if f.Link != "" {
			fmt.Fprintf(&b, "   Link: %s\n", f.Link)
		}
		if f.EnhancedLink != "" {
			fmt.Fprintf(&b, "   Enhanced link: %s\n", f.EnhancedLink)
		}
		if f.CitationCount != nil {
			fmt.Fprintf(&b, "   Cited by %d\n", *f.CitationCount)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nTotal results found: %d", rs.TotalResults)
	return b.String()
}

// formatSearch renders numbered web results, appending the simulation
// disclaimer when no live backend answered.
func formatSearch(query string, results []types.WebResult, simulated bool) string {
	if len(results) == 0 {
		return "I couldn't find any search results for your query."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Search results for: '%s'\n\n", query)
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Title)
		fmt.Fprintf(&b, "   %s\n", r.Snippet)
		if r.Link != "" {
			fmt.Fprintf(&b, "   %s\n", r.Link)
		}
		b.WriteString("\n")
	}

	if simulated {
		b.WriteString("\n" + searchDisclaimer)
	}
	return b.String()
}

// formatReasoning renders reasoning text, appending the simulation
// disclaimer when the local simulator produced it.
func formatReasoning(query, text string, simulated bool) string {
	response := fmt.Sprintf("Reasoning for your query: '%s'\n\n%s", query, text)
	if simulated {
		response += "\n\n" + reasoningDisclaimer
	}
	return response
}

// orUnknown substitutes "Unknown" for an empty author line.
func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// sentence uppercases the first letter of an error message so it reads as
// a user-facing sentence ("need at least two numbers..." becomes "Need at
// least two numbers...").
func sentence(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
