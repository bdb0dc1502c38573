// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/research-agent/internal/websearch"
	"github.com/pdiddy/research-agent/pkg/types"
)

// similarityThreshold is the minimum word overlap between an entry title
// and a web result title before the web result is trusted as a match.
const similarityThreshold = 0.6

var (
	wordPattern     = regexp.MustCompile(`\w+`)
	citationPattern = regexp.MustCompile(`cited by (\d+)`)
)

// Enhancer augments retrieved entries with better links and citation
// counts taken from web search results.
type Enhancer struct {
	Search websearch.Backend
	Config types.WebSearchConfig
}

// Enhance runs one web search for the topic and matches its results
// against the entries by title similarity. Matched entries get the web
// result's link and, when the snippet mentions one, a citation count.
// Entries are modified in place; on search failure they are left as-is.
func (e *Enhancer) Enhance(ctx context.Context, topic string, entries []types.Entry) error {
	if e.Search == nil {
		return fmt.Errorf("no web search backend configured")
	}

	results, err := e.Search.Search(ctx, topic+" research paper academic", e.Config)
	if err != nil {
		return fmt.Errorf("enhancement search: %w", err)
	}

	for i := range entries {
		for _, r := range results {
			if Similarity(entries[i].Title, r.Title) <= similarityThreshold {
				continue
			}
			entries[i].EnhancedLink = r.Link
			if n := parseCitationCount(r.Snippet); n != nil {
				entries[i].CitationCount = n
			}
			break
		}
	}
	return nil
}

// Similarity scores how much two titles overlap, as the fraction of
// shared words over the larger word set. Returns 0 when either title
// has no words and 1 when the word sets are identical.
func Similarity(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	shared := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			shared++
		}
	}

	larger := len(setA)
	if len(setB) > larger {
		larger = len(setB)
	}
	return float64(shared) / float64(larger)
}

func wordSet(s string) map[string]struct{} {
	words := wordPattern.FindAllString(strings.ToLower(s), -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// parseCitationCount extracts a citation count from snippet text like
// "Cited by 1024", or nil when the snippet has none.
func parseCitationCount(snippet string) *int {
	m := citationPattern.FindStringSubmatch(strings.ToLower(snippet))
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}
