// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package agent routes a free-text query to one of the tool handlers
// (math, knowledge, reasoning, web search) and formats the result into a
// user-displayable reply. Every path returns a formatted string; no query
// ever produces a fault visible to the caller.
package agent

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/research-agent/internal/classify"
	"github.com/pdiddy/research-agent/internal/knowledge"
	"github.com/pdiddy/research-agent/internal/mathquery"
	"github.com/pdiddy/research-agent/internal/reason"
	"github.com/pdiddy/research-agent/internal/websearch"
	"github.com/pdiddy/research-agent/pkg/types"
)

// stepPattern extracts a requested reasoning step count, e.g. "in 5 steps".
var stepPattern = regexp.MustCompile(`(\d+)\s+steps?`)

// knowledgeTopicPrefixes are qualifier phrases stripped from knowledge
// queries before the topic is sent to the article search.
var knowledgeTopicPrefixes = []string{
	"what is", "tell me about", "define", "explain",
	"research on", "papers about",
}

// searchTermPrefixes are qualifier phrases stripped from web search
// queries before the term is sent to the search backend. "search for"
// precedes "search" so the longer phrase is removed whole.
var searchTermPrefixes = []string{
	"search for", "search", "find", "look up",
	"tell me about", "information about", "what do you know about",
}

// greetingFillers are conversational inputs answered with the capability
// menu instead of classification.
var greetingFillers = map[string]bool{
	"testing": true,
	"test":    true,
	"hello":   true,
	"hi":      true,
}

// Agent orchestrates one classify-dispatch-format pass per query. It is
// stateless across queries; the only shared state is the read-only
// configuration, so one Agent is safe for concurrent use.
type Agent struct {
	// Config carries component settings and the availability flags
	// computed at startup. Read-only after construction.
	Config types.AgentConfig

	// Ruleset is the ordered classification ruleset for the configured
	// variant.
	Ruleset classify.Ruleset

	// Knowledge retrieves scholarly articles. Always available.
	Knowledge knowledge.Backend

	// Enhancer augments knowledge entries via web search. Nil when
	// enhancement is disabled or web search credentials are absent.
	Enhancer *knowledge.Enhancer

	// WebSearch answers search queries: the live Google backend when
	// credentials are present, otherwise the simulated backend.
	WebSearch websearch.Backend

	// Reasoner is the live reasoning backend, nil when no API key is
	// configured. Failures fall back to the local simulator.
	Reasoner reason.Backend

	// Progress receives warnings from degraded backends.
	Progress io.Writer
}

// New wires an agent from the configuration: the classification ruleset
// for the variant, the arXiv backend, and live or simulated web search
// and reasoning backends depending on credential availability.
func New(cfg types.AgentConfig, progress io.Writer) *Agent {
	if progress == nil {
		progress = os.Stderr
	}

	a := &Agent{
		Config:    cfg,
		Ruleset:   classify.ForVariant(cfg.Variant),
		Knowledge: &knowledge.ArxivBackend{Client: httpClient(cfg.Knowledge.HTTPConfig)},
		WebSearch: &websearch.SimulatedBackend{},
		Progress:  progress,
	}

	if cfg.Availability.Search {
		google := &websearch.GoogleBackend{Client: httpClient(cfg.WebSearch.HTTPConfig)}
		a.WebSearch = google
		if cfg.Knowledge.Enhanced {
			a.Enhancer = &knowledge.Enhancer{Search: google, Config: cfg.WebSearch}
		}
	}

	if cfg.Availability.Reasoning {
		a.Reasoner = reason.NewOpenAIBackend(cfg.Reasoning)
	}

	return a
}

// httpClient builds an HTTP client with the configured request timeout.
func httpClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// Run answers one query. It never returns an error: malformed input,
// missing credentials, and backend failures all resolve to a formatted
// reply.
func (a *Agent) Run(ctx context.Context, query string) string {
	_, response := a.Respond(ctx, query)
	return response
}

// Respond answers one query and reports which category it was routed to.
// Short inputs are special-cased before classification: greetings get the
// capability menu and queries of at most two words get the suggestion
// template, both under the general category.
func (a *Agent) Respond(ctx context.Context, query string) (types.Category, string) {
	trimmed := strings.TrimSpace(query)

	if greetingFillers[strings.ToLower(trimmed)] {
		return types.CategoryGeneral, capabilityMenu
	}
	if len(strings.Fields(trimmed)) <= 2 {
		return types.CategoryGeneral, formatShortQuery(trimmed)
	}

	category := a.Ruleset.Classify(trimmed)
	switch category {
	case types.CategoryMath:
		return category, a.respondMath(trimmed)
	case types.CategoryKnowledge:
		return category, a.respondKnowledge(ctx, trimmed)
	case types.CategoryReasoning:
		return category, a.respondReasoning(ctx, trimmed)
	case types.CategorySearch:
		return category, a.respondSearch(ctx, trimmed)
	default:
		return category, formatGeneral(trimmed)
	}
}

// respondMath evaluates every detected operation against the first two
// numbers in the query.
func (a *Agent) respondMath(query string) string {
	calcs, err := mathquery.EvaluateAll(query)
	return formatMath(query, calcs, err)
}

// respondKnowledge searches for scholarly articles on the query topic.
func (a *Agent) respondKnowledge(ctx context.Context, query string) string {
	topic := parseKnowledgeTopic(query)
	rs := a.SearchKnowledge(ctx, topic, a.Config.Knowledge)
	return formatKnowledge(query, rs)
}

// SearchKnowledge runs one knowledge search with the agent's backend and
// enhancer. Failures degrade to an empty result set.
func (a *Agent) SearchKnowledge(ctx context.Context, topic string, cfg types.KnowledgeConfig) types.ResultSet {
	return knowledge.Search(ctx, topic, cfg, a.Knowledge, a.Enhancer, a.progress())
}

// respondSearch runs one web search for the query term.
func (a *Agent) respondSearch(ctx context.Context, query string) string {
	term := parseSearchTerm(query)

	results, err := a.WebSearch.Search(ctx, term, a.Config.WebSearch)
	if err != nil {
		fmt.Fprintf(a.progress(), "warning: web search failed: %v\n", err)
		return fmt.Sprintf("I couldn't process your search query: %s", sentence(err.Error()))
	}

	return formatSearch(query, results, !a.Config.Availability.Search)
}

// respondReasoning produces step-by-step reasoning for the query. A
// knowledge entry is fetched first as grounding context, best effort. When
// the live backend is absent or fails, the local simulator answers and the
// reply is marked simulated.
func (a *Agent) respondReasoning(ctx context.Context, query string) string {
	req := reason.Request{
		Topic:   query,
		Steps:   parseReasoningSteps(query, a.Config.Reasoning.DefaultSteps),
		Context: a.lookupContext(ctx, query),
	}

	if a.Reasoner != nil {
		text, err := a.Reasoner.Reason(ctx, req)
		if err == nil {
			return formatReasoning(query, text, false)
		}
		fmt.Fprintf(a.progress(), "warning: reasoning backend %s failed: %v\n", a.Reasoner.Name(), err)
	}

	text, _ := (&reason.Simulator{}).Reason(ctx, req)
	return formatReasoning(query, text, true)
}

// lookupContext fetches the most relevant article abstract for the topic,
// best effort. An empty string means no grounding was found.
func (a *Agent) lookupContext(ctx context.Context, topic string) string {
	cfg := a.Config.Knowledge
	cfg.MaxResults = 1
	cfg.Enhanced = false

	rs := knowledge.Search(ctx, parseKnowledgeTopic(topic), cfg, a.Knowledge, nil, a.progress())
	if rs.IsEmpty() {
		return ""
	}
	return rs.Entries[0].Summary
}

func (a *Agent) progress() io.Writer {
	if a.Progress == nil {
		return os.Stderr
	}
	return a.Progress
}

// parseKnowledgeTopic strips qualifier phrases from a knowledge query,
// leaving the search topic.
func parseKnowledgeTopic(query string) string {
	topic := strings.ToLower(query)
	for _, prefix := range knowledgeTopicPrefixes {
		topic = strings.ReplaceAll(topic, prefix, "")
	}
	return strings.TrimSpace(topic)
}

// parseSearchTerm strips search indicator phrases from a query, leaving
// the search term.
func parseSearchTerm(query string) string {
	term := strings.ToLower(query)
	for _, prefix := range searchTermPrefixes {
		term = strings.ReplaceAll(term, prefix, "")
	}
	return strings.TrimSpace(term)
}

// parseReasoningSteps extracts a requested step count from the query,
// falling back to the configured default, then to 3.
func parseReasoningSteps(query string, defaultSteps int) int {
	if m := stepPattern.FindStringSubmatch(query); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}
	if defaultSteps > 0 {
		return defaultSteps
	}
	return 3
}
