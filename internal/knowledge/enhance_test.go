// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/pdiddy/research-agent/pkg/types"
)

// --- stub web search backend ---

type stubWebSearch struct {
	results  []types.WebResult
	err      error
	calls    int
	lastTerm string
}

func (s *stubWebSearch) Name() string { return "stub" }

func (s *stubWebSearch) Search(_ context.Context, term string, _ types.WebSearchConfig) ([]types.WebResult, error) {
	s.calls++
	s.lastTerm = term
	return s.results, s.err
}

// --- Enhance ---

func TestEnhanceMatchesByTitle(t *testing.T) {
	stub := &stubWebSearch{results: []types.WebResult{
		{Title: "Cooking Recipes Weekly", Link: "https://example.org/cooking"},
		{
			Title:   "[PDF] Quantum Computing Advances",
			Link:    "https://example.org/qca",
			Snippet: "A survey of the field ... Cited by 128 ... full text available.",
		},
	}}
	e := &Enhancer{Search: stub}

	entries := []types.Entry{
		{Title: "Quantum Computing Advances", Link: "http://arxiv.org/abs/2301.07041v1"},
		{Title: "Completely Unrelated Paper"},
	}

	if err := e.Enhance(context.Background(), "quantum computing", entries); err != nil {
		t.Fatalf("Enhance: %v", err)
	}

	if stub.calls != 1 {
		t.Errorf("search calls = %d, want 1", stub.calls)
	}
	if stub.lastTerm != "quantum computing research paper academic" {
		t.Errorf("search term = %q", stub.lastTerm)
	}

	if entries[0].EnhancedLink != "https://example.org/qca" {
		t.Errorf("EnhancedLink = %q", entries[0].EnhancedLink)
	}
	if entries[0].CitationCount == nil || *entries[0].CitationCount != 128 {
		t.Errorf("CitationCount = %v, want 128", entries[0].CitationCount)
	}

	// No web result resembles the second entry, so it stays untouched.
	if entries[1].EnhancedLink != "" || entries[1].CitationCount != nil {
		t.Errorf("unrelated entry should stay untouched, got link=%q count=%v",
			entries[1].EnhancedLink, entries[1].CitationCount)
	}
}

func TestEnhanceFirstMatchWins(t *testing.T) {
	stub := &stubWebSearch{results: []types.WebResult{
		{Title: "Quantum Computing Advances", Link: "https://example.org/first"},
		{Title: "Quantum Computing Advances", Link: "https://example.org/second"},
	}}
	e := &Enhancer{Search: stub}

	entries := []types.Entry{{Title: "Quantum Computing Advances"}}
	if err := e.Enhance(context.Background(), "quantum computing", entries); err != nil {
		t.Fatalf("Enhance: %v", err)
	}
	if entries[0].EnhancedLink != "https://example.org/first" {
		t.Errorf("EnhancedLink = %q, want first match", entries[0].EnhancedLink)
	}
}

func TestEnhanceSearchFailureLeavesEntries(t *testing.T) {
	stub := &stubWebSearch{err: fmt.Errorf("quota exceeded")}
	e := &Enhancer{Search: stub}

	entries := []types.Entry{{Title: "Paper A"}}
	err := e.Enhance(context.Background(), "topic", entries)
	if err == nil {
		t.Fatal("expected error from failed search")
	}
	if entries[0].EnhancedLink != "" || entries[0].CitationCount != nil {
		t.Error("entries should stay untouched after a failed search")
	}
}

func TestEnhanceNoBackend(t *testing.T) {
	e := &Enhancer{}
	err := e.Enhance(context.Background(), "topic", []types.Entry{{Title: "Paper A"}})
	if err == nil {
		t.Fatal("expected error when no web search backend is configured")
	}
}

// --- Similarity ---

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "Quantum Computing Advances", "quantum computing advances", 1.0},
		{"disjoint", "quantum computing", "cooking recipes", 0.0},
		{"partial overlap", "quantum computing advances", "quantum computing advances survey", 0.75},
		{"empty left", "", "quantum computing", 0.0},
		{"empty right", "quantum computing", "", 0.0},
		{"both empty", "", "", 0.0},
		{"punctuation ignored", "BERT: Pre-training", "bert pre training", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Similarity(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarityIsSymmetric(t *testing.T) {
	a := "quantum computing advances"
	b := "advances in quantum error correction"
	if Similarity(a, b) != Similarity(b, a) {
		t.Errorf("Similarity(a, b) = %f, Similarity(b, a) = %f",
			Similarity(a, b), Similarity(b, a))
	}
}

// --- Citation counts ---

func TestParseCitationCount(t *testing.T) {
	tests := []struct {
		snippet string
		want    int
		wantNil bool
	}{
		{"A survey ... Cited by 128 ... full text", 128, false},
		{"cited by 5", 5, false},
		{"CITED BY 90000 - Semantic Scholar", 90000, false},
		{"no citation information here", 0, true},
		{"cited by many", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.snippet, func(t *testing.T) {
			got := parseCitationCount(tt.snippet)
			if tt.wantNil {
				if got != nil {
					t.Errorf("parseCitationCount(%q) = %d, want nil", tt.snippet, *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("parseCitationCount(%q) = %v, want %d", tt.snippet, got, tt.want)
			}
		})
	}
}
