// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package websearch

import (
	"context"
	"fmt"

	"github.com/pdiddy/research-agent/pkg/types"
)

// SimulatedBackend fabricates results for environments without search
// credentials. It never fails.
type SimulatedBackend struct{}

// Name returns the backend identifier.
func (b *SimulatedBackend) Name() string { return "simulated" }

// Search returns three canned results naming the search term.
func (b *SimulatedBackend) Search(_ context.Context, term string, _ types.WebSearchConfig) ([]types.WebResult, error) {
	return []types.WebResult{
		{
			Title:   fmt.Sprintf("Simulated result 1 for '%s'", term),
			Snippet: "This is a simulated search result.",
		},
		{
			Title:   fmt.Sprintf("Simulated result 2 for '%s'", term),
			Snippet: "This is another simulated search result.",
		},
		{
			Title:   fmt.Sprintf("Simulated result 3 for '%s'", term),
			Snippet: "This is yet another simulated search result.",
		},
	}, nil
}
