// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package websearch retrieves general web results. The Google backend
// calls the Custom Search API; the simulated backend produces canned
// results so the agent keeps answering without credentials.
package websearch

import (
	"context"

	"github.com/pdiddy/research-agent/pkg/types"
)

// Backend searches the web for a term.
type Backend interface {
	Name() string
	Search(ctx context.Context, term string, cfg types.WebSearchConfig) ([]types.WebResult, error)
}
