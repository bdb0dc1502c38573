// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/research-agent/internal/httputil"
	"github.com/pdiddy/research-agent/pkg/types"
)

// googleSearchAPIBase is the Google Custom Search endpoint. Declared as a
// var so tests can substitute an httptest server.
var googleSearchAPIBase = "https://www.googleapis.com/customsearch/v1"

// GoogleBackend queries the Google Custom Search API.
type GoogleBackend struct {
	Client *http.Client
}

// Name returns the backend identifier.
func (b *GoogleBackend) Name() string { return "google" }

// Search queries the Custom Search API. A response without an "items"
// field means zero results, not an error.
func (b *GoogleBackend) Search(ctx context.Context, term string, cfg types.WebSearchConfig) ([]types.WebResult, error) {
	if cfg.APIKey == "" || cfg.EngineID == "" {
		return nil, fmt.Errorf("google search credentials not configured")
	}

	params := url.Values{}
	params.Set("key", cfg.APIKey)
	params.Set("cx", cfg.EngineID)
	params.Set("q", term)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleSearchAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, b.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("google search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google search returned HTTP %d", resp.StatusCode)
	}

	var payload googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parsing google search response: %w", err)
	}

	results := make([]types.WebResult, 0, len(payload.Items))
	for _, item := range payload.Items {
		results = append(results, types.WebResult{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		})
	}
	return results, nil
}

// Google Custom Search JSON structures.
type googleResponse struct {
	Items []googleItem `json:"items"`
}

type googleItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}
