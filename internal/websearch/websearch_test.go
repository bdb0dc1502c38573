package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pdiddy/research-agent/pkg/types"
)

const sampleGoogleSearchJSON = `{
  "kind": "customsearch#search",
  "items": [
    {
      "title": "Attention Is All You Need - Semantic Scholar",
      "link": "https://www.semanticscholar.org/paper/attention",
      "snippet": "The dominant sequence transduction models ... Cited by 90000"
    },
    {
      "title": "Transformers in NLP",
      "link": "https://example.org/transformers",
      "snippet": "An overview of transformer architectures."
    }
  ]
}`

func testWebCfg() types.WebSearchConfig {
	cfg := types.WebSearchConfig{
		APIKey:   "test-key",
		EngineID: "test-cx",
	}
	cfg.UserAgent = "research-agent-test/0.1"
	return cfg
}

func TestGoogleBackendSearch(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("key = %q, want test-key", r.URL.Query().Get("key"))
		}
		if r.URL.Query().Get("cx") != "test-cx" {
			t.Errorf("cx = %q, want test-cx", r.URL.Query().Get("cx"))
		}
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleGoogleSearchJSON))
	}))
	defer ts.Close()

	old := googleSearchAPIBase
	googleSearchAPIBase = ts.URL
	defer func() { googleSearchAPIBase = old }()

	b := &GoogleBackend{Client: ts.Client()}
	results, err := b.Search(context.Background(), "attention is all you need", testWebCfg())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotQuery != "attention is all you need" {
		t.Errorf("q = %q, want the search term", gotQuery)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Title != "Attention Is All You Need - Semantic Scholar" {
		t.Errorf("title = %q", results[0].Title)
	}
	if results[0].Link != "https://www.semanticscholar.org/paper/attention" {
		t.Errorf("link = %q", results[0].Link)
	}
	if !strings.Contains(results[0].Snippet, "Cited by 90000") {
		t.Errorf("snippet = %q", results[0].Snippet)
	}
}

func TestGoogleBackendNoItems(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"kind": "customsearch#search", "searchInformation": {"totalResults": "0"}}`))
	}))
	defer ts.Close()

	old := googleSearchAPIBase
	googleSearchAPIBase = ts.URL
	defer func() { googleSearchAPIBase = old }()

	b := &GoogleBackend{Client: ts.Client()}
	results, err := b.Search(context.Background(), "no such thing", testWebCfg())
	if err != nil {
		t.Fatalf("a response without items should not be an error, got: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestGoogleBackendHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	old := googleSearchAPIBase
	googleSearchAPIBase = ts.URL
	defer func() { googleSearchAPIBase = old }()

	b := &GoogleBackend{Client: ts.Client()}
	if _, err := b.Search(context.Background(), "anything", testWebCfg()); err == nil {
		t.Fatal("expected error for HTTP 403")
	}
}

func TestGoogleBackendMissingCredentials(t *testing.T) {
	b := &GoogleBackend{Client: http.DefaultClient}
	_, err := b.Search(context.Background(), "anything", types.WebSearchConfig{})
	if err == nil {
		t.Fatal("expected error when credentials are missing")
	}
	if !strings.Contains(err.Error(), "credentials") {
		t.Errorf("error = %q, should mention credentials", err)
	}
}

func TestSimulatedBackend(t *testing.T) {
	b := &SimulatedBackend{}
	results, err := b.Search(context.Background(), "golang generics", types.WebSearchConfig{})
	if err != nil {
		t.Fatalf("simulated backend should never fail: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Title != "Simulated result 1 for 'golang generics'" {
		t.Errorf("title = %q", results[0].Title)
	}
	if results[0].Snippet != "This is a simulated search result." {
		t.Errorf("snippet = %q", results[0].Snippet)
	}
	if results[2].Snippet != "This is yet another simulated search result." {
		t.Errorf("snippet = %q", results[2].Snippet)
	}
}
