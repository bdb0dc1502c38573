// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/research-agent/internal/httputil"
	"github.com/pdiddy/research-agent/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// ArxivBackend queries the arXiv Atom API. No credentials are required.
type ArxivBackend struct {
	Client *http.Client
}

// Name returns the backend identifier.
func (b *ArxivBackend) Name() string { return "arxiv" }

// Search queries the arXiv API sorted by relevance and parses the Atom
// feed. Entries the feed could not describe (no title, no link) are
// skipped rather than failing the whole search.
func (b *ArxivBackend) Search(ctx context.Context, topic string, cfg types.KnowledgeConfig) (types.ResultSet, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return types.ResultSet{}, fmt.Errorf("empty search topic")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 3
	}

	reqURL := fmt.Sprintf("%s?search_query=all:%s&start=0&max_results=%d&sortBy=relevance&sortOrder=descending",
		arxivAPIBase, url.QueryEscape(topic), maxResults)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return types.ResultSet{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, b.Client, req, 0)
	if err != nil {
		return types.ResultSet{}, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.ResultSet{}, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return types.ResultSet{}, fmt.Errorf("parsing arXiv response: %w", err)
	}

	rs := types.ResultSet{TotalResults: feed.TotalResults}
	for _, entry := range feed.Entries {
		e := types.Entry{
			Title:     strings.TrimSpace(entry.Title),
			Summary:   strings.TrimSpace(entry.Summary),
			Link:      preferredLink(entry),
			Published: entry.Published,
		}
		if e.Title == "" && e.Link == "" {
			continue
		}
		for _, a := range entry.Authors {
			if name := strings.TrimSpace(a.Name); name != "" {
				e.Authors = append(e.Authors, name)
			}
		}
		for _, c := range entry.Categories {
			if c.Term != "" {
				e.Categories = append(e.Categories, c.Term)
			}
		}
		rs.Entries = append(rs.Entries, e)
	}
	return rs, nil
}

// preferredLink returns the entry's PDF link when the feed provides one,
// otherwise the abstract page from the entry ID.
func preferredLink(entry arxivEntry) string {
	for _, l := range entry.Links {
		if l.Title == "pdf" && l.Href != "" {
			return l.Href
		}
	}
	return strings.TrimSpace(entry.ID)
}

// arXiv Atom feed XML structures. Fields are matched by local name so
// both the Atom and OpenSearch namespaces resolve.
type arxivFeed struct {
	TotalResults int          `xml:"totalResults"`
	Entries      []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID         string          `xml:"id"`
	Title      string          `xml:"title"`
	Summary    string          `xml:"summary"`
	Published  string          `xml:"published"`
	Authors    []arxivAuthor   `xml:"author"`
	Links      []arxivLink     `xml:"link"`
	Categories []arxivCategory `xml:"category"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

type arxivLink struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Title string `xml:"title,attr"`
}

type arxivCategory struct {
	Term string `xml:"term,attr"`
}

// arxivID pulls the arXiv identifier from an abstract or PDF URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" yields "2301.07041").
func arxivID(link string) string {
	for _, marker := range []string{"/abs/", "/pdf/"} {
		idx := strings.Index(link, marker)
		if idx < 0 {
			continue
		}
		id := strings.TrimSuffix(link[idx+len(marker):], ".pdf")

		// Strip version suffix (e.g. "v1", "v2").
		if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
			if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
				id = id[:vIdx]
			}
		}
		return id
	}
	return ""
}
