// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/research-agent/pkg/types"
)

// FormatEntry shapes one entry for display: authors collapsed, the date
// shortened to YYYY-MM-DD, categories clamped to three, and the abstract
// truncated. When includeAbstract is false or the entry has no abstract
// the summary reads "No abstract available.".
func FormatEntry(e types.Entry, includeAbstract bool) types.FormattedEntry {
	title := e.Title
	if title == "" {
		title = "Untitled"
	}

	published := e.Published
	if len(published) > 10 {
		published = published[:10]
	}

	summary := "No abstract available."
	if includeAbstract && e.Summary != "" {
		summary = truncate(e.Summary, 300)
	}

	return types.FormattedEntry{
		Title:         title,
		Authors:       formatAuthors(e.Authors),
		Summary:       summary,
		Link:          e.Link,
		Published:     published,
		Categories:    formatCategories(e.Categories),
		EnhancedLink:  e.EnhancedLink,
		CitationCount: e.CitationCount,
	}
}

// FormatEntries shapes every entry of a result set for display.
func FormatEntries(rs types.ResultSet, includeAbstracts bool) []types.FormattedEntry {
	formatted := make([]types.FormattedEntry, 0, len(rs.Entries))
	for _, e := range rs.Entries {
		formatted = append(formatted, FormatEntry(e, includeAbstracts))
	}
	return formatted
}

// FormatTable writes entries as a human-readable table to w.
func FormatTable(rs types.ResultSet, w io.Writer) {
	if rs.IsEmpty() {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-24s  %-10s  %s\n",
		"Rank", "Title", "Authors", "Date", "Categories")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for i, e := range rs.Entries {
		f := FormatEntry(e, false)
		fmt.Fprintf(w, "%-4d  %-60s  %-24s  %-10s  %s\n",
			i+1, truncate(f.Title, 60), truncate(f.Authors, 24), f.Published, f.Categories)
		if f.CitationCount != nil {
			fmt.Fprintf(w, "      cited by %d\n", *f.CitationCount)
		}
	}

	fmt.Fprintf(w, "\n%d results", len(rs.Entries))
	if rs.TotalResults > len(rs.Entries) {
		fmt.Fprintf(w, " of %d total", rs.TotalResults)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes the formatted entries as indented JSON to w.
func FormatJSON(rs types.ResultSet, includeAbstracts bool, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(FormatEntries(rs, includeAbstracts))
}

func formatAuthors(authors []string) string {
	if len(authors) > 3 {
		return authors[0] + " et al."
	}
	return strings.Join(authors, ", ")
}

func formatCategories(categories []string) string {
	if len(categories) > 3 {
		return strings.Join(categories[:3], ", ") + "..."
	}
	return strings.Join(categories, ", ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
