// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Entry is a single scholarly article returned by a knowledge backend.
type Entry struct {
	// Title is the article title with surrounding whitespace removed.
	Title string `json:"title" yaml:"title"`

	// Authors lists the article authors in feed order.
	Authors []string `json:"authors" yaml:"authors"`

	// Summary is the abstract text as provided by the source.
	Summary string `json:"summary" yaml:"summary"`

	// Link is the preferred URL for the article. For arXiv entries this is
	// the PDF link when the feed provides one, otherwise the abstract page.
	Link string `json:"link" yaml:"link"`

	// Published is the publication timestamp as reported by the source,
	// kept verbatim (typically RFC 3339).
	Published string `json:"published" yaml:"published"`

	// Categories lists subject classifications, e.g. arXiv category terms.
	Categories []string `json:"categories" yaml:"categories"`

	// EnhancedLink is an alternative URL discovered by web-search
	// enhancement. Empty when enhancement is disabled or found no match.
	EnhancedLink string `json:"enhanced_link,omitempty" yaml:"enhanced_link,omitempty"`

	// CitationCount is the citation count discovered by web-search
	// enhancement, nil when unknown.
	CitationCount *int `json:"citation_count,omitempty" yaml:"citation_count,omitempty"`
}

// ResultSet is the outcome of one knowledge search.
type ResultSet struct {
	// TotalResults is the total number of matches reported by the source,
	// which may exceed len(Entries).
	TotalResults int `json:"total_results" yaml:"total_results"`

	// Entries holds the retrieved articles, at most the requested maximum.
	Entries []Entry `json:"entries" yaml:"entries"`
}

// IsEmpty reports whether the result set carries no entries.
func (r ResultSet) IsEmpty() bool {
	return len(r.Entries) == 0
}

// FormattedEntry is the display form of an Entry: the author list collapsed,
// the summary truncated, the date shortened, and categories clamped.
type FormattedEntry struct {
	// Title is the article title.
	Title string `json:"title" yaml:"title"`

	// Authors is the collapsed author line, "First Author et al." when the
	// article has more than three authors.
	Authors string `json:"authors" yaml:"authors"`

	// Summary is the abstract truncated for display.
	Summary string `json:"summary" yaml:"summary"`

	// Link is the article URL.
	Link string `json:"link" yaml:"link"`

	// Published is the publication date shortened to YYYY-MM-DD.
	Published string `json:"published" yaml:"published"`

	// Categories is the clamped category line, ending in "..." when
	// classifications were dropped.
	Categories string `json:"categories" yaml:"categories"`

	// EnhancedLink is the web-search link when enhancement found one.
	EnhancedLink string `json:"enhanced_link,omitempty" yaml:"enhanced_link,omitempty"`

	// CitationCount is the citation count when enhancement found one.
	CitationCount *int `json:"citation_count,omitempty" yaml:"citation_count,omitempty"`
}
