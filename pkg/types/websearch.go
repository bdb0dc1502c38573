// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// WebResult is a single web search hit.
type WebResult struct {
	// Title is the page title.
	Title string `json:"title" yaml:"title"`

	// Link is the page URL.
	Link string `json:"link" yaml:"link"`

	// Snippet is the short excerpt shown with the result.
	Snippet string `json:"snippet" yaml:"snippet"`
}
