// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/research-agent/pkg/types"
)

// QueryOptions holds parameters for history queries.
type QueryOptions struct {
	// Term is the FTS5 full-text search string matched against recorded
	// queries and responses. Empty lists interactions without searching.
	Term string

	// Category filters by the category the query was routed to.
	Category types.Category

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search term or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Term == "" && q.Category == ""
}

// Search queries the interaction history. Full-text searches are ranked by
// relevance; plain listings return the most recent interactions first.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]types.Interaction, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Term != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT i.id, i.created_at, i.category, i.query, i.response
			FROM interactions_fts
			JOIN interactions i ON i.id = interactions_fts.rowid
			WHERE interactions_fts MATCH ?`)
		args = append(args, opts.Term)
	} else {
		qb.WriteString(
			`SELECT i.id, i.created_at, i.category, i.query, i.response
			FROM interactions i
			WHERE 1=1`)
	}

	if opts.Category != "" {
		qb.WriteString(` AND i.category = ?`)
		args = append(args, string(opts.Category))
	}

	if useFTS {
		qb.WriteString(` ORDER BY interactions_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY i.id DESC`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var results []types.Interaction
	for rows.Next() {
		var (
			it        types.Interaction
			createdAt string
			category  string
		)
		if err := rows.Scan(&it.ID, &createdAt, &category, &it.Query, &it.Response); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		it.Category = types.Category(category)
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			it.CreatedAt = t
		}
		results = append(results, it)
	}

	return results, rows.Err()
}
