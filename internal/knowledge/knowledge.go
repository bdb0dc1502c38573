// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package knowledge retrieves scholarly articles for a topic and shapes
// them for display. arXiv is the primary source; retrieved entries can be
// enhanced with better links and citation counts from a web search.
package knowledge

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/research-agent/pkg/types"
)

// Backend retrieves scholarly articles from a single source.
type Backend interface {
	Name() string
	Search(ctx context.Context, topic string, cfg types.KnowledgeConfig) (types.ResultSet, error)
}

// Search queries the backend and optionally enhances the entries. Failures
// degrade to an empty result set with a warning on w, so callers always
// get something they can format into a response.
func Search(ctx context.Context, topic string, cfg types.KnowledgeConfig, backend Backend, enhancer *Enhancer, w io.Writer) types.ResultSet {
	rs, err := backend.Search(ctx, topic, cfg)
	if err != nil {
		fmt.Fprintf(w, "warning: backend %s failed: %v\n", backend.Name(), err)
		return types.ResultSet{}
	}

	if cfg.Enhanced && enhancer != nil && len(rs.Entries) > 0 {
		if err := enhancer.Enhance(ctx, topic, rs.Entries); err != nil {
			fmt.Fprintf(w, "warning: enhancement failed: %v\n", err)
		}
	}

	return rs
}
