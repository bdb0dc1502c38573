// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reason produces step-by-step reasoning text for a topic, either
// through an OpenAI-compatible chat API or a deterministic simulator.
package reason

import "context"

// Request carries one reasoning task.
type Request struct {
	// Topic is the subject to reason about.
	Topic string

	// Steps is the requested number of reasoning steps. Zero means the
	// backend's default.
	Steps int

	// Context is an optional background passage to ground the reasoning,
	// typically the abstract of a retrieved article.
	Context string
}

// Backend produces reasoning text for a request.
type Backend interface {
	Name() string
	Reason(ctx context.Context, req Request) (string, error)
}
