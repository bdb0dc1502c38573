// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Interaction is one recorded query/response exchange.
type Interaction struct {
	// ID is the auto-assigned row identifier.
	ID int64 `json:"id" yaml:"id"`

	// CreatedAt is when the interaction was recorded.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Category is the intent class the query was routed to.
	Category Category `json:"category" yaml:"category"`

	// Query is the user's query text.
	Query string `json:"query" yaml:"query"`

	// Response is the agent's full response text.
	Response string `json:"response" yaml:"response"`
}
