package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "research-agent/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// KnowledgeConfig holds settings for scholarly article retrieval.
type KnowledgeConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of entries to retrieve (default 3).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Enhanced controls whether retrieved entries are enriched with
	// web-search links and citation counts. Requires web search credentials.
	Enhanced bool `json:"enhanced" yaml:"enhanced"`

	// ResultsDir is the directory where search results are saved when
	// saving is requested (default "output/results/").
	ResultsDir string `json:"results_dir" yaml:"results_dir"`
}

// WebSearchConfig holds settings for the Google Custom Search backend.
type WebSearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the Google Custom Search API key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// EngineID is the Google Custom Search engine identifier.
	EngineID string `json:"engine_id,omitempty" yaml:"engine_id,omitempty"`
}

// ReasoningConfig holds settings for step-by-step reasoning via an
// OpenAI-compatible chat completion API.
type ReasoningConfig struct {
	// Model is the model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// BaseURL overrides the API endpoint for OpenAI-compatible providers.
	// Empty means the default OpenAI endpoint.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// APIKey is the authentication key for the API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Temperature is the sampling temperature (default 0.3).
	Temperature float32 `json:"temperature" yaml:"temperature"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// DefaultSteps is the number of reasoning steps when the query does not
	// request a specific count (default 3).
	DefaultSteps int `json:"default_steps" yaml:"default_steps"`
}

// HistoryConfig holds settings for the interaction history store.
type HistoryConfig struct {
	// Path is the SQLite database file for recorded interactions
	// (default "output/history.db").
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default maximum number of history query results
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ServerConfig holds settings for the HTTP API server.
type ServerConfig struct {
	// Host is the listen address (default "0.0.0.0").
	Host string `json:"host" yaml:"host"`

	// Port is the listen port (default 5000).
	Port int `json:"port" yaml:"port"`
}

// AgentVariant selects the query-routing ruleset.
type AgentVariant string

const (
	// VariantAdvanced routes across math, knowledge, reasoning, and search,
	// defaulting unmatched queries to reasoning.
	VariantAdvanced AgentVariant = "advanced"

	// VariantSimplified routes across math and search only, defaulting
	// unmatched queries to general handling.
	VariantSimplified AgentVariant = "simplified"
)

// AgentConfig groups all component configurations for the agent.
type AgentConfig struct {
	// Variant selects the routing ruleset: advanced or simplified.
	Variant AgentVariant `json:"variant" yaml:"variant"`

	Knowledge KnowledgeConfig `json:"knowledge" yaml:"knowledge"`
	WebSearch WebSearchConfig `json:"web_search" yaml:"web_search"`
	Reasoning ReasoningConfig `json:"reasoning" yaml:"reasoning"`
	History   HistoryConfig   `json:"history" yaml:"history"`
	Server    ServerConfig    `json:"server" yaml:"server"`

	// Availability records which tool groups have usable credentials,
	// computed once at startup.
	Availability Availability `json:"availability" yaml:"availability"`
}
