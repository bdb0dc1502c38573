// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/research-agent/internal/agent"
	"github.com/pdiddy/research-agent/internal/history"
	"github.com/pdiddy/research-agent/internal/secrets"
	"github.com/pdiddy/research-agent/pkg/types"
)

// setConfigDefaults registers defaults for every configurable value.
func setConfigDefaults() {
	viper.SetDefault("agent.variant", string(types.VariantAdvanced))

	viper.SetDefault("http.timeout", "30s")
	viper.SetDefault("http.user_agent", "research-agent/"+version)

	viper.SetDefault("knowledge.max_results", 3)
	viper.SetDefault("knowledge.enhanced", true)
	viper.SetDefault("knowledge.results_dir", "output/results")

	viper.SetDefault("reasoning.model", "gpt-4o-mini")
	viper.SetDefault("reasoning.temperature", 0.3)
	viper.SetDefault("reasoning.max_retries", 3)
	viper.SetDefault("reasoning.default_steps", 3)

	viper.SetDefault("history.path", "output/history.db")
	viper.SetDefault("history.max_results", 20)

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 5000)
}

// agentConfig assembles the agent configuration from the config file, the
// environment, and the secrets directory. Availability flags are computed
// here, once, from credential presence.
func agentConfig() types.AgentConfig {
	httpCfg := types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}

	cfg := types.AgentConfig{
		Variant: types.AgentVariant(viper.GetString("agent.variant")),
		Knowledge: types.KnowledgeConfig{
			HTTPConfig: httpCfg,
			MaxResults: viper.GetInt("knowledge.max_results"),
			Enhanced:   viper.GetBool("knowledge.enhanced"),
			ResultsDir: viper.GetString("knowledge.results_dir"),
		},
		WebSearch: types.WebSearchConfig{
			HTTPConfig: httpCfg,
			APIKey:     secrets.Resolve("GOOGLE_SEARCH_API_KEY", loadedSecrets),
			EngineID:   secrets.Resolve("GOOGLE_SEARCH_ENGINE_ID", loadedSecrets),
		},
		Reasoning: types.ReasoningConfig{
			Model:        viper.GetString("reasoning.model"),
			BaseURL:      viper.GetString("reasoning.base_url"),
			APIKey:       secrets.Resolve("OPENAI_API_KEY", loadedSecrets),
			Temperature:  float32(viper.GetFloat64("reasoning.temperature")),
			MaxRetries:   viper.GetInt("reasoning.max_retries"),
			DefaultSteps: viper.GetInt("reasoning.default_steps"),
		},
		History: types.HistoryConfig{
			Path:       viper.GetString("history.path"),
			MaxResults: viper.GetInt("history.max_results"),
		},
		Server: types.ServerConfig{
			Host: viper.GetString("server.host"),
			Port: viper.GetInt("server.port"),
		},
	}

	// Bare PORT wins over the config file for PaaS deployments.
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			cfg.Server.Port = p
		}
	}

	cfg.Availability = types.Availability{
		Math:      true,
		Knowledge: true,
		Reasoning: cfg.Reasoning.APIKey != "",
		Search:    cfg.WebSearch.APIKey != "" && cfg.WebSearch.EngineID != "",
	}

	return cfg
}

// newAgent builds the agent with warnings directed to stderr.
func newAgent(cfg types.AgentConfig) *agent.Agent {
	return agent.New(cfg, os.Stderr)
}

// openHistory opens the interaction store, or returns nil when recording
// is disabled or the store cannot be opened. History is never a reason to
// refuse a query.
func openHistory(cfg types.HistoryConfig) *history.Store {
	if cfg.Path == "" {
		return nil
	}
	store, err := history.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: interaction history disabled: %v\n", err)
		return nil
	}
	return store
}

// recordInteraction stores one exchange, best effort.
func recordInteraction(store *history.Store, category types.Category, query, response string) {
	if store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := store.Record(ctx, category, query, response); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording interaction: %v\n", err)
	}
}
