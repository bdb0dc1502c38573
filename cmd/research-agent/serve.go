// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-agent/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the agent over a JSON HTTP API",
	Long: `Serve starts the HTTP API: POST /api/agent answers queries, POST
/api/search returns research papers, GET /api/tools reports availability,
and GET /api/health is a liveness probe. The listen port comes from the
config file, RESEARCH_AGENT_SERVER_PORT, or a bare PORT variable.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := agentConfig()

	port, _ := cmd.Flags().GetInt("port")
	if port > 0 {
		cfg.Server.Port = port
	}

	a := newAgent(cfg)

	store := openHistory(cfg.History)
	if store != nil {
		defer store.Close()
	}

	srv := server.New(a, store, cfg.Server)
	if err := srv.Run(context.Background()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (overrides config)")

	rootCmd.AddCommand(serveCmd)
}
