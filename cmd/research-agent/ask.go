// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Answer a single query and exit",
	Long: `Ask routes one query through the agent and prints the response. The query
is classified by keyword (math, research papers, reasoning, web search) and
dispatched to the matching tool.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	cfg := agentConfig()
	a := newAgent(cfg)

	store := openHistory(cfg.History)
	if store != nil {
		defer store.Close()
	}

	category, response := a.Respond(context.Background(), query)
	recordInteraction(store, category, query, response)

	fmt.Println(response)
	return nil
}

func init() {
	rootCmd.AddCommand(askCmd)
}
