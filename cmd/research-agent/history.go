// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-agent/internal/history"
	"github.com/pdiddy/research-agent/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded query/response interactions",
	Long: `History manages the interaction store. Every query answered through ask,
repl, or the HTTP server is recorded with its category and response. Use
subcommands to list recent interactions, search them, or clear the store.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent interactions, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	return historyQuery(cmd, history.QueryOptions{})
}

var historySearchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Full-text search over recorded queries and responses",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHistorySearch,
}

func runHistorySearch(cmd *cobra.Command, args []string) error {
	return historyQuery(cmd, history.QueryOptions{Term: strings.Join(args, " ")})
}

func historyQuery(cmd *cobra.Command, opts history.QueryOptions) error {
	limit, _ := cmd.Flags().GetInt("limit")
	category, _ := cmd.Flags().GetString("category")
	opts.MaxResults = limit
	opts.Category = types.Category(category)

	store, err := history.Open(agentConfig().History)
	if err != nil {
		return err
	}
	defer store.Close()

	interactions, err := store.Search(context.Background(), opts)
	if err != nil {
		return err
	}

	if len(interactions) == 0 {
		fmt.Println("No interactions found.")
		return nil
	}

	for _, it := range interactions {
		fmt.Printf("[%d] %s  %s\n", it.ID, it.CreatedAt.Format("2006-01-02 15:04:05"), it.Category)
		fmt.Printf("  Q: %s\n", it.Query)
		fmt.Printf("  A: %s\n\n", firstLine(it.Response))
	}
	fmt.Printf("%d interaction(s)\n", len(interactions))
	return nil
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded interactions",
	RunE:  runHistoryClear,
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, err := history.Open(agentConfig().History)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Clear(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Cleared %d interaction(s)\n", n)
	return nil
}

// firstLine trims a response to its first line for compact listings.
func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx] + " ..."
	}
	return s
}

func init() {
	for _, c := range []*cobra.Command{historyListCmd, historySearchCmd} {
		c.Flags().Int("limit", 0, "maximum interactions to show (0 uses the configured default)")
		c.Flags().String("category", "", "filter by category (math, knowledge, reasoning, search, general)")
	}

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historySearchCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
