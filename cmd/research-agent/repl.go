// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Answer queries interactively",
	Long: `Repl runs an interactive loop: each line is routed through the agent and
the response is printed. Type exit, quit, or q to end the session.`,
	RunE: runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg := agentConfig()
	a := newAgent(cfg)

	store := openHistory(cfg.History)
	if store != nil {
		defer store.Close()
	}

	fmt.Println("Interactive mode. Type 'exit' or 'quit' to end the session.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nEnter your query: ")
		if !scanner.Scan() {
			break
		}

		query := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(query) {
		case "exit", "quit", "q":
			fmt.Println("Exiting interactive mode")
			return nil
		case "":
			continue
		}

		category, response := a.Respond(context.Background(), query)
		recordInteraction(store, category, query, response)

		fmt.Println("\nResponse:")
		fmt.Println(response)
	}
	return scanner.Err()
}

func init() {
	rootCmd.AddCommand(replCmd)
}
