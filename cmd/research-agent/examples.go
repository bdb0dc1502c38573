// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// exampleQueries demonstrates each query category.
var exampleQueries = []string{
	// Math
	"What is 42 + 18?",
	"Calculate 15 * 8",
	"What is 2 to the power of 10?",

	// Reasoning
	"Explain why the sky appears blue",
	"What are the key principles of machine learning?",

	// Web search
	"Search for information about climate change",
	"Tell me about the history of artificial intelligence",

	// Research papers
	"What is the current research on COVID-19 vaccines?",
	"Find papers about the application of AI in healthcare",
}

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Run the built-in example queries",
	Long: `Examples routes a canned set of queries through the agent, one per
category, and prints each response. Three examples run by default; use
--all for the full set.`,
	RunE: runExamples,
}

func runExamples(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")

	a := newAgent(agentConfig())

	count := 3
	if all {
		count = len(exampleQueries)
	}

	for i, query := range exampleQueries[:count] {
		fmt.Printf("\n[Example %d] Query: %s\n", i+1, query)
		fmt.Println("\nResponse:")
		fmt.Println(a.Run(context.Background(), query))
	}
	if !all {
		fmt.Println("\n(Only showing 3 examples; use --all for the full set)")
	}
	return nil
}

func init() {
	examplesCmd.Flags().Bool("all", false, "run every example query")

	rootCmd.AddCommand(examplesCmd)
}
