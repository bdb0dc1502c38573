// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Show tool availability and configuration hints",
	RunE:  runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	cfg := agentConfig()
	report := newAgent(cfg).Tools()

	fmt.Println("Agent Status:")
	fmt.Printf("  Math Tools: Available (%d tools: %s)\n", len(report.Math), strings.Join(report.Math, ", "))
	fmt.Printf("  Reasoning Tools: %s\n", availability(report.Available.Reasoning, "requires API key"))
	fmt.Printf("  Search Tools: %s\n", availability(report.Available.Search, "requires API keys"))
	fmt.Printf("  Knowledge Tools: Available (arXiv API)\n")
	fmt.Printf("  Enhanced Search: %s\n", availability(report.Available.EnhancedSearch, "requires API keys"))

	if !cfg.Availability.Reasoning || !cfg.Availability.Search {
		fmt.Println("\nFor full functionality, set these environment variables (or .secrets/ files):")
		if !cfg.Availability.Reasoning {
			fmt.Println("  OPENAI_API_KEY=your_openai_api_key_here")
		}
		if !cfg.Availability.Search {
			fmt.Println("  GOOGLE_SEARCH_API_KEY=your_google_search_api_key_here")
			fmt.Println("  GOOGLE_SEARCH_ENGINE_ID=your_google_search_engine_id_here")
		}
	}
	return nil
}

func availability(ok bool, hint string) string {
	if ok {
		return "Available"
	}
	return fmt.Sprintf("Unavailable (%s)", hint)
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
