// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-agent/internal/knowledge"
	"github.com/pdiddy/research-agent/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [topic]",
	Short: "Search for research papers on a topic",
	Long: `Search queries arXiv for papers on a topic, sorted by relevance. With
--enhanced and Google search credentials, entries are enriched with better
links and citation counts. Results can be printed as a table, JSON, YAML,
or a CSL-YAML bibliography.

Results are saved to a YAML result file with --save (the path defaults to
the configured results directory) and reloaded with --load, which skips
the network entirely.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	topic := strings.Join(args, " ")

	maxResults, _ := cmd.Flags().GetInt("max-results")
	abstracts, _ := cmd.Flags().GetBool("abstracts")
	enhanced, _ := cmd.Flags().GetBool("enhanced")
	format, _ := cmd.Flags().GetString("format")
	savePath, _ := cmd.Flags().GetString("save")
	loadPath, _ := cmd.Flags().GetString("load")

	if topic == "" && loadPath == "" {
		return fmt.Errorf("a search topic or --load file is required")
	}

	cfg := agentConfig()
	cfg.Knowledge.MaxResults = maxResults
	cfg.Knowledge.Enhanced = enhanced && cfg.Availability.Search
	if enhanced && !cfg.Availability.Search {
		fmt.Fprintln(os.Stderr, "warning: enhancement requires Google search credentials; proceeding without")
	}

	var rs types.ResultSet
	if loadPath != "" {
		rf, err := knowledge.ReadResultFile(loadPath)
		if err != nil {
			return err
		}
		rs = rf.ResultSet()
		if topic == "" {
			topic = rf.Search.Topic
		}
	} else {
		a := newAgent(cfg)
		rs = a.SearchKnowledge(context.Background(), topic, cfg.Knowledge)
	}

	if savePath != "" {
		if savePath == saveToResultsDir {
			savePath = knowledge.ResultPath(cfg.Knowledge.ResultsDir, topic)
		}
		if err := knowledge.WriteResultFile(savePath, topic, cfg.Knowledge, rs); err != nil {
			return fmt.Errorf("saving results: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved results to %s\n", savePath)
	}

	switch format {
	case "table":
		knowledge.FormatTable(rs, os.Stdout)
		return nil
	case "json":
		return knowledge.FormatJSON(rs, abstracts, os.Stdout)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(knowledge.FormatEntries(rs, abstracts))
	case "csl":
		return knowledge.FormatCSL(rs, os.Stdout)
	default:
		return fmt.Errorf("unknown format %q: want table, json, yaml, or csl", format)
	}
}

// saveToResultsDir is the value a bare --save resolves to; the real
// path is then derived from the topic and the configured results
// directory.
const saveToResultsDir = "auto"

func init() {
	searchCmd.Flags().Int("max-results", 5, "maximum number of papers to retrieve")
	searchCmd.Flags().Bool("abstracts", true, "include abstracts in the output")
	searchCmd.Flags().Bool("enhanced", false, "enrich entries via Google search (requires credentials)")
	searchCmd.Flags().String("format", "table", "output format: table, json, yaml, or csl")
	searchCmd.Flags().String("save", "", "save results to a YAML result file (bare --save derives the path from knowledge.results_dir)")
	searchCmd.Flags().Lookup("save").NoOptDefVal = saveToResultsDir
	searchCmd.Flags().String("load", "", "print a previously saved result file instead of searching")

	rootCmd.AddCommand(searchCmd)
}
