// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-agent/pkg/types"
)

// ResultFile is the on-disk representation of a knowledge search and its
// results. A search can be saved to a file and reloaded later without
// re-querying APIs.
type ResultFile struct {
	Search  SearchParams  `yaml:"search"`
	Results []types.Entry `yaml:"results"`
	Summary SearchSummary `yaml:"summary"`
}

// SearchParams stores the search parameters in a serializable form.
type SearchParams struct {
	Topic      string `yaml:"topic"`
	MaxResults int    `yaml:"max_results"`
	Enhanced   bool   `yaml:"enhanced"`
}

// SearchSummary stores result statistics and a timestamp.
type SearchSummary struct {
	Retrieved int       `yaml:"retrieved"`
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteResultFile saves the search parameters and results to a YAML file,
// creating parent directories as needed.
func WriteResultFile(path, topic string, cfg types.KnowledgeConfig, rs types.ResultSet) error {
	rf := ResultFile{
		Search: SearchParams{
			Topic:      topic,
			MaxResults: cfg.MaxResults,
			Enhanced:   cfg.Enhanced,
		},
		Results: rs.Entries,
		Summary: SearchSummary{
			Retrieved: len(rs.Entries),
			Total:     rs.TotalResults,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating results directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// ResultSet reconstructs the result set a saved file was written from.
func (rf *ResultFile) ResultSet() types.ResultSet {
	return types.ResultSet{
		TotalResults: rf.Summary.Total,
		Entries:      rf.Results,
	}
}

// ReadResultFile loads a previously saved result file from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}

// ResultPath derives a file path for a topic inside dir, lowercasing the
// topic and joining its words with underscores.
func ResultPath(dir, topic string) string {
	words := wordPattern.FindAllString(strings.ToLower(topic), -1)
	name := strings.Join(words, "_")
	if name == "" {
		name = "results"
	}
	return filepath.Join(dir, name+".yaml")
}
