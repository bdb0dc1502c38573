// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

// ToolReport describes the tools behind each query category and which
// categories have usable backends. Served by the tools endpoint and CLI
// command.
type ToolReport struct {
	Math      []string       `json:"math"`
	Reasoning []string       `json:"reasoning"`
	Knowledge []string       `json:"knowledge"`
	Search    []string       `json:"search"`
	Available ToolsAvailable `json:"available"`
}

// ToolsAvailable holds per-category availability flags.
type ToolsAvailable struct {
	Math           bool `json:"math"`
	Reasoning      bool `json:"reasoning"`
	Knowledge      bool `json:"knowledge"`
	Search         bool `json:"search"`
	EnhancedSearch bool `json:"enhanced_search"`
}

// Tools reports the agent's tool inventory and availability flags.
func (a *Agent) Tools() ToolReport {
	report := ToolReport{
		Math:      []string{"addition", "subtraction", "multiplication", "division", "exponents"},
		Knowledge: []string{a.Knowledge.Name()},
		Search:    []string{a.WebSearch.Name()},
		Available: ToolsAvailable{
			Math:           a.Config.Availability.Math,
			Reasoning:      a.Config.Availability.Reasoning,
			Knowledge:      a.Config.Availability.Knowledge,
			Search:         a.Config.Availability.Search,
			EnhancedSearch: a.Enhancer != nil,
		},
	}
	if a.Reasoner != nil {
		report.Reasoning = []string{a.Reasoner.Name()}
	} else {
		report.Reasoning = []string{"simulated"}
	}
	return report
}
