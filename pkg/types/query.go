// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the research-agent
// pipeline: query categories, arithmetic operations, knowledge entries,
// web results, interaction records, and configuration.
package types

// Category is the coarse intent class assigned to a query before dispatch.
type Category string

const (
	CategoryMath      Category = "math"
	CategoryKnowledge Category = "knowledge"
	CategoryReasoning Category = "reasoning"
	CategorySearch    Category = "search"
	CategoryGeneral   Category = "general"
)

// Operation is one arithmetic operation requested by a math query. A single
// query can request several operations against the same pair of numbers;
// each is carried and evaluated independently.
type Operation string

const (
	OpAddition       Operation = "addition"
	OpSubtraction    Operation = "subtraction"
	OpMultiplication Operation = "multiplication"
	OpDivision       Operation = "division"
	OpExponents      Operation = "exponents"
)

// Label returns the display name used in formatted math responses
// (e.g. "Addition result: 60").
func (o Operation) Label() string {
	switch o {
	case OpAddition:
		return "Addition"
	case OpSubtraction:
		return "Subtraction"
	case OpMultiplication:
		return "Multiplication"
	case OpDivision:
		return "Division"
	case OpExponents:
		return "Exponentiation"
	default:
		return string(o)
	}
}

// Availability records which tool groups are usable, derived once at startup
// from credential presence. Math and knowledge need no credentials; reasoning
// requires an OpenAI-compatible API key; web search requires a Google search
// API key and engine ID. Read-only after construction.
type Availability struct {
	Math      bool `json:"math"`
	Reasoning bool `json:"reasoning"`
	Search    bool `json:"search"`
	Knowledge bool `json:"knowledge"`
}
