// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reason

import (
	"context"
	"fmt"
	"strings"
)

// eggExplainer is a worked three-step explanation served for topics that
// mention eggs, so the simulator has at least one genuinely informative
// answer to demonstrate the reasoning format.
const eggExplainer = `I'll explain what an egg is:

Step 1: Basic Definition
  An egg is a reproductive cell or structure laid by female animals, particularly birds, reptiles, and some fish and invertebrates. In everyday contexts, the term usually refers to chicken eggs used in cooking.

Step 2: Structure and Composition
  A typical bird egg consists of several parts:
  - Shell: A hard protective outer layer made primarily of calcium carbonate
  - Membranes: Thin layers just inside the shell that protect against bacterial infection
  - Air cell: A pocket of air usually at the larger end of the egg
  - Albumen: The egg white, which is mostly protein (primarily albumin)
  - Yolk: The yellow center, rich in fats, proteins, vitamins, and minerals
  - Chalazae: Rope-like strands that anchor the yolk in the center of the egg

Step 3: Function and Significance
  Eggs serve as:
  - A reproductive structure containing nutrients and everything needed for an embryo to develop
  - An important food source for humans, containing high-quality protein and various nutrients
  - A versatile culinary ingredient used in countless recipes across many cultures
`

// Simulator produces deterministic chain-of-thought text without calling
// any API. It stands in for the live backend when no API key is configured.
type Simulator struct{}

// Name returns the backend identifier.
func (s *Simulator) Name() string { return "simulated" }

// Reason composes a canned three-step reasoning block for the topic,
// prefixed with the context passage when one is available. The step count
// in the request is ignored; the simulation always walks understand,
// identify, conclude.
func (s *Simulator) Reason(_ context.Context, req Request) (string, error) {
	topic := req.Topic
	lower := strings.ToLower(topic)

	if strings.Contains(lower, "egg") {
		return eggExplainer, nil
	}

	baseInfo := ""
	if req.Context != "" {
		baseInfo = fmt.Sprintf("Based on available information: %s\n\n", req.Context)
	}

	return fmt.Sprintf("%sI'll break down my thought process for answering: '%s'\n\n"+
		"Step 1: First, I need to understand what the query is asking for.\n"+
		"  The query is about: %s\n\n"+
		"Step 2: I'll identify what information or calculations are needed.\n"+
		"  For this query, I would need to %s\n\n"+
		"Step 3: Now I can formulate my response based on the analysis.\n"+
		"  %s\n",
		baseInfo, topic, topic, reasoningAction(lower), reasoningConclusion(lower)), nil
}

// reasoningAction picks the step-2 clause from the topic's keywords.
func reasoningAction(lower string) string {
	switch {
	case containsAny(lower, "calculate", "add", "subtract", "multiply", "divide"):
		return "perform the mathematical operation implied in the query"
	case containsAny(lower, "explain", "why", "how", "what is"):
		return "provide an explanation about the concept mentioned in the query"
	case containsAny(lower, "find", "search", "look up"):
		return "search for relevant information about the topic"
	default:
		return "analyze the query to determine the best approach to answer it"
	}
}

// reasoningConclusion picks the step-3 clause from the topic's keywords.
func reasoningConclusion(lower string) string {
	switch {
	case containsAny(lower, "calculate", "add", "subtract", "multiply", "divide"):
		return "I would provide the mathematical result after performing the calculation"
	case containsAny(lower, "explain", "why", "how", "what is"):
		return "I would provide a clear explanation of the concept, with relevant examples if helpful"
	case containsAny(lower, "find", "search", "look up"):
		return "I would present the most relevant information found during the search"
	default:
		return "I would provide a comprehensive answer addressing all aspects of the query"
	}
}

func containsAny(s string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
