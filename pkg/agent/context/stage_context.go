// Package context builds the cumulative context passed between chain stages.
package context

import (
	"fmt"
	"strings"
)

// StageResult holds the output of a finished stage for context building.
// Populated by the executor from in-memory results (no DB query needed —
// the output flows through the chain loop via agent.ExecutionResult).
// Failed stages contribute an empty Output with Failed set, so later stages
// know the data is missing rather than silently absent.
type StageResult struct {
	StageID string
	Output  string
	Failed  bool
}

// BuildStageContext formats prior stage results into a context string for
// the next stage's agent prompt. Each stage's output is included with its
// stage id as a header; failed stages are noted as unavailable.
//
// The returned string is passed as prevStageContext to Agent.Execute() and
// wrapped by FormatChainContext() in the prompt builder.
func BuildStageContext(stages []StageResult) string {
	if len(stages) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("<!-- CHAIN_CONTEXT_START -->\n\n")

	for i, stage := range stages {
		sb.WriteString(fmt.Sprintf("### Stage %d: %s\n\n", i+1, stage.StageID))
		switch {
		case stage.Failed:
			sb.WriteString("(Stage failed - no data available from this stage)")
		case stage.Output == "":
			sb.WriteString("(No output produced)")
		default:
			sb.WriteString(stage.Output)
		}
		sb.WriteString("\n\n")
	}

	sb.WriteString("<!-- CHAIN_CONTEXT_END -->")
	return sb.String()
}
