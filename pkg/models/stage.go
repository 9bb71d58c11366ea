package models

import (
	"github.com/tarsy-project/tarsy/pkg/config"
)

// CreateStageExecutionRequest contains fields for creating a new stage execution
type CreateStageExecutionRequest struct {
	SessionID         string                   `json:"session_id"`
	StageID           string                   `json:"stage_id"`
	StageIndex        int                      `json:"stage_index"`
	AgentName         string                   `json:"agent_name"`
	IterationStrategy config.IterationStrategy `json:"iteration_strategy"`
}

// StageResult is one prior stage's contribution to the cumulative context
// handed to later stages. Failed stages contribute an empty output.
type StageResult struct {
	StageID string `json:"stage_id"`
	Output  string `json:"output"`
	Failed  bool   `json:"failed"`
}
