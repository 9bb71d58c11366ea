package models

import (
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
)

// CreateLLMInteractionRequest contains fields for recording an LLM interaction
type CreateLLMInteractionRequest struct {
	SessionID       string                         `json:"session_id"`
	ExecutionID     string                         `json:"execution_id"`
	InteractionType llminteraction.InteractionType `json:"interaction_type"`
	ModelName       string                         `json:"model_name"`
	Provider        string                         `json:"provider"`
	Conversation    []ConversationMessage          `json:"conversation"`
	ThinkingContent *string                        `json:"thinking_content,omitempty"`
	InputTokens     *int                           `json:"input_tokens,omitempty"`
	OutputTokens    *int                           `json:"output_tokens,omitempty"`
	TotalTokens     *int                           `json:"total_tokens,omitempty"`
	DurationMs      *int                           `json:"duration_ms,omitempty"`
	ErrorMessage    *string                        `json:"error_message,omitempty"`
}

// CreateMCPInteractionRequest contains fields for recording an MCP interaction
type CreateMCPInteractionRequest struct {
	SessionID       string                         `json:"session_id"`
	ExecutionID     string                         `json:"execution_id"`
	InteractionType mcpinteraction.InteractionType `json:"interaction_type"`
	ServerName      string                         `json:"server_name"`
	ToolName        *string                        `json:"tool_name,omitempty"`
	ToolArguments   map[string]any                 `json:"tool_arguments,omitempty"`
	ToolResult      *string                        `json:"tool_result,omitempty"`
	AvailableTools  []any                          `json:"available_tools,omitempty"`
	Masked          bool                           `json:"masked"`
	DurationMs      *int                           `json:"duration_ms,omitempty"`
	ErrorMessage    *string                        `json:"error_message,omitempty"`
}
