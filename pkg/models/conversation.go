package models

import (
	"encoding/json"
	"fmt"
)

// Conversation message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolCall is a tool invocation requested by the assistant.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON-encoded arguments
}

// ConversationMessage is a single message in an agent conversation.
// The full cumulative conversation is persisted with every LLM interaction,
// so the latest row alone is enough to rebuild agent state on resume.
type ConversationMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`

	// Assistant messages that request tools carry ToolCalls; the matching
	// tool-result messages carry ToolCallID.
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`

	// ThoughtSignature is the opaque provider token that must be echoed back
	// alongside tool calls for native-thinking models (Gemini).
	ThoughtSignature string `json:"thought_signature,omitempty"`
}

// ConversationToMaps converts messages to the generic map slice stored in
// the LLM interaction's JSON column.
func ConversationToMaps(messages []ConversationMessage) ([]map[string]any, error) {
	data, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("failed to encode conversation: %w", err)
	}
	var out []map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode conversation: %w", err)
	}
	return out, nil
}

// ConversationFromMaps reconstructs typed messages from the stored JSON maps.
func ConversationFromMaps(raw []map[string]any) ([]ConversationMessage, error) {
	if raw == nil {
		return nil, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode stored conversation: %w", err)
	}
	var out []ConversationMessage
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode stored conversation: %w", err)
	}
	return out, nil
}
