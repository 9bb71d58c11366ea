package models

import (
	"encoding/json"
	"fmt"
)

// MCPServerSelection represents a selected MCP server with optional tool filtering
type MCPServerSelection struct {
	Name  string   `json:"name"`            // MCP server ID
	Tools []string `json:"tools,omitempty"` // Specific tools, empty = all tools
}

// NativeToolsConfig configures native LLM provider tools
type NativeToolsConfig struct {
	GoogleSearch  *bool `json:"google_search,omitempty"`  // nil = provider default
	CodeExecution *bool `json:"code_execution,omitempty"` // nil = provider default
	URLContext    *bool `json:"url_context,omitempty"`    // nil = provider default
}

// MCPSelectionConfig is the per-alert MCP override configuration
type MCPSelectionConfig struct {
	Servers     []MCPServerSelection `json:"servers"`
	NativeTools *NativeToolsConfig   `json:"native_tools,omitempty"`
}

// ParseMCPSelectionConfig decodes the session's stored mcp_selection JSON.
// A nil or empty map means no override and returns nil without error.
func ParseMCPSelectionConfig(raw map[string]any) (*MCPSelectionConfig, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode MCP selection: %w", err)
	}
	var cfg MCPSelectionConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode MCP selection: %w", err)
	}

	if len(cfg.Servers) == 0 {
		return nil, fmt.Errorf("MCP selection must have at least one server")
	}

	return &cfg, nil
}

// ToMap converts the selection to the generic map stored in the session's
// JSON column.
func (c *MCPSelectionConfig) ToMap() (map[string]any, error) {
	if c == nil {
		return nil, nil
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode MCP selection: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode MCP selection: %w", err)
	}
	return out, nil
}
