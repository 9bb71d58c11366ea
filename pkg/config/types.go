package config

// Shared types used across configuration structs

// TransportConfig defines MCP server transport configuration
type TransportConfig struct {
	Type TransportType `yaml:"type" validate:"required"`

	// For stdio transport
	Command string            `yaml:"command,omitempty"`
	Args    []string          `yaml:"args,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"` // Environment overrides for stdio subprocess; ${VAR} expanded at client build time

	// For http/sse transport
	URL         string `yaml:"url,omitempty"`
	BearerToken string `yaml:"bearer_token,omitempty"`
	VerifySSL   *bool  `yaml:"verify_ssl,omitempty"`
	Timeout     int    `yaml:"timeout,omitempty"` // In seconds
}

// MaskingConfig defines data masking configuration for MCP servers
type MaskingConfig struct {
	Enabled        bool             `yaml:"enabled"`
	PatternGroups  []string         `yaml:"pattern_groups,omitempty"`
	Patterns       []string         `yaml:"patterns,omitempty"`
	CustomPatterns []MaskingPattern `yaml:"custom_patterns,omitempty"`
}

// MaskingPattern defines a regex-based masking pattern
type MaskingPattern struct {
	Name        string `yaml:"name,omitempty"`
	Pattern     string `yaml:"pattern" validate:"required"`
	Replacement string `yaml:"replacement" validate:"required"`
	Description string `yaml:"description,omitempty"`
	Enabled     *bool  `yaml:"enabled,omitempty"` // nil = enabled
}

// PatternEnabled returns false only when Enabled is explicitly set to false.
func (p *MaskingPattern) PatternEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// DefaultSizeThresholdTokens is the default token count above which MCP
// responses are summarized (when summarization is enabled).
const DefaultSizeThresholdTokens = 5000

// SummarizationConfig defines when and how to summarize large MCP responses.
// Enabled is a *bool: nil means "use default" (enabled), explicit false disables.
type SummarizationConfig struct {
	Enabled              *bool `yaml:"enabled,omitempty"`
	SizeThresholdTokens  int   `yaml:"size_threshold_tokens,omitempty" validate:"omitempty,min=100"`
	SummaryMaxTokenLimit int   `yaml:"summary_max_token_limit,omitempty" validate:"omitempty,min=50"`
}

// SummarizationDisabled returns true only when Enabled is explicitly set to false.
func (c *SummarizationConfig) SummarizationDisabled() bool {
	return c.Enabled != nil && !*c.Enabled
}

// BoolPtr returns a pointer to b. Convenience for *bool struct fields.
func BoolPtr(b bool) *bool { return &b }

// IntPtr returns a pointer to n. Convenience for *int struct fields.
func IntPtr(n int) *int { return &n }
