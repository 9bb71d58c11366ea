package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigDir creates a temp config dir with the given tarsy.yaml and
// llm-providers.yaml contents.
func writeConfigDir(t *testing.T, tarsyYAML, providersYAML string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tarsy.yaml"), []byte(tarsyYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(providersYAML), 0o644))
	return dir
}

func TestInitializeWithEmptyConfig(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")

	dir := writeConfigDir(t, "", "")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Built-ins are present.
	assert.True(t, cfg.AgentRegistry.Has("KubernetesAgent"))
	assert.True(t, cfg.ChainRegistry.Has("kubernetes-agent-chain"))
	assert.True(t, cfg.MCPServerRegistry.Has("kubernetes-server"))
	assert.True(t, cfg.LLMProviderRegistry.Has("google-default"))

	// Defaults are filled from built-ins.
	assert.Equal(t, "google-default", cfg.Defaults.LLMProvider)
	assert.Equal(t, IterationStrategyReact, cfg.Defaults.IterationStrategy)
	require.NotNil(t, cfg.Defaults.MaxIterations)
	assert.Equal(t, DefaultMaxIterations, *cfg.Defaults.MaxIterations)
	assert.Equal(t, "kubernetes", cfg.Defaults.AlertType)
	assert.NotEmpty(t, cfg.Defaults.Runbook)
	require.NotNil(t, cfg.Defaults.AlertMasking)
	assert.True(t, cfg.Defaults.AlertMasking.Enabled)
	assert.Equal(t, "security", cfg.Defaults.AlertMasking.PatternGroup)

	// Queue falls back to built-in defaults.
	assert.Equal(t, DefaultQueueConfig(), cfg.Queue)

	assert.Equal(t, dir, cfg.ConfigDir())
}

func TestInitializeMissingConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tarsy.yaml"), []byte(""), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := writeConfigDir(t, "agents:\n  - this is\n   not: valid", "")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeUserOverrides(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("CUSTOM_API_KEY", "custom-key")

	tarsyYAML := `
agents:
  ArgoCDAgent:
    description: "ArgoCD specialist"
    iteration_strategy: react-tools
    mcp_servers: [argocd-server]

mcp_servers:
  argocd-server:
    transport:
      type: http
      url: "https://argocd-mcp.internal"

agent_chains:
  argocd-chain:
    alert_types: [argocd, ArgoCDSyncFailed]
    stages:
      - stage_id: investigation
        agent: ArgoCDAgent
      - stage_id: synthesis
        agent: SynthesisAgent
        iteration_strategy: react-final-analysis

defaults:
  llm_provider: custom-provider
  max_iterations: 15

queue:
  worker_count: 3
  session_timeout: 20m
`
	providersYAML := `
llm_providers:
  custom-provider:
    type: anthropic
    model: claude-sonnet-4-20250514
    api_key_env: CUSTOM_API_KEY
`

	dir := writeConfigDir(t, tarsyYAML, providersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	agent, err := cfg.GetAgent("ArgoCDAgent")
	require.NoError(t, err)
	assert.Equal(t, IterationStrategyReactTools, agent.IterationStrategy)

	chain, err := cfg.GetChainByAlertType("ArgoCDSyncFailed")
	require.NoError(t, err)
	require.Len(t, chain.Stages, 2)
	assert.Equal(t, "investigation", chain.Stages[0].Name)
	assert.Equal(t, IterationStrategyReactFinalAnalysis, chain.Stages[1].IterationStrategy)

	provider, err := cfg.GetLLMProvider("custom-provider")
	require.NoError(t, err)
	assert.Equal(t, LLMProviderTypeAnthropic, provider.Type)

	assert.Equal(t, "custom-provider", cfg.Defaults.LLMProvider)
	require.NotNil(t, cfg.Defaults.MaxIterations)
	assert.Equal(t, 15, *cfg.Defaults.MaxIterations)

	// Partial queue config merges over defaults.
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 20*time.Minute, cfg.Queue.SessionTimeout)
	assert.Equal(t, DefaultQueueConfig().PollInterval, cfg.Queue.PollInterval)
	assert.Equal(t, DefaultQueueConfig().LLMTimeout, cfg.Queue.LLMTimeout)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("MCP_SERVER_URL", "https://expanded.internal")

	tarsyYAML := `
mcp_servers:
  env-server:
    transport:
      type: http
      url: "{{.MCP_SERVER_URL}}"
`

	dir := writeConfigDir(t, tarsyYAML, "")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	server, err := cfg.GetMCPServer("env-server")
	require.NoError(t, err)
	assert.Equal(t, "https://expanded.internal", server.Transport.URL)
}

func TestInitializeAppliesSummarizationDefault(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")

	tarsyYAML := `
mcp_servers:
  summarized-server:
    transport:
      type: stdio
      command: npx
    summarization:
      summary_max_token_limit: 500
`

	dir := writeConfigDir(t, tarsyYAML, "")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	server, err := cfg.GetMCPServer("summarized-server")
	require.NoError(t, err)
	require.NotNil(t, server.Summarization)
	assert.Equal(t, DefaultSizeThresholdTokens, server.Summarization.SizeThresholdTokens)
}

func TestInitializeValidationFailure(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")

	tarsyYAML := `
agent_chains:
  broken-chain:
    alert_types: [broken]
    stages:
      - stage_id: analysis
        agent: NoSuchAgent
`

	dir := writeConfigDir(t, tarsyYAML, "")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agent 'NoSuchAgent' not found")
}

func TestInitializeRetentionAndWSOrigins(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")

	tarsyYAML := `
system:
  allowed_ws_origins: ["https://dashboard.example.com"]
  retention:
    session_retention_days: 90
    event_ttl: 48h
    cleanup_interval: 2h
`

	dir := writeConfigDir(t, tarsyYAML, "")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://dashboard.example.com"}, cfg.AllowedWSOrigins)
	require.NotNil(t, cfg.Retention)
	assert.Equal(t, 90, cfg.Retention.SessionRetentionDays)
	assert.Equal(t, 48*time.Hour, cfg.Retention.EventTTL)
	assert.Equal(t, 2*time.Hour, cfg.Retention.CleanupInterval)
}
