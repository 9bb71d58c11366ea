package config

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBuiltinConfigSingleton(t *testing.T) {
	a := GetBuiltinConfig()
	b := GetBuiltinConfig()
	assert.Same(t, a, b)
}

func TestBuiltinAgents(t *testing.T) {
	builtin := GetBuiltinConfig()

	require.Contains(t, builtin.Agents, "KubernetesAgent")
	require.Contains(t, builtin.Agents, "DataCollectionAgent")
	require.Contains(t, builtin.Agents, "SynthesisAgent")

	assert.Equal(t, IterationStrategyReact, builtin.Agents["KubernetesAgent"].IterationStrategy)
	assert.Equal(t, IterationStrategyReactTools, builtin.Agents["DataCollectionAgent"].IterationStrategy)
	assert.Equal(t, IterationStrategyReactFinalAnalysis, builtin.Agents["SynthesisAgent"].IterationStrategy)

	for name, agent := range builtin.Agents {
		assert.NotEmpty(t, agent.MCPServers, "agent %s needs at least one MCP server", name)
		for _, serverID := range agent.MCPServers {
			assert.Contains(t, builtin.MCPServers, serverID, "agent %s references unknown server", name)
		}
	}
}

func TestBuiltinMCPServers(t *testing.T) {
	builtin := GetBuiltinConfig()

	server, ok := builtin.MCPServers["kubernetes-server"]
	require.True(t, ok)

	assert.Equal(t, TransportTypeStdio, server.Transport.Type)
	assert.Equal(t, "npx", server.Transport.Command)
	assert.True(t, server.IsEnabled())

	require.NotNil(t, server.DataMasking)
	assert.True(t, server.DataMasking.Enabled)
	assert.Contains(t, server.DataMasking.PatternGroups, "kubernetes")

	require.NotNil(t, server.Summarization)
	assert.False(t, server.Summarization.SummarizationDisabled())
	assert.Equal(t, 5000, server.Summarization.SizeThresholdTokens)
	assert.Equal(t, 1000, server.Summarization.SummaryMaxTokenLimit)
}

func TestBuiltinLLMProviders(t *testing.T) {
	builtin := GetBuiltinConfig()

	tests := []struct {
		name      string
		wantType  LLMProviderType
		wantModel string
	}{
		{"google-default", LLMProviderTypeGoogle, "gemini-2.5-pro"},
		{"openai-default", LLMProviderTypeOpenAI, "gpt-5"},
		{"anthropic-default", LLMProviderTypeAnthropic, "claude-sonnet-4-20250514"},
		{"xai-default", LLMProviderTypeXAI, "grok-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, ok := builtin.LLMProviders[tt.name]
			require.True(t, ok)
			assert.Equal(t, tt.wantType, provider.Type)
			assert.Equal(t, tt.wantModel, provider.Model)
			assert.NotEmpty(t, provider.APIKeyEnv)
			assert.Positive(t, provider.MaxToolResultTokens)
		})
	}

	// xAI rides the OpenAI-compatible API; it must carry a base URL.
	assert.Equal(t, "https://api.x.ai/v1", builtin.LLMProviders["xai-default"].BaseURL)

	assert.Contains(t, builtin.LLMProviders, builtin.DefaultLLMProvider)
}

func TestBuiltinChains(t *testing.T) {
	builtin := GetBuiltinConfig()

	chain, ok := builtin.ChainDefinitions["kubernetes-agent-chain"]
	require.True(t, ok)

	assert.Contains(t, chain.AlertTypes, builtin.DefaultAlertType)
	require.Len(t, chain.Stages, 1)
	assert.Equal(t, "analysis", chain.Stages[0].Name)

	for id, c := range builtin.ChainDefinitions {
		for i, stage := range c.Stages {
			assert.Contains(t, builtin.Agents, stage.Agent, "chain %s stage %d references unknown agent", id, i)
		}
	}
}

func TestBuiltinMaskingPatternsCompile(t *testing.T) {
	builtin := GetBuiltinConfig()

	require.NotEmpty(t, builtin.MaskingPatterns)
	for name, pattern := range builtin.MaskingPatterns {
		_, err := regexp.Compile(pattern.Pattern)
		assert.NoError(t, err, "pattern %s does not compile", name)
		assert.NotEmpty(t, pattern.Replacement, "pattern %s has no replacement", name)
		assert.True(t, pattern.PatternEnabled())
	}
}

func TestBuiltinPatternGroupsResolve(t *testing.T) {
	builtin := GetBuiltinConfig()

	require.NotEmpty(t, builtin.PatternGroups)
	for group, members := range builtin.PatternGroups {
		require.NotEmpty(t, members, "group %s is empty", group)
		for _, member := range members {
			_, isPattern := builtin.MaskingPatterns[member]
			_, isCodeMasker := builtin.CodeMaskers[member]
			assert.True(t, isPattern || isCodeMasker,
				"group %s member %s resolves to neither a pattern nor a code masker", group, member)
		}
	}

	// The kubernetes group relies on structural parsing of Secret manifests.
	assert.Contains(t, builtin.PatternGroups["kubernetes"], "kubernetes_secret")
	assert.Contains(t, builtin.CodeMaskers, "kubernetes_secret")
}

func TestBuiltinDefaults(t *testing.T) {
	builtin := GetBuiltinConfig()

	assert.Equal(t, "kubernetes", builtin.DefaultAlertType)
	assert.Equal(t, "google-default", builtin.DefaultLLMProvider)
	assert.NotEmpty(t, builtin.DefaultRunbook)
}
