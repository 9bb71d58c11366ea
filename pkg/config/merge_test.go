package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAgents(t *testing.T) {
	builtin := map[string]AgentConfig{
		"KubernetesAgent": {
			Description: "built-in",
			MCPServers:  []string{"kubernetes-server"},
		},
	}
	user := map[string]AgentConfig{
		"KubernetesAgent": {
			Description: "user override",
			MCPServers:  []string{"custom-server"},
		},
		"CustomAgent": {
			Description: "user only",
			MCPServers:  []string{"custom-server"},
		},
	}

	merged := mergeAgents(builtin, user)

	require.Len(t, merged, 2)
	assert.Equal(t, "user override", merged["KubernetesAgent"].Description)
	assert.Equal(t, []string{"custom-server"}, merged["KubernetesAgent"].MCPServers)
	assert.Equal(t, "user only", merged["CustomAgent"].Description)
}

func TestMergeAgentsDoesNotAliasBuiltinSlices(t *testing.T) {
	builtin := map[string]AgentConfig{
		"Agent": {MCPServers: []string{"server-a"}},
	}

	merged := mergeAgents(builtin, nil)
	merged["Agent"].MCPServers[0] = "mutated"

	assert.Equal(t, "server-a", builtin["Agent"].MCPServers[0])
}

func TestMergeMCPServers(t *testing.T) {
	builtin := map[string]MCPServerConfig{
		"kubernetes-server": {
			Transport: TransportConfig{Type: TransportTypeStdio, Command: "npx"},
		},
	}
	user := map[string]MCPServerConfig{
		"kubernetes-server": {
			Transport: TransportConfig{Type: TransportTypeHTTP, URL: "https://mcp.internal"},
		},
		"argocd-server": {
			Transport: TransportConfig{Type: TransportTypeSSE, URL: "https://argocd.internal"},
		},
	}

	merged := mergeMCPServers(builtin, user)

	require.Len(t, merged, 2)
	assert.Equal(t, TransportTypeHTTP, merged["kubernetes-server"].Transport.Type)
	assert.Equal(t, "https://argocd.internal", merged["argocd-server"].Transport.URL)
}

func TestMergeChains(t *testing.T) {
	builtin := map[string]ChainConfig{
		"kubernetes-agent-chain": {
			AlertTypes: []string{"kubernetes"},
			Stages:     []StageConfig{{Name: "analysis", Agent: "KubernetesAgent"}},
		},
	}
	user := map[string]ChainConfig{
		"kubernetes-agent-chain": {
			AlertTypes: []string{"kubernetes", "KubernetesEvent"},
			Stages: []StageConfig{
				{Name: "collection", Agent: "DataCollectionAgent"},
				{Name: "analysis", Agent: "KubernetesAgent"},
			},
		},
	}

	merged := mergeChains(builtin, user)

	require.Len(t, merged, 1)
	assert.Len(t, merged["kubernetes-agent-chain"].Stages, 2)
	assert.Contains(t, merged["kubernetes-agent-chain"].AlertTypes, "KubernetesEvent")
}

func TestMergeLLMProviders(t *testing.T) {
	builtin := map[string]LLMProviderConfig{
		"google-default": {Type: LLMProviderTypeGoogle, Model: "gemini-2.5-pro"},
	}
	user := map[string]LLMProviderConfig{
		"google-default": {Type: LLMProviderTypeGoogle, Model: "gemini-2.5-flash"},
		"fast":           {Type: LLMProviderTypeOpenAI, Model: "gpt-5-mini"},
	}

	merged := mergeLLMProviders(builtin, user)

	require.Len(t, merged, 2)
	assert.Equal(t, "gemini-2.5-flash", merged["google-default"].Model)
	assert.Equal(t, "gpt-5-mini", merged["fast"].Model)
}

func TestMergeWithNilUserMaps(t *testing.T) {
	builtin := GetBuiltinConfig()

	agents := mergeAgents(builtin.Agents, nil)
	assert.Len(t, agents, len(builtin.Agents))

	servers := mergeMCPServers(builtin.MCPServers, nil)
	assert.Len(t, servers, len(builtin.MCPServers))

	chains := mergeChains(builtin.ChainDefinitions, nil)
	assert.Len(t, chains, len(builtin.ChainDefinitions))

	providers := mergeLLMProviders(builtin.LLMProviders, nil)
	assert.Len(t, providers, len(builtin.LLMProviders))
}
