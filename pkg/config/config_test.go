package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsTestConfig() *Config {
	builtin := GetBuiltinConfig()
	return &Config{
		configDir:           "/etc/tarsy",
		Defaults:            &Defaults{LLMProvider: builtin.DefaultLLMProvider},
		Queue:               DefaultQueueConfig(),
		AgentRegistry:       NewAgentRegistry(mergeAgents(builtin.Agents, nil)),
		ChainRegistry:       NewChainRegistry(mergeChains(builtin.ChainDefinitions, nil)),
		MCPServerRegistry:   NewMCPServerRegistry(mergeMCPServers(builtin.MCPServers, nil)),
		LLMProviderRegistry: NewLLMProviderRegistry(mergeLLMProviders(builtin.LLMProviders, nil)),
	}
}

func TestConfigStats(t *testing.T) {
	cfg := newStatsTestConfig()
	builtin := GetBuiltinConfig()

	stats := cfg.Stats()
	assert.Equal(t, len(builtin.Agents), stats.Agents)
	assert.Equal(t, len(builtin.ChainDefinitions), stats.Chains)
	assert.Equal(t, len(builtin.MCPServers), stats.MCPServers)
	assert.Equal(t, len(builtin.LLMProviders), stats.LLMProviders)
}

func TestConfigStatsWithNilRegistries(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, Stats{}, cfg.Stats())
}

func TestConfigDir(t *testing.T) {
	cfg := newStatsTestConfig()
	assert.Equal(t, "/etc/tarsy", cfg.ConfigDir())
}

func TestConfigConvenienceGetters(t *testing.T) {
	cfg := newStatsTestConfig()

	t.Run("GetAgent", func(t *testing.T) {
		agent, err := cfg.GetAgent("KubernetesAgent")
		require.NoError(t, err)
		assert.NotEmpty(t, agent.MCPServers)

		_, err = cfg.GetAgent("missing")
		assert.ErrorIs(t, err, ErrAgentNotFound)
	})

	t.Run("GetChain", func(t *testing.T) {
		chain, err := cfg.GetChain("kubernetes-agent-chain")
		require.NoError(t, err)
		assert.NotEmpty(t, chain.Stages)

		_, err = cfg.GetChain("missing")
		assert.ErrorIs(t, err, ErrChainNotFound)
	})

	t.Run("GetChainByAlertType", func(t *testing.T) {
		chain, err := cfg.GetChainByAlertType("kubernetes")
		require.NoError(t, err)
		assert.Contains(t, chain.AlertTypes, "kubernetes")

		_, err = cfg.GetChainByAlertType("missing")
		assert.ErrorIs(t, err, ErrChainNotFound)
	})

	t.Run("GetMCPServer", func(t *testing.T) {
		server, err := cfg.GetMCPServer("kubernetes-server")
		require.NoError(t, err)
		assert.Equal(t, TransportTypeStdio, server.Transport.Type)

		_, err = cfg.GetMCPServer("missing")
		assert.ErrorIs(t, err, ErrMCPServerNotFound)
	})

	t.Run("GetLLMProvider", func(t *testing.T) {
		provider, err := cfg.GetLLMProvider("google-default")
		require.NoError(t, err)
		assert.Equal(t, LLMProviderTypeGoogle, provider.Type)

		_, err = cfg.GetLLMProvider("missing")
		assert.ErrorIs(t, err, ErrLLMProviderNotFound)
	})
}

func TestAllMCPServerIDs(t *testing.T) {
	cfg := newStatsTestConfig()
	assert.Equal(t, []string{"kubernetes-server"}, cfg.AllMCPServerIDs())
}
