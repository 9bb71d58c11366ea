package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentRegistry(t *testing.T) {
	agents := map[string]*AgentConfig{
		"KubernetesAgent": {
			Description: "K8s agent",
			MCPServers:  []string{"kubernetes-server"},
		},
	}

	registry := NewAgentRegistry(agents)

	t.Run("Get existing", func(t *testing.T) {
		agent, err := registry.Get("KubernetesAgent")
		require.NoError(t, err)
		assert.Equal(t, "K8s agent", agent.Description)
	})

	t.Run("Get missing", func(t *testing.T) {
		_, err := registry.Get("NoSuchAgent")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAgentNotFound)
	})

	t.Run("Has", func(t *testing.T) {
		assert.True(t, registry.Has("KubernetesAgent"))
		assert.False(t, registry.Has("NoSuchAgent"))
	})

	t.Run("Len", func(t *testing.T) {
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("GetAll returns copy", func(t *testing.T) {
		all := registry.GetAll()
		delete(all, "KubernetesAgent")
		assert.True(t, registry.Has("KubernetesAgent"))
	})
}

func TestChainRegistry(t *testing.T) {
	chains := map[string]*ChainConfig{
		"kubernetes-chain": {
			AlertTypes: []string{"kubernetes", "KubernetesEvent"},
			Stages:     []StageConfig{{Name: "analysis", Agent: "KubernetesAgent"}},
		},
		"generic-chain": {
			AlertTypes: []string{"generic"},
			Stages:     []StageConfig{{Name: "analysis", Agent: "KubernetesAgent"}},
		},
	}

	registry := NewChainRegistry(chains)

	t.Run("Get existing", func(t *testing.T) {
		chain, err := registry.Get("kubernetes-chain")
		require.NoError(t, err)
		assert.Len(t, chain.Stages, 1)
	})

	t.Run("Get missing", func(t *testing.T) {
		_, err := registry.Get("no-such-chain")
		assert.ErrorIs(t, err, ErrChainNotFound)
	})

	t.Run("GetByAlertType", func(t *testing.T) {
		chain, err := registry.GetByAlertType("KubernetesEvent")
		require.NoError(t, err)
		assert.Contains(t, chain.AlertTypes, "kubernetes")
	})

	t.Run("GetByAlertType missing", func(t *testing.T) {
		_, err := registry.GetByAlertType("unknown")
		assert.ErrorIs(t, err, ErrChainNotFound)
	})

	t.Run("GetIDByAlertType", func(t *testing.T) {
		id, err := registry.GetIDByAlertType("generic")
		require.NoError(t, err)
		assert.Equal(t, "generic-chain", id)
	})

	t.Run("routing order is deterministic", func(t *testing.T) {
		// Both chains registered; IDs walk in sorted order.
		assert.Equal(t, []string{"generic-chain", "kubernetes-chain"}, registry.ChainIDs())
	})

	t.Run("first match wins on overlapping alert types", func(t *testing.T) {
		overlapping := map[string]*ChainConfig{
			"b-chain": {AlertTypes: []string{"shared"}, Stages: []StageConfig{{Name: "s", Agent: "A"}}},
			"a-chain": {AlertTypes: []string{"shared"}, Stages: []StageConfig{{Name: "s", Agent: "A"}}},
		}
		reg := NewChainRegistry(overlapping)

		id, err := reg.GetIDByAlertType("shared")
		require.NoError(t, err)
		assert.Equal(t, "a-chain", id)
	})
}

func TestMCPServerRegistry(t *testing.T) {
	servers := map[string]*MCPServerConfig{
		"kubernetes-server": {
			Transport: TransportConfig{Type: TransportTypeStdio, Command: "npx"},
		},
		"disabled-server": {
			Transport: TransportConfig{Type: TransportTypeStdio, Command: "npx"},
			Enabled:   BoolPtr(false),
		},
	}

	registry := NewMCPServerRegistry(servers)

	t.Run("Get existing", func(t *testing.T) {
		server, err := registry.Get("kubernetes-server")
		require.NoError(t, err)
		assert.Equal(t, "npx", server.Transport.Command)
	})

	t.Run("Get missing", func(t *testing.T) {
		_, err := registry.Get("no-such-server")
		assert.ErrorIs(t, err, ErrMCPServerNotFound)
	})

	t.Run("ServerIDs excludes disabled", func(t *testing.T) {
		assert.Equal(t, []string{"kubernetes-server"}, registry.ServerIDs())
	})

	t.Run("Len counts all", func(t *testing.T) {
		assert.Equal(t, 2, registry.Len())
	})
}

func TestLLMProviderRegistry(t *testing.T) {
	providers := map[string]*LLMProviderConfig{
		"google-default": {
			Type:  LLMProviderTypeGoogle,
			Model: "gemini-2.5-pro",
		},
	}

	registry := NewLLMProviderRegistry(providers)

	t.Run("Get existing", func(t *testing.T) {
		provider, err := registry.Get("google-default")
		require.NoError(t, err)
		assert.Equal(t, "gemini-2.5-pro", provider.Model)
	})

	t.Run("Get missing", func(t *testing.T) {
		_, err := registry.Get("no-such-provider")
		assert.ErrorIs(t, err, ErrLLMProviderNotFound)
	})

	t.Run("Has", func(t *testing.T) {
		assert.True(t, registry.Has("google-default"))
		assert.False(t, registry.Has("other"))
	})
}

func TestRegistryThreadSafety(_ *testing.T) {
	registry := NewChainRegistry(map[string]*ChainConfig{
		"chain": {AlertTypes: []string{"a"}, Stages: []StageConfig{{Name: "s", Agent: "A"}}},
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = registry.Get("chain")
				_, _ = registry.GetByAlertType("a")
				_ = registry.GetAll()
				_ = registry.ChainIDs()
			}
		}()
	}
	wg.Wait()
}
