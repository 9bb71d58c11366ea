package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/pkg/config"
)

func intPtr(i int) *int { return &i }

func TestResolveAgentConfig(t *testing.T) {
	maxIter25 := 25
	defaults := &config.Defaults{
		LLMProvider:       "google-default",
		MaxIterations:     &maxIter25,
		IterationStrategy: config.IterationStrategyReact,
	}

	googleProvider := &config.LLMProviderConfig{
		Type:      config.LLMProviderTypeGoogle,
		Model:     "gemini-2.5-pro",
		APIKeyEnv: "GOOGLE_API_KEY",
		NativeTools: map[config.GoogleNativeTool]bool{
			config.GoogleNativeToolGoogleSearch: true,
		},
	}
	openaiProvider := &config.LLMProviderConfig{
		Type:      config.LLMProviderTypeOpenAI,
		Model:     "gpt-5",
		APIKeyEnv: "OPENAI_API_KEY",
	}

	agentDef := &config.AgentConfig{
		MCPServers:         []string{"kubernetes-server"},
		CustomInstructions: "You are a K8s agent",
	}

	cfg := &config.Config{
		Defaults: defaults,
		Queue:    config.DefaultQueueConfig(),
		AgentRegistry: config.NewAgentRegistry(map[string]*config.AgentConfig{
			"KubernetesAgent": agentDef,
		}),
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
			"google-default": googleProvider,
			"openai-default": openaiProvider,
		}),
	}

	t.Run("uses defaults when no overrides", func(t *testing.T) {
		chain := &config.ChainConfig{}
		stage := config.StageConfig{Name: "investigation", Agent: "KubernetesAgent"}

		resolved, err := ResolveAgentConfig(cfg, chain, stage)
		require.NoError(t, err)

		assert.Equal(t, "KubernetesAgent", resolved.AgentName)
		assert.Equal(t, config.IterationStrategyReact, resolved.IterationStrategy)
		assert.Equal(t, googleProvider, resolved.LLMProvider)
		assert.Equal(t, "google-default", resolved.LLMProviderName)
		assert.Equal(t, 25, resolved.MaxIterations)
		assert.Equal(t, 210*time.Second, resolved.LLMTimeout)
		assert.Equal(t, []string{"kubernetes-server"}, resolved.MCPServers)
		assert.Equal(t, "You are a K8s agent", resolved.CustomInstructions)
	})

	t.Run("stage overrides chain and agent def", func(t *testing.T) {
		chain := &config.ChainConfig{
			LLMProvider:   "google-default",
			MaxIterations: intPtr(15),
		}
		stage := config.StageConfig{
			Name:              "data-collection",
			Agent:             "KubernetesAgent",
			IterationStrategy: config.IterationStrategyReactTools,
			LLMProvider:       "openai-default",
			MaxIterations:     intPtr(5),
			MCPServers:        []string{"custom-server"},
		}

		// custom-server is not in any registry, but that's fine: the resolver
		// doesn't validate MCP servers exist — that's the validator's job.
		resolved, err := ResolveAgentConfig(cfg, chain, stage)
		require.NoError(t, err)

		assert.Equal(t, config.IterationStrategyReactTools, resolved.IterationStrategy)
		assert.Equal(t, openaiProvider, resolved.LLMProvider)
		assert.Equal(t, 5, resolved.MaxIterations)
		assert.Equal(t, []string{"custom-server"}, resolved.MCPServers)
	})

	t.Run("agent def strategy overrides defaults", func(t *testing.T) {
		nativeCfg := &config.Config{
			Defaults: defaults,
			AgentRegistry: config.NewAgentRegistry(map[string]*config.AgentConfig{
				"NativeAgent": {IterationStrategy: config.IterationStrategyNativeThinking},
			}),
			LLMProviderRegistry: cfg.LLMProviderRegistry,
		}
		chain := &config.ChainConfig{}
		stage := config.StageConfig{Name: "investigation", Agent: "NativeAgent"}

		resolved, err := ResolveAgentConfig(nativeCfg, chain, stage)
		require.NoError(t, err)
		assert.Equal(t, config.IterationStrategyNativeThinking, resolved.IterationStrategy)
	})

	t.Run("falls back to react when no level sets a strategy", func(t *testing.T) {
		plainCfg := &config.Config{
			Defaults: &config.Defaults{LLMProvider: "google-default"},
			AgentRegistry: config.NewAgentRegistry(map[string]*config.AgentConfig{
				"PlainAgent": {},
			}),
			LLMProviderRegistry: cfg.LLMProviderRegistry,
		}
		chain := &config.ChainConfig{}
		stage := config.StageConfig{Name: "investigation", Agent: "PlainAgent"}

		resolved, err := ResolveAgentConfig(plainCfg, chain, stage)
		require.NoError(t, err)
		assert.Equal(t, config.IterationStrategyReact, resolved.IterationStrategy)
		assert.Equal(t, DefaultMaxIterations, resolved.MaxIterations)
		assert.Equal(t, DefaultLLMTimeout, resolved.LLMTimeout)
	})

	t.Run("rejects invalid strategy", func(t *testing.T) {
		chain := &config.ChainConfig{}
		stage := config.StageConfig{
			Name:              "investigation",
			Agent:             "KubernetesAgent",
			IterationStrategy: config.IterationStrategy("chain-of-thought"),
		}

		_, err := ResolveAgentConfig(cfg, chain, stage)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid iteration strategy")
	})

	t.Run("merges provider and agent native tools", func(t *testing.T) {
		mergedCfg := &config.Config{
			Defaults: defaults,
			AgentRegistry: config.NewAgentRegistry(map[string]*config.AgentConfig{
				"SearchlessAgent": {
					NativeTools: map[config.GoogleNativeTool]bool{
						config.GoogleNativeToolGoogleSearch:  false,
						config.GoogleNativeToolCodeExecution: true,
					},
				},
			}),
			LLMProviderRegistry: cfg.LLMProviderRegistry,
		}
		chain := &config.ChainConfig{}
		stage := config.StageConfig{Name: "investigation", Agent: "SearchlessAgent"}

		resolved, err := ResolveAgentConfig(mergedCfg, chain, stage)
		require.NoError(t, err)
		assert.False(t, resolved.NativeTools[config.GoogleNativeToolGoogleSearch])
		assert.True(t, resolved.NativeTools[config.GoogleNativeToolCodeExecution])
	})

	t.Run("errors on unknown agent", func(t *testing.T) {
		chain := &config.ChainConfig{}
		stage := config.StageConfig{Name: "investigation", Agent: "UnknownAgent"}

		_, err := ResolveAgentConfig(cfg, chain, stage)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("errors on unknown LLM provider", func(t *testing.T) {
		chain := &config.ChainConfig{}
		stage := config.StageConfig{
			Name:        "investigation",
			Agent:       "KubernetesAgent",
			LLMProvider: "nonexistent-provider",
		}

		_, err := ResolveAgentConfig(cfg, chain, stage)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("errors on nil chain", func(t *testing.T) {
		stage := config.StageConfig{Name: "investigation", Agent: "KubernetesAgent"}

		_, err := ResolveAgentConfig(cfg, nil, stage)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chain configuration cannot be nil")
	})

	t.Run("empty stage MCP list does not override agent def", func(t *testing.T) {
		chain := &config.ChainConfig{}
		stage := config.StageConfig{
			Name:       "investigation",
			Agent:      "KubernetesAgent",
			MCPServers: []string{},
		}

		resolved, err := ResolveAgentConfig(cfg, chain, stage)
		require.NoError(t, err)
		assert.Equal(t, []string{"kubernetes-server"}, resolved.MCPServers)
	})
}
