package agent

import (
	"fmt"
	"time"

	"github.com/tarsy-project/tarsy/pkg/config"
)

const DefaultMaxIterations = 20

// DefaultLLMTimeout bounds a single LLM call (including streaming) when the
// queue config does not override it.
const DefaultLLMTimeout = 210 * time.Second

// ResolveAgentConfig builds the final agent configuration for one stage by
// applying the hierarchy: defaults → agent definition → chain → stage.
func ResolveAgentConfig(
	cfg *config.Config,
	chain *config.ChainConfig,
	stage config.StageConfig,
) (*ResolvedAgentConfig, error) {
	// Guard against nil chain to prevent nil pointer dereference
	// when accessing chain.LLMProvider and chain.MaxIterations
	if chain == nil {
		return nil, fmt.Errorf("chain configuration cannot be nil")
	}

	defaults := cfg.Defaults

	// Get agent definition (built-in or user-defined)
	agentDef, err := cfg.GetAgent(stage.Agent)
	if err != nil {
		return nil, fmt.Errorf("agent %q not found: %w", stage.Agent, err)
	}

	// Resolve iteration strategy: defaults → agent def → stage
	// (later values override earlier ones).
	strategy := config.IterationStrategyReact
	if defaults != nil && defaults.IterationStrategy != "" {
		strategy = defaults.IterationStrategy
	}
	if agentDef.IterationStrategy != "" {
		strategy = agentDef.IterationStrategy
	}
	if stage.IterationStrategy != "" {
		strategy = stage.IterationStrategy
	}
	if !strategy.IsValid() {
		return nil, fmt.Errorf("invalid iteration strategy %q for agent %q", strategy, stage.Agent)
	}

	// Resolve LLM provider (stage > chain > defaults)
	var providerName string
	if defaults != nil {
		providerName = defaults.LLMProvider
	}
	if chain.LLMProvider != "" {
		providerName = chain.LLMProvider
	}
	if stage.LLMProvider != "" {
		providerName = stage.LLMProvider
	}
	provider, err := cfg.GetLLMProvider(providerName)
	if err != nil {
		return nil, fmt.Errorf("LLM provider %q not found: %w", providerName, err)
	}

	// Resolve max iterations (stage > chain > agent-def > defaults)
	maxIter := DefaultMaxIterations
	if defaults != nil && defaults.MaxIterations != nil {
		maxIter = *defaults.MaxIterations
	}
	if agentDef.MaxIterations != nil {
		maxIter = *agentDef.MaxIterations
	}
	if chain.MaxIterations != nil {
		maxIter = *chain.MaxIterations
	}
	if stage.MaxIterations != nil {
		maxIter = *stage.MaxIterations
	}

	// Resolve MCP servers (stage override replaces the agent's default set)
	mcpServers := agentDef.MCPServers
	if len(stage.MCPServers) > 0 {
		mcpServers = stage.MCPServers
	}

	llmTimeout := DefaultLLMTimeout
	if cfg.Queue != nil && cfg.Queue.LLMTimeout > 0 {
		llmTimeout = cfg.Queue.LLMTimeout
	}

	return &ResolvedAgentConfig{
		AgentName:          stage.Agent,
		IterationStrategy:  strategy,
		LLMProvider:        provider,
		LLMProviderName:    providerName,
		MaxIterations:      maxIter,
		LLMTimeout:         llmTimeout,
		MCPServers:         mcpServers,
		CustomInstructions: agentDef.CustomInstructions,
		NativeTools:        mergeNativeTools(provider.NativeTools, agentDef.NativeTools),
	}, nil
}

// mergeNativeTools overlays agent-level native-tool switches on the provider
// defaults. Agent keys override provider keys; missing keys fall through.
func mergeNativeTools(provider, agent map[config.GoogleNativeTool]bool) map[config.GoogleNativeTool]bool {
	if len(provider) == 0 && len(agent) == 0 {
		return nil
	}
	merged := make(map[config.GoogleNativeTool]bool, len(provider)+len(agent))
	for k, v := range provider {
		merged[k] = v
	}
	for k, v := range agent {
		merged[k] = v
	}
	return merged
}
