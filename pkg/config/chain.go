package config

import (
	"fmt"
	"sort"
	"sync"
)

// ChainConfig defines a multi-stage agent chain configuration
type ChainConfig struct {
	// Alert types this chain handles (required, min 1)
	AlertTypes []string `yaml:"alert_types" validate:"required,min=1"`

	// Human-readable description
	Description string `yaml:"description,omitempty"`

	// Stages to execute in order (required, min 1)
	Stages []StageConfig `yaml:"stages" validate:"required,min=1,dive"`

	// Whether follow-up chat is offered for sessions of this chain.
	// Parsed and stored; chat processing itself is handled outside the engine.
	ChatEnabled bool `yaml:"chat_enabled,omitempty"`

	// Chain-level LLM provider override (default for all stages)
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// Chain-level max iterations override
	MaxIterations *int `yaml:"max_iterations,omitempty" validate:"omitempty,min=1"`
}

// StageConfig defines a single stage in a chain. Each stage runs exactly
// one agent; later stages see the accumulated outputs of earlier ones.
type StageConfig struct {
	// Stage identifier within the chain (required)
	Name string `yaml:"stage_id" validate:"required"`

	// Agent to execute (required)
	Agent string `yaml:"agent" validate:"required"`

	// Stage-level iteration strategy override
	IterationStrategy IterationStrategy `yaml:"iteration_strategy,omitempty"`

	// Stage-level LLM provider override
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// Stage-level max iterations override
	MaxIterations *int `yaml:"max_iterations,omitempty" validate:"omitempty,min=1"`

	// Stage-level MCP servers override (replaces the agent's default set)
	MCPServers []string `yaml:"mcp_servers,omitempty"`
}

// ChainRegistry stores chain configurations in memory with thread-safe access.
// Alert-type routing walks chains in registration order (sorted chain ID),
// so routing is deterministic when several chains claim the same alert type.
type ChainRegistry struct {
	chains map[string]*ChainConfig
	order  []string
	mu     sync.RWMutex
}

// NewChainRegistry creates a new chain registry
func NewChainRegistry(chains map[string]*ChainConfig) *ChainRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*ChainConfig, len(chains))
	order := make([]string, 0, len(chains))
	for k, v := range chains {
		copied[k] = v
		order = append(order, k)
	}
	sort.Strings(order)
	return &ChainRegistry{
		chains: copied,
		order:  order,
	}
}

// Get retrieves a chain configuration by ID (thread-safe)
func (r *ChainRegistry) Get(chainID string) (*ChainConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chain, exists := r.chains[chainID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrChainNotFound, chainID)
	}
	return chain, nil
}

// GetByAlertType retrieves the first chain that handles the given alert type (thread-safe)
func (r *ChainRegistry) GetByAlertType(alertType string) (*ChainConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chainID := r.findChainIDByAlertType(alertType)
	if chainID == "" {
		return nil, fmt.Errorf("%w for alert type: %s", ErrChainNotFound, alertType)
	}
	return r.chains[chainID], nil
}

// GetIDByAlertType retrieves the chain ID that handles the given alert type (thread-safe)
func (r *ChainRegistry) GetIDByAlertType(alertType string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chainID := r.findChainIDByAlertType(alertType)
	if chainID == "" {
		return "", fmt.Errorf("%w for alert type: %s", ErrChainNotFound, alertType)
	}
	return chainID, nil
}

// findChainIDByAlertType is an unexported helper that assumes the lock is held.
// First match in registration order wins.
func (r *ChainRegistry) findChainIDByAlertType(alertType string) string {
	for _, chainID := range r.order {
		for _, at := range r.chains[chainID].AlertTypes {
			if at == alertType {
				return chainID
			}
		}
	}
	return ""
}

// GetAll returns all chain configurations (thread-safe, returns copy)
func (r *ChainRegistry) GetAll() map[string]*ChainConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]*ChainConfig, len(r.chains))
	for k, v := range r.chains {
		result[k] = v
	}
	return result
}

// ChainIDs returns all chain IDs in registration order (thread-safe, returns copy)
func (r *ChainRegistry) ChainIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Has checks if a chain exists in the registry (thread-safe)
func (r *ChainRegistry) Has(chainID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.chains[chainID]
	return exists
}

// Len returns the number of chains in the registry (thread-safe)
func (r *ChainRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.chains)
}
