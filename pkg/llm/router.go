// Package llm implements the provider adapters behind agent.LLMClient.
// Each adapter owns one provider SDK's streaming quirks and converts its
// events into the shared chunk types.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/metrics"
)

// ErrEmptyResponse is returned when a provider produces no text, no
// thinking, and no tool calls after all adapter-level retries.
var ErrEmptyResponse = errors.New("llm: empty response from provider")

// provider is the adapter contract. Adapters are created lazily per
// provider type and reused across calls.
type provider interface {
	generate(ctx context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error)
	close() error
}

// Router implements agent.LLMClient by dispatching each call to the
// adapter for the provider type in GenerateInput.Config. Adapters are
// cached per (type, base URL, key env) so xAI and OpenAI configs get
// separate clients even though both speak the OpenAI wire format.
type Router struct {
	mu       sync.Mutex
	adapters map[string]provider
	logger   *slog.Logger
}

// NewRouter creates a Router. Provider clients are created on first use;
// a missing API key surfaces as an error on the first call that needs it.
func NewRouter(logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		adapters: make(map[string]provider),
		logger:   logger,
	}
}

// Generate dispatches to the adapter for input.Config.Type.
func (r *Router) Generate(ctx context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	if input == nil || input.Config == nil {
		return nil, errors.New("llm: generate input requires a provider config")
	}

	adapter, err := r.adapterFor(ctx, input.Config)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	providerLabel := string(input.Config.Type)

	chunks, err := adapter.generate(ctx, input)
	if err != nil {
		metrics.Default().ObserveLLMCall(providerLabel, metrics.OutcomeError, time.Since(start))
		return nil, err
	}

	// Observe the call once the stream drains, so the duration covers the
	// full response rather than just the request dispatch.
	out := make(chan agent.Chunk)
	go func() {
		defer close(out)
		outcome := metrics.OutcomeSuccess
		for chunk := range chunks {
			if _, isErr := chunk.(*agent.ErrorChunk); isErr {
				outcome = metrics.OutcomeError
			}
			select {
			case out <- chunk:
			case <-ctx.Done():
				for range chunks {
				}
				metrics.Default().ObserveLLMCall(providerLabel, metrics.OutcomeError, time.Since(start))
				return
			}
		}
		metrics.Default().ObserveLLMCall(providerLabel, outcome, time.Since(start))
	}()
	return out, nil
}

// Close releases all cached provider clients.
func (r *Router) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for key, adapter := range r.adapters {
		if err := adapter.close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("llm: closing %s adapter: %w", key, err)
		}
		delete(r.adapters, key)
	}
	return firstErr
}

func (r *Router) adapterFor(ctx context.Context, cfg *config.LLMProviderConfig) (provider, error) {
	key := fmt.Sprintf("%s|%s|%s", cfg.Type, cfg.BaseURL, cfg.APIKeyEnv)

	r.mu.Lock()
	defer r.mu.Unlock()

	if adapter, ok := r.adapters[key]; ok {
		return adapter, nil
	}

	apiKey, err := resolveAPIKey(cfg)
	if err != nil {
		return nil, err
	}

	var adapter provider
	switch cfg.Type {
	case config.LLMProviderTypeGoogle:
		adapter, err = newGoogleAdapter(ctx, apiKey, r.logger)
	case config.LLMProviderTypeAnthropic:
		adapter, err = newAnthropicAdapter(apiKey, cfg.BaseURL, r.logger)
	case config.LLMProviderTypeOpenAI, config.LLMProviderTypeXAI:
		adapter, err = newOpenAIAdapter(apiKey, cfg.BaseURL, r.logger)
	default:
		return nil, fmt.Errorf("llm: unsupported provider type %q", cfg.Type)
	}
	if err != nil {
		return nil, err
	}

	r.adapters[key] = adapter
	return adapter, nil
}

func resolveAPIKey(cfg *config.LLMProviderConfig) (string, error) {
	if cfg.APIKeyEnv == "" {
		return "", fmt.Errorf("llm: provider type %q has no api_key_env configured", cfg.Type)
	}
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return "", fmt.Errorf("llm: environment variable %s is not set", cfg.APIKeyEnv)
	}
	return key, nil
}

// sendChunk delivers a chunk unless the context is done. Returns false
// when the caller should stop streaming.
func sendChunk(ctx context.Context, out chan<- agent.Chunk, chunk agent.Chunk) bool {
	select {
	case out <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}
