package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/models"
)

func TestRouter_Generate_Validation(t *testing.T) {
	router := NewRouter(nil)
	t.Cleanup(func() { _ = router.Close() })
	ctx := context.Background()

	t.Run("rejects nil input", func(t *testing.T) {
		_, err := router.Generate(ctx, nil)
		assert.Error(t, err)
	})

	t.Run("rejects input without provider config", func(t *testing.T) {
		_, err := router.Generate(ctx, &agent.GenerateInput{})
		assert.Error(t, err)
	})

	t.Run("rejects unsupported provider type", func(t *testing.T) {
		t.Setenv("TEST_LLM_KEY", "key")
		_, err := router.Generate(ctx, &agent.GenerateInput{
			Config: &config.LLMProviderConfig{
				Type:      config.LLMProviderType("bedrock"),
				Model:     "m",
				APIKeyEnv: "TEST_LLM_KEY",
			},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported provider type")
	})

	t.Run("rejects missing api_key_env", func(t *testing.T) {
		_, err := router.Generate(ctx, &agent.GenerateInput{
			Config: &config.LLMProviderConfig{
				Type:  config.LLMProviderTypeOpenAI,
				Model: "gpt-5",
			},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api_key_env")
	})

	t.Run("rejects unset api key variable", func(t *testing.T) {
		_, err := router.Generate(ctx, &agent.GenerateInput{
			Config: &config.LLMProviderConfig{
				Type:      config.LLMProviderTypeOpenAI,
				Model:     "gpt-5",
				APIKeyEnv: "TARSY_TEST_UNSET_KEY",
			},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TARSY_TEST_UNSET_KEY")
	})
}

func TestRouter_AdapterCaching(t *testing.T) {
	t.Setenv("TEST_OPENAI_KEY", "key-a")
	t.Setenv("TEST_XAI_KEY", "key-b")

	router := NewRouter(nil)
	t.Cleanup(func() { _ = router.Close() })
	ctx := context.Background()

	openaiCfg := &config.LLMProviderConfig{
		Type:      config.LLMProviderTypeOpenAI,
		Model:     "gpt-5",
		APIKeyEnv: "TEST_OPENAI_KEY",
	}
	xaiCfg := &config.LLMProviderConfig{
		Type:      config.LLMProviderTypeXAI,
		Model:     "grok-4",
		APIKeyEnv: "TEST_XAI_KEY",
		BaseURL:   "https://api.x.ai/v1",
	}

	first, err := router.adapterFor(ctx, openaiCfg)
	require.NoError(t, err)
	again, err := router.adapterFor(ctx, openaiCfg)
	require.NoError(t, err)
	assert.Same(t, first, again)

	// xAI speaks the OpenAI wire format but gets its own client.
	xai, err := router.adapterFor(ctx, xaiCfg)
	require.NoError(t, err)
	assert.NotSame(t, first, xai)
}

func TestIsRetryableMessage(t *testing.T) {
	retryable := []string{
		"429 Too Many Requests",
		"rate limit exceeded",
		"googleapi: Error 503: service unavailable",
		"anthropic: overloaded_error",
		"context deadline exceeded",
		"dial tcp: connection refused",
	}
	for _, msg := range retryable {
		assert.True(t, isRetryableMessage(msg), msg)
	}

	permanent := []string{
		"401 Unauthorized",
		"invalid api key",
		"model not found",
		ErrEmptyResponse.Error(),
	}
	for _, msg := range permanent {
		assert.False(t, isRetryableMessage(msg), msg)
	}
}

func TestCollectSystemPrompt(t *testing.T) {
	messages := []models.ConversationMessage{
		{Role: "system", Content: "Base instructions."},
		{Role: "system", Content: "Server instructions."},
		{Role: "user", Content: "Investigate."},
	}
	assert.Equal(t, "Base instructions.\n\nServer instructions.", collectSystemPrompt(messages))
	assert.Empty(t, collectSystemPrompt(nil))
}

func TestToolNameForCallID(t *testing.T) {
	messages := []models.ConversationMessage{
		{
			Role: "assistant",
			ToolCalls: []models.ToolCall{
				{ID: "call_1", Name: "kubernetes__get_pod", Arguments: "{}"},
			},
		},
		{Role: "tool", Content: "{}", ToolCallID: "call_1"},
	}
	assert.Equal(t, "kubernetes__get_pod", toolNameForCallID(messages, "call_1"))
	assert.Empty(t, toolNameForCallID(messages, "call_2"))
}
