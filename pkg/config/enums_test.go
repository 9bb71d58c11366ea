package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterationStrategyIsValid(t *testing.T) {
	tests := []struct {
		name     string
		strategy IterationStrategy
		valid    bool
	}{
		{"react", IterationStrategyReact, true},
		{"react-tools", IterationStrategyReactTools, true},
		{"react-final-analysis", IterationStrategyReactFinalAnalysis, true},
		{"native-thinking", IterationStrategyNativeThinking, true},
		{"invalid", IterationStrategy("invalid"), false},
		{"empty", IterationStrategy(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.strategy.IsValid())
		})
	}
}

func TestIterationStrategyUsesTools(t *testing.T) {
	assert.True(t, IterationStrategyReact.UsesTools())
	assert.True(t, IterationStrategyReactTools.UsesTools())
	assert.True(t, IterationStrategyNativeThinking.UsesTools())
	assert.False(t, IterationStrategyReactFinalAnalysis.UsesTools())
}

func TestTransportTypeIsValid(t *testing.T) {
	tests := []struct {
		name      string
		transport TransportType
		valid     bool
	}{
		{"stdio", TransportTypeStdio, true},
		{"http", TransportTypeHTTP, true},
		{"sse", TransportTypeSSE, true},
		{"invalid", TransportType("grpc"), false},
		{"empty", TransportType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.transport.IsValid())
		})
	}
}

func TestLLMProviderTypeIsValid(t *testing.T) {
	tests := []struct {
		name     string
		provider LLMProviderType
		valid    bool
	}{
		{"google", LLMProviderTypeGoogle, true},
		{"openai", LLMProviderTypeOpenAI, true},
		{"anthropic", LLMProviderTypeAnthropic, true},
		{"xai", LLMProviderTypeXAI, true},
		{"invalid", LLMProviderType("cohere"), false},
		{"empty", LLMProviderType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.provider.IsValid())
		})
	}
}

func TestGoogleNativeToolIsValid(t *testing.T) {
	assert.True(t, GoogleNativeToolGoogleSearch.IsValid())
	assert.True(t, GoogleNativeToolCodeExecution.IsValid())
	assert.True(t, GoogleNativeToolURLContext.IsValid())
	assert.False(t, GoogleNativeTool("web_browser").IsValid())
}
