package controller

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/models"
)

func boolPtr(b bool) *bool { return &b }

// summarizeFixture wires an MCP registry with a low threshold so tests don't
// need multi-kilobyte payloads.
func summarizeFixture(t *testing.T) *testFixture {
	fx := newTestFixture(t)
	fx.execCtx.MCPRegistry = config.NewMCPServerRegistry(map[string]*config.MCPServerConfig{
		"kubernetes-server": {
			Transport: config.TransportConfig{Type: config.TransportTypeStdio},
			Summarization: &config.SummarizationConfig{
				SizeThresholdTokens:  100,
				SummaryMaxTokenLimit: 200,
			},
		},
	})
	return fx
}

func TestMaybeSummarize_BelowThresholdReturnsRaw(t *testing.T) {
	fx := summarizeFixture(t)

	result, err := maybeSummarize(context.Background(), fx.execCtx,
		"kubernetes-server", "get_pods", "short output", "", "event-1")
	require.NoError(t, err)
	assert.False(t, result.WasSummarized)
	assert.Equal(t, "short output", result.Content)
	assert.Zero(t, fx.llm.callCount)
}

func TestMaybeSummarize_OverThresholdSummarizes(t *testing.T) {
	fx := summarizeFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{chunks: textChunks("Three pods in CrashLoopBackOff, all OOM killed.")},
	}

	// 100 token threshold at 4 chars/token needs >400 chars.
	raw := strings.Repeat("pod-line ", 100)
	result, err := maybeSummarize(context.Background(), fx.execCtx,
		"kubernetes-server", "get_pods", raw, "[user]: investigate\n\n", "event-1")
	require.NoError(t, err)

	assert.True(t, result.WasSummarized)
	assert.Contains(t, result.Content, "[NOTE: The output from kubernetes-server.get_pods")
	assert.Contains(t, result.Content, "CrashLoopBackOff")
	require.NotNil(t, result.Usage)
	assert.Equal(t, 150, result.Usage.TotalTokens)

	// The stream is tagged with the originating tool call event.
	require.NotEmpty(t, fx.publisher.chunks)
	for _, c := range fx.publisher.chunks {
		assert.Equal(t, "event-1", c.MCPEventID)
	}
	assert.Equal(t, StreamTypeSummarization, fx.publisher.chunks[0].StreamType)
}

func TestMaybeSummarize_LLMFailureFailsOpen(t *testing.T) {
	fx := summarizeFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{err: errors.New("provider down")},
	}

	raw := strings.Repeat("x", 500)
	result, err := maybeSummarize(context.Background(), fx.execCtx,
		"kubernetes-server", "get_pods", raw, "", "event-1")
	require.NoError(t, err)
	assert.False(t, result.WasSummarized)
	assert.Equal(t, raw, result.Content)
}

func TestMaybeSummarize_EmptySummaryFailsOpen(t *testing.T) {
	fx := summarizeFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{chunks: []agent.Chunk{&agent.TextChunk{Text: "   "}}},
	}

	raw := strings.Repeat("x", 500)
	result, err := maybeSummarize(context.Background(), fx.execCtx,
		"kubernetes-server", "get_pods", raw, "", "event-1")
	require.NoError(t, err)
	assert.False(t, result.WasSummarized)
	assert.Equal(t, raw, result.Content)
}

func TestMaybeSummarize_DisabledServerSkips(t *testing.T) {
	fx := newTestFixture(t)
	fx.execCtx.MCPRegistry = config.NewMCPServerRegistry(map[string]*config.MCPServerConfig{
		"kubernetes-server": {
			Transport: config.TransportConfig{Type: config.TransportTypeStdio},
			Summarization: &config.SummarizationConfig{
				Enabled:             boolPtr(false),
				SizeThresholdTokens: 10,
			},
		},
	})

	raw := strings.Repeat("x", 500)
	result, err := maybeSummarize(context.Background(), fx.execCtx,
		"kubernetes-server", "get_pods", raw, "", "event-1")
	require.NoError(t, err)
	assert.False(t, result.WasSummarized)
	assert.Zero(t, fx.llm.callCount)
}

func TestMaybeSummarize_UnknownServerSkips(t *testing.T) {
	fx := summarizeFixture(t)

	raw := strings.Repeat("x", 500)
	result, err := maybeSummarize(context.Background(), fx.execCtx,
		"unknown-server", "get_pods", raw, "", "event-1")
	require.NoError(t, err)
	assert.False(t, result.WasSummarized)
	assert.Zero(t, fx.llm.callCount)
}

func TestMaybeSummarize_NilRegistrySkips(t *testing.T) {
	fx := newTestFixture(t)

	raw := strings.Repeat("x", 50000)
	result, err := maybeSummarize(context.Background(), fx.execCtx,
		"kubernetes-server", "get_pods", raw, "", "event-1")
	require.NoError(t, err)
	assert.False(t, result.WasSummarized)
	assert.Equal(t, raw, result.Content)
}

func TestBuildConversationContext(t *testing.T) {
	got := buildConversationContext([]models.ConversationMessage{
		{Role: models.RoleSystem, Content: "long system prompt"},
		{Role: models.RoleUser, Content: "investigate the alert"},
		{Role: models.RoleAssistant, Content: "Thought: checking"},
	})
	assert.NotContains(t, got, "long system prompt")
	assert.Contains(t, got, "[user]: investigate the alert")
	assert.Contains(t, got, "[assistant]: Thought: checking")
}
