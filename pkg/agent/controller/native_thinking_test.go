package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/llm"
	"github.com/tarsy-project/tarsy/pkg/models"
)

func nativeFixture(t *testing.T) *testFixture {
	fx := newTestFixture(t)
	fx.execCtx.Config.IterationStrategy = config.IterationStrategyNativeThinking
	return fx
}

func TestNativeThinkingController_ToolCallThenFinalAnswer(t *testing.T) {
	fx := nativeFixture(t)
	fx.tools.results = map[string]*agent.ToolResult{
		"kubernetes-server__get_pods": {Name: "kubernetes-server.get_pods", Content: "payments-7d9f: OOMKilled"},
	}
	fx.llm.responses = []mockLLMResponse{
		{chunks: []agent.Chunk{
			&agent.ThinkingChunk{Text: "I should inspect the pods.", Signature: "c2lnLTE="},
			&agent.ToolCallChunk{CallID: "call_1", Name: "kubernetes-server__get_pods", Arguments: `{"namespace":"payments"}`},
			&agent.UsageChunk{InputTokens: 200, OutputTokens: 80, TotalTokens: 280},
		}},
		{chunks: []agent.Chunk{
			&agent.TextChunk{Text: "The pod was OOM killed; raise the memory limit."},
			&agent.UsageChunk{InputTokens: 300, OutputTokens: 60, TotalTokens: 360},
		}},
	}

	result, err := NewNativeThinkingController().Run(context.Background(), fx.execCtx, "")
	require.NoError(t, err)

	assert.Equal(t, agent.ExecutionStatusCompleted, result.Status)
	assert.Equal(t, "The pod was OOM killed; raise the memory limit.", result.FinalAnalysis)
	assert.Equal(t, 640, result.TokensUsed.TotalTokens)

	require.Len(t, fx.tools.calls, 1)
	assert.Equal(t, "call_1", fx.tools.calls[0].ID)

	// The second turn must replay the assistant tool calls, the thought
	// signature, and the tool result keyed by call id.
	require.Len(t, fx.llm.inputs, 2)
	msgs := fx.llm.inputs[1].Messages
	var assistantMsg, toolMsg *models.ConversationMessage
	for i := range msgs {
		switch msgs[i].Role {
		case models.RoleAssistant:
			assistantMsg = &msgs[i]
		case models.RoleTool:
			toolMsg = &msgs[i]
		}
	}
	require.NotNil(t, assistantMsg)
	require.Len(t, assistantMsg.ToolCalls, 1)
	assert.Equal(t, "c2lnLTE=", assistantMsg.ThoughtSignature)
	require.NotNil(t, toolMsg)
	assert.Equal(t, "call_1", toolMsg.ToolCallID)
	assert.Contains(t, toolMsg.Content, "OOMKilled")
}

func TestNativeThinkingController_ToolNamesUseDoubleUnderscore(t *testing.T) {
	fx := nativeFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{chunks: []agent.Chunk{&agent.TextChunk{Text: "Nothing to do."}}},
	}

	_, err := NewNativeThinkingController().Run(context.Background(), fx.execCtx, "")
	require.NoError(t, err)

	require.Len(t, fx.llm.inputs, 1)
	tools := fx.llm.inputs[0].Tools
	require.Len(t, tools, 2)
	assert.Equal(t, "kubernetes-server__get_pods", tools[0].Name)
	assert.Equal(t, "kubernetes-server__get_logs", tools[1].Name)
}

func TestNativeThinkingController_EmptyResponseBecomesErrorFinalAnswer(t *testing.T) {
	fx := nativeFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{chunks: []agent.Chunk{&agent.ErrorChunk{Message: llm.ErrEmptyResponse.Error()}}},
	}

	result, err := NewNativeThinkingController().Run(context.Background(), fx.execCtx, "")
	require.NoError(t, err)

	// The adapter already retried; the controller concludes instead of
	// burning the remaining iteration budget.
	assert.Equal(t, agent.ExecutionStatusCompleted, result.Status)
	assert.Contains(t, result.FinalAnalysis, "empty response")
	assert.Equal(t, 1, fx.llm.callCount)
}

func TestNativeThinkingController_ThinkingOnlyResponseGetsNudged(t *testing.T) {
	fx := nativeFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{chunks: []agent.Chunk{&agent.ThinkingChunk{Text: "hmm, still pondering"}}},
		{chunks: []agent.Chunk{&agent.TextChunk{Text: "Concluded."}}},
	}

	result, err := NewNativeThinkingController().Run(context.Background(), fx.execCtx, "")
	require.NoError(t, err)
	assert.Equal(t, agent.ExecutionStatusCompleted, result.Status)

	msgs := fx.llm.inputs[1].Messages
	last := msgs[len(msgs)-1]
	assert.Equal(t, models.RoleUser, last.Role)
	assert.Contains(t, last.Content, "no text and no tool calls")
}

func TestNativeThinkingController_PausesOnExhaustion(t *testing.T) {
	fx := nativeFixture(t)
	fx.execCtx.Config.MaxIterations = 2
	toolTurn := []agent.Chunk{
		&agent.ToolCallChunk{CallID: "call_n", Name: "kubernetes-server__get_pods", Arguments: "{}"},
	}
	fx.llm.responses = []mockLLMResponse{
		{chunks: toolTurn},
		{chunks: toolTurn},
	}

	result, err := NewNativeThinkingController().Run(context.Background(), fx.execCtx, "")
	require.NoError(t, err)

	assert.Equal(t, agent.ExecutionStatusPaused, result.Status)
	assert.Equal(t, agent.PauseReasonMaxIterations, result.PauseReason)
	assert.Equal(t, 2, result.CurrentIteration)
}
