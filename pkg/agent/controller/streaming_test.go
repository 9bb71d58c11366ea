package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/llm"
)

func makeStream(chunks ...agent.Chunk) <-chan agent.Chunk {
	out := make(chan agent.Chunk, len(chunks))
	for _, c := range chunks {
		out <- c
	}
	close(out)
	return out
}

func TestCollectStream(t *testing.T) {
	t.Run("accumulates text and usage", func(t *testing.T) {
		resp, err := collectStream(context.Background(), makeStream(
			&agent.TextChunk{Text: "Hello "},
			&agent.TextChunk{Text: "world"},
			&agent.UsageChunk{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		), nil)
		require.NoError(t, err)
		assert.Equal(t, "Hello world", resp.Text)
		assert.Equal(t, 15, resp.Usage.TotalTokens)
	})

	t.Run("accumulates thinking with signature", func(t *testing.T) {
		resp, err := collectStream(context.Background(), makeStream(
			&agent.ThinkingChunk{Text: "step one. "},
			&agent.ThinkingChunk{Text: "step two.", Signature: "c2ln"},
		), nil)
		require.NoError(t, err)
		assert.Equal(t, "step one. step two.", resp.ThinkingText)
		assert.Equal(t, "c2ln", resp.ThinkingSignature)
	})

	t.Run("collects tool calls", func(t *testing.T) {
		resp, err := collectStream(context.Background(), makeStream(
			&agent.ToolCallChunk{CallID: "c1", Name: "server__tool", Arguments: "{}"},
			&agent.ToolCallChunk{CallID: "c2", Name: "server__other", Arguments: `{"x":1}`},
		), nil)
		require.NoError(t, err)
		require.Len(t, resp.ToolCalls, 2)
		assert.Equal(t, "c1", resp.ToolCalls[0].ID)
	})

	t.Run("error chunk terminates collection", func(t *testing.T) {
		_, err := collectStream(context.Background(), makeStream(
			&agent.TextChunk{Text: "partial"},
			&agent.ErrorChunk{Message: "rate limited"},
		), nil)
		require.ErrorContains(t, err, "rate limited")
	})

	t.Run("empty response surfaces as sentinel error", func(t *testing.T) {
		_, err := collectStream(context.Background(), makeStream(
			&agent.ErrorChunk{Message: llm.ErrEmptyResponse.Error()},
		), nil)
		require.ErrorIs(t, err, llm.ErrEmptyResponse)
	})

	t.Run("cancelled context stops collection", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		blocked := make(chan agent.Chunk)
		_, err := collectStream(ctx, blocked, nil)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestCallLLMWithStreaming_ReActStreamTypes(t *testing.T) {
	fx := newTestFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{chunks: []agent.Chunk{
			&agent.TextChunk{Text: "Thought: I know enough. "},
			&agent.TextChunk{Text: "Final Answer: the"},
			&agent.TextChunk{Text: " pod is broken."},
		}},
	}

	call, err := callLLMWithStreaming(context.Background(), fx.execCtx, &agent.GenerateInput{
		SessionID:       fx.execCtx.SessionID,
		ExecutionID:     fx.execCtx.ExecutionID,
		InteractionType: llminteraction.InteractionTypeInvestigation,
		Messages:        nil,
		Config:          fx.execCtx.Config.LLMProvider,
	}, streamModeReAct, "")
	require.NoError(t, err)
	require.NotEmpty(t, call.EventID)
	assert.Equal(t, timelineevent.EventTypeLlmThinking, call.EventType)

	// A streaming timeline.created precedes the first chunk.
	require.Len(t, fx.publisher.created, 1)
	assert.Equal(t, timelineevent.StatusStreaming, fx.publisher.created[0].Status)
	assert.Equal(t, call.EventID, fx.publisher.created[0].EventID)

	// Deltas flip from thought to final_answer once the marker is seen,
	// and the stream closes with a single is_complete chunk.
	chunks := fx.publisher.chunks
	require.Len(t, chunks, 4)
	assert.Equal(t, StreamTypeThought, chunks[0].StreamType)
	assert.Equal(t, StreamTypeFinalAnswer, chunks[1].StreamType)
	assert.Equal(t, StreamTypeFinalAnswer, chunks[2].StreamType)
	assert.True(t, chunks[3].IsComplete)
	assert.Empty(t, chunks[3].Chunk)
	for _, c := range chunks[:3] {
		assert.False(t, c.IsComplete)
	}
}

func TestCallLLMWithStreaming_NativeModeStreamsThinkingOnly(t *testing.T) {
	fx := newTestFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{chunks: []agent.Chunk{
			&agent.ThinkingChunk{Text: "reasoning about pods"},
			&agent.TextChunk{Text: "visible text"},
		}},
	}

	call, err := callLLMWithStreaming(context.Background(), fx.execCtx, &agent.GenerateInput{
		SessionID:   fx.execCtx.SessionID,
		ExecutionID: fx.execCtx.ExecutionID,
		Config:      fx.execCtx.Config.LLMProvider,
	}, streamModeNative, "")
	require.NoError(t, err)

	// Text is collected but not streamed; only the thinking delta and the
	// terminal marker go out.
	assert.Equal(t, "visible text", call.Response.Text)
	require.Len(t, fx.publisher.chunks, 2)
	assert.Equal(t, StreamTypeNativeThinking, fx.publisher.chunks[0].StreamType)
	assert.True(t, fx.publisher.chunks[1].IsComplete)
}

func TestCallLLMWithStreaming_NoDeltasCreatesNoEvent(t *testing.T) {
	fx := newTestFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{chunks: []agent.Chunk{&agent.UsageChunk{TotalTokens: 1}}},
	}

	call, err := callLLMWithStreaming(context.Background(), fx.execCtx, &agent.GenerateInput{
		SessionID:   fx.execCtx.SessionID,
		ExecutionID: fx.execCtx.ExecutionID,
		Config:      fx.execCtx.Config.LLMProvider,
	}, streamModeReAct, "")
	require.NoError(t, err)
	assert.Empty(t, call.EventID)
	assert.Empty(t, fx.publisher.created)
	assert.Empty(t, fx.publisher.chunks)
}

func TestCallLLMWithStreaming_FailureMarksEventFailed(t *testing.T) {
	fx := newTestFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{chunks: []agent.Chunk{
			&agent.TextChunk{Text: "partial thought"},
			&agent.ErrorChunk{Message: "provider exploded"},
		}},
	}

	_, err := callLLMWithStreaming(context.Background(), fx.execCtx, &agent.GenerateInput{
		SessionID:   fx.execCtx.SessionID,
		ExecutionID: fx.execCtx.ExecutionID,
		Config:      fx.execCtx.Config.LLMProvider,
	}, streamModeReAct, "")
	require.ErrorContains(t, err, "provider exploded")

	// The streaming event that was already created is closed out as failed.
	require.Len(t, fx.publisher.completed, 1)
	assert.Equal(t, timelineevent.StatusFailed, fx.publisher.completed[0].Status)
	assert.Contains(t, fx.publisher.completed[0].Content, "provider exploded")
}

func TestCallLLMWithStreaming_SummarizationTagsMCPEvent(t *testing.T) {
	fx := newTestFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{chunks: []agent.Chunk{&agent.TextChunk{Text: "summary text"}}},
	}

	call, err := callLLMWithStreaming(context.Background(), fx.execCtx, &agent.GenerateInput{
		SessionID:   fx.execCtx.SessionID,
		ExecutionID: fx.execCtx.ExecutionID,
		Config:      fx.execCtx.Config.LLMProvider,
	}, streamModeSummarization, "mcp-event-42")
	require.NoError(t, err)
	assert.Equal(t, timelineevent.EventTypeMcpToolSummary, call.EventType)

	require.NotEmpty(t, fx.publisher.chunks)
	for _, c := range fx.publisher.chunks {
		assert.Equal(t, "mcp-event-42", c.MCPEventID)
	}
	assert.Equal(t, StreamTypeSummarization, fx.publisher.chunks[0].StreamType)
}
