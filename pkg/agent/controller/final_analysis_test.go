package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/config"
)

func TestFinalAnalysisController_ReturnsAnalysis(t *testing.T) {
	fx := newTestFixture(t)
	fx.execCtx.Config.IterationStrategy = config.IterationStrategyReactFinalAnalysis
	fx.llm.responses = []mockLLMResponse{
		{chunks: textChunks("Root cause: the payments deployment has a 128Mi memory limit that is too small.")},
	}

	result, err := NewFinalAnalysisController().Run(context.Background(), fx.execCtx, "stage outputs here")
	require.NoError(t, err)

	assert.Equal(t, agent.ExecutionStatusCompleted, result.Status)
	assert.Contains(t, result.FinalAnalysis, "Root cause")
	assert.Equal(t, 150, result.TokensUsed.TotalTokens)

	// Single tool-less call over the accumulated outputs.
	require.Len(t, fx.llm.inputs, 1)
	assert.Empty(t, fx.llm.inputs[0].Tools)
	assert.Equal(t, llminteraction.InteractionTypeFinalAnalysis, fx.llm.inputs[0].InteractionType)

	// Text streams as final_answer from the first delta.
	require.NotEmpty(t, fx.publisher.chunks)
	assert.Equal(t, StreamTypeFinalAnswer, fx.publisher.chunks[0].StreamType)
	last := fx.publisher.chunks[len(fx.publisher.chunks)-1]
	assert.True(t, last.IsComplete)

	// The streamed event is a final_analysis timeline event.
	timeline, err := fx.bundle.Timeline.GetSessionTimeline(context.Background(), fx.execCtx.SessionID)
	require.NoError(t, err)
	require.NotEmpty(t, timeline)
	var found bool
	for _, event := range timeline {
		if event.EventType == timelineevent.EventTypeFinalAnalysis {
			found = true
			assert.Equal(t, timelineevent.StatusCompleted, event.Status)
		}
	}
	assert.True(t, found)
}

func TestFinalAnalysisController_EmptyResponseFails(t *testing.T) {
	fx := newTestFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{chunks: []agent.Chunk{&agent.TextChunk{Text: "   "}}},
	}

	result, err := NewFinalAnalysisController().Run(context.Background(), fx.execCtx, "")
	require.NoError(t, err)
	assert.Equal(t, agent.ExecutionStatusFailed, result.Status)
	assert.ErrorContains(t, result.Error, "no text")
}

func TestFinalAnalysisController_LLMErrorPropagates(t *testing.T) {
	fx := newTestFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{err: context.DeadlineExceeded},
	}

	_, err := NewFinalAnalysisController().Run(context.Background(), fx.execCtx, "")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
