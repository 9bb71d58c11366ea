package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/models"
)

func TestReActController_FinalAnswer(t *testing.T) {
	fx := newTestFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{chunks: textChunks("Thought: The alert data is clear.\nFinal Answer: The pod is crash-looping due to OOM.")},
	}

	result, err := NewReActController().Run(context.Background(), fx.execCtx, "")
	require.NoError(t, err)

	assert.Equal(t, agent.ExecutionStatusCompleted, result.Status)
	assert.Equal(t, "The pod is crash-looping due to OOM.", result.FinalAnalysis)
	assert.Equal(t, 1, result.CurrentIteration)
	assert.Equal(t, 150, result.TokensUsed.TotalTokens)

	// The interaction snapshot must include the assistant response.
	conv, err := fx.bundle.Interaction.RestoreConversation(context.Background(), fx.execCtx.ExecutionID)
	require.NoError(t, err)
	require.NotEmpty(t, conv)
	last := conv[len(conv)-1]
	assert.Equal(t, models.RoleAssistant, last.Role)
	assert.Contains(t, last.Content, "Final Answer:")

	// A durable final_analysis event follows the streamed thinking event.
	timeline, err := fx.bundle.Timeline.GetSessionTimeline(context.Background(), fx.execCtx.SessionID)
	require.NoError(t, err)
	var foundFinal bool
	for _, event := range timeline {
		if event.EventType == timelineevent.EventTypeFinalAnalysis {
			foundFinal = true
			assert.Equal(t, "The pod is crash-looping due to OOM.", event.Content)
		}
	}
	assert.True(t, foundFinal, "expected a final_analysis timeline event")
}

func TestReActController_ToolCallThenFinalAnswer(t *testing.T) {
	fx := newTestFixture(t)
	fx.tools.results = map[string]*agent.ToolResult{
		"kubernetes-server.get_pods": {Name: "kubernetes-server.get_pods", Content: "payments-7d9f: CrashLoopBackOff"},
	}
	fx.llm.responses = []mockLLMResponse{
		{chunks: textChunks("Thought: Check the pods first.\nAction: kubernetes-server.get_pods\nAction Input: {\"namespace\": \"payments\"}")},
		{chunks: textChunks("Thought: CrashLoopBackOff confirmed.\nFinal Answer: Restart loop caused by bad config.")},
	}

	result, err := NewReActController().Run(context.Background(), fx.execCtx, "")
	require.NoError(t, err)

	assert.Equal(t, agent.ExecutionStatusCompleted, result.Status)
	require.Len(t, fx.tools.calls, 1)
	assert.Equal(t, "kubernetes-server.get_pods", fx.tools.calls[0].Name)
	assert.Equal(t, `{"namespace": "payments"}`, fx.tools.calls[0].Arguments)

	// The observation must be persisted in the conversation snapshot so a
	// resumed session sees the tool output.
	conv, err := fx.bundle.Interaction.RestoreConversation(context.Background(), fx.execCtx.ExecutionID)
	require.NoError(t, err)
	var observation string
	for _, msg := range conv {
		if msg.Role == models.RoleUser {
			observation = msg.Content
		}
	}
	assert.Contains(t, observation, "kubernetes-server.get_pods:")
	assert.Contains(t, observation, "CrashLoopBackOff")
}

func TestReActController_ObservationFormat(t *testing.T) {
	fx := newTestFixture(t)
	fx.tools.results = map[string]*agent.ToolResult{
		"kubernetes-server.get_logs": {Name: "kubernetes-server.get_logs", Content: "OOMKilled at 12:00"},
	}
	fx.llm.responses = []mockLLMResponse{
		{chunks: textChunks("Thought: Logs.\nAction: kubernetes-server.get_logs\nAction Input: {}")},
		{chunks: textChunks("Final Answer: OOM.")},
	}

	_, err := NewReActController().Run(context.Background(), fx.execCtx, "")
	require.NoError(t, err)

	// The second Generate call must carry the formatted observation.
	require.Len(t, fx.llm.inputs, 2)
	secondCall := fx.llm.inputs[1].Messages
	last := secondCall[len(secondCall)-1]
	assert.Equal(t, models.RoleUser, last.Role)
	assert.Equal(t, "Observation: kubernetes-server.get_logs:\nOOMKilled at 12:00", last.Content)
}

func TestReActController_UnknownTool(t *testing.T) {
	fx := newTestFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{chunks: textChunks("Thought: Try something.\nAction: nonexistent-server.fetch\nAction Input: {}")},
		{chunks: textChunks("Thought: Right, use a known tool.\nFinal Answer: Done.")},
	}

	result, err := NewReActController().Run(context.Background(), fx.execCtx, "")
	require.NoError(t, err)
	assert.Equal(t, agent.ExecutionStatusCompleted, result.Status)

	// No tool executed; the model got feedback naming the available tools.
	assert.Empty(t, fx.tools.calls)
	secondCall := fx.llm.inputs[1].Messages
	feedback := secondCall[len(secondCall)-1].Content
	assert.Contains(t, feedback, "Unknown tool")
	assert.Contains(t, feedback, "kubernetes-server.get_pods")
}

func TestReActController_MalformedRecovery(t *testing.T) {
	fx := newTestFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{chunks: textChunks("I will just ramble without any ReAct structure here at all today.")},
		{chunks: textChunks("Thought: Sorry.\nFinal Answer: Fixed format.")},
	}

	result, err := NewReActController().Run(context.Background(), fx.execCtx, "")
	require.NoError(t, err)
	assert.Equal(t, agent.ExecutionStatusCompleted, result.Status)

	secondCall := fx.llm.inputs[1].Messages
	feedback := secondCall[len(secondCall)-1].Content
	assert.Contains(t, feedback, "FORMAT ERROR")
}

func TestReActController_ThreeConsecutiveMalformedFails(t *testing.T) {
	fx := newTestFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{chunks: textChunks("ramble one with no structure in it anywhere")},
		{chunks: textChunks("ramble two with no structure in it anywhere")},
		{chunks: textChunks("ramble three with no structure in it anywhere")},
	}

	result, err := NewReActController().Run(context.Background(), fx.execCtx, "")
	require.NoError(t, err)
	assert.Equal(t, agent.ExecutionStatusFailed, result.Status)
	assert.ErrorContains(t, result.Error, "malformed")
	assert.Equal(t, 3, fx.llm.callCount)
}

func TestReActController_PausesOnExhaustion(t *testing.T) {
	fx := newTestFixture(t)
	fx.execCtx.Config.MaxIterations = 2
	fx.tools.results = map[string]*agent.ToolResult{
		"kubernetes-server.get_pods": {Name: "kubernetes-server.get_pods", Content: "still looking"},
	}
	action := "Thought: Need more data.\nAction: kubernetes-server.get_pods\nAction Input: {}"
	fx.llm.responses = []mockLLMResponse{
		{chunks: textChunks(action)},
		{chunks: textChunks(action)},
	}

	result, err := NewReActController().Run(context.Background(), fx.execCtx, "")
	require.NoError(t, err)

	assert.Equal(t, agent.ExecutionStatusPaused, result.Status)
	assert.Equal(t, agent.PauseReasonMaxIterations, result.PauseReason)
	assert.Equal(t, 2, result.CurrentIteration)

	// Iteration progress is persisted for resume.
	execution, err := fx.bundle.Stage.GetStageExecution(context.Background(), fx.execCtx.ExecutionID)
	require.NoError(t, err)
	assert.Equal(t, 2, execution.CurrentIteration)
}

func TestReActController_ResumesFromRestoredConversation(t *testing.T) {
	fx := newTestFixture(t)
	fx.execCtx.Config.MaxIterations = 5
	fx.execCtx.StartIteration = 3
	fx.execCtx.RestoredConversation = []models.ConversationMessage{
		{Role: models.RoleSystem, Content: "You are an SRE agent. Use ReAct format."},
		{Role: models.RoleUser, Content: "Investigate the alert."},
		{Role: models.RoleAssistant, Content: "Thought: checking.\nAction: kubernetes-server.get_pods\nAction Input: {}"},
		{Role: models.RoleUser, Content: "Observation: kubernetes-server.get_pods:\npod data"},
	}
	fx.llm.responses = []mockLLMResponse{
		{chunks: textChunks("Thought: Enough data.\nFinal Answer: Resolved after resume.")},
	}

	result, err := NewReActController().Run(context.Background(), fx.execCtx, "")
	require.NoError(t, err)

	assert.Equal(t, agent.ExecutionStatusCompleted, result.Status)
	assert.Equal(t, "Resolved after resume.", result.FinalAnalysis)
	assert.Equal(t, 4, result.CurrentIteration)

	// The restored conversation, not a fresh prompt, was sent to the LLM.
	require.Len(t, fx.llm.inputs, 1)
	first := fx.llm.inputs[0].Messages
	assert.Equal(t, "Observation: kubernetes-server.get_pods:\npod data", first[len(first)-1].Content)
}

func TestReActController_LLMErrorFeedsBackIntoConversation(t *testing.T) {
	fx := newTestFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{err: errors.New("provider returned 503")},
		{chunks: textChunks("Thought: Recovered.\nFinal Answer: All good.")},
	}

	result, err := NewReActController().Run(context.Background(), fx.execCtx, "")
	require.NoError(t, err)
	assert.Equal(t, agent.ExecutionStatusCompleted, result.Status)

	secondCall := fx.llm.inputs[1].Messages
	last := secondCall[len(secondCall)-1]
	assert.Contains(t, last.Content, "provider returned 503")
	assert.Contains(t, last.Content, "try again")
}

func TestReActController_AbortsAfterConsecutiveTimeouts(t *testing.T) {
	fx := newTestFixture(t)
	fx.llm.responses = []mockLLMResponse{
		{err: context.DeadlineExceeded},
		{err: context.DeadlineExceeded},
	}

	result, err := NewReActController().Run(context.Background(), fx.execCtx, "")
	require.NoError(t, err)
	assert.Equal(t, agent.ExecutionStatusFailed, result.Status)
	assert.Equal(t, 2, fx.llm.callCount)
}

func TestReActController_CancelledContextAborts(t *testing.T) {
	fx := newTestFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReActController().Run(ctx, fx.execCtx, "")
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, fx.llm.callCount)
}
