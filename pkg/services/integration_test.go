package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
	"github.com/tarsy-project/tarsy/pkg/models"
	testdb "github.com/tarsy-project/tarsy/test/database"
)

// TestServiceIntegration walks a full alert investigation through the
// service layer: submit, claim, stage execution with interactions and
// timeline, final analysis, and terminal completion.
func TestServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	alertService := setupTestAlertService(t, client)
	sessionService := setupTestSessionService(t, client.Client)
	stageService := NewStageService(client.Client)
	interactionService := NewInteractionService(client.Client)
	timelineService := NewTimelineService(client.Client)
	eventService := NewEventService(client.Client)

	t.Run("full session lifecycle", func(t *testing.T) {
		// 1. Submit an alert; it is admitted and queued.
		result, err := alertService.Submit(ctx, models.SubmitAlertInput{
			AlertType: "pod-crash",
			Data:      map[string]any{"namespace": "prod", "pod": "api-7f9c"},
			Severity:  "critical",
			Author:    "oncall@example.com",
		})
		require.NoError(t, err)
		require.True(t, result.Admitted)

		session, err := sessionService.GetSession(ctx, result.SessionID, false)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusPending, session.Status)
		assert.Equal(t, "k8s-analysis", session.ChainID)

		// 2. A worker claims the pending session.
		claimed, err := sessionService.ClaimNextPendingSession(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, session.ID, claimed.ID)
		assert.Equal(t, alertsession.StatusInProgress, claimed.Status)

		// 3. The chain's first stage starts.
		execution, err := stageService.CreateStageExecution(ctx, models.CreateStageExecutionRequest{
			SessionID:  session.ID,
			StageID:    "investigation",
			StageIndex: 0,
			AgentName:  "KubernetesAgent",
		})
		require.NoError(t, err)
		require.NoError(t, stageService.StartStageExecution(ctx, execution.ID))
		require.NoError(t, sessionService.UpdateCurrentStage(ctx, session.ID, 0, "investigation"))

		// 4. Agent thinking streams into a timeline event.
		seq, err := timelineService.NextSequenceNumber(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, seq)

		thinking, err := timelineService.CreateTimelineEvent(ctx, models.CreateTimelineEventRequest{
			SessionID:      session.ID,
			ExecutionID:    &execution.ID,
			SequenceNumber: seq,
			EventType:      timelineevent.EventTypeLlmThinking,
		})
		require.NoError(t, err)
		require.NoError(t, timelineService.UpdateTimelineEventContent(ctx, thinking.ID, "Thought: check the pod status"))

		// 5. The LLM call behind it is recorded with the full conversation.
		llm, err := interactionService.CreateLLMInteraction(ctx, models.CreateLLMInteractionRequest{
			SessionID:       session.ID,
			ExecutionID:     execution.ID,
			InteractionType: llminteraction.InteractionTypeInvestigation,
			ModelName:       "gemini-2.5-pro",
			Provider:        "google",
			Conversation: []models.ConversationMessage{
				{Role: "system", Content: "You are an SRE agent."},
				{Role: "assistant", Content: "Thought: check the pod status"},
			},
		})
		require.NoError(t, err)

		require.NoError(t, timelineService.CompleteTimelineEvent(ctx, models.CompleteTimelineEventRequest{
			EventID:          thinking.ID,
			Status:           timelineevent.StatusCompleted,
			Content:          "Thought: check the pod status",
			LLMInteractionID: &llm.ID,
		}))

		// 6. The agent calls a tool; the MCP interaction and its timeline
		// summary are recorded.
		toolName := "kubernetes__get_pod"
		toolResult := `{"status":"CrashLoopBackOff","restarts":14}`
		mcp, err := interactionService.CreateMCPInteraction(ctx, models.CreateMCPInteractionRequest{
			SessionID:       session.ID,
			ExecutionID:     execution.ID,
			InteractionType: mcpinteraction.InteractionTypeToolCall,
			ServerName:      "kubernetes",
			ToolName:        &toolName,
			ToolArguments:   map[string]any{"namespace": "prod", "name": "api-7f9c"},
			ToolResult:      &toolResult,
		})
		require.NoError(t, err)

		seq, err = timelineService.NextSequenceNumber(ctx, session.ID)
		require.NoError(t, err)
		_, err = timelineService.CreateTimelineEvent(ctx, models.CreateTimelineEventRequest{
			SessionID:      session.ID,
			ExecutionID:    &execution.ID,
			SequenceNumber: seq,
			EventType:      timelineevent.EventTypeMcpToolSummary,
			Status:         timelineevent.StatusCompleted,
			Content:        "Called kubernetes__get_pod: CrashLoopBackOff with 14 restarts",
			Metadata:       map[string]any{"mcp_interaction_id": mcp.ID},
		})
		require.NoError(t, err)

		// 7. Heartbeats keep ownership fresh while the stage runs.
		require.NoError(t, sessionService.Heartbeat(ctx, session.ID, "pod-1"))

		// 8. The stage completes; its output feeds later stages.
		require.NoError(t, stageService.CompleteStageExecution(ctx, execution.ID, "Pod OOMKilled; memory limit too low"))

		results, err := stageService.GetStageResults(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.False(t, results[0].Failed)
		assert.Equal(t, "Pod OOMKilled; memory limit too low", results[0].Output)

		// 9. Final analysis lands on the session, then it completes.
		require.NoError(t, sessionService.SetFinalAnalysis(ctx, session.ID, "Raise the memory limit to 512Mi."))
		require.NoError(t, sessionService.UpdateSessionStatus(ctx, session.ID, alertsession.StatusCompleted, ""))
		alertService.ReleaseFingerprint(session.Fingerprint)

		final, err := sessionService.GetSession(ctx, session.ID, true)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusCompleted, final.Status)
		require.NotNil(t, final.FinalAnalysis)
		assert.Equal(t, "Raise the memory limit to 512Mi.", *final.FinalAnalysis)
		require.NotNil(t, final.CompletedAt)
		require.Len(t, final.Edges.StageExecutions, 1)
		assert.Equal(t, stageexecution.StatusCompleted, final.Edges.StageExecutions[0].Status)

		// 10. The timeline reads back in order.
		timeline, err := timelineService.GetSessionTimeline(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, timeline, 2)
		assert.Equal(t, timelineevent.EventTypeLlmThinking, timeline[0].EventType)
		assert.Equal(t, timelineevent.EventTypeMcpToolSummary, timeline[1].EventType)

		// 11. Catchup events published during the run are cleaned up with
		// the session.
		_, err = eventService.CreateEvent(ctx, models.CreateEventRequest{
			SessionID: session.ID,
			Channel:   "session:" + session.ID,
			Payload:   map[string]any{"type": "session.status", "status": "completed"},
		})
		require.NoError(t, err)

		deleted, err := eventService.CleanupSessionEvents(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, deleted)

		// 12. With the fingerprint released and the session terminal, the
		// same alert can be submitted again.
		resubmit, err := alertService.Submit(ctx, models.SubmitAlertInput{
			AlertType: "pod-crash",
			Data:      map[string]any{"namespace": "prod", "pod": "api-7f9c"},
			Severity:  "critical",
			Author:    "oncall@example.com",
		})
		require.NoError(t, err)
		assert.True(t, resubmit.Admitted)
		assert.NotEqual(t, session.ID, resubmit.SessionID)

		// Retire the resubmission so it does not sit in the queue.
		require.NoError(t, sessionService.UpdateSessionStatus(ctx, resubmit.SessionID, alertsession.StatusCancelled, ""))
	})

	t.Run("failed stage still yields a terminal session", func(t *testing.T) {
		result, err := alertService.Submit(ctx, models.SubmitAlertInput{
			AlertType: "generic",
			Data:      map[string]any{"message": "disk pressure"},
		})
		require.NoError(t, err)
		require.True(t, result.Admitted)

		claimed, err := sessionService.ClaimNextPendingSession(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		require.Equal(t, result.SessionID, claimed.ID)

		execution, err := stageService.CreateStageExecution(ctx, models.CreateStageExecutionRequest{
			SessionID:  claimed.ID,
			StageID:    "investigation",
			StageIndex: 0,
			AgentName:  "GenericAgent",
		})
		require.NoError(t, err)
		require.NoError(t, stageService.StartStageExecution(ctx, execution.ID))
		require.NoError(t, stageService.FailStageExecution(ctx, execution.ID, "LLM provider unavailable"))

		require.NoError(t, sessionService.UpdateSessionStatus(ctx, claimed.ID, alertsession.StatusFailed, "all stages failed"))
		alertService.ReleaseFingerprint(claimed.Fingerprint)

		final, err := sessionService.GetSession(ctx, claimed.ID, false)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusFailed, final.Status)
		require.NotNil(t, final.ErrorMessage)
		assert.Equal(t, "all stages failed", *final.ErrorMessage)
		require.NotNil(t, final.CompletedAt)
	})
}
