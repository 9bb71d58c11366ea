package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/events"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// recordLLMInteraction persists one LLM call with the full cumulative
// conversation. The latest row alone is enough to rebuild agent state on
// resume, so the snapshot is taken at the end of the iteration (after
// observations and tool results have been appended).
//
// Returns the interaction ID for timeline-event linking, or nil when the
// write failed. Recording failures are logged, never fatal.
func recordLLMInteraction(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	interactionType llminteraction.InteractionType,
	conversation []models.ConversationMessage,
	resp *LLMResponse,
	startTime time.Time,
	callErr error,
) *string {
	durationMs := int(time.Since(startTime).Milliseconds())

	req := models.CreateLLMInteractionRequest{
		SessionID:       execCtx.SessionID,
		ExecutionID:     execCtx.ExecutionID,
		InteractionType: interactionType,
		ModelName:       execCtx.Config.LLMProvider.Model,
		Provider:        execCtx.Config.LLMProviderName,
		Conversation:    conversation,
		DurationMs:      &durationMs,
	}
	if resp != nil {
		if resp.ThinkingText != "" {
			req.ThinkingContent = &resp.ThinkingText
		}
		if resp.Usage != nil {
			req.InputTokens = &resp.Usage.InputTokens
			req.OutputTokens = &resp.Usage.OutputTokens
			req.TotalTokens = &resp.Usage.TotalTokens
		}
	}
	if callErr != nil {
		msg := callErr.Error()
		req.ErrorMessage = &msg
	}

	interaction, err := execCtx.Services.Interaction.CreateLLMInteraction(ctx, req)
	if err != nil {
		slog.Error("Failed to record LLM interaction",
			"session_id", execCtx.SessionID, "execution_id", execCtx.ExecutionID, "error", err)
		return nil
	}
	return &interaction.ID
}

// accumulateUsage adds the response's token usage to the running total.
func accumulateUsage(total *agent.TokenUsage, resp *LLMResponse) {
	if resp == nil || resp.Usage == nil {
		return
	}
	total.Add(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens)
}

// isTimeoutError reports whether err represents a context deadline.
func isTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// generateCallID creates a unique ID for a tool call parsed from ReAct text
// (native function calling supplies its own IDs).
func generateCallID() string {
	return "call_" + uuid.New().String()
}

// buildToolNameSet indexes tool definitions by canonical server.tool name
// for unknown-tool validation.
func buildToolNameSet(tools []agent.ToolDefinition) map[string]agent.ToolDefinition {
	set := make(map[string]agent.ToolDefinition, len(tools))
	for _, tool := range tools {
		set[tool.Name] = tool
	}
	return set
}

// failedResult builds a failed ExecutionResult from the iteration state.
func failedResult(state *agent.IterationState, usage agent.TokenUsage) *agent.ExecutionResult {
	return &agent.ExecutionResult{
		Status: agent.ExecutionStatusFailed,
		Error: fmt.Errorf("aborted at iteration %d/%d: %s",
			state.CurrentIteration, state.MaxIterations, state.LastErrorMessage),
		TokensUsed:       usage,
		CurrentIteration: state.CurrentIteration,
	}
}

// pausedResult builds the paused ExecutionResult returned on loop
// exhaustion. The session can be resumed later with a higher budget; the
// executor restores the conversation from the last recorded interaction.
func pausedResult(state *agent.IterationState, usage agent.TokenUsage) *agent.ExecutionResult {
	return &agent.ExecutionResult{
		Status:           agent.ExecutionStatusPaused,
		PauseReason:      agent.PauseReasonMaxIterations,
		CurrentIteration: state.CurrentIteration,
		TokensUsed:       usage,
	}
}

// publishIterationProgress sends a transient session.progress event so
// dashboards can show "Iteration 4/20" without subscribing to the session
// detail channel. Best-effort.
func publishIterationProgress(ctx context.Context, execCtx *agent.ExecutionContext, iteration int) {
	if execCtx.EventPublisher == nil {
		return
	}
	payload := events.SessionProgressPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeSessionProgress,
			SessionID: execCtx.SessionID,
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		},
		CurrentStageID:    execCtx.StageID,
		CurrentStageIndex: execCtx.StageIndex,
		TotalStages:       execCtx.TotalStages,
		CurrentIteration:  iteration,
		StatusText:        fmt.Sprintf("Iteration %d/%d", iteration, execCtx.Config.MaxIterations),
	}
	if err := execCtx.EventPublisher.PublishSessionProgress(ctx, payload); err != nil {
		slog.Warn("Failed to publish session progress",
			"session_id", execCtx.SessionID, "error", err)
	}
}

// markIteration persists the current iteration counter on the stage
// execution so a resumed session continues from where it paused.
func markIteration(ctx context.Context, execCtx *agent.ExecutionContext, iteration int) {
	if err := execCtx.Services.Stage.SetCurrentIteration(ctx, execCtx.ExecutionID, iteration); err != nil {
		slog.Warn("Failed to persist current iteration",
			"execution_id", execCtx.ExecutionID, "iteration", iteration, "error", err)
	}
}
