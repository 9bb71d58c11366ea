package controller

import (
	"context"
	"log/slog"
	"time"

	"github.com/tarsy-project/tarsy/ent/timelineevent"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/events"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// createTimelineEvent creates a completed (non-streaming) timeline event and
// publishes timeline.created. Used for final analyses, errors, and other
// events whose content is known up front. Failures are logged, never fatal.
func createTimelineEvent(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	eventType timelineevent.EventType,
	content string,
	metadata map[string]any,
	llmInteractionID *string,
) string {
	seq, err := execCtx.Services.Timeline.NextSequenceNumber(ctx, execCtx.SessionID)
	if err != nil {
		slog.Warn("Failed to allocate timeline sequence number",
			"session_id", execCtx.SessionID, "error", err)
		return ""
	}

	event, err := execCtx.Services.Timeline.CreateTimelineEvent(ctx, models.CreateTimelineEventRequest{
		SessionID:      execCtx.SessionID,
		ExecutionID:    &execCtx.ExecutionID,
		SequenceNumber: seq,
		EventType:      eventType,
		Status:         timelineevent.StatusCompleted,
		Content:        content,
		Metadata:       metadata,
	})
	if err != nil {
		slog.Warn("Failed to create timeline event",
			"session_id", execCtx.SessionID, "event_type", eventType, "error", err)
		return ""
	}

	if llmInteractionID != nil {
		if err := execCtx.Services.Timeline.CompleteTimelineEvent(ctx, models.CompleteTimelineEventRequest{
			EventID:          event.ID,
			Status:           timelineevent.StatusCompleted,
			Content:          content,
			Metadata:         metadata,
			LLMInteractionID: llmInteractionID,
		}); err != nil {
			slog.Warn("Failed to link timeline event to interaction",
				"event_id", event.ID, "error", err)
		}
	}

	publishTimelineCreated(ctx, execCtx, event.ID, eventType, timelineevent.StatusCompleted, content, metadata, seq)
	return event.ID
}

// createStreamingTimelineEvent creates a timeline event in streaming status
// with empty content. Called on the first delta of an LLM stream.
func createStreamingTimelineEvent(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	eventType timelineevent.EventType,
	metadata map[string]any,
) (string, error) {
	seq, err := execCtx.Services.Timeline.NextSequenceNumber(ctx, execCtx.SessionID)
	if err != nil {
		return "", err
	}
	event, err := execCtx.Services.Timeline.CreateTimelineEvent(ctx, models.CreateTimelineEventRequest{
		SessionID:      execCtx.SessionID,
		ExecutionID:    &execCtx.ExecutionID,
		SequenceNumber: seq,
		EventType:      eventType,
		Status:         timelineevent.StatusStreaming,
		Content:        "",
		Metadata:       metadata,
	})
	if err != nil {
		return "", err
	}
	publishTimelineCreated(ctx, execCtx, event.ID, eventType, timelineevent.StatusStreaming, "", metadata, seq)
	return event.ID, nil
}

// completeStreamingEvent finalizes a streaming timeline event with its full
// content and publishes timeline.completed.
func completeStreamingEvent(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	eventID string,
	eventType timelineevent.EventType,
	status timelineevent.Status,
	content string,
	llmInteractionID *string,
) {
	if eventID == "" {
		return
	}
	if err := execCtx.Services.Timeline.CompleteTimelineEvent(ctx, models.CompleteTimelineEventRequest{
		EventID:          eventID,
		Status:           status,
		Content:          content,
		LLMInteractionID: llmInteractionID,
	}); err != nil {
		slog.Warn("Failed to complete streaming timeline event",
			"event_id", eventID, "session_id", execCtx.SessionID, "error", err)
	}
	publishTimelineCompleted(ctx, execCtx, eventID, eventType, status, content, nil)
}

// createToolCallEvent creates a streaming llm_tool_call event so the
// dashboard shows a spinner while the tool runs. Returns "" on failure.
func createToolCallEvent(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	serverID, toolName, arguments string,
) string {
	metadata := map[string]any{
		"server_name": serverID,
		"tool_name":   toolName,
		"arguments":   arguments,
	}
	eventID, err := createStreamingTimelineEvent(ctx, execCtx, timelineevent.EventTypeLlmToolCall, metadata)
	if err != nil {
		slog.Warn("Failed to create tool call event",
			"session_id", execCtx.SessionID, "server", serverID, "tool", toolName, "error", err)
		return ""
	}
	return eventID
}

// completeToolCallEvent finalizes a tool call event with the (truncated)
// result and links the MCP interaction record.
func completeToolCallEvent(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	eventID string,
	content string,
	isError bool,
	mcpInteractionID *string,
) {
	if eventID == "" {
		return
	}
	status := timelineevent.StatusCompleted
	if isError {
		status = timelineevent.StatusFailed
	}
	if err := execCtx.Services.Timeline.CompleteTimelineEvent(ctx, models.CompleteTimelineEventRequest{
		EventID:          eventID,
		Status:           status,
		Content:          content,
		MCPInteractionID: mcpInteractionID,
	}); err != nil {
		slog.Warn("Failed to complete tool call event",
			"event_id", eventID, "session_id", execCtx.SessionID, "error", err)
	}
	publishTimelineCompleted(ctx, execCtx, eventID, timelineevent.EventTypeLlmToolCall, status, content, nil)
}

func publishTimelineCreated(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	eventID string,
	eventType timelineevent.EventType,
	status timelineevent.Status,
	content string,
	metadata map[string]any,
	seq int,
) {
	if execCtx.EventPublisher == nil {
		return
	}
	payload := events.TimelineCreatedPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeTimelineCreated,
			SessionID: execCtx.SessionID,
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		},
		EventID:        eventID,
		StageID:        execCtx.StageID,
		ExecutionID:    execCtx.ExecutionID,
		EventType:      eventType,
		Status:         status,
		Content:        content,
		Metadata:       metadata,
		SequenceNumber: seq,
	}
	if err := execCtx.EventPublisher.PublishTimelineCreated(ctx, execCtx.SessionID, payload); err != nil {
		slog.Warn("Failed to publish timeline.created",
			"event_id", eventID, "session_id", execCtx.SessionID, "error", err)
	}
}

func publishTimelineCompleted(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	eventID string,
	eventType timelineevent.EventType,
	status timelineevent.Status,
	content string,
	metadata map[string]any,
) {
	if execCtx.EventPublisher == nil {
		return
	}
	payload := events.TimelineCompletedPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeTimelineCompleted,
			SessionID: execCtx.SessionID,
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		},
		EventID:   eventID,
		EventType: eventType,
		Status:    status,
		Content:   content,
		Metadata:  metadata,
	}
	if err := execCtx.EventPublisher.PublishTimelineCompleted(ctx, execCtx.SessionID, payload); err != nil {
		slog.Warn("Failed to publish timeline.completed",
			"event_id", eventID, "session_id", execCtx.SessionID, "error", err)
	}
}
