package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// TimelineService manages the user-facing investigation timeline. Streaming
// events are created with status "streaming" and empty content, then filled
// and finalized on completion; fire-and-forget events are created already
// completed.
type TimelineService struct {
	client *ent.Client
}

// NewTimelineService creates a new TimelineService
func NewTimelineService(client *ent.Client) *TimelineService {
	return &TimelineService{client: client}
}

// CreateTimelineEvent creates a new timeline event. Content may be empty for
// streaming events — it grows as chunks arrive and is finalized on completion.
func (s *TimelineService) CreateTimelineEvent(httpCtx context.Context, req models.CreateTimelineEventRequest) (*ent.TimelineEvent, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.SequenceNumber < 0 {
		return nil, NewValidationError("sequence_number", "must be non-negative")
	}
	if req.EventType == "" {
		return nil, NewValidationError("event_type", "required")
	}

	status := req.Status
	if status == "" {
		status = timelineevent.StatusStreaming
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.TimelineEvent.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetNillableExecutionID(req.ExecutionID).
		SetSequenceNumber(req.SequenceNumber).
		SetEventType(req.EventType).
		SetStatus(status).
		SetContent(req.Content)

	if req.Metadata != nil {
		builder = builder.SetMetadata(req.Metadata)
	}

	event, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create timeline event: %w", err)
	}

	return event, nil
}

// UpdateTimelineEventContent replaces event content during streaming.
func (s *TimelineService) UpdateTimelineEventContent(ctx context.Context, eventID string, content string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.TimelineEvent.UpdateOneID(eventID).
		SetContent(content).
		SetUpdatedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update timeline event: %w", err)
	}

	return nil
}

// CompleteTimelineEvent finalizes a streaming event: terminal status, full
// content, and debug links to the underlying interaction rows.
func (s *TimelineService) CompleteTimelineEvent(ctx context.Context, req models.CompleteTimelineEventRequest) error {
	if req.EventID == "" {
		return NewValidationError("event_id", "required")
	}
	if req.Status == "" || req.Status == timelineevent.StatusStreaming {
		return NewValidationError("status", "must be a terminal status")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.TimelineEvent.UpdateOneID(req.EventID).
		SetStatus(req.Status).
		SetContent(req.Content).
		SetUpdatedAt(time.Now())

	if req.Metadata != nil {
		update = update.SetMetadata(req.Metadata)
	}
	if req.LLMInteractionID != nil {
		update = update.SetLlmInteractionID(*req.LLMInteractionID)
	}
	if req.MCPInteractionID != nil {
		update = update.SetMcpInteractionID(*req.MCPInteractionID)
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete timeline event: %w", err)
	}

	return nil
}

// GetTimelineEvent retrieves a timeline event by ID.
func (s *TimelineService) GetTimelineEvent(ctx context.Context, eventID string) (*ent.TimelineEvent, error) {
	event, err := s.client.TimelineEvent.Get(ctx, eventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get timeline event: %w", err)
	}
	return event, nil
}

// GetSessionTimeline retrieves all events for a session in timeline order.
func (s *TimelineService) GetSessionTimeline(ctx context.Context, sessionID string) ([]*ent.TimelineEvent, error) {
	events, err := s.client.TimelineEvent.Query().
		Where(timelineevent.SessionIDEQ(sessionID)).
		Order(ent.Asc(timelineevent.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get session timeline: %w", err)
	}

	return events, nil
}

// GetExecutionTimeline retrieves all events for one stage execution.
func (s *TimelineService) GetExecutionTimeline(ctx context.Context, executionID string) ([]*ent.TimelineEvent, error) {
	events, err := s.client.TimelineEvent.Query().
		Where(timelineevent.ExecutionIDEQ(executionID)).
		Order(ent.Asc(timelineevent.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get execution timeline: %w", err)
	}

	return events, nil
}

// NextSequenceNumber returns the next free sequence number in a session's
// timeline. Sessions are processed by one worker at a time, so this simple
// max+1 allocation is race-free in practice.
func (s *TimelineService) NextSequenceNumber(ctx context.Context, sessionID string) (int, error) {
	last, err := s.client.TimelineEvent.Query().
		Where(timelineevent.SessionIDEQ(sessionID)).
		Order(ent.Desc(timelineevent.FieldSequenceNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query timeline sequence: %w", err)
	}
	return last.SequenceNumber + 1, nil
}
