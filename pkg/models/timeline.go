package models

import (
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// CreateTimelineEventRequest contains fields for creating a timeline event.
// ExecutionID is nil for session-level events.
type CreateTimelineEventRequest struct {
	SessionID      string                  `json:"session_id"`
	ExecutionID    *string                 `json:"execution_id,omitempty"`
	SequenceNumber int                     `json:"sequence_number"`
	EventType      timelineevent.EventType `json:"event_type"`
	Status         timelineevent.Status    `json:"status,omitempty"`
	Content        string                  `json:"content"`
	Metadata       map[string]any          `json:"metadata,omitempty"`
}

// CompleteTimelineEventRequest finalizes a streaming timeline event with
// its full content and debug links.
type CompleteTimelineEventRequest struct {
	EventID          string               `json:"event_id"`
	Status           timelineevent.Status `json:"status"`
	Content          string               `json:"content"`
	Metadata         map[string]any       `json:"metadata,omitempty"`
	LLMInteractionID *string              `json:"llm_interaction_id,omitempty"`
	MCPInteractionID *string              `json:"mcp_interaction_id,omitempty"`
}
