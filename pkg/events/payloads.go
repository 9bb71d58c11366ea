package events

import (
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// BasePayload carries the fields common to every published payload.
// The frontend routes incoming WebSocket events by `type` and
// `session_id`, so both must be populated at every publish site.
type BasePayload struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// TimelineCreatedPayload is the payload for timeline.created events.
// Published when a new timeline event is created (streaming or completed).
type TimelineCreatedPayload struct {
	BasePayload
	EventID        string                  `json:"event_id"`               // timeline event UUID
	StageID        string                  `json:"stage_id,omitempty"`     // owning stage (empty for session-level events)
	ExecutionID    string                  `json:"execution_id,omitempty"` // owning stage execution
	EventType      timelineevent.EventType `json:"event_type"`             // llm_thinking, llm_tool_call, mcp_tool_summary, final_analysis, error
	Status         timelineevent.Status    `json:"status"`                 // streaming, completed, failed, cancelled, timed_out
	Content        string                  `json:"content"`                // event content (may be empty for streaming)
	Metadata       map[string]any          `json:"metadata,omitempty"`
	SequenceNumber int                     `json:"sequence_number"` // order in timeline
}

// TimelineCompletedPayload is the payload for timeline.completed events.
// Published when a streaming timeline event transitions to a terminal status.
type TimelineCompletedPayload struct {
	BasePayload
	EventID   string                  `json:"event_id"`   // timeline event UUID
	EventType timelineevent.EventType `json:"event_type"` // llm_thinking, llm_tool_call, etc.
	Content   string                  `json:"content"`    // final content
	Status    timelineevent.Status    `json:"status"`     // completed, failed, cancelled, timed_out
	Metadata  map[string]any          `json:"metadata,omitempty"`
}

// StreamChunkPayload is the payload for stream.chunk transient events.
// Published for each LLM streaming chunk — high frequency, ephemeral.
type StreamChunkPayload struct {
	BasePayload
	EventID       string `json:"event_id"`                 // parent timeline event UUID
	InteractionID string `json:"interaction_id,omitempty"` // owning LLM interaction
	StreamType    string `json:"stream_type"`              // thought, final_answer, native_thinking, summarization
	Chunk         string `json:"chunk"`                    // incremental text
	IsComplete    bool   `json:"is_complete"`              // true on the final chunk of the stream
	MCPEventID    string `json:"mcp_event_id,omitempty"`   // set for summarization streams: the mcp_tool_summary event
}

// SessionLifecyclePayload is the payload for session.* lifecycle events
// (session.created, session.started, session.completed, ...). Published on
// both the global sessions channel and the session's own channel.
type SessionLifecyclePayload struct {
	BasePayload
	Status       alertsession.Status `json:"status"`
	AlertType    string              `json:"alert_type,omitempty"`
	ChainID      string              `json:"chain_id,omitempty"`
	ErrorMessage string              `json:"error_message,omitempty"` // populated for session.failed
	PauseReason  string              `json:"pause_reason,omitempty"`  // populated for session.paused
}

// StageStatusPayload is the payload for stage.started / stage.completed events.
type StageStatusPayload struct {
	BasePayload
	ExecutionID string                `json:"execution_id"`
	StageID     string                `json:"stage_id"`    // stage name from the chain config
	StageIndex  int                   `json:"stage_index"` // 0-based position in the chain
	AgentName   string                `json:"agent_name"`
	Status      stageexecution.Status `json:"status"` // active, completed, failed, cancelled, timed_out
}

// SessionProgressPayload is the payload for session.progress transient
// events on the global sessions channel. Dashboards use it for coarse
// "what is this session doing right now" display.
type SessionProgressPayload struct {
	BasePayload
	CurrentStageID    string `json:"current_stage_id,omitempty"`
	CurrentStageIndex int    `json:"current_stage_index"`
	TotalStages       int    `json:"total_stages"`
	CurrentIteration  int    `json:"current_iteration"`
	StatusText        string `json:"status_text,omitempty"` // e.g. "Iteration 4/20"
}

// CancellationPayload is the payload broadcast on the cancellations
// channel when a user requests session cancellation. Transient: the pod
// running the session reacts, everyone else ignores it.
type CancellationPayload struct {
	BasePayload
	RequestedBy string `json:"requested_by,omitempty"`
}
