// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// ════════════════════════════════════════════════════════════════
// Timeline Event Lifecycle Patterns
// ════════════════════════════════════════════════════════════════
//
// Timeline events follow one of two lifecycle patterns. Clients
// differentiate them by the "status" field in the created payload.
//
// Pattern 1 — STREAMING (status: "streaming"):
//
//	timeline.created   {status: "streaming", content: ""}
//	stream.chunk       {chunk: "...", is_complete: false}  (repeated, not persisted)
//	stream.chunk       {chunk: "", is_complete: true}
//	timeline.completed {status: "completed", content: "full text"}
//
//	The event is created empty while the LLM is still producing output.
//	Chunks arrive via stream.chunk (transient — lost on reconnect, but
//	the final content is delivered by the completed event). Clients
//	concatenate chunks locally for a live typing effect.
//
//	Event types using this pattern:
//	  - llm_thinking     (streaming thought / native thinking text)
//	  - llm_tool_call    (created when the call is dispatched, completed
//	                      with the truncated tool result)
//	  - mcp_tool_summary (summarization LLM call streams)
//	  - final_analysis   (the conclusion text streams as final_answer chunks)
//
// Pattern 2 — FIRE-AND-FORGET (status: "completed"):
//
//	timeline.created   {status: "completed", content: "full text"}
//
//	The event is created with its final content in a single message.
//	There is NO subsequent timeline.completed — this IS the terminal
//	state. Clients should render the content immediately.
//
//	Event types using this pattern:
//	  - error          (iteration errors, surfaced once)
//	  - llm_thinking   (when the thought is parsed from a completed
//	                    response rather than streamed)
//
// Note: the same event_type (llm_thinking) can follow either pattern
// depending on the iteration strategy. The "status" field is the only
// reliable discriminator.
//
// ════════════════════════════════════════════════════════════════
package events

import "github.com/tarsy-project/tarsy/ent/alertsession"

// Durable event types (stored in the events table + NOTIFY).
const (
	// Timeline event lifecycle — see package doc for the two lifecycle patterns.
	EventTypeTimelineCreated   = "timeline.created"
	EventTypeTimelineCompleted = "timeline.completed"

	// Session lifecycle
	EventTypeSessionCreated    = "session.created"
	EventTypeSessionStarted    = "session.started"
	EventTypeSessionPaused     = "session.paused"
	EventTypeSessionResumed    = "session.resumed"
	EventTypeSessionCancelling = "session.cancelling"
	EventTypeSessionCompleted  = "session.completed"
	EventTypeSessionFailed     = "session.failed"
	EventTypeSessionCancelled  = "session.cancelled"
	EventTypeSessionTimedOut   = "session.timed_out"

	// Stage lifecycle
	EventTypeStageStarted   = "stage.started"
	EventTypeStageCompleted = "stage.completed"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// LLM streaming chunks — high-frequency, ephemeral.
	EventTypeStreamChunk = "stream.chunk"

	// Coarse per-session progress for dashboards.
	EventTypeSessionProgress = "session.progress"

	// Cancel requests broadcast on the cancellations channel.
	EventTypeSessionCancel = "session.cancel"
)

// Stream types carried in StreamChunkPayload.StreamType.
const (
	StreamTypeThought        = "thought"
	StreamTypeFinalAnswer    = "final_answer"
	StreamTypeNativeThinking = "native_thinking"
	StreamTypeSummarization  = "summarization"
)

// SessionEventTypeForStatus maps a session status to its lifecycle event
// type. Resume is a transition, not a status — callers publish
// EventTypeSessionResumed explicitly when a paused session restarts.
func SessionEventTypeForStatus(status alertsession.Status) string {
	switch status {
	case alertsession.StatusPending:
		return EventTypeSessionCreated
	case alertsession.StatusInProgress:
		return EventTypeSessionStarted
	case alertsession.StatusPaused:
		return EventTypeSessionPaused
	case alertsession.StatusCancelling:
		return EventTypeSessionCancelling
	case alertsession.StatusCompleted:
		return EventTypeSessionCompleted
	case alertsession.StatusFailed:
		return EventTypeSessionFailed
	case alertsession.StatusCancelled:
		return EventTypeSessionCancelled
	case alertsession.StatusTimedOut:
		return EventTypeSessionTimedOut
	default:
		return "session." + string(status)
	}
}

// GlobalSessionsChannel is the channel for session-level status events.
// The session list page subscribes to this for real-time updates.
const GlobalSessionsChannel = "sessions"

// CancellationsChannel carries transient cancel requests. Every pod
// subscribes at startup; the pod that owns the session reacts.
const CancellationsChannel = "cancellations"

// SessionChannel returns the channel name for a specific session's events.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "session:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
