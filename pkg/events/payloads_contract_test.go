package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// TestSessionChannelPayloads_ContainSessionID is a contract test between the
// Go backend and the frontend WebSocket client.
//
// The frontend routes incoming WS events by inspecting `data.session_id` in
// the JSON payload (see websocket.ts handleEvent). ANY payload that is
// broadcast on a session-specific channel (session:{id}) MUST include a
// non-empty `session_id` field — otherwise the frontend silently drops it.
//
// All payload structs embed BasePayload which guarantees session_id is present.
// This test guards against:
//   - A new payload struct that forgets to embed BasePayload
//   - A call site that forgets to populate BasePayload.SessionID
func TestSessionChannelPayloads_ContainSessionID(t *testing.T) {
	const testSessionID = "sess-contract-test"

	// Every payload type that flows through SessionChannel(sessionID).
	// If you add a new payload that goes through a session channel,
	// add it here — the test will fail if session_id is missing.
	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "TimelineCreatedPayload",
			payload: TimelineCreatedPayload{
				BasePayload: BasePayload{
					Type:      EventTypeTimelineCreated,
					SessionID: testSessionID,
					Timestamp: "2026-01-01T00:00:00Z",
				},
				EventID:        "evt-1",
				EventType:      timelineevent.EventTypeLlmThinking,
				Status:         timelineevent.StatusStreaming,
				Content:        "test",
				SequenceNumber: 1,
			},
		},
		{
			name: "TimelineCompletedPayload",
			payload: TimelineCompletedPayload{
				BasePayload: BasePayload{
					Type:      EventTypeTimelineCompleted,
					SessionID: testSessionID,
					Timestamp: "2026-01-01T00:00:00Z",
				},
				EventID:   "evt-1",
				EventType: timelineevent.EventTypeLlmThinking,
				Content:   "final content",
				Status:    timelineevent.StatusCompleted,
			},
		},
		{
			name: "StreamChunkPayload",
			payload: StreamChunkPayload{
				BasePayload: BasePayload{
					Type:      EventTypeStreamChunk,
					SessionID: testSessionID,
					Timestamp: "2026-01-01T00:00:00Z",
				},
				EventID:    "evt-1",
				StreamType: StreamTypeThought,
				Chunk:      "token",
			},
		},
		{
			name: "SessionLifecyclePayload",
			payload: SessionLifecyclePayload{
				BasePayload: BasePayload{
					Type:      EventTypeSessionStarted,
					SessionID: testSessionID,
					Timestamp: "2026-01-01T00:00:00Z",
				},
				Status: alertsession.StatusInProgress,
			},
		},
		{
			name: "StageStatusPayload",
			payload: StageStatusPayload{
				BasePayload: BasePayload{
					Type:      EventTypeStageStarted,
					SessionID: testSessionID,
					Timestamp: "2026-01-01T00:00:00Z",
				},
				ExecutionID: "exec-1",
				StageID:     "investigation",
				StageIndex:  0,
				AgentName:   "KubernetesAgent",
				Status:      stageexecution.StatusActive,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err, "failed to marshal %s", tt.name)

			var parsed map[string]any
			require.NoError(t, json.Unmarshal(data, &parsed), "failed to unmarshal %s", tt.name)

			sid, ok := parsed["session_id"]
			assert.True(t, ok,
				"%s JSON is missing \"session_id\" field — frontend WS routing will silently drop this event", tt.name)
			assert.Equal(t, testSessionID, sid,
				"%s session_id has wrong value", tt.name)
		})
	}
}

// TestSessionProgressPayload_ContainsSessionID verifies the session.progress
// payload. Although this goes to GlobalSessionsChannel (not a session channel),
// it still carries session_id for the frontend to identify which session it
// belongs to.
func TestSessionProgressPayload_ContainsSessionID(t *testing.T) {
	payload := SessionProgressPayload{
		BasePayload: BasePayload{
			Type:      EventTypeSessionProgress,
			SessionID: "sess-progress",
			Timestamp: "2026-01-01T00:00:00Z",
		},
		CurrentStageID:    "investigation",
		CurrentStageIndex: 0,
		TotalStages:       3,
		CurrentIteration:  1,
		StatusText:        "Iteration 1/20",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	sid, ok := parsed["session_id"]
	assert.True(t, ok, "SessionProgressPayload is missing session_id")
	assert.Equal(t, "sess-progress", sid)
}

// TestCancellationPayload_ContainsSessionID: cancel requests are routed by
// session_id on the shared cancellations channel — without it no pod can
// match the request to a running session.
func TestCancellationPayload_ContainsSessionID(t *testing.T) {
	payload := CancellationPayload{
		BasePayload: BasePayload{
			Type:      EventTypeSessionCancel,
			SessionID: "sess-cancel",
			Timestamp: "2026-01-01T00:00:00Z",
		},
		RequestedBy: "dashboard",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, "sess-cancel", parsed["session_id"])
}
