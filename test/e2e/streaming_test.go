package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/events"
)

// TestWebSocketEventStream subscribes to a session's channel over the real
// WebSocket endpoint and verifies the event flow: lifecycle events, timeline
// events, and the final analysis — with catch-up covering anything published
// before the subscription landed.
func TestWebSocketEventStream(t *testing.T) {
	gate := make(chan struct{})
	blocked := make(chan struct{}, 1)

	llm := NewScriptedLLMClient()
	llm.AddSequential(LLMScriptEntry{
		Text: "Thought: Checking the symptoms.\n" +
			"Final Answer: Clear the DNS cache on the affected nodes.",
		WaitCh:  gate,
		OnBlock: blocked,
	})

	app := NewTestApp(t,
		WithConfig(SingleAgentConfig(config.IterationStrategyReact)),
		WithLLMClient(llm),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ws, err := WSConnect(ctx, app.WSURL)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()

	sessionID := app.SubmitAlert(t, "test-alert", map[string]any{"message": "dns failures"})

	// Subscribe while the session is held mid-call; auto catch-up replays
	// whatever was persisted before we arrived (e.g. session.started).
	<-blocked
	require.NoError(t, ws.Subscribe(events.SessionChannel(sessionID)))
	_, err = ws.WaitForEventType("subscription.confirmed", 5*time.Second)
	require.NoError(t, err)

	close(gate)
	app.WaitForSessionStatus(t, sessionID, string(alertsession.StatusCompleted))

	_, err = ws.WaitForSessionStatus("completed", 10*time.Second)
	require.NoError(t, err, "session.completed should arrive on the session channel")

	// session.started was published before we subscribed — catch-up delivers it.
	_, err = ws.WaitForSessionStatus("in_progress", 5*time.Second)
	require.NoError(t, err, "catch-up should replay the session.started event")

	// The timeline flow must include the final analysis with its content.
	created, err := ws.WaitForEvent(func(e WSEvent) bool {
		return e.Type == "timeline.created" && e.Parsed["event_type"] == "final_analysis"
	}, 10*time.Second)
	require.NoError(t, err)
	assert.Contains(t, created.Parsed["content"], "Clear the DNS cache")

	// Contract check: every session-scoped event carries the session_id the
	// frontend routes by.
	for _, e := range ws.Events() {
		switch e.Type {
		case "connection.established", "subscription.confirmed", "pong", "catchup.overflow":
			continue
		}
		assert.Equalf(t, sessionID, e.Parsed["session_id"],
			"event %s missing or wrong session_id", e.Type)
	}
}
