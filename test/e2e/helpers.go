package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
	"github.com/tarsy-project/tarsy/pkg/events"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// ────────────────────────────────────────────────────────────
// Alert submission helpers
// ────────────────────────────────────────────────────────────

// SubmitAlert submits an alert through the alert service and returns the
// created session ID. Fails the test on rejection.
func (app *TestApp) SubmitAlert(t *testing.T, alertType string, data map[string]any) string {
	t.Helper()
	result, err := app.AlertService.Submit(context.Background(), models.SubmitAlertInput{
		AlertType: alertType,
		Data:      data,
	})
	require.NoError(t, err)
	require.True(t, result.Admitted, "alert rejected: %s", result.Reason)
	return result.SessionID
}

// SubmitAlertRaw submits an alert and returns the full result, admitted or not.
func (app *TestApp) SubmitAlertRaw(t *testing.T, input models.SubmitAlertInput) *models.SubmitResult {
	t.Helper()
	result, err := app.AlertService.Submit(context.Background(), input)
	require.NoError(t, err)
	return result
}

// CancelSession requests cooperative cancellation: flags the session as
// cancelling and broadcasts the cancel request on the cancellations channel,
// exactly as the API surface would.
func (app *TestApp) CancelSession(t *testing.T, sessionID, requestedBy string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, app.SessionService.MarkCancelling(ctx, sessionID))
	require.NoError(t, app.EventPublisher.PublishCancellation(ctx, events.CancellationPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeSessionCancel,
			SessionID: sessionID,
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		},
		RequestedBy: requestedBy,
	}))
}

// ResumeSession flips a paused session back to pending so a worker picks it up.
func (app *TestApp) ResumeSession(t *testing.T, sessionID string) {
	t.Helper()
	require.NoError(t, app.SessionService.ResumeSession(context.Background(), sessionID))
}

// ────────────────────────────────────────────────────────────
// Polling helpers
// ────────────────────────────────────────────────────────────

// WaitForSessionStatus polls the DB until the session reaches one of the
// expected statuses. Returns the status that was reached.
func (app *TestApp) WaitForSessionStatus(t *testing.T, sessionID string, expected ...string) string {
	t.Helper()
	var actual string
	require.Eventually(t, func() bool {
		s, err := app.EntClient.AlertSession.Get(context.Background(), sessionID)
		if err != nil {
			return false
		}
		actual = string(s.Status)
		for _, exp := range expected {
			if actual == exp {
				return true
			}
		}
		return false
	}, 30*time.Second, 100*time.Millisecond,
		"session %s did not reach status %v (last: %s)", sessionID, expected, actual)
	return actual
}

// WaitForActiveExecution polls until a stage execution with "active" status
// exists for the session and returns it. Used by cancellation tests that must
// wait until execution has actually started.
func (app *TestApp) WaitForActiveExecution(t *testing.T, sessionID string) *ent.StageExecution {
	t.Helper()
	var found *ent.StageExecution
	require.Eventually(t, func() bool {
		execs, err := app.EntClient.StageExecution.Query().
			Where(stageexecution.SessionID(sessionID), stageexecution.StatusEQ(stageexecution.StatusActive)).
			All(context.Background())
		if err != nil || len(execs) == 0 {
			return false
		}
		found = execs[0]
		return true
	}, 30*time.Second, 100*time.Millisecond,
		"no active stage execution found for session %s", sessionID)
	return found
}

// WaitForNSessionsInStatus waits until exactly n sessions have the given
// status. The DB query is inlined so transient errors cause a retry rather
// than aborting via require.
func (app *TestApp) WaitForNSessionsInStatus(t *testing.T, n int, status string) {
	t.Helper()
	var lastCount int
	require.Eventually(t, func() bool {
		count, err := app.EntClient.AlertSession.Query().
			Where(alertsession.StatusEQ(alertsession.Status(status))).
			Count(context.Background())
		if err != nil {
			return false
		}
		lastCount = count
		return lastCount == n
	}, 30*time.Second, 100*time.Millisecond,
		"expected %d sessions in status %q, last saw %d", n, status, lastCount)
}

// ────────────────────────────────────────────────────────────
// DB query helpers
// ────────────────────────────────────────────────────────────

// GetSession fetches a session record directly from the DB.
func (app *TestApp) GetSession(t *testing.T, sessionID string) *ent.AlertSession {
	t.Helper()
	s, err := app.EntClient.AlertSession.Get(context.Background(), sessionID)
	require.NoError(t, err)
	return s
}

// QueryStageExecutions returns all stage executions for a session, ordered by
// stage index.
func (app *TestApp) QueryStageExecutions(t *testing.T, sessionID string) []*ent.StageExecution {
	t.Helper()
	execs, err := app.EntClient.StageExecution.Query().
		Where(stageexecution.SessionID(sessionID)).
		Order(ent.Asc(stageexecution.FieldStageIndex)).
		All(context.Background())
	require.NoError(t, err)
	return execs
}

// QueryTimeline returns all timeline events for a session, ordered by sequence.
func (app *TestApp) QueryTimeline(t *testing.T, sessionID string) []*ent.TimelineEvent {
	t.Helper()
	tl, err := app.EntClient.TimelineEvent.Query().
		Where(timelineevent.SessionID(sessionID)).
		Order(ent.Asc(timelineevent.FieldSequenceNumber)).
		All(context.Background())
	require.NoError(t, err)
	return tl
}

// QueryLLMInteractions returns all LLM interactions for a session in creation order.
func (app *TestApp) QueryLLMInteractions(t *testing.T, sessionID string) []*ent.LLMInteraction {
	t.Helper()
	interactions, err := app.EntClient.LLMInteraction.Query().
		Where(llminteraction.SessionID(sessionID)).
		Order(ent.Asc(llminteraction.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return interactions
}

// TimelineEventTypes projects a timeline into its event type strings, in order.
func TimelineEventTypes(timeline []*ent.TimelineEvent) []string {
	types := make([]string, len(timeline))
	for i, te := range timeline {
		types[i] = string(te.EventType)
	}
	return types
}
