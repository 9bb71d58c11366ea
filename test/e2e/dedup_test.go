package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// TestDuplicateAlertDeduplication verifies fingerprint-based dedup: an
// identical alert resubmitted while the first session is live is rejected and
// pointed at the existing session; once that session finishes, the
// fingerprint is released and the same alert is admitted again.
func TestDuplicateAlertDeduplication(t *testing.T) {
	released := make(chan struct{})
	blocked := make(chan struct{}, 1)

	llm := NewScriptedLLMClient()
	llm.AddSequential(LLMScriptEntry{
		Text:    "Final Answer: Restart the consumer group.",
		WaitCh:  released,
		OnBlock: blocked,
	})
	llm.AddSequential(LLMScriptEntry{
		Text: "Final Answer: Same lag pattern as before.",
	})
	llm.AddSequential(LLMScriptEntry{
		Text: "Final Answer: Lag recurred after the restart.",
	})

	app := NewTestApp(t,
		WithConfig(SingleAgentConfig(config.IterationStrategyReact)),
		WithLLMClient(llm),
	)

	alert := models.SubmitAlertInput{
		AlertType: "test-alert",
		Data:      map[string]any{"topic": "orders", "lag": 120000},
	}

	first := app.SubmitAlertRaw(t, alert)
	require.True(t, first.Admitted)

	// Hold the first session in flight, then resubmit the identical alert.
	<-blocked
	dup := app.SubmitAlertRaw(t, alert)
	assert.False(t, dup.Admitted)
	assert.Equal(t, models.RejectReasonDuplicate, dup.Reason)
	assert.Equal(t, first.SessionID, dup.SessionID, "duplicate points at the live session")

	// A different payload is a different fingerprint and goes through.
	other := app.SubmitAlertRaw(t, models.SubmitAlertInput{
		AlertType: "test-alert",
		Data:      map[string]any{"topic": "payments", "lag": 500},
	})
	assert.True(t, other.Admitted)
	assert.NotEqual(t, first.SessionID, other.SessionID)

	// Finish the first session; its fingerprint must be released.
	close(released)
	app.WaitForSessionStatus(t, first.SessionID, string(alertsession.StatusCompleted))
	app.WaitForSessionStatus(t, other.SessionID, string(alertsession.StatusCompleted))

	again := app.SubmitAlertRaw(t, alert)
	assert.True(t, again.Admitted, "fingerprint released after terminal status")
	assert.NotEqual(t, first.SessionID, again.SessionID)
}

// TestUnroutableAlertRejected verifies an alert type with no chain is refused.
func TestUnroutableAlertRejected(t *testing.T) {
	app := NewTestApp(t, WithConfig(SingleAgentConfig(config.IterationStrategyReact)))

	result := app.SubmitAlertRaw(t, models.SubmitAlertInput{
		AlertType: "unknown-alert",
		Data:      map[string]any{"message": "nobody handles this"},
	})
	assert.False(t, result.Admitted)
	assert.Equal(t, models.RejectReasonNoChain, result.Reason)
	assert.Empty(t, result.SessionID)
}
