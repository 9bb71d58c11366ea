package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/pkg/config"
)

// TestSessionTimeout verifies the wall-clock budget: a stuck LLM call is cut
// off by the session context deadline and the session lands in timed_out.
func TestSessionTimeout(t *testing.T) {
	blocked := make(chan struct{}, 1)

	llm := NewScriptedLLMClient()
	llm.AddSequential(LLMScriptEntry{
		BlockUntilCancelled: true,
		OnBlock:             blocked,
	})

	app := NewTestApp(t,
		WithConfig(SingleAgentConfig(config.IterationStrategyReact)),
		WithLLMClient(llm),
		WithSessionTimeout(2*time.Second),
	)

	sessionID := app.SubmitAlert(t, "test-alert", map[string]any{"message": "slow upstream"})

	<-blocked
	app.WaitForSessionStatus(t, sessionID, string(alertsession.StatusTimedOut))

	session := app.GetSession(t, sessionID)
	assert.NotNil(t, session.CompletedAt)
	require.NotNil(t, session.ErrorMessage)
	assert.Contains(t, *session.ErrorMessage, "timed out")
}
