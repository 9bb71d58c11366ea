package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/pkg/config"
)

// TestCooperativeCancellation cancels a session mid-LLM-call via the
// cancellations NOTIFY channel and verifies the terminal state: cancelled
// session, cancelled running stage, and cancelled placeholder rows for the
// stages that never ran.
func TestCooperativeCancellation(t *testing.T) {
	blocked := make(chan struct{}, 1)

	llm := NewScriptedLLMClient()
	llm.AddSequential(LLMScriptEntry{
		BlockUntilCancelled: true,
		OnBlock:             blocked,
	})

	cfg := NewTestConfig(
		map[string]*config.AgentConfig{
			"TestAgent": {
				CustomInstructions: "You are TestAgent. Investigate the alert.",
				IterationStrategy:  config.IterationStrategyReact,
			},
		},
		map[string]*config.ChainConfig{
			"test-chain": {
				AlertTypes: []string{"test-alert"},
				Stages: []config.StageConfig{
					{Name: "investigate", Agent: "TestAgent"},
					{Name: "summarize", Agent: "TestAgent"},
				},
			},
		},
	)

	app := NewTestApp(t, WithConfig(cfg), WithLLMClient(llm))

	sessionID := app.SubmitAlert(t, "test-alert", map[string]any{"message": "flapping ingress"})

	// Wait until the LLM call is in flight so cancellation hits live work.
	<-blocked
	app.CancelSession(t, sessionID, "sre-oncall")

	app.WaitForSessionStatus(t, sessionID, string(alertsession.StatusCancelled))

	session := app.GetSession(t, sessionID)
	assert.NotNil(t, session.CompletedAt)
	assert.Nil(t, session.FinalAnalysis)

	execs := app.QueryStageExecutions(t, sessionID)
	require.Len(t, execs, 2, "skipped stages get cancelled placeholder rows")
	assert.Equal(t, stageexecution.StatusCancelled, execs[0].Status)
	assert.Equal(t, stageexecution.StatusCancelled, execs[1].Status)
}
