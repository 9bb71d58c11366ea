package e2e

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/pkg/config"
	testdb "github.com/tarsy-project/tarsy/test/database"
)

// TestMultiReplicaProcessing runs two replicas against one database and
// verifies they drain a burst of alerts between them without double-claiming.
func TestMultiReplicaProcessing(t *testing.T) {
	shared := testdb.NewTestClient(t)
	llm := NewScriptedLLMClient()
	for i := 0; i < 4; i++ {
		llm.AddSequential(LLMScriptEntry{
			Text: fmt.Sprintf("Final Answer: Analysis %d complete.", i),
		})
	}

	cfg := func() *config.Config { return SingleAgentConfig(config.IterationStrategyReact) }

	appA := NewTestApp(t,
		WithConfig(cfg()), WithLLMClient(llm),
		WithDBClient(shared), WithPodID("pod-a"),
		WithMaxConcurrentSessions(4),
	)
	appB := NewTestApp(t,
		WithConfig(cfg()), WithLLMClient(llm),
		WithDBClient(shared), WithPodID("pod-b"),
		WithMaxConcurrentSessions(4),
	)
	sessionIDs := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		sessionIDs = append(sessionIDs, appA.SubmitAlert(t, "test-alert", map[string]any{
			"message": "burst", "index": i,
		}))
	}

	// Both replicas see the same rows; wait through either handle.
	for i, id := range sessionIDs {
		if i%2 == 0 {
			appA.WaitForSessionStatus(t, id, string(alertsession.StatusCompleted))
		} else {
			appB.WaitForSessionStatus(t, id, string(alertsession.StatusCompleted))
		}
	}

	// Every claim went to exactly one pod; nothing was processed twice.
	assert.Equal(t, 4, llm.CallCount(), "each session triggers exactly one LLM call")
}

// TestCrossPodCancellation cancels a session from the replica that does NOT
// own it. The cancel request travels over the shared cancellations channel
// and the owning pod stops the work.
func TestCrossPodCancellation(t *testing.T) {
	shared := testdb.NewTestClient(t)
	blocked := make(chan struct{}, 1)

	llm := NewScriptedLLMClient()
	llm.AddSequential(LLMScriptEntry{
		BlockUntilCancelled: true,
		OnBlock:             blocked,
	})

	appA := NewTestApp(t,
		WithConfig(SingleAgentConfig(config.IterationStrategyReact)), WithLLMClient(llm),
		WithDBClient(shared), WithPodID("pod-a"),
	)
	appB := NewTestApp(t,
		WithConfig(SingleAgentConfig(config.IterationStrategyReact)), WithLLMClient(llm),
		WithDBClient(shared), WithPodID("pod-b"),
	)

	sessionID := appA.SubmitAlert(t, "test-alert", map[string]any{"message": "stuck job"})

	// Either pod may have claimed the session. Cancel from B regardless —
	// NOTIFY reaches both pods and only the owner reacts.
	<-blocked
	appB.CancelSession(t, sessionID, "sre-oncall")

	appA.WaitForSessionStatus(t, sessionID, string(alertsession.StatusCancelled))

	session := appA.GetSession(t, sessionID)
	assert.NotNil(t, session.CompletedAt)
}
