package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// TestPauseOnMaxIterationsAndResume exhausts a two-iteration budget, checks
// the recorded pause state, raises the budget, resumes, and verifies the
// stage picks up its previous conversation and completes.
func TestPauseOnMaxIterationsAndResume(t *testing.T) {
	two := 2
	agentCfg := &config.AgentConfig{
		CustomInstructions: "You are TestAgent. Investigate the alert.",
		IterationStrategy:  config.IterationStrategyReact,
		MaxIterations:      &two,
	}
	cfg := NewTestConfig(
		map[string]*config.AgentConfig{"TestAgent": agentCfg},
		map[string]*config.ChainConfig{
			"test-chain": {
				AlertTypes: []string{"test-alert"},
				Stages:     []config.StageConfig{{Name: "investigate", Agent: "TestAgent"}},
			},
		},
	)

	llm := NewScriptedLLMClient()
	// Two iterations that keep asking for an unavailable tool burn the budget.
	llm.AddSequential(LLMScriptEntry{
		Text: "Thought: Checking pods.\nAction: kubernetes.list_pods\nAction Input: {}",
	})
	llm.AddSequential(LLMScriptEntry{
		Text: "Thought: Trying again.\nAction: kubernetes.list_pods\nAction Input: {}",
	})
	// After resume with a raised budget, conclude.
	llm.AddSequential(LLMScriptEntry{
		Text: "Thought: No tools available, concluding from the alert alone.\n" +
			"Final Answer: Investigate manually; tooling was unavailable.",
	})

	app := NewTestApp(t, WithConfig(cfg), WithLLMClient(llm))

	sessionID := app.SubmitAlert(t, "test-alert", map[string]any{"message": "api degraded"})
	app.WaitForSessionStatus(t, sessionID, string(alertsession.StatusPaused))

	session := app.GetSession(t, sessionID)
	require.NotNil(t, session.PauseMetadata)
	assert.Equal(t, models.PauseReasonMaxIterations, session.PauseMetadata["reason"])
	assert.Nil(t, session.PodID, "paused session must not stay bound to a pod")
	assert.Nil(t, session.CompletedAt, "paused is not terminal")

	execs := app.QueryStageExecutions(t, sessionID)
	require.Len(t, execs, 1)
	assert.Equal(t, stageexecution.StatusPaused, execs[0].Status)
	require.NotNil(t, execs[0].CurrentIteration)
	assert.Equal(t, 2, *execs[0].CurrentIteration)

	// Raise the budget and resume. The registry hands out the same config
	// pointer, so the next resolution sees the new limit.
	four := 4
	agentCfg.MaxIterations = &four
	app.ResumeSession(t, sessionID)

	app.WaitForSessionStatus(t, sessionID, string(alertsession.StatusCompleted))

	// Same stage execution row, resumed rather than recreated.
	execs = app.QueryStageExecutions(t, sessionID)
	require.Len(t, execs, 1)
	assert.Equal(t, stageexecution.StatusCompleted, execs[0].Status)

	// The post-resume call must have been fed the restored conversation.
	require.Equal(t, 3, llm.CallCount())
	resumed := llm.CapturedInputs()[2]
	var conversation strings.Builder
	for _, msg := range resumed.Messages {
		conversation.WriteString(msg.Content)
		conversation.WriteString("\n")
	}
	assert.Contains(t, conversation.String(), "kubernetes.list_pods",
		"resumed stage should continue the recorded conversation")

	session = app.GetSession(t, sessionID)
	assert.Empty(t, session.PauseMetadata, "pause metadata cleared on resume")
	require.NotNil(t, session.FinalAnalysis)
	assert.Contains(t, *session.FinalAnalysis, "Investigate manually")
}
