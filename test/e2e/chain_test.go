package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/pkg/config"
)

// twoStageConfig builds a chain of a data-collection agent followed by a
// synthesis agent using the react-final-analysis strategy.
func twoStageConfig() *config.Config {
	return NewTestConfig(
		map[string]*config.AgentConfig{
			"DataAgent": {
				CustomInstructions: "You are DataAgent. Collect the relevant data.",
				IterationStrategy:  config.IterationStrategyReact,
			},
			"SynthesisAgent": {
				CustomInstructions: "You are SynthesisAgent. Combine prior findings into a conclusion.",
				IterationStrategy:  config.IterationStrategyReactFinalAnalysis,
			},
		},
		map[string]*config.ChainConfig{
			"test-chain": {
				AlertTypes: []string{"test-alert"},
				Stages: []config.StageConfig{
					{Name: "collect", Agent: "DataAgent"},
					{Name: "synthesize", Agent: "SynthesisAgent"},
				},
			},
		},
	)
}

// TestMultiStageChainContext verifies that a later stage sees the earlier
// stage's output in its prompt and that the synthesis stage's single-shot
// response becomes the session's final analysis.
func TestMultiStageChainContext(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted("DataAgent", LLMScriptEntry{
		Text: "Thought: Memory usage is the culprit.\n" +
			"Final Answer: Node worker-3 is under memory pressure, 96% utilization.",
	})
	llm.AddRouted("SynthesisAgent", LLMScriptEntry{
		Text: "Evict noisy neighbors from worker-3 and raise the memory request.",
	})

	app := NewTestApp(t, WithConfig(twoStageConfig()), WithLLMClient(llm))

	sessionID := app.SubmitAlert(t, "test-alert", map[string]any{"message": "node pressure"})
	app.WaitForSessionStatus(t, sessionID, string(alertsession.StatusCompleted))

	// Synthesis prompt must include the collect stage's output.
	inputs := llm.CapturedInputs()
	require.Len(t, inputs, 2)
	var synthesisPrompt strings.Builder
	for _, msg := range inputs[1].Messages {
		synthesisPrompt.WriteString(msg.Content)
		synthesisPrompt.WriteString("\n")
	}
	assert.Contains(t, synthesisPrompt.String(), "memory pressure, 96% utilization",
		"second stage should receive the first stage's findings")

	// The react-final-analysis stage output wins as the session analysis.
	session := app.GetSession(t, sessionID)
	require.NotNil(t, session.FinalAnalysis)
	assert.Equal(t, "Evict noisy neighbors from worker-3 and raise the memory request.", *session.FinalAnalysis)

	execs := app.QueryStageExecutions(t, sessionID)
	require.Len(t, execs, 2)
	assert.Equal(t, stageexecution.StatusCompleted, execs[0].Status)
	assert.Equal(t, stageexecution.StatusCompleted, execs[1].Status)
}

// TestContinueOnFailure verifies a failed stage does not stop the chain: the
// next stage still runs and the session completes with its output.
func TestContinueOnFailure(t *testing.T) {
	llm := NewScriptedLLMClient()
	// Three consecutive malformed responses fail the collect stage.
	for i := 0; i < 3; i++ {
		llm.AddRouted("DataAgent", LLMScriptEntry{Text: "I cannot follow the requested format."})
	}
	llm.AddRouted("SynthesisAgent", LLMScriptEntry{
		Text: "Data collection failed; recommending manual inspection of worker-3.",
	})

	app := NewTestApp(t, WithConfig(twoStageConfig()), WithLLMClient(llm))

	sessionID := app.SubmitAlert(t, "test-alert", map[string]any{"message": "node pressure"})
	app.WaitForSessionStatus(t, sessionID, string(alertsession.StatusCompleted))

	execs := app.QueryStageExecutions(t, sessionID)
	require.Len(t, execs, 2)
	assert.Equal(t, stageexecution.StatusFailed, execs[0].Status)
	require.NotNil(t, execs[0].ErrorMessage)
	assert.Contains(t, *execs[0].ErrorMessage, "malformed")
	assert.Equal(t, stageexecution.StatusCompleted, execs[1].Status)

	session := app.GetSession(t, sessionID)
	require.NotNil(t, session.FinalAnalysis)
	assert.Contains(t, *session.FinalAnalysis, "manual inspection")
}

// TestAllStagesFailed verifies the session fails when no stage produces output.
func TestAllStagesFailed(t *testing.T) {
	llm := NewScriptedLLMClient()
	for i := 0; i < 3; i++ {
		llm.AddSequential(LLMScriptEntry{Text: "No format here either."})
	}

	app := NewTestApp(t,
		WithConfig(SingleAgentConfig(config.IterationStrategyReact)),
		WithLLMClient(llm),
	)

	sessionID := app.SubmitAlert(t, "test-alert", map[string]any{"message": "bad day"})
	app.WaitForSessionStatus(t, sessionID, string(alertsession.StatusFailed))

	session := app.GetSession(t, sessionID)
	require.NotNil(t, session.ErrorMessage)
	assert.Contains(t, *session.ErrorMessage, "all stages failed")
	assert.Nil(t, session.FinalAnalysis)
}
