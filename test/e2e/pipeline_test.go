package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// TestSingleStageCompletion drives one alert through a single react stage to
// a final answer and verifies the records left behind: terminal session
// status, final analysis, stage execution, timeline, and LLM interaction.
func TestSingleStageCompletion(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddSequential(LLMScriptEntry{
		Text: "Thought: The namespace is stuck because of a finalizer.\n" +
			"Final Answer: Remove the stuck finalizer from the namespace.",
	})

	app := NewTestApp(t,
		WithConfig(SingleAgentConfig(config.IterationStrategyReact)),
		WithLLMClient(llm),
	)

	sessionID := app.SubmitAlert(t, "test-alert", map[string]any{
		"namespace": "prod",
		"message":   "namespace stuck in Terminating",
	})

	app.WaitForSessionStatus(t, sessionID, string(alertsession.StatusCompleted))

	session := app.GetSession(t, sessionID)
	require.NotNil(t, session.FinalAnalysis)
	assert.Equal(t, "Remove the stuck finalizer from the namespace.", *session.FinalAnalysis)
	assert.NotNil(t, session.CompletedAt)

	execs := app.QueryStageExecutions(t, sessionID)
	require.Len(t, execs, 1)
	assert.Equal(t, "investigate", execs[0].StageID)
	assert.Equal(t, "TestAgent", execs[0].AgentName)
	assert.Equal(t, stageexecution.StatusCompleted, execs[0].Status)

	timeline := app.QueryTimeline(t, sessionID)
	assert.Contains(t, TimelineEventTypes(timeline), "final_analysis")

	interactions := app.QueryLLMInteractions(t, sessionID)
	require.Len(t, interactions, 1)
	assert.Equal(t, "test-provider", interactions[0].Provider)
}

// TestRunbookContentInPrompt verifies the static runbook guide reaches the
// agent's opening prompt even though the alert's runbook URL is never fetched.
func TestRunbookContentInPrompt(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddSequential(LLMScriptEntry{Text: "Final Answer: Done."})

	cfg := SingleAgentConfig(config.IterationStrategyReact)
	app := NewTestApp(t, WithConfig(cfg), WithLLMClient(llm))

	result := app.SubmitAlertRaw(t, models.SubmitAlertInput{
		AlertType:  "test-alert",
		Data:       map[string]any{"message": "disk full"},
		RunbookURL: "https://runbooks.example.com/disk-full.md",
	})
	require.True(t, result.Admitted)

	app.WaitForSessionStatus(t, result.SessionID, string(alertsession.StatusCompleted))

	inputs := llm.CapturedInputs()
	require.NotEmpty(t, inputs)
	var joined strings.Builder
	for _, msg := range inputs[0].Messages {
		joined.WriteString(msg.Content)
		joined.WriteString("\n")
	}
	assert.Contains(t, joined.String(), cfg.Defaults.Runbook,
		"static runbook guide should be embedded in the opening prompt")

	session := app.GetSession(t, result.SessionID)
	require.NotNil(t, session.RunbookURL)
	assert.Equal(t, "https://runbooks.example.com/disk-full.md", *session.RunbookURL)
}

// TestToolCallInvestigation runs a react loop through one tool call against an
// in-memory MCP server and checks that the observation feeds the next
// iteration and that the tool call lands on the timeline.
func TestToolCallInvestigation(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddSequential(LLMScriptEntry{
		Text: "Thought: I should inspect the pods.\n" +
			"Action: kubernetes.list_pods\n" +
			`Action Input: {"namespace": "prod"}`,
	})
	llm.AddSequential(LLMScriptEntry{
		Text: "Thought: The pod list shows a crash loop.\n" +
			"Final Answer: Pod api-7f9 is crash-looping; roll back the last deploy.",
	})

	app := NewTestApp(t,
		WithConfig(SingleAgentConfig(config.IterationStrategyReact, "kubernetes")),
		WithLLMClient(llm),
		WithMCPServers(map[string]map[string]mcpsdk.ToolHandler{
			"kubernetes": {
				"list_pods": StaticToolHandler("api-7f9: CrashLoopBackOff (14 restarts)"),
			},
		}),
	)

	sessionID := app.SubmitAlert(t, "test-alert", map[string]any{"message": "api down"})
	app.WaitForSessionStatus(t, sessionID, string(alertsession.StatusCompleted))

	require.Equal(t, 2, llm.CallCount())

	// The second call's conversation must carry the tool observation.
	second := llm.CapturedInputs()[1]
	var conversation strings.Builder
	for _, msg := range second.Messages {
		conversation.WriteString(msg.Content)
		conversation.WriteString("\n")
	}
	assert.Contains(t, conversation.String(), "CrashLoopBackOff",
		"tool result should appear as an observation in the follow-up prompt")

	types := TimelineEventTypes(app.QueryTimeline(t, sessionID))
	assert.Contains(t, types, "llm_tool_call")
	assert.Contains(t, types, "final_analysis")
}
