package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/models"
)

func testRegistry() *config.MCPServerRegistry {
	return config.NewMCPServerRegistry(map[string]*config.MCPServerConfig{
		"kubernetes-server": {
			Transport:    config.TransportConfig{Type: config.TransportTypeStdio},
			Instructions: "Prefer read-only kubectl operations. Never delete resources.",
		},
		"silent-server": {
			Transport: config.TransportConfig{Type: config.TransportTypeStdio},
		},
	})
}

func testExecCtx() *agent.ExecutionContext {
	return &agent.ExecutionContext{
		SessionID:      "session-1",
		StageID:        "investigation",
		AgentName:      "KubernetesAgent",
		AlertType:      "kubernetes",
		AlertData:      `{"alert": "PodCrashLooping", "namespace": "payments"}`,
		RunbookContent: "1. Check pod status\n2. Check recent events",
		Config: &agent.ResolvedAgentConfig{
			AgentName:          "KubernetesAgent",
			IterationStrategy:  config.IterationStrategyReact,
			MCPServers:         []string{"kubernetes-server", "silent-server"},
			CustomInstructions: "Pay special attention to OOM kills.",
		},
		AvailableTools: []agent.ToolDefinition{
			{Name: "kubernetes-server.get_pods", Description: "List pods in a namespace"},
			{Name: "kubernetes-server.get_logs", Description: "Fetch pod logs"},
		},
	}
}

func TestBuildReActMessages(t *testing.T) {
	b := NewBuilder(testRegistry())
	execCtx := testExecCtx()

	messages := b.BuildReActMessages(execCtx, "")
	require.Len(t, messages, 2)

	system := messages[0]
	assert.Equal(t, models.RoleSystem, system.Role)
	assert.Contains(t, system.Content, "General SRE Agent Instructions")
	assert.Contains(t, system.Content, "Thought:")
	assert.Contains(t, system.Content, "Action Input:")
	assert.Contains(t, system.Content, "Final Answer:")
	assert.Contains(t, system.Content, "Prefer read-only kubectl operations")
	assert.Contains(t, system.Content, "Pay special attention to OOM kills")

	user := messages[1]
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Contains(t, user.Content, "Available tools:")
	assert.Contains(t, user.Content, "kubernetes-server.get_pods")
	assert.Contains(t, user.Content, "PodCrashLooping")
	assert.Contains(t, user.Content, "Check pod status")
	assert.Contains(t, user.Content, "This is the first stage of analysis")
	assert.Contains(t, user.Content, "Root cause analysis")
}

func TestBuildReActMessages_ReactToolsVariant(t *testing.T) {
	b := NewBuilder(testRegistry())
	execCtx := testExecCtx()
	execCtx.Config.IterationStrategy = config.IterationStrategyReactTools

	messages := b.BuildReActMessages(execCtx, "")
	require.Len(t, messages, 2)

	// Same loop format, different deliverable: a data summary, no conclusions.
	assert.Contains(t, messages[0].Content, "Action Input:")
	assert.Contains(t, messages[0].Content, "structured summary")
	assert.Contains(t, messages[1].Content, "do not draw final conclusions")
	assert.NotContains(t, messages[1].Content, "Root cause analysis")
}

func TestBuildReActMessages_PrevStageContext(t *testing.T) {
	b := NewBuilder(testRegistry())

	messages := b.BuildReActMessages(testExecCtx(), "### Stage: data-collection\nPods collected.")
	require.Len(t, messages, 2)
	assert.Contains(t, messages[1].Content, "## Previous Stage Data")
	assert.Contains(t, messages[1].Content, "Pods collected.")
	assert.NotContains(t, messages[1].Content, "first stage of analysis")
}

func TestBuildNativeThinkingMessages(t *testing.T) {
	b := NewBuilder(testRegistry())

	messages := b.BuildNativeThinkingMessages(testExecCtx(), "")
	require.Len(t, messages, 2)

	// No ReAct format block and no textual tool catalogue: tools are passed
	// to the provider as function declarations.
	assert.NotContains(t, messages[0].Content, "Action Input:")
	assert.NotContains(t, messages[1].Content, "Available tools:")
	assert.Contains(t, messages[1].Content, "PodCrashLooping")
}

func TestBuildFinalAnalysisMessages(t *testing.T) {
	b := NewBuilder(testRegistry())
	execCtx := testExecCtx()
	execCtx.Config.IterationStrategy = config.IterationStrategyReactFinalAnalysis

	messages := b.BuildFinalAnalysisMessages(execCtx, "### Stage: investigation\nOOM kill confirmed.")
	require.Len(t, messages, 2)

	// Tool-less synthesis: no tool references anywhere.
	assert.NotContains(t, messages[0].Content, "available tools")
	assert.NotContains(t, messages[0].Content, "Action:")
	assert.Contains(t, messages[0].Content, "General SRE Analysis Instructions")

	assert.Contains(t, messages[1].Content, "Synthesize the investigation results")
	assert.Contains(t, messages[1].Content, "OOM kill confirmed.")
}

func TestBuildSummarizationPrompts(t *testing.T) {
	b := NewBuilder(testRegistry())

	system := b.BuildSummarizationSystemPrompt("kubernetes-server", "get_pods", 800)
	assert.Contains(t, system, "kubernetes-server.get_pods")
	assert.Contains(t, system, "800 tokens")

	user := b.BuildSummarizationUserPrompt("[user]: investigate\n", "kubernetes-server", "get_pods", "pod-1 Running\npod-2 CrashLoopBackOff")
	assert.Contains(t, user, "[user]: investigate")
	assert.Contains(t, user, "`kubernetes-server.get_pods`")
	assert.Contains(t, user, "CrashLoopBackOff")
	assert.Contains(t, user, "Return ONLY the summary text")
}

func TestNewBuilder_NilRegistryPanics(t *testing.T) {
	assert.Panics(t, func() { NewBuilder(nil) })
}

func TestBuildReActMessages_NoToolsOmitsCatalogue(t *testing.T) {
	b := NewBuilder(testRegistry())
	execCtx := testExecCtx()
	execCtx.AvailableTools = nil

	messages := b.BuildReActMessages(execCtx, "")
	assert.False(t, strings.Contains(messages[1].Content, "Available tools:"))
}
