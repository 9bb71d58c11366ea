package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/pkg/agent"
	agentctx "github.com/tarsy-project/tarsy/pkg/agent/context"
	"github.com/tarsy-project/tarsy/pkg/config"
)

func TestResolveStageServers(t *testing.T) {
	t.Run("no override returns stage servers", func(t *testing.T) {
		session := &ent.AlertSession{McpSelection: nil}
		resolved := &agent.ResolvedAgentConfig{
			MCPServers: []string{"kubernetes-server", "argocd-server"},
		}

		serverIDs, toolFilter, err := resolveStageServers(session, resolved)
		require.NoError(t, err)
		assert.Equal(t, []string{"kubernetes-server", "argocd-server"}, serverIDs)
		assert.Nil(t, toolFilter)
	})

	t.Run("empty map returns stage servers", func(t *testing.T) {
		session := &ent.AlertSession{McpSelection: map[string]interface{}{}}
		resolved := &agent.ResolvedAgentConfig{MCPServers: []string{"kubernetes-server"}}

		serverIDs, toolFilter, err := resolveStageServers(session, resolved)
		require.NoError(t, err)
		assert.Equal(t, []string{"kubernetes-server"}, serverIDs)
		assert.Nil(t, toolFilter)
	})

	t.Run("override replaces stage servers", func(t *testing.T) {
		session := &ent.AlertSession{
			McpSelection: map[string]interface{}{
				"servers": []interface{}{
					map[string]interface{}{"name": "prometheus-server"},
				},
			},
		}
		resolved := &agent.ResolvedAgentConfig{
			MCPServers: []string{"kubernetes-server", "argocd-server"},
		}

		serverIDs, toolFilter, err := resolveStageServers(session, resolved)
		require.NoError(t, err)
		assert.Equal(t, []string{"prometheus-server"}, serverIDs)
		assert.Empty(t, toolFilter)
	})

	t.Run("override with tool filter", func(t *testing.T) {
		session := &ent.AlertSession{
			McpSelection: map[string]interface{}{
				"servers": []interface{}{
					map[string]interface{}{
						"name":  "kubernetes-server",
						"tools": []interface{}{"get_pods", "describe_pod"},
					},
					map[string]interface{}{"name": "argocd-server"},
				},
			},
		}
		resolved := &agent.ResolvedAgentConfig{MCPServers: []string{"prometheus-server"}}

		serverIDs, toolFilter, err := resolveStageServers(session, resolved)
		require.NoError(t, err)
		assert.Equal(t, []string{"kubernetes-server", "argocd-server"}, serverIDs)
		require.NotNil(t, toolFilter)
		assert.Equal(t, []string{"get_pods", "describe_pod"}, toolFilter["kubernetes-server"])
		_, hasArgoFilter := toolFilter["argocd-server"]
		assert.False(t, hasArgoFilter, "argocd-server should not have a filter")
	})

	t.Run("empty servers in override returns error", func(t *testing.T) {
		session := &ent.AlertSession{
			McpSelection: map[string]interface{}{
				"servers": []interface{}{},
			},
		}
		resolved := &agent.ResolvedAgentConfig{MCPServers: []string{"kubernetes-server"}}

		_, _, err := resolveStageServers(session, resolved)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one server")
	})
}

func TestIsSettled(t *testing.T) {
	tests := []struct {
		status stageexecution.Status
		want   bool
	}{
		{stageexecution.StatusCompleted, true},
		{stageexecution.StatusFailed, true},
		{stageexecution.StatusCancelled, true},
		{stageexecution.StatusTimedOut, true},
		{stageexecution.StatusPaused, false},
		{stageexecution.StatusPending, false},
		{stageexecution.StatusActive, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, isSettled(tt.status))
		})
	}
}

func TestPriorStageResult(t *testing.T) {
	output := "Collected pod metrics."

	t.Run("completed stage keeps output", func(t *testing.T) {
		result := priorStageResult(&ent.StageExecution{
			StageID:     "data-collection",
			Status:      stageexecution.StatusCompleted,
			StageOutput: &output,
		})
		assert.Equal(t, agentctx.StageResult{StageID: "data-collection", Output: output}, result)
	})

	t.Run("completed stage without output", func(t *testing.T) {
		result := priorStageResult(&ent.StageExecution{
			StageID: "data-collection",
			Status:  stageexecution.StatusCompleted,
		})
		assert.Equal(t, agentctx.StageResult{StageID: "data-collection"}, result)
	})

	t.Run("failed stage is flagged", func(t *testing.T) {
		result := priorStageResult(&ent.StageExecution{
			StageID: "diagnosis",
			Status:  stageexecution.StatusFailed,
		})
		assert.Equal(t, agentctx.StageResult{StageID: "diagnosis", Failed: true}, result)
	})
}

func TestStageStatusFor(t *testing.T) {
	tests := []struct {
		input    agent.ExecutionStatus
		want     stageexecution.Status
		terminal bool
	}{
		{agent.ExecutionStatusCompleted, stageexecution.StatusCompleted, true},
		{agent.ExecutionStatusFailed, stageexecution.StatusFailed, true},
		{agent.ExecutionStatusCancelled, stageexecution.StatusCancelled, true},
		{agent.ExecutionStatusTimedOut, stageexecution.StatusTimedOut, true},
		{agent.ExecutionStatusPaused, "", false},
		{agent.ExecutionStatusActive, "", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			status, terminal := stageStatusFor(tt.input)
			assert.Equal(t, tt.want, status)
			assert.Equal(t, tt.terminal, terminal)
		})
	}
}

func TestFinalAnalysisOf(t *testing.T) {
	twoStageChain := &config.ChainConfig{
		Stages: []config.StageConfig{
			{Name: "investigation", Agent: "KubernetesAgent"},
			{Name: "synthesis", Agent: "SynthesisAgent"},
		},
	}

	t.Run("synthesis stage output wins", func(t *testing.T) {
		last := &stageOutcome{
			stageIndex: 1,
			strategy:   config.IterationStrategyReactFinalAnalysis,
			result: &agent.ExecutionResult{
				Status:        agent.ExecutionStatusCompleted,
				FinalAnalysis: "Synthesized: memory leak in ingress controller.",
			},
		}
		results := []agentctx.StageResult{
			{StageID: "investigation", Output: "raw findings"},
			{StageID: "synthesis", Output: "Synthesized: memory leak in ingress controller."},
		}

		analysis, ok := finalAnalysisOf(twoStageChain, results, last)
		require.True(t, ok)
		assert.Equal(t, "Synthesized: memory leak in ingress controller.", analysis)
	})

	t.Run("no synthesis stage uses last successful output", func(t *testing.T) {
		last := &stageOutcome{
			stageIndex: 1,
			strategy:   config.IterationStrategyReact,
			result: &agent.ExecutionResult{
				Status:        agent.ExecutionStatusCompleted,
				FinalAnalysis: "diagnosis output",
			},
		}
		results := []agentctx.StageResult{
			{StageID: "investigation", Output: "collected data"},
			{StageID: "diagnosis", Output: "diagnosis output"},
		}

		analysis, ok := finalAnalysisOf(twoStageChain, results, last)
		require.True(t, ok)
		assert.Equal(t, "diagnosis output", analysis)
	})

	t.Run("failed last stage falls back to earlier stage", func(t *testing.T) {
		last := &stageOutcome{
			stageIndex: 1,
			strategy:   config.IterationStrategyReact,
			result:     &agent.ExecutionResult{Status: agent.ExecutionStatusFailed},
		}
		results := []agentctx.StageResult{
			{StageID: "investigation", Output: "collected data"},
			{StageID: "diagnosis", Failed: true},
		}

		analysis, ok := finalAnalysisOf(twoStageChain, results, last)
		require.True(t, ok)
		assert.Equal(t, "collected data", analysis)
	})

	t.Run("all stages failed returns false", func(t *testing.T) {
		results := []agentctx.StageResult{
			{StageID: "investigation", Failed: true},
			{StageID: "diagnosis", Failed: true},
		}

		_, ok := finalAnalysisOf(twoStageChain, results, nil)
		assert.False(t, ok)
	})

	t.Run("resumed chain with nil last outcome uses recorded output", func(t *testing.T) {
		results := []agentctx.StageResult{
			{StageID: "investigation", Output: "from a previous run"},
			{StageID: "synthesis", Output: "restored synthesis"},
		}

		analysis, ok := finalAnalysisOf(twoStageChain, results, nil)
		require.True(t, ok)
		assert.Equal(t, "restored synthesis", analysis)
	})
}

func TestMapInterruption(t *testing.T) {
	executor := &RealSessionExecutor{}
	session := &ent.AlertSession{ID: "session-1"}
	chain := &config.ChainConfig{}

	t.Run("active context returns nil", func(t *testing.T) {
		result := executor.mapInterruption(context.Background(), session, chain, 0)
		assert.Nil(t, result)
	})

	t.Run("cancelled context returns cancelled status", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result := executor.mapInterruption(ctx, session, chain, 0)
		require.NotNil(t, result)
		assert.Equal(t, alertsession.StatusCancelled, result.Status)
		assert.ErrorIs(t, result.Error, context.Canceled)
	})

	t.Run("deadline exceeded returns timed_out status", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 0)
		defer cancel()
		<-ctx.Done()

		result := executor.mapInterruption(ctx, session, chain, 1)
		require.NotNil(t, result)
		assert.Equal(t, alertsession.StatusTimedOut, result.Status)
		assert.Contains(t, result.Error.Error(), "timed out")
	})
}
