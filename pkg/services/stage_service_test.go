package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/models"
	testdb "github.com/tarsy-project/tarsy/test/database"
)

func TestStageService_CreateStageExecution(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := setupTestSessionService(t, client.Client)
	service := NewStageService(client.Client)
	ctx := context.Background()

	t.Run("creates pending execution with required fields", func(t *testing.T) {
		session := createTestSession(t, sessionService)

		execution, err := service.CreateStageExecution(ctx, models.CreateStageExecutionRequest{
			SessionID:  session.ID,
			StageID:    "investigation",
			StageIndex: 0,
			AgentName:  "KubernetesAgent",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, execution.ID)
		assert.Equal(t, session.ID, execution.SessionID)
		assert.Equal(t, "investigation", execution.StageID)
		assert.Equal(t, 0, execution.StageIndex)
		assert.Equal(t, "KubernetesAgent", execution.AgentName)
		assert.Equal(t, stageexecution.StatusPending, execution.Status)
		assert.Nil(t, execution.StartedAt)
		assert.Nil(t, execution.CompletedAt)
	})

	t.Run("records iteration strategy", func(t *testing.T) {
		session := createTestSession(t, sessionService)

		execution, err := service.CreateStageExecution(ctx, models.CreateStageExecutionRequest{
			SessionID:         session.ID,
			StageID:           "analysis",
			StageIndex:        0,
			AgentName:         "KubernetesAgent",
			IterationStrategy: config.IterationStrategyReactTools,
		})
		require.NoError(t, err)
		assert.Equal(t, string(config.IterationStrategyReactTools), execution.IterationStrategy)
	})

	t.Run("rejects unknown iteration strategy", func(t *testing.T) {
		session := createTestSession(t, sessionService)

		_, err := service.CreateStageExecution(ctx, models.CreateStageExecutionRequest{
			SessionID:         session.ID,
			StageID:           "analysis",
			StageIndex:        0,
			AgentName:         "KubernetesAgent",
			IterationStrategy: config.IterationStrategy("chain-of-doom"),
		})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "iteration_strategy", validationErr.Field)
	})

	t.Run("validates required fields", func(t *testing.T) {
		session := createTestSession(t, sessionService)

		tests := []struct {
			name  string
			req   models.CreateStageExecutionRequest
			field string
		}{
			{
				name:  "missing session_id",
				req:   models.CreateStageExecutionRequest{StageID: "s", StageIndex: 0, AgentName: "a"},
				field: "session_id",
			},
			{
				name:  "missing stage_id",
				req:   models.CreateStageExecutionRequest{SessionID: session.ID, StageIndex: 0, AgentName: "a"},
				field: "stage_id",
			},
			{
				name:  "negative stage_index",
				req:   models.CreateStageExecutionRequest{SessionID: session.ID, StageID: "s", StageIndex: -1, AgentName: "a"},
				field: "stage_index",
			},
			{
				name:  "missing agent_name",
				req:   models.CreateStageExecutionRequest{SessionID: session.ID, StageID: "s", StageIndex: 0},
				field: "agent_name",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateStageExecution(ctx, tt.req)
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.field, validationErr.Field)
			})
		}
	})

	t.Run("rejects duplicate stage index within a session", func(t *testing.T) {
		session := createTestSession(t, sessionService)
		createTestStageExecution(t, service, session.ID, 0)

		_, err := service.CreateStageExecution(ctx, models.CreateStageExecutionRequest{
			SessionID:  session.ID,
			StageID:    "investigation-retry",
			StageIndex: 0,
			AgentName:  "KubernetesAgent",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestStageService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := setupTestSessionService(t, client.Client)
	service := NewStageService(client.Client)
	ctx := context.Background()

	t.Run("start stamps started_at and activates", func(t *testing.T) {
		session := createTestSession(t, sessionService)
		execution := createTestStageExecution(t, service, session.ID, 0)

		require.NoError(t, service.StartStageExecution(ctx, execution.ID))

		updated, err := service.GetStageExecution(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, stageexecution.StatusActive, updated.Status)
		require.NotNil(t, updated.StartedAt)
		assert.WithinDuration(t, time.Now(), *updated.StartedAt, 5*time.Second)
	})

	t.Run("complete stores output and duration", func(t *testing.T) {
		session := createTestSession(t, sessionService)
		execution := createTestStageExecution(t, service, session.ID, 0)
		require.NoError(t, service.StartStageExecution(ctx, execution.ID))

		require.NoError(t, service.CompleteStageExecution(ctx, execution.ID, "pod OOMKilled, memory limit too low"))

		updated, err := service.GetStageExecution(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, stageexecution.StatusCompleted, updated.Status)
		require.NotNil(t, updated.StageOutput)
		assert.Equal(t, "pod OOMKilled, memory limit too low", *updated.StageOutput)
		require.NotNil(t, updated.CompletedAt)
		require.NotNil(t, updated.DurationMs)
		assert.GreaterOrEqual(t, *updated.DurationMs, 0)
	})

	t.Run("fail stores error message", func(t *testing.T) {
		session := createTestSession(t, sessionService)
		execution := createTestStageExecution(t, service, session.ID, 0)
		require.NoError(t, service.StartStageExecution(ctx, execution.ID))

		require.NoError(t, service.FailStageExecution(ctx, execution.ID, "LLM provider unavailable"))

		updated, err := service.GetStageExecution(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, stageexecution.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Equal(t, "LLM provider unavailable", *updated.ErrorMessage)
		assert.Nil(t, updated.StageOutput)
		require.NotNil(t, updated.CompletedAt)
	})

	t.Run("cancel finalizes without output or error", func(t *testing.T) {
		session := createTestSession(t, sessionService)
		execution := createTestStageExecution(t, service, session.ID, 0)
		require.NoError(t, service.StartStageExecution(ctx, execution.ID))

		require.NoError(t, service.CancelStageExecution(ctx, execution.ID))

		updated, err := service.GetStageExecution(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, stageexecution.StatusCancelled, updated.Status)
		assert.Nil(t, updated.StageOutput)
		assert.Nil(t, updated.ErrorMessage)
		require.NotNil(t, updated.CompletedAt)
	})

	t.Run("timeout records the budget error", func(t *testing.T) {
		session := createTestSession(t, sessionService)
		execution := createTestStageExecution(t, service, session.ID, 0)
		require.NoError(t, service.StartStageExecution(ctx, execution.ID))

		require.NoError(t, service.TimeoutStageExecution(ctx, execution.ID))

		updated, err := service.GetStageExecution(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, stageexecution.StatusTimedOut, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Equal(t, "session timeout exceeded", *updated.ErrorMessage)
	})

	t.Run("finalizing a never-started execution leaves duration unset", func(t *testing.T) {
		session := createTestSession(t, sessionService)
		execution := createTestStageExecution(t, service, session.ID, 0)

		require.NoError(t, service.CancelStageExecution(ctx, execution.ID))

		updated, err := service.GetStageExecution(ctx, execution.ID)
		require.NoError(t, err)
		assert.Nil(t, updated.DurationMs)
	})

	t.Run("missing execution returns not found", func(t *testing.T) {
		assert.ErrorIs(t, service.StartStageExecution(ctx, "nonexistent"), ErrNotFound)
		assert.ErrorIs(t, service.CompleteStageExecution(ctx, "nonexistent", "out"), ErrNotFound)
		assert.ErrorIs(t, service.FailStageExecution(ctx, "nonexistent", "err"), ErrNotFound)
		_, err := service.GetStageExecution(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStageService_PauseResume(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := setupTestSessionService(t, client.Client)
	service := NewStageService(client.Client)
	ctx := context.Background()

	t.Run("pause records the iteration to resume from", func(t *testing.T) {
		session := createTestSession(t, sessionService)
		execution := createTestStageExecution(t, service, session.ID, 0)
		require.NoError(t, service.StartStageExecution(ctx, execution.ID))

		require.NoError(t, service.PauseStageExecution(ctx, execution.ID, 7))

		updated, err := service.GetStageExecution(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, stageexecution.StatusPaused, updated.Status)
		assert.Equal(t, 7, updated.CurrentIteration)
		assert.Nil(t, updated.CompletedAt)
	})

	t.Run("resume reactivates a paused execution", func(t *testing.T) {
		session := createTestSession(t, sessionService)
		execution := createTestStageExecution(t, service, session.ID, 0)
		require.NoError(t, service.StartStageExecution(ctx, execution.ID))
		require.NoError(t, service.PauseStageExecution(ctx, execution.ID, 3))

		require.NoError(t, service.ResumeStageExecution(ctx, execution.ID))

		updated, err := service.GetStageExecution(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, stageexecution.StatusActive, updated.Status)
		assert.Equal(t, 3, updated.CurrentIteration)
	})

	t.Run("resume of a non-paused execution fails", func(t *testing.T) {
		session := createTestSession(t, sessionService)
		execution := createTestStageExecution(t, service, session.ID, 0)

		assert.ErrorIs(t, service.ResumeStageExecution(ctx, execution.ID), ErrNotFound)
	})

	t.Run("set current iteration tracks progress", func(t *testing.T) {
		session := createTestSession(t, sessionService)
		execution := createTestStageExecution(t, service, session.ID, 0)
		require.NoError(t, service.StartStageExecution(ctx, execution.ID))

		require.NoError(t, service.SetCurrentIteration(ctx, execution.ID, 2))

		updated, err := service.GetStageExecution(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, updated.CurrentIteration)
	})
}

func TestStageService_GetStageExecutions(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := setupTestSessionService(t, client.Client)
	service := NewStageService(client.Client)
	ctx := context.Background()

	session := createTestSession(t, sessionService)

	// Create out of order to verify stage_index ordering.
	for _, idx := range []int{2, 0, 1} {
		createTestStageExecution(t, service, session.ID, idx)
	}

	executions, err := service.GetStageExecutions(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, executions, 3)
	for i, exec := range executions {
		assert.Equal(t, i, exec.StageIndex)
	}
}

func TestStageService_GetStageResults(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := setupTestSessionService(t, client.Client)
	service := NewStageService(client.Client)
	ctx := context.Background()

	t.Run("maps completed and failed stages in chain order", func(t *testing.T) {
		session := createTestSession(t, sessionService)

		first, err := service.CreateStageExecution(ctx, models.CreateStageExecutionRequest{
			SessionID:  session.ID,
			StageID:    "data-collection",
			StageIndex: 0,
			AgentName:  "KubernetesAgent",
		})
		require.NoError(t, err)
		require.NoError(t, service.StartStageExecution(ctx, first.ID))
		require.NoError(t, service.CompleteStageExecution(ctx, first.ID, "collected pod events"))

		second, err := service.CreateStageExecution(ctx, models.CreateStageExecutionRequest{
			SessionID:  session.ID,
			StageID:    "analysis",
			StageIndex: 1,
			AgentName:  "KubernetesAgent",
		})
		require.NoError(t, err)
		require.NoError(t, service.StartStageExecution(ctx, second.ID))
		require.NoError(t, service.FailStageExecution(ctx, second.ID, "provider error"))

		results, err := service.GetStageResults(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, "data-collection", results[0].StageID)
		assert.False(t, results[0].Failed)
		assert.Equal(t, "collected pod events", results[0].Output)

		assert.Equal(t, "analysis", results[1].StageID)
		assert.True(t, results[1].Failed)
		assert.Empty(t, results[1].Output)
	})

	t.Run("cancelled and timed-out stages count as failed", func(t *testing.T) {
		session := createTestSession(t, sessionService)

		cancelled := createTestStageExecution(t, service, session.ID, 0)
		require.NoError(t, service.StartStageExecution(ctx, cancelled.ID))
		require.NoError(t, service.CancelStageExecution(ctx, cancelled.ID))

		timedOut, err := service.CreateStageExecution(ctx, models.CreateStageExecutionRequest{
			SessionID:  session.ID,
			StageID:    "analysis",
			StageIndex: 1,
			AgentName:  "KubernetesAgent",
		})
		require.NoError(t, err)
		require.NoError(t, service.StartStageExecution(ctx, timedOut.ID))
		require.NoError(t, service.TimeoutStageExecution(ctx, timedOut.ID))

		results, err := service.GetStageResults(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.True(t, results[0].Failed)
		assert.True(t, results[1].Failed)
	})

	t.Run("empty session yields no results", func(t *testing.T) {
		session := createTestSession(t, sessionService)

		results, err := service.GetStageResults(ctx, session.ID)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
