package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/pkg/config"
)

// mockControllerFactory creates a controller that returns a preset result.
type mockControllerFactory struct {
	err error
}

func (m *mockControllerFactory) CreateController(strategy config.IterationStrategy, execCtx *ExecutionContext) (Controller, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &mockController{}, nil
}

type mockController struct{}

func (m *mockController) Run(ctx context.Context, execCtx *ExecutionContext, prevStageContext string) (*ExecutionResult, error) {
	return &ExecutionResult{Status: ExecutionStatusCompleted, FinalAnalysis: "mock"}, nil
}

func TestAgentFactory_CreateAgent(t *testing.T) {
	t.Run("creates agent successfully", func(t *testing.T) {
		factory := NewAgentFactory(&mockControllerFactory{})
		execCtx := &ExecutionContext{
			Config: &ResolvedAgentConfig{
				IterationStrategy: config.IterationStrategyReact,
			},
		}

		agent, err := factory.CreateAgent(execCtx)
		require.NoError(t, err)
		assert.IsType(t, &BaseAgent{}, agent)
	})

	t.Run("returns error on controller creation failure", func(t *testing.T) {
		factory := NewAgentFactory(&mockControllerFactory{err: errors.New("unsupported")})
		execCtx := &ExecutionContext{
			Config: &ResolvedAgentConfig{
				IterationStrategy: config.IterationStrategy("invalid"),
			},
		}

		_, err := factory.CreateAgent(execCtx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported")
	})

	t.Run("returns error when execCtx is nil", func(t *testing.T) {
		factory := NewAgentFactory(&mockControllerFactory{})

		_, err := factory.CreateAgent(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "execution context and config must not be nil")
	})

	t.Run("returns error when Config is nil", func(t *testing.T) {
		factory := NewAgentFactory(&mockControllerFactory{})
		execCtx := &ExecutionContext{
			Config: nil,
		}

		_, err := factory.CreateAgent(execCtx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "execution context and config must not be nil")
	})
}

func TestBaseAgent_Execute(t *testing.T) {
	execCtx := &ExecutionContext{
		Config: &ResolvedAgentConfig{IterationStrategy: config.IterationStrategyReact},
	}

	t.Run("returns controller result", func(t *testing.T) {
		agent := NewBaseAgent(&mockController{})
		result, err := agent.Execute(context.Background(), execCtx, "")
		require.NoError(t, err)
		assert.Equal(t, ExecutionStatusCompleted, result.Status)
		assert.Equal(t, "mock", result.FinalAnalysis)
	})

	t.Run("classifies deadline exceeded as timed out", func(t *testing.T) {
		agent := NewBaseAgent(&errController{err: context.DeadlineExceeded})
		result, err := agent.Execute(context.Background(), execCtx, "")
		require.NoError(t, err)
		assert.Equal(t, ExecutionStatusTimedOut, result.Status)
	})

	t.Run("classifies cancellation as cancelled", func(t *testing.T) {
		agent := NewBaseAgent(&errController{err: context.Canceled})
		result, err := agent.Execute(context.Background(), execCtx, "")
		require.NoError(t, err)
		assert.Equal(t, ExecutionStatusCancelled, result.Status)
	})

	t.Run("classifies other errors as failed", func(t *testing.T) {
		agent := NewBaseAgent(&errController{err: errors.New("llm exploded")})
		result, err := agent.Execute(context.Background(), execCtx, "")
		require.NoError(t, err)
		assert.Equal(t, ExecutionStatusFailed, result.Status)
		assert.ErrorContains(t, result.Error, "llm exploded")
	})

	t.Run("nil result without error is a failure", func(t *testing.T) {
		agent := NewBaseAgent(&errController{})
		result, err := agent.Execute(context.Background(), execCtx, "")
		require.NoError(t, err)
		assert.Equal(t, ExecutionStatusFailed, result.Status)
	})

	t.Run("paused result passes through unchanged", func(t *testing.T) {
		agent := NewBaseAgent(&pausedController{})
		result, err := agent.Execute(context.Background(), execCtx, "")
		require.NoError(t, err)
		assert.Equal(t, ExecutionStatusPaused, result.Status)
		assert.Equal(t, PauseReasonMaxIterations, result.PauseReason)
		assert.Equal(t, 20, result.CurrentIteration)
	})
}

// errController returns (nil, err); with a nil err it exercises the
// defensive nil-result path.
type errController struct{ err error }

func (c *errController) Run(ctx context.Context, execCtx *ExecutionContext, prevStageContext string) (*ExecutionResult, error) {
	return nil, c.err
}

type pausedController struct{}

func (c *pausedController) Run(ctx context.Context, execCtx *ExecutionContext, prevStageContext string) (*ExecutionResult, error) {
	return &ExecutionResult{
		Status:           ExecutionStatusPaused,
		PauseReason:      PauseReasonMaxIterations,
		CurrentIteration: 20,
	}, nil
}
