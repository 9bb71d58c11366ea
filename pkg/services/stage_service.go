package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// StageService manages stage execution lifecycle. One row per chain stage
// run within a session; (session_id, stage_index) is unique.
type StageService struct {
	client *ent.Client
}

// NewStageService creates a new StageService
func NewStageService(client *ent.Client) *StageService {
	return &StageService{client: client}
}

// CreateStageExecution creates a stage execution in pending status.
func (s *StageService) CreateStageExecution(httpCtx context.Context, req models.CreateStageExecutionRequest) (*ent.StageExecution, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.StageID == "" {
		return nil, NewValidationError("stage_id", "required")
	}
	if req.StageIndex < 0 {
		return nil, NewValidationError("stage_index", "must be non-negative")
	}
	if req.AgentName == "" {
		return nil, NewValidationError("agent_name", "required")
	}
	if req.IterationStrategy != "" && !req.IterationStrategy.IsValid() {
		return nil, NewValidationError("iteration_strategy", fmt.Sprintf("invalid strategy: %s", req.IterationStrategy))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	execution, err := s.client.StageExecution.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetStageID(req.StageID).
		SetStageIndex(req.StageIndex).
		SetAgentName(req.AgentName).
		SetIterationStrategy(string(req.IterationStrategy)).
		SetStatus(stageexecution.StatusPending).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create stage execution: %w", err)
	}

	return execution, nil
}

// StartStageExecution moves a stage execution to active and stamps started_at.
func (s *StageService) StartStageExecution(ctx context.Context, executionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.StageExecution.UpdateOneID(executionID).
		SetStatus(stageexecution.StatusActive).
		SetStartedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to start stage execution: %w", err)
	}
	return nil
}

// CompleteStageExecution finalizes a successful stage with its output.
func (s *StageService) CompleteStageExecution(ctx context.Context, executionID string, output string) error {
	return s.finalize(ctx, executionID, stageexecution.StatusCompleted, output, "")
}

// FailStageExecution finalizes a failed stage with its error message.
func (s *StageService) FailStageExecution(ctx context.Context, executionID string, errorMsg string) error {
	return s.finalize(ctx, executionID, stageexecution.StatusFailed, "", errorMsg)
}

// CancelStageExecution finalizes a stage cut short by session cancellation.
func (s *StageService) CancelStageExecution(ctx context.Context, executionID string) error {
	return s.finalize(ctx, executionID, stageexecution.StatusCancelled, "", "")
}

// TimeoutStageExecution finalizes a stage cut short by the session budget.
func (s *StageService) TimeoutStageExecution(ctx context.Context, executionID string) error {
	return s.finalize(ctx, executionID, stageexecution.StatusTimedOut, "", "session timeout exceeded")
}

func (s *StageService) finalize(ctx context.Context, executionID string, status stageexecution.Status, output, errorMsg string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	execution, err := s.client.StageExecution.Get(writeCtx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get stage execution: %w", err)
	}

	now := time.Now()
	update := s.client.StageExecution.UpdateOneID(executionID).
		SetStatus(status).
		SetCompletedAt(now)

	if execution.StartedAt != nil {
		update = update.SetDurationMs(int(now.Sub(*execution.StartedAt).Milliseconds()))
	}
	if output != "" {
		update = update.SetStageOutput(output)
	}
	if errorMsg != "" {
		update = update.SetErrorMessage(errorMsg)
	}

	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to finalize stage execution: %w", err)
	}
	return nil
}

// PauseStageExecution marks a stage paused at the given iteration so resume
// can restart it from there.
func (s *StageService) PauseStageExecution(ctx context.Context, executionID string, currentIteration int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.StageExecution.UpdateOneID(executionID).
		SetStatus(stageexecution.StatusPaused).
		SetCurrentIteration(currentIteration).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to pause stage execution: %w", err)
	}
	return nil
}

// ResumeStageExecution reactivates a paused stage on a new (or the same) pod.
func (s *StageService) ResumeStageExecution(ctx context.Context, executionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.StageExecution.Update().
		Where(
			stageexecution.IDEQ(executionID),
			stageexecution.StatusEQ(stageexecution.StatusPaused),
		).
		SetStatus(stageexecution.StatusActive).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to resume stage execution: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// SetCurrentIteration records iteration progress during a stage run.
func (s *StageService) SetCurrentIteration(ctx context.Context, executionID string, iteration int) error {
	err := s.client.StageExecution.UpdateOneID(executionID).
		SetCurrentIteration(iteration).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set current iteration: %w", err)
	}
	return nil
}

// GetStageExecution retrieves a stage execution by ID.
func (s *StageService) GetStageExecution(ctx context.Context, executionID string) (*ent.StageExecution, error) {
	execution, err := s.client.StageExecution.Get(ctx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get stage execution: %w", err)
	}
	return execution, nil
}

// GetStageExecutions retrieves a session's stage executions in chain order.
func (s *StageService) GetStageExecutions(ctx context.Context, sessionID string) ([]*ent.StageExecution, error) {
	executions, err := s.client.StageExecution.Query().
		Where(stageexecution.SessionIDEQ(sessionID)).
		Order(ent.Asc(stageexecution.FieldStageIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stage executions: %w", err)
	}
	return executions, nil
}

// GetStageResults builds the cumulative context handed to later stages:
// one result per recorded stage, in chain order. Failed (or cancelled or
// timed out) stages contribute an empty output and Failed=true.
func (s *StageService) GetStageResults(ctx context.Context, sessionID string) ([]models.StageResult, error) {
	executions, err := s.GetStageExecutions(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	results := make([]models.StageResult, 0, len(executions))
	for _, exec := range executions {
		result := models.StageResult{StageID: exec.StageID}
		switch exec.Status {
		case stageexecution.StatusCompleted:
			if exec.StageOutput != nil {
				result.Output = *exec.StageOutput
			}
		default:
			result.Failed = true
		}
		results = append(results, result)
	}
	return results, nil
}
