package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/pkg/agent"
	agentctx "github.com/tarsy-project/tarsy/pkg/agent/context"
	"github.com/tarsy-project/tarsy/pkg/agent/controller"
	"github.com/tarsy-project/tarsy/pkg/agent/prompt"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/events"
	"github.com/tarsy-project/tarsy/pkg/mcp"
	"github.com/tarsy-project/tarsy/pkg/models"
	"github.com/tarsy-project/tarsy/pkg/services"
)

// RunbookResolver resolves runbook content for a session. Implemented by
// runbook.Provider; defined here so the executor depends on behavior, not
// the runbook package.
type RunbookResolver interface {
	Resolve(ctx context.Context, runbookURL string) (string, error)
}

// RealSessionExecutor implements SessionExecutor using the agent framework.
type RealSessionExecutor struct {
	cfg            *config.Config
	llmClient      agent.LLMClient
	eventPublisher agent.EventPublisher
	agentFactory   *agent.AgentFactory
	promptBuilder  *prompt.Builder
	mcpFactory     *mcp.ClientFactory
	runbooks       RunbookResolver

	sessionService     *services.SessionService
	stageService       *services.StageService
	timelineService    *services.TimelineService
	interactionService *services.InteractionService
}

// NewRealSessionExecutor creates a new session executor.
// eventPublisher may be nil (streaming disabled).
// mcpFactory may be nil (MCP disabled — stages run with a stub tool executor).
// runbooks may be nil (agents receive no runbook content).
func NewRealSessionExecutor(
	cfg *config.Config,
	dbClient *ent.Client,
	llmClient agent.LLMClient,
	eventPublisher agent.EventPublisher,
	mcpFactory *mcp.ClientFactory,
	runbooks RunbookResolver,
) *RealSessionExecutor {
	return &RealSessionExecutor{
		cfg:                cfg,
		llmClient:          llmClient,
		eventPublisher:     eventPublisher,
		agentFactory:       agent.NewAgentFactory(controller.NewFactory()),
		promptBuilder:      prompt.NewBuilder(cfg.MCPServerRegistry),
		mcpFactory:         mcpFactory,
		runbooks:           runbooks,
		sessionService:     services.NewSessionService(dbClient),
		stageService:       services.NewStageService(dbClient),
		timelineService:    services.NewTimelineService(dbClient),
		interactionService: services.NewInteractionService(dbClient),
	}
}

// stageOutcome captures the result of running (or resuming) a single stage.
type stageOutcome struct {
	executionID string
	agentName   string
	stageIndex  int
	strategy    config.IterationStrategy
	result      *agent.ExecutionResult
}

// Execute runs the session through its chain, stage by stage.
//
// Stages run sequentially. A failed stage does not stop the chain: later
// stages see the failure in their cumulative context and the session can
// still complete. Pause, cancellation and session timeout do stop the chain.
// On resume, stages recorded as completed (or failed) in a previous run are
// skipped and a paused stage restarts from its recorded iteration.
func (e *RealSessionExecutor) Execute(ctx context.Context, session *ent.AlertSession) *ExecutionResult {
	logger := slog.With(
		"session_id", session.ID,
		"chain_id", session.ChainID,
		"alert_type", session.AlertType,
	)
	logger.Info("Session executor: starting execution")

	chain, err := e.cfg.GetChain(session.ChainID)
	if err != nil {
		logger.Error("Failed to resolve chain config", "error", err)
		return &ExecutionResult{
			Status: alertsession.StatusFailed,
			Error:  fmt.Errorf("chain %q not found: %w", session.ChainID, err),
		}
	}
	if len(chain.Stages) == 0 {
		return &ExecutionResult{
			Status: alertsession.StatusFailed,
			Error:  fmt.Errorf("chain %q has no stages", session.ChainID),
		}
	}

	// Prior stage executions, if any — present when this run is a resume.
	existing, err := e.stageService.GetStageExecutions(ctx, session.ID)
	if err != nil {
		return &ExecutionResult{
			Status: alertsession.StatusFailed,
			Error:  fmt.Errorf("loading stage executions: %w", err),
		}
	}
	recorded := make(map[int]*ent.StageExecution, len(existing))
	for _, exec := range existing {
		recorded[exec.StageIndex] = exec
	}

	var stageResults []agentctx.StageResult
	lastOutcome := (*stageOutcome)(nil)

	for i, stageCfg := range chain.Stages {
		if r := e.mapInterruption(ctx, session, chain, i); r != nil {
			return r
		}

		// Skip stages settled by a previous run. Failed stages are not
		// retried on resume — their absence is already baked into the
		// conversations recorded after them.
		if prior, ok := recorded[i]; ok && isSettled(prior.Status) {
			stageResults = append(stageResults, priorStageResult(prior))
			continue
		}

		prevContext := agentctx.BuildStageContext(stageResults)
		outcome := e.executeStage(ctx, session, chain, stageCfg, i, recorded[i], prevContext)
		lastOutcome = outcome

		switch outcome.result.Status {
		case agent.ExecutionStatusCompleted:
			stageResults = append(stageResults, agentctx.StageResult{
				StageID: stageCfg.Name,
				Output:  outcome.result.FinalAnalysis,
			})

		case agent.ExecutionStatusFailed:
			logger.Warn("Stage failed, continuing chain",
				"stage_id", stageCfg.Name, "error", outcome.result.Error)
			stageResults = append(stageResults, agentctx.StageResult{
				StageID: stageCfg.Name,
				Failed:  true,
			})

		case agent.ExecutionStatusPaused:
			if err := e.pauseSession(session, outcome); err != nil {
				logger.Error("Failed to record pause state", "error", err)
				return &ExecutionResult{
					Status: alertsession.StatusFailed,
					Error:  fmt.Errorf("recording pause state: %w", err),
				}
			}
			logger.Info("Session paused",
				"stage_id", stageCfg.Name,
				"reason", outcome.result.PauseReason,
				"current_iteration", outcome.result.CurrentIteration)
			return &ExecutionResult{Status: alertsession.StatusPaused}

		case agent.ExecutionStatusCancelled:
			e.cancelRemainingStages(session, chain, i+1)
			return &ExecutionResult{
				Status: alertsession.StatusCancelled,
				Error:  context.Canceled,
			}

		case agent.ExecutionStatusTimedOut:
			return &ExecutionResult{
				Status: alertsession.StatusTimedOut,
				Error:  fmt.Errorf("session timed out during stage %q", stageCfg.Name),
			}

		default:
			return &ExecutionResult{
				Status: alertsession.StatusFailed,
				Error:  fmt.Errorf("stage %q returned unexpected status %q", stageCfg.Name, outcome.result.Status),
			}
		}
	}

	finalAnalysis, ok := finalAnalysisOf(chain, stageResults, lastOutcome)
	if !ok {
		return &ExecutionResult{
			Status: alertsession.StatusFailed,
			Error:  errors.New("all stages failed, no analysis produced"),
		}
	}

	// Background context: the final analysis must land even if the session
	// context expired right at the end.
	if err := e.sessionService.SetFinalAnalysis(context.Background(), session.ID, finalAnalysis); err != nil {
		logger.Error("Failed to store final analysis", "error", err)
	}

	return &ExecutionResult{
		Status:        alertsession.StatusCompleted,
		FinalAnalysis: finalAnalysis,
	}
}

// executeStage runs one chain stage: stage record lifecycle, tool executor
// setup, agent construction and execution. Infrastructure failures are folded
// into a failed agent result so the chain loop has a single path to walk.
func (e *RealSessionExecutor) executeStage(
	ctx context.Context,
	session *ent.AlertSession,
	chain *config.ChainConfig,
	stageCfg config.StageConfig,
	stageIndex int,
	prior *ent.StageExecution,
	prevContext string,
) *stageOutcome {
	failed := func(err error) *stageOutcome {
		return &stageOutcome{
			agentName:  stageCfg.Agent,
			stageIndex: stageIndex,
			result:     &agent.ExecutionResult{Status: agent.ExecutionStatusFailed, Error: err},
		}
	}

	resolved, err := agent.ResolveAgentConfig(e.cfg, chain, stageCfg)
	if err != nil {
		out := failed(fmt.Errorf("resolving agent config: %w", err))
		e.recordOutcome(session, stageCfg, stageIndex, out)
		return out
	}

	// Stage record: reuse the paused row on resume, create otherwise.
	execCtx := &agent.ExecutionContext{
		SessionID:  session.ID,
		StageID:    stageCfg.Name,
		StageIndex: stageIndex,
		AgentName:  stageCfg.Agent,
		AlertData:  session.AlertData,
		AlertType:  session.AlertType,
		Config:     resolved,

		LLMClient:      e.llmClient,
		EventPublisher: e.eventPublisher,
		PromptBuilder:  e.promptBuilder,
		Services: &agent.ServiceBundle{
			Timeline:    e.timelineService,
			Interaction: e.interactionService,
			Stage:       e.stageService,
		},
		MCPRegistry: e.cfg.MCPServerRegistry,
		TotalStages: len(chain.Stages),
	}

	if prior != nil && prior.Status == stageexecution.StatusPaused {
		execCtx.ExecutionID = prior.ID
		if prior.CurrentIteration != nil {
			execCtx.StartIteration = *prior.CurrentIteration
		}
		restored, err := e.interactionService.RestoreConversation(ctx, prior.ID)
		if err != nil {
			return e.recordOutcome(session, stageCfg, stageIndex,
				failed(fmt.Errorf("restoring conversation: %w", err)))
		}
		execCtx.RestoredConversation = restored
		if err := e.stageService.ResumeStageExecution(ctx, prior.ID); err != nil {
			return e.recordOutcome(session, stageCfg, stageIndex,
				failed(fmt.Errorf("resuming stage execution: %w", err)))
		}
	} else {
		execution, err := e.stageService.CreateStageExecution(ctx, models.CreateStageExecutionRequest{
			SessionID:         session.ID,
			StageID:           stageCfg.Name,
			StageIndex:        stageIndex,
			AgentName:         stageCfg.Agent,
			IterationStrategy: resolved.IterationStrategy,
		})
		if err != nil {
			return e.recordOutcome(session, stageCfg, stageIndex,
				failed(fmt.Errorf("creating stage execution: %w", err)))
		}
		execCtx.ExecutionID = execution.ID
		if err := e.stageService.StartStageExecution(ctx, execution.ID); err != nil {
			return e.recordOutcome(session, stageCfg, stageIndex,
				failed(fmt.Errorf("starting stage execution: %w", err)))
		}
	}

	e.publishStageStatus(session.ID, execCtx, stageexecution.StatusActive)
	e.publishProgress(session.ID, stageCfg.Name, stageIndex, len(chain.Stages))
	if err := e.sessionService.UpdateCurrentStage(ctx, session.ID, stageIndex, stageCfg.Name); err != nil {
		slog.Warn("Failed to update current stage", "session_id", session.ID, "error", err)
	}

	// Per-stage tool executor, scoped to the stage's servers with the
	// session's mcp_selection override applied. Always closed before the
	// stage outcome is recorded.
	toolExec, failedServers, err := e.createToolExecutor(ctx, session, resolved)
	if err != nil {
		return e.recordOutcome(session, stageCfg, stageIndex, &stageOutcome{
			executionID: execCtx.ExecutionID,
			agentName:   stageCfg.Agent,
			stageIndex:  stageIndex,
			strategy:    resolved.IterationStrategy,
			result:      &agent.ExecutionResult{Status: agent.ExecutionStatusFailed, Error: err},
		})
	}
	defer func() {
		if err := toolExec.Close(); err != nil {
			slog.Warn("Failed to close tool executor", "session_id", session.ID, "error", err)
		}
	}()
	execCtx.ToolExecutor = toolExec
	execCtx.FailedServers = failedServers

	if tools, err := toolExec.ListTools(ctx); err != nil {
		slog.Warn("Failed to list tools for stage",
			"session_id", session.ID, "stage_id", stageCfg.Name, "error", err)
	} else {
		execCtx.AvailableTools = tools
	}

	execCtx.RunbookContent = e.resolveRunbook(ctx, session)

	a, err := e.agentFactory.CreateAgent(execCtx)
	if err != nil {
		return e.recordOutcome(session, stageCfg, stageIndex, &stageOutcome{
			executionID: execCtx.ExecutionID,
			agentName:   stageCfg.Agent,
			stageIndex:  stageIndex,
			strategy:    resolved.IterationStrategy,
			result:      &agent.ExecutionResult{Status: agent.ExecutionStatusFailed, Error: err},
		})
	}

	result, err := a.Execute(ctx, execCtx, prevContext)
	if err != nil {
		// Infrastructure failure with no meaningful result.
		result = &agent.ExecutionResult{Status: agent.ExecutionStatusFailed, Error: err}
	}

	return e.recordOutcome(session, stageCfg, stageIndex, &stageOutcome{
		executionID: execCtx.ExecutionID,
		agentName:   stageCfg.Agent,
		stageIndex:  stageIndex,
		strategy:    resolved.IterationStrategy,
		result:      result,
	})
}

// recordOutcome finalizes the stage record for the outcome and publishes the
// stage.completed event. Pause is recorded separately by pauseSession since
// it also touches the session row. Uses a background context so terminal
// stage writes survive session context cancellation.
func (e *RealSessionExecutor) recordOutcome(
	session *ent.AlertSession,
	stageCfg config.StageConfig,
	stageIndex int,
	outcome *stageOutcome,
) *stageOutcome {
	ctx := context.Background()

	if outcome.executionID != "" {
		var err error
		switch outcome.result.Status {
		case agent.ExecutionStatusCompleted:
			err = e.stageService.CompleteStageExecution(ctx, outcome.executionID, outcome.result.FinalAnalysis)
		case agent.ExecutionStatusFailed:
			msg := "stage failed"
			if outcome.result.Error != nil {
				msg = outcome.result.Error.Error()
			}
			err = e.stageService.FailStageExecution(ctx, outcome.executionID, msg)
		case agent.ExecutionStatusCancelled:
			err = e.stageService.CancelStageExecution(ctx, outcome.executionID)
		case agent.ExecutionStatusTimedOut:
			err = e.stageService.TimeoutStageExecution(ctx, outcome.executionID)
		case agent.ExecutionStatusPaused:
			// Recorded by pauseSession together with the session row.
		}
		if err != nil {
			slog.Error("Failed to finalize stage execution",
				"session_id", session.ID, "execution_id", outcome.executionID, "error", err)
		}
	}

	if status, terminal := stageStatusFor(outcome.result.Status); terminal {
		e.publishStageStatus(session.ID, &agent.ExecutionContext{
			StageID:     stageCfg.Name,
			StageIndex:  stageIndex,
			AgentName:   outcome.agentName,
			ExecutionID: outcome.executionID,
		}, status)
	}
	return outcome
}

// pauseSession records pause state: the stage keeps its current iteration for
// restart and the session row carries the pause metadata. Pod ownership is
// released so any pod can pick the session up after resume.
func (e *RealSessionExecutor) pauseSession(session *ent.AlertSession, outcome *stageOutcome) error {
	ctx := context.Background()

	if err := e.stageService.PauseStageExecution(ctx, outcome.executionID, outcome.result.CurrentIteration); err != nil {
		return err
	}

	meta := &models.PauseMetadata{
		Reason:           outcome.result.PauseReason,
		CurrentIteration: outcome.result.CurrentIteration,
		PausedAt:         time.Now().UTC(),
	}
	if outcome.result.Error != nil {
		meta.Message = outcome.result.Error.Error()
	}
	if err := e.sessionService.PauseSession(ctx, session.ID, meta); err != nil {
		return err
	}

	if e.eventPublisher != nil {
		_ = e.eventPublisher.PublishSessionLifecycle(ctx, session.ID, events.SessionLifecyclePayload{
			BasePayload: events.BasePayload{
				Type:      events.EventTypeSessionPaused,
				SessionID: session.ID,
				Timestamp: time.Now().Format(time.RFC3339Nano),
			},
			Status:      alertsession.StatusPaused,
			AlertType:   session.AlertType,
			ChainID:     session.ChainID,
			PauseReason: outcome.result.PauseReason,
		})
	}
	return nil
}

// cancelRemainingStages records cancelled stage rows for chain stages that
// never got to run, so the timeline shows the whole chain was cut short.
func (e *RealSessionExecutor) cancelRemainingStages(session *ent.AlertSession, chain *config.ChainConfig, from int) {
	ctx := context.Background()
	for i := from; i < len(chain.Stages); i++ {
		stageCfg := chain.Stages[i]
		execution, err := e.stageService.CreateStageExecution(ctx, models.CreateStageExecutionRequest{
			SessionID:  session.ID,
			StageID:    stageCfg.Name,
			StageIndex: i,
			AgentName:  stageCfg.Agent,
		})
		if err != nil {
			slog.Warn("Failed to record cancelled stage",
				"session_id", session.ID, "stage_id", stageCfg.Name, "error", err)
			continue
		}
		if err := e.stageService.CancelStageExecution(ctx, execution.ID); err != nil {
			slog.Warn("Failed to cancel stage record",
				"session_id", session.ID, "stage_id", stageCfg.Name, "error", err)
		}
	}
}

// mapInterruption checks the session context between stages. Cancellation
// marks the remaining stages; timeout leaves them untouched.
func (e *RealSessionExecutor) mapInterruption(ctx context.Context, session *ent.AlertSession, chain *config.ChainConfig, nextStage int) *ExecutionResult {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &ExecutionResult{
			Status: alertsession.StatusTimedOut,
			Error:  fmt.Errorf("session timed out before stage %d", nextStage),
		}
	case errors.Is(ctx.Err(), context.Canceled):
		e.cancelRemainingStages(session, chain, nextStage)
		return &ExecutionResult{
			Status: alertsession.StatusCancelled,
			Error:  context.Canceled,
		}
	}
	return nil
}

// createToolExecutor builds the per-stage tool executor. The session's
// mcp_selection override, when present, replaces the stage's server set and
// may narrow each server to specific tools. Without an MCP factory or servers
// the stage runs tool-less on a stub executor.
func (e *RealSessionExecutor) createToolExecutor(
	ctx context.Context,
	session *ent.AlertSession,
	resolved *agent.ResolvedAgentConfig,
) (agent.ToolExecutor, map[string]string, error) {
	serverIDs, toolFilter, err := resolveStageServers(session, resolved)
	if err != nil {
		return nil, nil, err
	}

	if e.mcpFactory == nil || len(serverIDs) == 0 {
		return agent.NewStubToolExecutor(nil), nil, nil
	}

	toolExec, client, err := e.mcpFactory.CreateToolExecutor(ctx, serverIDs, toolFilter)
	if err != nil {
		return nil, nil, fmt.Errorf("creating tool executor: %w", err)
	}
	return toolExec, client.FailedServers(), nil
}

// resolveStageServers decides which MCP servers (and tools) a stage may use.
// The session's mcp_selection override replaces the stage's server set.
func resolveStageServers(session *ent.AlertSession, resolved *agent.ResolvedAgentConfig) ([]string, map[string][]string, error) {
	selection, err := models.ParseMCPSelectionConfig(session.McpSelection)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing mcp_selection: %w", err)
	}
	if selection == nil {
		return resolved.MCPServers, nil, nil
	}

	serverIDs := make([]string, 0, len(selection.Servers))
	toolFilter := make(map[string][]string, len(selection.Servers))
	for _, srv := range selection.Servers {
		serverIDs = append(serverIDs, srv.Name)
		if len(srv.Tools) > 0 {
			toolFilter[srv.Name] = srv.Tools
		}
	}
	return serverIDs, toolFilter, nil
}

// resolveRunbook fetches the session's runbook content. Fail-open: an
// unreachable runbook degrades the investigation, it does not fail it.
func (e *RealSessionExecutor) resolveRunbook(ctx context.Context, session *ent.AlertSession) string {
	if e.runbooks == nil {
		return ""
	}
	url := ""
	if session.RunbookURL != nil {
		url = *session.RunbookURL
	}
	content, err := e.runbooks.Resolve(ctx, url)
	if err != nil {
		slog.Warn("Failed to resolve runbook, continuing without it",
			"session_id", session.ID, "runbook_url", url, "error", err)
		return ""
	}
	return content
}

// publishStageStatus publishes a stage lifecycle event. Active maps to
// stage.started, terminal statuses to stage.completed.
func (e *RealSessionExecutor) publishStageStatus(sessionID string, execCtx *agent.ExecutionContext, status stageexecution.Status) {
	if e.eventPublisher == nil {
		return
	}
	eventType := events.EventTypeStageCompleted
	if status == stageexecution.StatusActive {
		eventType = events.EventTypeStageStarted
	}
	if err := e.eventPublisher.PublishStageStatus(context.Background(), sessionID, events.StageStatusPayload{
		BasePayload: events.BasePayload{
			Type:      eventType,
			SessionID: sessionID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		ExecutionID: execCtx.ExecutionID,
		StageID:     execCtx.StageID,
		StageIndex:  execCtx.StageIndex,
		AgentName:   execCtx.AgentName,
		Status:      status,
	}); err != nil {
		slog.Warn("Failed to publish stage status",
			"session_id", sessionID, "stage_id", execCtx.StageID, "error", err)
	}
}

// publishProgress emits a transient session.progress event for dashboards.
func (e *RealSessionExecutor) publishProgress(sessionID, stageID string, stageIndex, totalStages int) {
	if e.eventPublisher == nil {
		return
	}
	if err := e.eventPublisher.PublishSessionProgress(context.Background(), events.SessionProgressPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeSessionProgress,
			SessionID: sessionID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		CurrentStageID:    stageID,
		CurrentStageIndex: stageIndex,
		TotalStages:       totalStages,
		StatusText:        fmt.Sprintf("Stage %d/%d: %s", stageIndex+1, totalStages, stageID),
	}); err != nil {
		slog.Warn("Failed to publish session progress",
			"session_id", sessionID, "stage_id", stageID, "error", err)
	}
}

// isSettled reports whether a prior run already decided this stage.
// Paused stages restart; pending/active rows belong to a run that was
// orphan-recovered and are superseded by a fresh row.
func isSettled(status stageexecution.Status) bool {
	switch status {
	case stageexecution.StatusCompleted,
		stageexecution.StatusFailed,
		stageexecution.StatusCancelled,
		stageexecution.StatusTimedOut:
		return true
	}
	return false
}

// priorStageResult converts a recorded stage execution into the cumulative
// context entry a resumed run hands to later stages.
func priorStageResult(exec *ent.StageExecution) agentctx.StageResult {
	result := agentctx.StageResult{StageID: exec.StageID}
	if exec.Status == stageexecution.StatusCompleted {
		if exec.StageOutput != nil {
			result.Output = *exec.StageOutput
		}
	} else {
		result.Failed = true
	}
	return result
}

// stageStatusFor maps an agent execution status to the stage record status
// published in stage.completed events. Paused is not terminal.
func stageStatusFor(status agent.ExecutionStatus) (stageexecution.Status, bool) {
	switch status {
	case agent.ExecutionStatusCompleted:
		return stageexecution.StatusCompleted, true
	case agent.ExecutionStatusFailed:
		return stageexecution.StatusFailed, true
	case agent.ExecutionStatusCancelled:
		return stageexecution.StatusCancelled, true
	case agent.ExecutionStatusTimedOut:
		return stageexecution.StatusTimedOut, true
	}
	return "", false
}

// finalAnalysisOf picks the session's final analysis: the synthesis stage's
// output when the chain ends in one, otherwise the last successful stage's
// output. Returns false when every stage failed.
func finalAnalysisOf(chain *config.ChainConfig, results []agentctx.StageResult, last *stageOutcome) (string, bool) {
	if last != nil &&
		last.stageIndex == len(chain.Stages)-1 &&
		last.strategy == config.IterationStrategyReactFinalAnalysis &&
		last.result.Status == agent.ExecutionStatusCompleted {
		return last.result.FinalAnalysis, true
	}
	for i := len(results) - 1; i >= 0; i-- {
		if !results[i].Failed {
			return results[i].Output, true
		}
	}
	return "", false
}
