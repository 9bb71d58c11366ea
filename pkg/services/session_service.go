package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// SessionService manages alert session lifecycle
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// terminalStatuses are statuses no further lifecycle transition may leave.
var terminalStatuses = []alertsession.Status{
	alertsession.StatusCompleted,
	alertsession.StatusFailed,
	alertsession.StatusCancelled,
	alertsession.StatusTimedOut,
}

// IsTerminalStatus reports whether a session status is terminal.
func IsTerminalStatus(status alertsession.Status) bool {
	for _, s := range terminalStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// CreateSession creates a new alert session in pending status. Stage
// executions are created later by the chain executor as each stage starts.
func (s *SessionService) CreateSession(httpCtx context.Context, req models.CreateSessionRequest) (*ent.AlertSession, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.AlertData == "" {
		return nil, NewValidationError("alert_data", "required")
	}
	if req.AlertType == "" {
		return nil, NewValidationError("alert_type", "required")
	}
	if req.Fingerprint == "" {
		return nil, NewValidationError("fingerprint", "required")
	}
	if req.ChainID == "" {
		return nil, NewValidationError("chain_id", "required")
	}

	// Critical write: survive caller disconnects.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.AlertSession.Create().
		SetID(req.SessionID).
		SetAlertData(req.AlertData).
		SetAlertType(req.AlertType).
		SetFingerprint(req.Fingerprint).
		SetChainID(req.ChainID).
		SetStatus(alertsession.StatusPending)

	if req.Author != "" {
		builder.SetAuthor(req.Author)
	}
	if req.RunbookURL != "" {
		builder.SetRunbookURL(req.RunbookURL)
	}
	if req.MCPSelection != nil {
		mcpJSON, err := mcpSelectionToMap(req.MCPSelection)
		if err != nil {
			return nil, err
		}
		builder.SetMcpSelection(mcpJSON)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// GetSession retrieves a session by ID with optional edge loading
func (s *SessionService) GetSession(ctx context.Context, sessionID string, withEdges bool) (*ent.AlertSession, error) {
	query := s.client.AlertSession.Query().Where(alertsession.IDEQ(sessionID))

	if withEdges {
		query = query.WithStageExecutions(func(q *ent.StageExecutionQuery) {
			q.Order(ent.Asc(stageexecution.FieldStageIndex))
		})
	}

	session, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// ListSessions lists sessions with filtering and pagination
func (s *SessionService) ListSessions(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error) {
	query := s.client.AlertSession.Query()

	if filters.Status != "" {
		query = query.Where(alertsession.StatusEQ(alertsession.Status(filters.Status)))
	}
	if filters.AlertType != "" {
		query = query.Where(alertsession.AlertTypeEQ(filters.AlertType))
	}
	if filters.ChainID != "" {
		query = query.Where(alertsession.ChainIDEQ(filters.ChainID))
	}
	if filters.Author != "" {
		query = query.Where(alertsession.AuthorEQ(filters.Author))
	}
	if filters.StartedAfter != nil {
		query = query.Where(alertsession.CreatedAtGTE(*filters.StartedAfter))
	}
	if filters.StartedBefore != nil {
		query = query.Where(alertsession.CreatedAtLT(*filters.StartedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(alertsession.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(alertsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateSessionStatus transitions a session's status. Terminal statuses set
// completed_at; a session already in a terminal status is left untouched so
// late writers (timeout vs. cancellation races) cannot clobber the outcome.
func (s *SessionService) UpdateSessionStatus(ctx context.Context, sessionID string, status alertsession.Status, errorMsg string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.AlertSession.Update().
		Where(
			alertsession.IDEQ(sessionID),
			alertsession.StatusNotIn(terminalStatuses...),
		).
		SetStatus(status).
		SetLastInteractionAt(time.Now())

	if IsTerminalStatus(status) {
		update = update.SetCompletedAt(time.Now())
	}
	if errorMsg != "" {
		update = update.SetErrorMessage(errorMsg)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update session status: %w", err)
	}
	if count == 0 {
		exists, err := s.client.AlertSession.Query().
			Where(alertsession.IDEQ(sessionID)).
			Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check session existence: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		// Already terminal: idempotent no-op.
	}

	return nil
}

// SetFinalAnalysis stores the synthesized investigation result.
func (s *SessionService) SetFinalAnalysis(ctx context.Context, sessionID string, analysis string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.AlertSession.UpdateOneID(sessionID).
		SetFinalAnalysis(analysis).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set final analysis: %w", err)
	}
	return nil
}

// UpdateCurrentStage records which chain stage the session is working on.
func (s *SessionService) UpdateCurrentStage(ctx context.Context, sessionID string, stageIndex int, stageID string) error {
	err := s.client.AlertSession.UpdateOneID(sessionID).
		SetCurrentStageIndex(stageIndex).
		SetCurrentStageID(stageID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update current stage: %w", err)
	}
	return nil
}

// PauseSession moves an in-progress session to paused with pause metadata.
// The pod releases ownership: paused sessions are resumable from any pod and
// exempt from orphan recovery.
func (s *SessionService) PauseSession(ctx context.Context, sessionID string, meta *models.PauseMetadata) error {
	if meta == nil {
		return NewValidationError("pause_metadata", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.AlertSession.Update().
		Where(
			alertsession.IDEQ(sessionID),
			alertsession.StatusEQ(alertsession.StatusInProgress),
		).
		SetStatus(alertsession.StatusPaused).
		SetPauseMetadata(meta.ToMap()).
		SetLastInteractionAt(time.Now()).
		ClearPodID().
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to pause session: %w", err)
	}
	if count == 0 {
		return s.transitionConflict(writeCtx, sessionID, "in_progress")
	}
	return nil
}

// ResumeSession re-queues a paused session: clears pause metadata and pod
// ownership and resets status to pending so any pod may claim it. The
// executor skips completed stages and restarts the paused one.
func (s *SessionService) ResumeSession(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.AlertSession.Update().
		Where(
			alertsession.IDEQ(sessionID),
			alertsession.StatusEQ(alertsession.StatusPaused),
		).
		SetStatus(alertsession.StatusPending).
		ClearPauseMetadata().
		ClearPodID().
		SetLastInteractionAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to resume session: %w", err)
	}
	if count == 0 {
		return s.transitionConflict(writeCtx, sessionID, "paused")
	}
	return nil
}

// MarkCancelling flags an active session for cooperative cancellation. The
// owning pod observes the cancellation event and winds the session down.
func (s *SessionService) MarkCancelling(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.AlertSession.Update().
		Where(
			alertsession.IDEQ(sessionID),
			alertsession.StatusIn(
				alertsession.StatusPending,
				alertsession.StatusInProgress,
				alertsession.StatusPaused,
			),
		).
		SetStatus(alertsession.StatusCancelling).
		SetLastInteractionAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark session cancelling: %w", err)
	}
	if count == 0 {
		return s.transitionConflict(writeCtx, sessionID, "pending, in_progress or paused")
	}
	return nil
}

// transitionConflict distinguishes "session missing" from "wrong status" for
// conditional updates that matched zero rows.
func (s *SessionService) transitionConflict(ctx context.Context, sessionID, wanted string) error {
	session, err := s.client.AlertSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get session: %w", err)
	}
	return NewValidationError("status", fmt.Sprintf("session is %s, expected %s", session.Status, wanted))
}

// ClaimNextPendingSession atomically claims the oldest pending session for
// this pod using FOR UPDATE SKIP LOCKED, so concurrent replicas never fight
// over the same row. Returns nil when no pending session exists.
func (s *SessionService) ClaimNextPendingSession(ctx context.Context, podID string) (*ent.AlertSession, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	session, err := tx.AlertSession.Query().
		Where(
			alertsession.StatusEQ(alertsession.StatusPending),
			alertsession.DeletedAtIsNil(),
		).
		Order(ent.Asc(alertsession.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // Nothing pending
		}
		return nil, fmt.Errorf("failed to query pending session: %w", err)
	}

	now := time.Now()
	update := tx.AlertSession.UpdateOneID(session.ID).
		SetStatus(alertsession.StatusInProgress).
		SetPodID(podID).
		SetLastInteractionAt(now)
	if session.StartedAt == nil {
		update = update.SetStartedAt(now)
	}

	session, err = update.Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return session, nil
}

// CountActiveSessions counts in-progress sessions across all pods. The worker
// pool checks this against MaxConcurrentSessions before each claim.
func (s *SessionService) CountActiveSessions(ctx context.Context) (int, error) {
	count, err := s.client.AlertSession.Query().
		Where(alertsession.StatusEQ(alertsession.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active sessions: %w", err)
	}
	return count, nil
}

// Heartbeat refreshes session liveness while a worker is processing it.
// Scoped to pod_id so a pod that lost ownership cannot revive the session.
func (s *SessionService) Heartbeat(ctx context.Context, sessionID, podID string) error {
	count, err := s.client.AlertSession.Update().
		Where(
			alertsession.IDEQ(sessionID),
			alertsession.PodIDEQ(podID),
		).
		SetLastInteractionAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat session: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// FindOrphanedSessions finds sessions that look abandoned: still marked
// in_progress (or paused with a stale owner), owned by a different pod, with
// no heartbeat since the threshold. Paused sessions without an owner are
// resumable and deliberately excluded by the pod_id predicate.
func (s *SessionService) FindOrphanedSessions(ctx context.Context, currentPodID string, staleAfter time.Duration) ([]*ent.AlertSession, error) {
	threshold := time.Now().Add(-staleAfter)

	sessions, err := s.client.AlertSession.Query().
		Where(
			alertsession.StatusIn(alertsession.StatusInProgress, alertsession.StatusPaused),
			alertsession.PodIDNotNil(),
			alertsession.PodIDNEQ(currentPodID),
			alertsession.LastInteractionAtNotNil(),
			alertsession.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned sessions: %w", err)
	}

	return sessions, nil
}

// FindStaleSessionsForPod finds in-progress sessions still stamped with this
// pod's ID. Run at startup: anything found was abandoned by an unclean
// restart of this same pod.
func (s *SessionService) FindStaleSessionsForPod(ctx context.Context, podID string) ([]*ent.AlertSession, error) {
	sessions, err := s.client.AlertSession.Query().
		Where(
			alertsession.StatusEQ(alertsession.StatusInProgress),
			alertsession.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find stale sessions: %w", err)
	}
	return sessions, nil
}

// MarkSessionOrphaned fails an abandoned session and clears any pause
// metadata so the invariant (pause_metadata set iff paused) holds.
func (s *SessionService) MarkSessionOrphaned(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.AlertSession.UpdateOneID(sessionID).
		SetStatus(alertsession.StatusFailed).
		SetErrorMessage("orphaned: previous worker lost").
		SetCompletedAt(time.Now()).
		ClearPauseMetadata().
		ClearPodID().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark session orphaned: %w", err)
	}
	return nil
}

// SoftDeleteOldSessions soft deletes terminal sessions older than the
// retention period.
func (s *SessionService) SoftDeleteOldSessions(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.AlertSession.Update().
		Where(
			alertsession.CompletedAtLT(cutoff),
			alertsession.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete sessions: %w", err)
	}

	return count, nil
}

// HardDeleteSessions permanently removes sessions soft-deleted before the
// cutoff. Child rows (stages, interactions, timeline, events) go with them
// via ON DELETE CASCADE.
func (s *SessionService) HardDeleteSessions(ctx context.Context, deletedBefore time.Time) (int, error) {
	deleteCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	count, err := s.client.AlertSession.Delete().
		Where(
			alertsession.DeletedAtNotNil(),
			alertsession.DeletedAtLT(deletedBefore),
		).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to hard delete sessions: %w", err)
	}

	return count, nil
}

// RestoreSession restores a soft-deleted session
func (s *SessionService) RestoreSession(ctx context.Context, sessionID string) error {
	restoreCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.AlertSession.UpdateOneID(sessionID).
		ClearDeletedAt().
		Exec(restoreCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}

	return nil
}

// PauseMetadataOf decodes a session's stored pause metadata, or nil.
func PauseMetadataOf(session *ent.AlertSession) *models.PauseMetadata {
	return models.PauseMetadataFromMap(session.PauseMetadata)
}

// SearchSessions performs full-text search on alert_data and final_analysis
func (s *SessionService) SearchSessions(ctx context.Context, query string, limit int) ([]*ent.AlertSession, error) {
	if limit <= 0 {
		limit = 20
	}

	sessions, err := s.client.AlertSession.Query().
		Where(alertsession.DeletedAtIsNil()).
		Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.ExprP("to_tsvector('english', alert_data) @@ plainto_tsquery($1)", query),
				sql.ExprP("to_tsvector('english', COALESCE(final_analysis, '')) @@ plainto_tsquery($2)", query),
			))
		}).
		Limit(limit).
		Order(ent.Desc(alertsession.FieldCreatedAt)).
		All(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to search sessions: %w", err)
	}

	return sessions, nil
}
