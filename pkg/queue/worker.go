package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/events"
	"github.com/tarsy-project/tarsy/pkg/metrics"
	"github.com/tarsy-project/tarsy/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes sessions.
type Worker struct {
	id              string
	podID           string
	config          *config.QueueConfig
	sessionExecutor SessionExecutor
	sessionService  *services.SessionService
	alertService    *services.AlertService
	eventService    *services.EventService
	eventPublisher  agent.EventPublisher
	pool            SessionRegistry
	stopCh          chan struct{}
	stopOnce        sync.Once
	wg              sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentSessionID  string
	sessionsProcessed int
	lastActivity      time.Time
}

// SessionRegistry is the subset of WorkerPool used by Worker for session registration.
type SessionRegistry interface {
	RegisterSession(sessionID string, cancel context.CancelFunc)
	UnregisterSession(sessionID string)
}

// WorkerDeps groups the shared dependencies handed to each worker by the pool.
// eventPublisher may be nil (streaming disabled).
// alertService may be nil (no in-flight fingerprint tracking, e.g. in tests).
type WorkerDeps struct {
	SessionService *services.SessionService
	AlertService   *services.AlertService
	EventService   *services.EventService
	EventPublisher agent.EventPublisher
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, cfg *config.QueueConfig, executor SessionExecutor, pool SessionRegistry, deps WorkerDeps) *Worker {
	return &Worker{
		id:              id,
		podID:           podID,
		config:          cfg,
		sessionExecutor: executor,
		sessionService:  deps.SessionService,
		alertService:    deps.AlertService,
		eventService:    deps.EventService,
		eventPublisher:  deps.EventPublisher,
		pool:            pool,
		stopCh:          make(chan struct{}),
		status:          WorkerStatusIdle,
		lastActivity:    time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            string(w.status),
		CurrentSessionID:  w.currentSessionID,
		SessionsProcessed: w.sessionsProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoSessionsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing session", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a session, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.sessionService.CountActiveSessions(ctx)
	if err != nil {
		return fmt.Errorf("checking active sessions: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentSessions {
		return ErrAtCapacity
	}

	// 2. Claim next session (FOR UPDATE SKIP LOCKED inside the service)
	session, err := w.sessionService.ClaimNextPendingSession(ctx, w.podID)
	if err != nil {
		return fmt.Errorf("claiming session: %w", err)
	}
	if session == nil {
		return ErrNoSessionsAvailable
	}

	log := slog.With("session_id", session.ID, "worker_id", w.id)
	log.Info("Session claimed")

	// Publish session.started to the session and global channels
	w.publishLifecycle(ctx, session, alertsession.StatusInProgress, "")

	w.setStatus(WorkerStatusWorking, session.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	metrics.Default().SessionStarted()
	defer metrics.Default().SessionEnded()

	// 3. Create session context with timeout
	sessionCtx, cancelSession := context.WithTimeout(ctx, w.config.SessionTimeout)
	defer cancelSession()

	// 4. Register cancel function for cancellation requests routed to this pod
	w.pool.RegisterSession(session.ID, cancelSession)
	defer w.pool.UnregisterSession(session.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(sessionCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, session.ID)

	// 6. Execute session
	result := w.sessionExecutor.Execute(sessionCtx, session)

	// 6a. Nil-guard: synthesize a safe result if executor returned nil
	if result == nil {
		switch {
		case errors.Is(sessionCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status: alertsession.StatusTimedOut,
				Error:  fmt.Errorf("session timed out after %v", w.config.SessionTimeout),
			}
		case errors.Is(sessionCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status: alertsession.StatusCancelled,
				Error:  context.Canceled,
			}
		default:
			result = &ExecutionResult{
				Status: alertsession.StatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}

	// 7. Handle timeout
	if result.Status == "" && errors.Is(sessionCtx.Err(), context.DeadlineExceeded) {
		result = &ExecutionResult{
			Status: alertsession.StatusTimedOut,
			Error:  fmt.Errorf("session timed out after %v", w.config.SessionTimeout),
		}
	}

	// 8. Handle cancellation
	if result.Status == "" && errors.Is(sessionCtx.Err(), context.Canceled) {
		result = &ExecutionResult{
			Status: alertsession.StatusCancelled,
			Error:  context.Canceled,
		}
	}

	// 9. Stop heartbeat
	cancelHeartbeat()

	// 10. Finalize. Paused is non-terminal: the executor already recorded
	// pause metadata and released pod ownership; the fingerprint stays held
	// so duplicate alerts keep deduplicating against this session.
	if result.Status == alertsession.StatusPaused {
		w.mu.Lock()
		w.sessionsProcessed++
		w.mu.Unlock()
		log.Info("Session paused, awaiting resume")
		return nil
	}

	// Terminal status update (background context — session ctx may be cancelled)
	if err := w.finalizeSession(context.Background(), session, result); err != nil {
		log.Error("Failed to finalize session", "error", err)
		return err
	}

	// 11. Cleanup durable events after a grace period so clients receive
	// the final events before the rows are deleted.
	w.scheduleEventCleanup(session.ID)

	w.mu.Lock()
	w.sessionsProcessed++
	w.mu.Unlock()

	log.Info("Session processing complete", "status", result.Status)
	return nil
}

// runHeartbeat periodically refreshes last_interaction_at for orphan detection.
// Scoped to this pod's ownership: if the session was re-assigned, the
// heartbeat write matches zero rows and is reported as not-found.
func (w *Worker) runHeartbeat(ctx context.Context, sessionID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.sessionService.Heartbeat(ctx, sessionID, w.podID); err != nil {
				slog.Warn("Heartbeat update failed", "session_id", sessionID, "error", err)
			}
		}
	}
}

// finalizeSession writes the terminal status, publishes the lifecycle event
// and releases the in-flight fingerprint.
func (w *Worker) finalizeSession(ctx context.Context, session *ent.AlertSession, result *ExecutionResult) error {
	errMsg := ""
	if result.Error != nil {
		errMsg = result.Error.Error()
	}

	if err := w.sessionService.UpdateSessionStatus(ctx, session.ID, result.Status, errMsg); err != nil {
		return fmt.Errorf("updating terminal status: %w", err)
	}
	metrics.Default().SessionFinished(string(result.Status))

	w.publishLifecycle(ctx, session, result.Status, errMsg)

	if w.alertService != nil {
		w.alertService.ReleaseFingerprint(session.Fingerprint)
	}
	return nil
}

// publishLifecycle publishes a session lifecycle event to the session-specific
// and global channels for real-time delivery. Non-blocking: errors are logged.
func (w *Worker) publishLifecycle(ctx context.Context, session *ent.AlertSession, status alertsession.Status, errMsg string) {
	if w.eventPublisher == nil {
		return
	}
	if err := w.eventPublisher.PublishSessionLifecycle(ctx, session.ID, events.SessionLifecyclePayload{
		BasePayload: events.BasePayload{
			Type:      events.SessionEventTypeForStatus(status),
			SessionID: session.ID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Status:       status,
		AlertType:    session.AlertType,
		ChainID:      session.ChainID,
		ErrorMessage: errMsg,
	}); err != nil {
		slog.Warn("Failed to publish session lifecycle event",
			"session_id", session.ID, "status", status, "error", err)
	}
}

// scheduleEventCleanup schedules deletion of the session's durable event rows
// after a 60-second grace period, allowing WebSocket clients to catch up on
// final events. The retention sweep in pkg/cleanup covers anything missed here
// (e.g. process exit before the timer fires).
func (w *Worker) scheduleEventCleanup(sessionID string) {
	if w.eventService == nil {
		return
	}
	time.AfterFunc(60*time.Second, func() {
		if _, err := w.eventService.CleanupSessionEvents(context.Background(), sessionID); err != nil {
			slog.Warn("Failed to cleanup session events after grace period",
				"session_id", sessionID, "error", err)
		}
	})
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentSessionID = sessionID
	w.lastActivity = time.Now()
}
