package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/events"
	"github.com/tarsy-project/tarsy/pkg/services"
)

// orphanErrorMessage is recorded on sessions recovered by orphan detection.
const orphanErrorMessage = "orphaned: previous worker lost"

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned sessions.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds sessions abandoned by another pod — still
// in_progress (or paused with a stale owner), no heartbeat past the threshold
// — and fails them. Paused sessions without an owner are resumable, not
// orphaned; the pod_id predicate in the query exempts them.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	orphans, err := p.deps.SessionService.FindOrphanedSessions(ctx, p.podID, p.config.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("failed to query orphaned sessions: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned sessions", "count", len(orphans))

	recovered := 0
	for _, session := range orphans {
		if err := recoverOrphanedSession(ctx, p.client, p.deps.SessionService, p.deps.EventPublisher, session); err != nil {
			slog.Error("Failed to recover orphaned session",
				"session_id", session.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedSession fails a single orphaned session. Pause metadata is
// cleared by the service so the paused-iff-metadata invariant holds, and any
// timeline events left streaming are closed out as failed.
func recoverOrphanedSession(
	ctx context.Context,
	client *ent.Client,
	sessionService *services.SessionService,
	eventPublisher agent.EventPublisher,
	session *ent.AlertSession,
) error {
	lastHeartbeat := "unknown"
	if session.LastInteractionAt != nil {
		lastHeartbeat = session.LastInteractionAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if session.PodID != nil {
		podID = *session.PodID
	}

	if err := sessionService.MarkSessionOrphaned(ctx, session.ID); err != nil {
		return fmt.Errorf("failed to mark session orphaned: %w", err)
	}

	// Close out timeline events left streaming by the lost worker
	_, _ = client.TimelineEvent.Update().
		Where(
			timelineevent.SessionIDEQ(session.ID),
			timelineevent.StatusEQ(timelineevent.StatusStreaming),
		).
		SetStatus(timelineevent.StatusFailed).
		Save(ctx)

	if eventPublisher != nil {
		_ = eventPublisher.PublishSessionLifecycle(ctx, session.ID, events.SessionLifecyclePayload{
			BasePayload: events.BasePayload{
				Type:      events.EventTypeSessionFailed,
				SessionID: session.ID,
				Timestamp: time.Now().Format(time.RFC3339Nano),
			},
			Status:       alertsession.StatusFailed,
			AlertType:    session.AlertType,
			ChainID:      session.ChainID,
			ErrorMessage: orphanErrorMessage,
		})
	}

	slog.Warn("Orphaned session marked as failed",
		"session_id", session.ID,
		"old_pod_id", podID,
		"last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans performs a one-time recovery of sessions still stamped
// with this pod's ID: anything found was abandoned by an unclean restart.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(
	ctx context.Context,
	client *ent.Client,
	sessionService *services.SessionService,
	eventPublisher agent.EventPublisher,
	podID string,
) error {
	orphans, err := sessionService.FindStaleSessionsForPod(ctx, podID)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, session := range orphans {
		if err := recoverOrphanedSession(ctx, client, sessionService, eventPublisher, session); err != nil {
			slog.Error("Failed to mark startup orphan",
				"session_id", session.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "session_id", session.ID)
	}

	return nil
}
