package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/models"
	"github.com/tarsy-project/tarsy/pkg/services"
	testdb "github.com/tarsy-project/tarsy/test/database"
)

// createTestSession creates an alert session in pending status.
func createTestSession(ctx context.Context, t *testing.T, client *ent.Client) *ent.AlertSession {
	t.Helper()
	session, err := client.AlertSession.Create().
		SetID(uuid.New().String()).
		SetAlertData("test alert data").
		SetAlertType("test-alert").
		SetFingerprint(uuid.New().String()).
		SetChainID("test-chain").
		SetStatus(alertsession.StatusPending).
		SetAuthor("test-user").
		Save(ctx)
	require.NoError(t, err)
	return session
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentSessions:   10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		SessionTimeout:          30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		OrphanThreshold:         2 * time.Second,
		HeartbeatInterval:       30 * time.Second,
	}
}

// testWorkerDeps builds the service bundle workers need against a test client.
// No alert service (no in-flight fingerprints to release) and no event
// publisher (streaming disabled).
func testWorkerDeps(client *ent.Client) WorkerDeps {
	return WorkerDeps{
		SessionService: services.NewSessionService(client),
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// TestForUpdateSkipLockedClaiming tests that a pending session is claimed
// atomically and stamped with the claiming pod.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	session := createTestSession(ctx, t, client)

	sessionService := services.NewSessionService(client)

	claimed, err := sessionService.ClaimNextPendingSession(ctx, "test-pod")
	require.NoError(t, err)
	require.NotNil(t, claimed, "the pending session should be claimed")
	assert.Equal(t, session.ID, claimed.ID)
	assert.Equal(t, alertsession.StatusInProgress, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "test-pod", *claimed.PodID)

	// Second claim should find nothing
	claimed2, err := sessionService.ClaimNextPendingSession(ctx, "test-pod")
	require.NoError(t, err)
	assert.Nil(t, claimed2, "no more pending sessions should be available")
}

// TestConcurrentClaimsDifferentSessions tests that concurrent claimers get
// disjoint sessions (FOR UPDATE SKIP LOCKED, no double-claims).
func TestConcurrentClaimsDifferentSessions(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	sessionIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		s := createTestSession(ctx, t, client)
		sessionIDs[s.ID] = struct{}{}
	}

	sessionService := services.NewSessionService(client)

	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			session, err := sessionService.ClaimNextPendingSession(ctx, fmt.Sprintf("pod-%d", workerID))
			if err != nil {
				errCh <- fmt.Errorf("claimer-%d failed: %w", workerID, err)
				return
			}
			if session == nil {
				errCh <- fmt.Errorf("claimer-%d got no session", workerID)
				return
			}
			mu.Lock()
			claimed = append(claimed, session.ID)
			mu.Unlock()
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	// All 5 sessions claimed, each exactly once
	assert.Len(t, claimed, 5, "all 5 sessions should be claimed")
	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "session %s claimed twice", id)
		seen[id] = struct{}{}
		_, ok := sessionIDs[id]
		assert.True(t, ok, "claimed session %s was not in original set", id)
	}
}

// TestOrphanRecovery tests that sessions abandoned by another pod are
// detected and marked failed.
func TestOrphanRecovery(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// Simulate a crashed pod: in_progress with a stale heartbeat
	staleBeat := time.Now().Add(-10 * time.Minute)
	session, err := client.AlertSession.Create().
		SetID(uuid.New().String()).
		SetAlertData("orphan test data").
		SetAlertType("test-alert").
		SetFingerprint(uuid.New().String()).
		SetChainID("test-chain").
		SetStatus(alertsession.StatusInProgress).
		SetPodID("crashed-pod").
		SetLastInteractionAt(staleBeat).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	cfg.OrphanThreshold = 1 * time.Second

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: cfg,
		deps:   testWorkerDeps(client),
	}

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	updated, err := client.AlertSession.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, alertsession.StatusFailed, updated.Status)
	require.NotNil(t, updated.ErrorMessage)
	assert.Equal(t, orphanErrorMessage, *updated.ErrorMessage)
	assert.Nil(t, updated.PodID, "ownership should be released")
	require.NotNil(t, updated.CompletedAt)

	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	pool.orphans.mu.Unlock()
}

// TestOrphanRecoverySparesUnownedPaused tests that paused sessions without a
// pod owner are left alone: they are waiting for resume, not orphaned.
func TestOrphanRecoverySparesUnownedPaused(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	paused, err := client.AlertSession.Create().
		SetID(uuid.New().String()).
		SetAlertData("paused data").
		SetAlertType("test-alert").
		SetFingerprint(uuid.New().String()).
		SetChainID("test-chain").
		SetStatus(alertsession.StatusPaused).
		SetPauseMetadata(map[string]interface{}{"reason": "max_iterations"}).
		SetLastInteractionAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	cfg.OrphanThreshold = 1 * time.Second

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: cfg,
		deps:   testWorkerDeps(client),
	}

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	updated, err := client.AlertSession.Get(ctx, paused.ID)
	require.NoError(t, err)
	assert.Equal(t, alertsession.StatusPaused, updated.Status, "unowned paused session must not be orphaned")
}

// TestStartupOrphanCleanup tests the one-time startup sweep for sessions
// still stamped with this pod's ID after an unclean restart.
func TestStartupOrphanCleanup(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	podID := "startup-test-pod"

	for i := 0; i < 3; i++ {
		_, err := client.AlertSession.Create().
			SetID(uuid.New().String()).
			SetAlertData("startup orphan data").
			SetAlertType("test-alert").
			SetFingerprint(uuid.New().String()).
			SetChainID("test-chain").
			SetStatus(alertsession.StatusInProgress).
			SetPodID(podID).
			Save(ctx)
		require.NoError(t, err)
	}

	// A different pod's session must not be touched
	otherSession, err := client.AlertSession.Create().
		SetID(uuid.New().String()).
		SetAlertData("other pod data").
		SetAlertType("test-alert").
		SetFingerprint(uuid.New().String()).
		SetChainID("test-chain").
		SetStatus(alertsession.StatusInProgress).
		SetPodID("other-pod").
		Save(ctx)
	require.NoError(t, err)

	sessionService := services.NewSessionService(client)
	require.NoError(t, CleanupStartupOrphans(ctx, client, sessionService, nil, podID))

	sessions, err := client.AlertSession.Query().
		Where(alertsession.StatusEQ(alertsession.StatusFailed)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 3)
	for _, s := range sessions {
		require.NotNil(t, s.ErrorMessage)
		assert.Equal(t, orphanErrorMessage, *s.ErrorMessage)
	}

	other, err := client.AlertSession.Get(ctx, otherSession.ID)
	require.NoError(t, err)
	assert.Equal(t, alertsession.StatusInProgress, other.Status, "other pod's session should be untouched")
}

// mockExecutor counts executions and tracks which sessions were processed.
type mockExecutor struct {
	processed  atomic.Int64
	sessions   sync.Map // string → struct{}
	inProgress atomic.Int64
	releaseCh  chan struct{} // optional: blocks execution until closed
}

func (m *mockExecutor) Execute(ctx context.Context, session *ent.AlertSession) *ExecutionResult {
	m.processed.Add(1)
	if session != nil {
		m.sessions.Store(session.ID, struct{}{})
	}

	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)

	// If releaseCh is set, block until it's closed (for deterministic tests)
	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
		case <-ctx.Done():
			return &ExecutionResult{
				Status: alertsession.StatusCancelled,
				Error:  ctx.Err(),
			}
		}
	} else {
		// Default behavior: simulate short processing
		select {
		case <-time.After(50 * time.Millisecond):
		case <-ctx.Done():
			return &ExecutionResult{
				Status: alertsession.StatusCancelled,
				Error:  ctx.Err(),
			}
		}
	}

	return &ExecutionResult{
		Status:        alertsession.StatusCompleted,
		FinalAnalysis: "Mock analysis",
	}
}

// TestPoolEndToEndWithMockExecutor tests the full worker pool lifecycle.
func TestPoolEndToEndWithMockExecutor(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		createTestSession(ctx, t, client)
	}

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond

	executor := &mockExecutor{}
	pool := NewWorkerPool("test-pod", client, cfg, executor, testWorkerDeps(client))

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		"waiting for sessions to be processed",
		func() bool { return executor.processed.Load() >= 3 })

	pool.Stop()

	// All sessions completed with completed_at stamped
	sessions, err := client.AlertSession.Query().
		Where(alertsession.StatusEQ(alertsession.StatusCompleted)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 3, "all 3 sessions should be completed")
	for _, s := range sessions {
		assert.NotNil(t, s.CompletedAt, "terminal session %s should have completed_at", s.ID)
	}

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
}

// TestCapacityLimits tests that the global max concurrent limit is enforced.
func TestCapacityLimits(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createTestSession(ctx, t, client)
	}

	// Workers match MaxConcurrentSessions to avoid startup races
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.MaxConcurrentSessions = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.OrphanDetectionInterval = 1 * time.Hour // Disable orphan detection during test

	releaseCh := make(chan struct{})
	executor := &mockExecutor{releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client, cfg, executor, testWorkerDeps(client))

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for max concurrent sessions in progress",
		func() bool { return executor.inProgress.Load() == int64(cfg.MaxConcurrentSessions) })

	// Give the system a moment to stabilize
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int64(cfg.MaxConcurrentSessions), executor.inProgress.Load(),
		"should have exactly MaxConcurrentSessions in progress")

	dbInProgress, err := client.AlertSession.Query().
		Where(alertsession.StatusEQ(alertsession.StatusInProgress)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxConcurrentSessions, dbInProgress, "DB should show MaxConcurrentSessions in_progress")

	// Release executions to complete
	close(releaseCh)

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for first batch to complete",
		func() bool { return executor.inProgress.Load() == 0 })

	// Workers should now claim the remaining 3 sessions
	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for all sessions to be processed",
		func() bool { return executor.processed.Load() >= 5 })

	pool.Stop()

	completedCount, err := client.AlertSession.Query().
		Where(alertsession.StatusEQ(alertsession.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, completedCount, "all 5 sessions should complete")
}

// TestHeartbeatUpdates tests that heartbeats refresh last_interaction_at.
func TestHeartbeatUpdates(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	session := createTestSession(ctx, t, client)

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.HeartbeatInterval = 100 * time.Millisecond

	// Blocking executor keeps the session in_progress
	releaseCh := make(chan struct{})
	executor := &mockExecutor{releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client, cfg, executor, testWorkerDeps(client))

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for session to be claimed",
		func() bool {
			s, err := client.AlertSession.Get(ctx, session.ID)
			require.NoError(t, err)
			return s.Status == alertsession.StatusInProgress && s.LastInteractionAt != nil
		})

	s1, err := client.AlertSession.Get(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, s1.LastInteractionAt)
	initialTime := *s1.LastInteractionAt

	// Wait for at least one heartbeat tick
	time.Sleep(250 * time.Millisecond)

	s2, err := client.AlertSession.Get(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, alertsession.StatusInProgress, s2.Status, "session should still be in progress")
	require.NotNil(t, s2.LastInteractionAt)
	assert.True(t, s2.LastInteractionAt.After(initialTime), "last_interaction_at should be updated by heartbeat")

	close(releaseCh)
	pool.Stop()
}

// pausingExecutor records pause state the way the real executor does, then
// reports paused so the worker leaves the session alone.
type pausingExecutor struct {
	sessionService *services.SessionService
	processed      atomic.Int64
}

func (e *pausingExecutor) Execute(ctx context.Context, session *ent.AlertSession) *ExecutionResult {
	e.processed.Add(1)
	_ = e.sessionService.PauseSession(context.Background(), session.ID, &models.PauseMetadata{
		Reason:           models.PauseReasonMaxIterations,
		CurrentIteration: 10,
		PausedAt:         time.Now().UTC(),
	})
	return &ExecutionResult{Status: alertsession.StatusPaused}
}

// TestPausedSessionIsNotFinalized tests that a paused result leaves the
// session non-terminal: no completed_at, pause metadata intact, ownership
// released for any pod to resume.
func TestPausedSessionIsNotFinalized(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	session := createTestSession(ctx, t, client)

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond

	executor := &pausingExecutor{sessionService: services.NewSessionService(client)}
	pool := NewWorkerPool("test-pod", client, cfg, executor, testWorkerDeps(client))

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for session to pause",
		func() bool {
			s, err := client.AlertSession.Get(ctx, session.ID)
			require.NoError(t, err)
			return s.Status == alertsession.StatusPaused
		})

	// Give the worker time to (incorrectly) finalize, if it were going to
	time.Sleep(200 * time.Millisecond)
	pool.Stop()

	updated, err := client.AlertSession.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, alertsession.StatusPaused, updated.Status)
	assert.Nil(t, updated.CompletedAt, "paused is not terminal")
	assert.Nil(t, updated.PodID, "pause releases pod ownership")
	require.NotNil(t, updated.PauseMetadata)
	assert.Equal(t, models.PauseReasonMaxIterations, updated.PauseMetadata["reason"])
}

// nilExecutor returns a nil *ExecutionResult for testing the nil-guard.
type nilExecutor struct {
	blockUntilCtxDone bool
	processed         atomic.Int64
}

func (e *nilExecutor) Execute(ctx context.Context, _ *ent.AlertSession) *ExecutionResult {
	e.processed.Add(1)
	if e.blockUntilCtxDone {
		<-ctx.Done()
	}
	return nil
}

// TestNilExecutionResultGuard tests that a nil *ExecutionResult from
// SessionExecutor.Execute does not panic and is translated into the correct
// terminal status.
func TestNilExecutionResultGuard(t *testing.T) {
	t.Run("nil result without context error marks session failed", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		session := createTestSession(ctx, t, client)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: false}
		pool := NewWorkerPool("test-pod", client, cfg, executor, testWorkerDeps(client))

		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for session to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		pool.Stop()

		updated, err := client.AlertSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "executor returned nil result")
	})

	t.Run("nil result with deadline exceeded marks session timed_out", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		session := createTestSession(ctx, t, client)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.SessionTimeout = 200 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client, cfg, executor, testWorkerDeps(client))

		require.NoError(t, pool.Start(ctx))

		// Wait for processing (must exceed the 200ms timeout)
		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for session to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		// Give the worker time to persist the terminal status
		time.Sleep(100 * time.Millisecond)
		pool.Stop()

		updated, err := client.AlertSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusTimedOut, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "timed out")
		assert.Contains(t, *updated.ErrorMessage, "200ms")
	})

	t.Run("nil result with cancellation marks session cancelled", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		session := createTestSession(ctx, t, client)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.SessionTimeout = 30 * time.Second // Long timeout so cancellation wins

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client, cfg, executor, testWorkerDeps(client))

		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 10*time.Millisecond,
			"waiting for session to be claimed",
			func() bool {
				s, err := client.AlertSession.Get(ctx, session.ID)
				require.NoError(t, err)
				return s.Status == alertsession.StatusInProgress
			})

		// Cancel the session via the pool (simulates API-triggered cancellation)
		cancelled := pool.CancelSession(session.ID)
		require.True(t, cancelled, "CancelSession should find the active session")

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for session to reach terminal status",
			func() bool {
				s, err := client.AlertSession.Get(ctx, session.ID)
				require.NoError(t, err)
				return s.Status == alertsession.StatusCancelled
			})

		pool.Stop()

		updated, err := client.AlertSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusCancelled, updated.Status)
	})
}
