package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/pkg/models"
	testdb "github.com/tarsy-project/tarsy/test/database"
)

func TestSessionService_CreateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestSessionService(t, client.Client)
	ctx := context.Background()

	t.Run("creates session with required fields", func(t *testing.T) {
		req := models.CreateSessionRequest{
			SessionID:   uuid.New().String(),
			AlertData:   `{"alert":"pod crash"}`,
			AlertType:   "kubernetes",
			Fingerprint: uuid.New().String(),
			ChainID:     "k8s-analysis",
		}

		session, err := service.CreateSession(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.SessionID, session.ID)
		assert.Equal(t, req.AlertData, session.AlertData)
		assert.Equal(t, req.AlertType, session.AlertType)
		assert.Equal(t, req.Fingerprint, session.Fingerprint)
		assert.Equal(t, req.ChainID, session.ChainID)
		assert.Equal(t, alertsession.StatusPending, session.Status)
		assert.Nil(t, session.StartedAt)
		assert.Nil(t, session.CompletedAt)
		assert.Empty(t, session.PauseMetadata)
	})

	t.Run("creates session with optional fields", func(t *testing.T) {
		req := models.CreateSessionRequest{
			SessionID:   uuid.New().String(),
			AlertData:   `{"alert":"test"}`,
			AlertType:   "kubernetes",
			Fingerprint: uuid.New().String(),
			ChainID:     "k8s-analysis",
			Author:      "sre@example.com",
			RunbookURL:  "https://runbooks.example.com/k8s",
			MCPSelection: &models.MCPSelectionConfig{
				Servers: []models.MCPServerSelection{{Name: "kubernetes-server"}},
			},
		}

		session, err := service.CreateSession(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, session.Author)
		assert.Equal(t, "sre@example.com", *session.Author)
		require.NotNil(t, session.RunbookURL)
		assert.NotEmpty(t, session.McpSelection)
	})

	t.Run("validates required fields", func(t *testing.T) {
		cases := []struct {
			name  string
			req   models.CreateSessionRequest
			field string
		}{
			{"missing session_id", models.CreateSessionRequest{AlertData: "d", AlertType: "t", Fingerprint: "f", ChainID: "c"}, "session_id"},
			{"missing alert_data", models.CreateSessionRequest{SessionID: "s", AlertType: "t", Fingerprint: "f", ChainID: "c"}, "alert_data"},
			{"missing alert_type", models.CreateSessionRequest{SessionID: "s", AlertData: "d", Fingerprint: "f", ChainID: "c"}, "alert_type"},
			{"missing fingerprint", models.CreateSessionRequest{SessionID: "s", AlertData: "d", AlertType: "t", ChainID: "c"}, "fingerprint"},
			{"missing chain_id", models.CreateSessionRequest{SessionID: "s", AlertData: "d", AlertType: "t", Fingerprint: "f"}, "chain_id"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := service.CreateSession(ctx, tc.req)
				var validErr *ValidationError
				require.ErrorAs(t, err, &validErr)
				assert.Equal(t, tc.field, validErr.Field)
			})
		}
	})

	t.Run("rejects duplicate session ID", func(t *testing.T) {
		req := models.CreateSessionRequest{
			SessionID:   uuid.New().String(),
			AlertData:   "data",
			AlertType:   "kubernetes",
			Fingerprint: uuid.New().String(),
			ChainID:     "k8s-analysis",
		}

		_, err := service.CreateSession(ctx, req)
		require.NoError(t, err)

		_, err = service.CreateSession(ctx, req)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestSessionService_GetSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestSessionService(t, client.Client)
	stageService := NewStageService(client.Client)
	ctx := context.Background()

	session := createTestSession(t, service)

	t.Run("gets session without edges", func(t *testing.T) {
		got, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, session.ID, got.ID)
	})

	t.Run("gets session with stage executions ordered by index", func(t *testing.T) {
		createTestStageExecution(t, stageService, session.ID, 1)
		createTestStageExecution(t, stageService, session.ID, 0)

		got, err := service.GetSession(ctx, session.ID, true)
		require.NoError(t, err)
		require.Len(t, got.Edges.StageExecutions, 2)
		assert.Equal(t, 0, got.Edges.StageExecutions[0].StageIndex)
		assert.Equal(t, 1, got.Edges.StageExecutions[1].StageIndex)
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		_, err := service.GetSession(ctx, "nonexistent", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_ListSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestSessionService(t, client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		createTestSession(t, service)
	}

	t.Run("lists all sessions", func(t *testing.T) {
		resp, err := service.ListSessions(ctx, models.SessionFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Sessions, 3)
	})

	t.Run("filters by status", func(t *testing.T) {
		resp, err := service.ListSessions(ctx, models.SessionFilters{Status: "completed"})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.TotalCount)
	})

	t.Run("filters by alert type", func(t *testing.T) {
		resp, err := service.ListSessions(ctx, models.SessionFilters{AlertType: "kubernetes"})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
	})

	t.Run("applies pagination", func(t *testing.T) {
		resp, err := service.ListSessions(ctx, models.SessionFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Sessions, 2)
		assert.Equal(t, 2, resp.Limit)
	})

	t.Run("excludes soft-deleted by default", func(t *testing.T) {
		victim := createTestSession(t, service)
		_, err := client.AlertSession.UpdateOneID(victim.ID).SetDeletedAt(time.Now()).Save(ctx)
		require.NoError(t, err)

		resp, err := service.ListSessions(ctx, models.SessionFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)

		resp, err = service.ListSessions(ctx, models.SessionFilters{IncludeDeleted: true})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)
	})
}

func TestSessionService_UpdateSessionStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestSessionService(t, client.Client)
	ctx := context.Background()

	t.Run("non-terminal transition leaves completed_at nil", func(t *testing.T) {
		session := createTestSession(t, service)

		err := service.UpdateSessionStatus(ctx, session.ID, alertsession.StatusInProgress, "")
		require.NoError(t, err)

		got, err := client.AlertSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusInProgress, got.Status)
		assert.Nil(t, got.CompletedAt)
		assert.NotNil(t, got.LastInteractionAt)
	})

	t.Run("terminal transition sets completed_at", func(t *testing.T) {
		session := createTestSession(t, service)

		err := service.UpdateSessionStatus(ctx, session.ID, alertsession.StatusFailed, "agent exploded")
		require.NoError(t, err)

		got, err := client.AlertSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusFailed, got.Status)
		assert.NotNil(t, got.CompletedAt)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "agent exploded", *got.ErrorMessage)
	})

	t.Run("terminal status is not overwritten", func(t *testing.T) {
		session := createTestSession(t, service)

		require.NoError(t, service.UpdateSessionStatus(ctx, session.ID, alertsession.StatusCancelled, ""))
		// Late writer (e.g. a racing timeout) is a no-op, not an error.
		require.NoError(t, service.UpdateSessionStatus(ctx, session.ID, alertsession.StatusTimedOut, "late"))

		got, err := client.AlertSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusCancelled, got.Status)
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		err := service.UpdateSessionStatus(ctx, "nonexistent", alertsession.StatusCompleted, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_PauseResume(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestSessionService(t, client.Client)
	ctx := context.Background()

	// Put a session into in_progress owned by a pod, as a worker claim would.
	markInProgress := func(t *testing.T, sessionID, podID string) {
		t.Helper()
		_, err := client.AlertSession.UpdateOneID(sessionID).
			SetStatus(alertsession.StatusInProgress).
			SetPodID(podID).
			SetLastInteractionAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
	}

	t.Run("pauses in-progress session with metadata", func(t *testing.T) {
		session := createTestSession(t, service)
		markInProgress(t, session.ID, "pod-1")

		meta := &models.PauseMetadata{
			Reason:           models.PauseReasonMaxIterations,
			CurrentIteration: 10,
			Message:          "investigation incomplete after 10 iterations",
			PausedAt:         time.Now(),
		}
		require.NoError(t, service.PauseSession(ctx, session.ID, meta))

		got, err := client.AlertSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusPaused, got.Status)
		assert.Nil(t, got.PodID, "pause releases pod ownership")

		decoded := PauseMetadataOf(got)
		require.NotNil(t, decoded)
		assert.Equal(t, models.PauseReasonMaxIterations, decoded.Reason)
		assert.Equal(t, 10, decoded.CurrentIteration)
	})

	t.Run("cannot pause a pending session", func(t *testing.T) {
		session := createTestSession(t, service)

		err := service.PauseSession(ctx, session.ID, &models.PauseMetadata{
			Reason:   models.PauseReasonUserRequested,
			PausedAt: time.Now(),
		})
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "status", validErr.Field)
	})

	t.Run("resume re-queues a paused session and clears metadata", func(t *testing.T) {
		session := createTestSession(t, service)
		markInProgress(t, session.ID, "pod-1")
		require.NoError(t, service.PauseSession(ctx, session.ID, &models.PauseMetadata{
			Reason:           models.PauseReasonMaxIterations,
			CurrentIteration: 5,
			PausedAt:         time.Now(),
		}))

		require.NoError(t, service.ResumeSession(ctx, session.ID))

		got, err := client.AlertSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusPending, got.Status)
		assert.Empty(t, got.PauseMetadata, "resume clears pause metadata")
		assert.Nil(t, got.PodID)
	})

	t.Run("cannot resume a session that is not paused", func(t *testing.T) {
		session := createTestSession(t, service)

		err := service.ResumeSession(ctx, session.ID)
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
	})

	t.Run("resume of missing session returns ErrNotFound", func(t *testing.T) {
		err := service.ResumeSession(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_MarkCancelling(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestSessionService(t, client.Client)
	ctx := context.Background()

	t.Run("marks pending session cancelling", func(t *testing.T) {
		session := createTestSession(t, service)

		require.NoError(t, service.MarkCancelling(ctx, session.ID))

		got, err := client.AlertSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusCancelling, got.Status)
	})

	t.Run("rejects cancelling a terminal session", func(t *testing.T) {
		session := createTestSession(t, service)
		require.NoError(t, service.UpdateSessionStatus(ctx, session.ID, alertsession.StatusCompleted, ""))

		err := service.MarkCancelling(ctx, session.ID)
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
	})
}

func TestSessionService_ClaimNextPendingSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestSessionService(t, client.Client)
	ctx := context.Background()

	t.Run("returns nil when nothing is pending", func(t *testing.T) {
		session, err := service.ClaimNextPendingSession(ctx, "pod-1")
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("claims oldest pending session and stamps ownership", func(t *testing.T) {
		first := createTestSession(t, service)
		time.Sleep(5 * time.Millisecond)
		createTestSession(t, service)

		claimed, err := service.ClaimNextPendingSession(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, first.ID, claimed.ID, "oldest first")
		assert.Equal(t, alertsession.StatusInProgress, claimed.Status)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "pod-1", *claimed.PodID)
		assert.NotNil(t, claimed.StartedAt)
		assert.NotNil(t, claimed.LastInteractionAt)
	})

	t.Run("each claim takes a different session", func(t *testing.T) {
		a, err := service.ClaimNextPendingSession(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, a)

		b, err := service.ClaimNextPendingSession(ctx, "pod-2")
		require.NoError(t, err)
		assert.Nil(t, b, "no pending sessions left")
	})
}

func TestSessionService_CountActiveSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestSessionService(t, client.Client)
	ctx := context.Background()

	count, err := service.CountActiveSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	createTestSession(t, service)
	_, err = service.ClaimNextPendingSession(ctx, "pod-1")
	require.NoError(t, err)

	count, err = service.CountActiveSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSessionService_Heartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestSessionService(t, client.Client)
	ctx := context.Background()

	session := createTestSession(t, service)
	_, err := service.ClaimNextPendingSession(ctx, "pod-1")
	require.NoError(t, err)

	t.Run("owning pod refreshes liveness", func(t *testing.T) {
		before, err := client.AlertSession.Get(ctx, session.ID)
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)
		require.NoError(t, service.Heartbeat(ctx, session.ID, "pod-1"))

		after, err := client.AlertSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.True(t, after.LastInteractionAt.After(*before.LastInteractionAt))
	})

	t.Run("non-owning pod cannot heartbeat", func(t *testing.T) {
		err := service.Heartbeat(ctx, session.ID, "pod-2")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_OrphanRecovery(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestSessionService(t, client.Client)
	ctx := context.Background()

	stale := time.Now().Add(-5 * time.Minute)

	makeSession := func(status alertsession.Status, podID string, lastSeen time.Time) string {
		session := createTestSession(t, service)
		update := client.AlertSession.UpdateOneID(session.ID).
			SetStatus(status).
			SetLastInteractionAt(lastSeen)
		if podID != "" {
			update = update.SetPodID(podID)
		}
		_, err := update.Save(ctx)
		require.NoError(t, err)
		return session.ID
	}

	t.Run("finds sessions abandoned by other pods", func(t *testing.T) {
		orphanID := makeSession(alertsession.StatusInProgress, "dead-pod", stale)
		makeSession(alertsession.StatusInProgress, "current-pod", stale) // own sessions excluded
		makeSession(alertsession.StatusInProgress, "live-pod", time.Now())
		makeSession(alertsession.StatusPaused, "", stale) // ownerless paused exempt

		orphans, err := service.FindOrphanedSessions(ctx, "current-pod", time.Minute)
		require.NoError(t, err)
		require.Len(t, orphans, 1)
		assert.Equal(t, orphanID, orphans[0].ID)
	})

	t.Run("marks orphan failed and clears pause metadata", func(t *testing.T) {
		orphanID := makeSession(alertsession.StatusInProgress, "dead-pod-2", stale)

		require.NoError(t, service.MarkSessionOrphaned(ctx, orphanID))

		got, err := client.AlertSession.Get(ctx, orphanID)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "orphaned: previous worker lost", *got.ErrorMessage)
		assert.NotNil(t, got.CompletedAt)
		assert.Empty(t, got.PauseMetadata)
		assert.Nil(t, got.PodID)
	})

	t.Run("finds this pod's own stale sessions at startup", func(t *testing.T) {
		staleID := makeSession(alertsession.StatusInProgress, "restarted-pod", stale)

		sessions, err := service.FindStaleSessionsForPod(ctx, "restarted-pod")
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, staleID, sessions[0].ID)
	})
}

func TestSessionService_Retention(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestSessionService(t, client.Client)
	ctx := context.Background()

	t.Run("soft deletes old terminal sessions", func(t *testing.T) {
		session := createTestSession(t, service)
		_, err := client.AlertSession.UpdateOneID(session.ID).
			SetStatus(alertsession.StatusCompleted).
			SetCompletedAt(time.Now().Add(-100 * 24 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		fresh := createTestSession(t, service)
		_, err = client.AlertSession.UpdateOneID(fresh.ID).
			SetStatus(alertsession.StatusCompleted).
			SetCompletedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)

		count, err := service.SoftDeleteOldSessions(ctx, 90)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		got, err := client.AlertSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.NotNil(t, got.DeletedAt)
	})

	t.Run("rejects non-positive retention", func(t *testing.T) {
		_, err := service.SoftDeleteOldSessions(ctx, 0)
		assert.Error(t, err)
	})

	t.Run("hard deletes long-gone sessions with children", func(t *testing.T) {
		session := createTestSession(t, service)
		stageService := NewStageService(client.Client)
		createTestStageExecution(t, stageService, session.ID, 0)

		_, err := client.AlertSession.UpdateOneID(session.ID).
			SetDeletedAt(time.Now().Add(-10 * 24 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		count, err := service.HardDeleteSessions(ctx, time.Now().Add(-7*24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		_, err = client.AlertSession.Get(ctx, session.ID)
		assert.Error(t, err, "session should be gone")

		executions, err := stageService.GetStageExecutions(ctx, session.ID)
		require.NoError(t, err)
		assert.Empty(t, executions, "children cascade")
	})

	t.Run("restores soft-deleted session", func(t *testing.T) {
		session := createTestSession(t, service)
		_, err := client.AlertSession.UpdateOneID(session.ID).SetDeletedAt(time.Now()).Save(ctx)
		require.NoError(t, err)

		require.NoError(t, service.RestoreSession(ctx, session.ID))

		got, err := client.AlertSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Nil(t, got.DeletedAt)
	})
}

func TestSessionService_SetFinalAnalysis(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestSessionService(t, client.Client)
	ctx := context.Background()

	session := createTestSession(t, service)

	require.NoError(t, service.SetFinalAnalysis(ctx, session.ID, "Root cause: OOMKilled due to memory limit."))

	got, err := client.AlertSession.Get(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, got.FinalAnalysis)
	assert.Contains(t, *got.FinalAnalysis, "OOMKilled")
}

func TestSessionService_UpdateCurrentStage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestSessionService(t, client.Client)
	ctx := context.Background()

	session := createTestSession(t, service)

	require.NoError(t, service.UpdateCurrentStage(ctx, session.ID, 1, "synthesis"))

	got, err := client.AlertSession.Get(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CurrentStageIndex)
	assert.Equal(t, 1, *got.CurrentStageIndex)
	require.NotNil(t, got.CurrentStageID)
	assert.Equal(t, "synthesis", *got.CurrentStageID)
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(alertsession.StatusCompleted))
	assert.True(t, IsTerminalStatus(alertsession.StatusFailed))
	assert.True(t, IsTerminalStatus(alertsession.StatusCancelled))
	assert.True(t, IsTerminalStatus(alertsession.StatusTimedOut))
	assert.False(t, IsTerminalStatus(alertsession.StatusPending))
	assert.False(t, IsTerminalStatus(alertsession.StatusInProgress))
	assert.False(t, IsTerminalStatus(alertsession.StatusPaused))
	assert.False(t, IsTerminalStatus(alertsession.StatusCancelling))
}
