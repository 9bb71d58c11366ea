package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/database"
	"github.com/tarsy-project/tarsy/pkg/models"
	"github.com/tarsy-project/tarsy/pkg/services"
	testdb "github.com/tarsy-project/tarsy/test/database"
)

func setupSessionService(t *testing.T) (*database.Client, *services.SessionService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, services.NewSessionService(client.Client)
}

func createRetentionTestSession(ctx context.Context, t *testing.T, sessionService *services.SessionService, alertData string) string {
	t.Helper()
	session, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{
		SessionID:   uuid.New().String(),
		AlertData:   alertData,
		AlertType:   "kubernetes",
		Fingerprint: uuid.New().String(),
		ChainID:     "k8s-analysis",
	})
	require.NoError(t, err)
	return session.ID
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		SessionRetentionDays: 365,
		EventTTL:             1 * time.Hour,
		CleanupInterval:      1 * time.Hour,
	}
}

func TestService_SoftDeletesOldCompletedSessions(t *testing.T) {
	client, sessionService := setupSessionService(t)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	sessionID := createRetentionTestSession(ctx, t, sessionService, "test")

	err := client.AlertSession.UpdateOneID(sessionID).
		SetStatus(alertsession.StatusCompleted).
		SetCompletedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), sessionService, eventService)
	svc.runAll(ctx)

	updated, err := sessionService.GetSession(ctx, sessionID, false)
	require.NoError(t, err)
	assert.NotNil(t, updated.DeletedAt)
}

func TestService_SoftDeletesOldPendingSessions(t *testing.T) {
	client, sessionService := setupSessionService(t)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	sessionID := createRetentionTestSession(ctx, t, sessionService, "test-pending")

	err := client.AlertSession.UpdateOneID(sessionID).
		SetCreatedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), sessionService, eventService)
	svc.runAll(ctx)

	updated, err := sessionService.GetSession(ctx, sessionID, false)
	require.NoError(t, err)
	assert.NotNil(t, updated.DeletedAt)
}

func TestService_PreservesRecentSessions(t *testing.T) {
	client, sessionService := setupSessionService(t)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	sessionID := createRetentionTestSession(ctx, t, sessionService, "test-recent")

	err := client.AlertSession.UpdateOneID(sessionID).
		SetStatus(alertsession.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), sessionService, eventService)
	svc.runAll(ctx)

	updated, err := sessionService.GetSession(ctx, sessionID, false)
	require.NoError(t, err)
	assert.Nil(t, updated.DeletedAt)
}

func TestService_CleansUpOldEvents(t *testing.T) {
	client, sessionService := setupSessionService(t)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	sessionID := createRetentionTestSession(ctx, t, sessionService, "test-events")

	// An event past the TTL
	_, err := client.Event.Create().
		SetSessionID(sessionID).
		SetChannel("test").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// A recent event
	_, err = client.Event.Create().
		SetSessionID(sessionID).
		SetChannel("test").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), sessionService, eventService)
	svc.runAll(ctx)

	events, err := eventService.GetEventsSince(ctx, "test", 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "old event should be deleted, recent event preserved")
}
