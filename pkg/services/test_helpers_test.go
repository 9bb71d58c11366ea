package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// setupTestSessionService creates a SessionService for testing
func setupTestSessionService(_ *testing.T, client *ent.Client) *SessionService {
	return NewSessionService(client)
}

// createTestSession creates a pending session with unique fingerprint and
// returns it. Shared by service tests that need a parent session row.
func createTestSession(t *testing.T, svc *SessionService) *ent.AlertSession {
	t.Helper()

	session, err := svc.CreateSession(context.Background(), models.CreateSessionRequest{
		SessionID:   uuid.New().String(),
		AlertData:   `{"alert":"test"}`,
		AlertType:   "kubernetes",
		Fingerprint: uuid.New().String(),
		ChainID:     "k8s-analysis",
	})
	require.NoError(t, err)
	return session
}

// createTestStageExecution creates a pending stage execution under a session.
func createTestStageExecution(t *testing.T, svc *StageService, sessionID string, stageIndex int) *ent.StageExecution {
	t.Helper()

	execution, err := svc.CreateStageExecution(context.Background(), models.CreateStageExecutionRequest{
		SessionID:  sessionID,
		StageID:    "investigation",
		StageIndex: stageIndex,
		AgentName:  "KubernetesAgent",
	})
	require.NoError(t, err)
	return execution
}
