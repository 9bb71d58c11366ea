package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/database"
	"github.com/tarsy-project/tarsy/pkg/masking"
	"github.com/tarsy-project/tarsy/pkg/models"
	testdb "github.com/tarsy-project/tarsy/test/database"
)

func setupTestAlertService(t *testing.T, client *database.Client, maskingSvc ...*masking.MaskingService) *AlertService {
	t.Helper()

	chainRegistry := config.NewChainRegistry(map[string]*config.ChainConfig{
		"k8s-analysis": {
			AlertTypes:  []string{"pod-crash"},
			Description: "Kubernetes pod crash analysis",
			Stages: []config.StageConfig{
				{Name: "investigation", Agent: "KubernetesAgent"},
			},
		},
		"default-chain": {
			AlertTypes:  []string{"generic"},
			Description: "Default generic analysis",
			Stages: []config.StageConfig{
				{Name: "investigation", Agent: "GenericAgent"},
			},
		},
	})

	defaults := &config.Defaults{
		AlertType: "generic",
	}

	var svc *masking.MaskingService
	if len(maskingSvc) > 0 {
		svc = maskingSvc[0]
	}

	return NewAlertService(client.Client, chainRegistry, defaults, svc)
}

func TestNewAlertService(t *testing.T) {
	client := testdb.NewTestClient(t)
	chainRegistry := config.NewChainRegistry(map[string]*config.ChainConfig{})
	defaults := &config.Defaults{AlertType: "generic"}

	t.Run("panics when chainRegistry is nil", func(t *testing.T) {
		assert.Panics(t, func() {
			NewAlertService(client.Client, nil, defaults, nil)
		})
	})

	t.Run("panics when defaults is nil", func(t *testing.T) {
		assert.Panics(t, func() {
			NewAlertService(client.Client, chainRegistry, nil, nil)
		})
	})

	t.Run("succeeds with valid inputs", func(t *testing.T) {
		service := NewAlertService(client.Client, chainRegistry, defaults, nil)
		assert.NotNil(t, service)
	})
}

func TestComputeFingerprint(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		data := map[string]any{"pod": "nginx-xyz", "namespace": "prod"}
		fp1, err := ComputeFingerprint("pod-crash", data)
		require.NoError(t, err)
		fp2, err := ComputeFingerprint("pod-crash", data)
		require.NoError(t, err)
		assert.Equal(t, fp1, fp2)
		assert.Len(t, fp1, 64) // sha256 hex
	})

	t.Run("ignores volatile timestamp fields", func(t *testing.T) {
		base := map[string]any{"pod": "nginx-xyz"}
		withTS := map[string]any{"pod": "nginx-xyz", "timestamp": "2026-08-25T10:00:00Z", "timestamp_us": 123456}

		fp1, err := ComputeFingerprint("pod-crash", base)
		require.NoError(t, err)
		fp2, err := ComputeFingerprint("pod-crash", withTS)
		require.NoError(t, err)
		assert.Equal(t, fp1, fp2, "timestamps must not defeat dedup")
	})

	t.Run("differs by alert type", func(t *testing.T) {
		data := map[string]any{"pod": "nginx-xyz"}
		fp1, err := ComputeFingerprint("pod-crash", data)
		require.NoError(t, err)
		fp2, err := ComputeFingerprint("oom-kill", data)
		require.NoError(t, err)
		assert.NotEqual(t, fp1, fp2)
	})

	t.Run("differs by payload", func(t *testing.T) {
		fp1, err := ComputeFingerprint("pod-crash", map[string]any{"pod": "a"})
		require.NoError(t, err)
		fp2, err := ComputeFingerprint("pod-crash", map[string]any{"pod": "b"})
		require.NoError(t, err)
		assert.NotEqual(t, fp1, fp2)
	})
}

func TestAlertService_Submit(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestAlertService(t, client)
	ctx := context.Background()

	t.Run("admits alert with all fields", func(t *testing.T) {
		input := models.SubmitAlertInput{
			AlertType:  "pod-crash",
			RunbookURL: "https://runbook.example.com/pod-crash",
			Data:       map[string]any{"pod": "nginx-xyz", "exit_code": 137},
			MCPSelection: &models.MCPSelectionConfig{
				Servers: []models.MCPServerSelection{{Name: "kubernetes-server"}},
			},
			Author: "test@example.com",
		}

		result, err := service.Submit(ctx, input)
		require.NoError(t, err)
		require.True(t, result.Admitted)
		assert.NotEmpty(t, result.AlertID)
		assert.NotEmpty(t, result.SessionID)

		session, err := client.AlertSession.Get(ctx, result.SessionID)
		require.NoError(t, err)
		assert.Equal(t, "pod-crash", session.AlertType)
		assert.Equal(t, "k8s-analysis", session.ChainID)
		assert.Equal(t, alertsession.StatusPending, session.Status)
		assert.NotEmpty(t, session.Fingerprint)
		assert.NotZero(t, session.CreatedAt)
		assert.Nil(t, session.StartedAt, "started_at is set when a worker claims the session")
		require.NotNil(t, session.Author)
		assert.Equal(t, "test@example.com", *session.Author)
		require.NotNil(t, session.RunbookURL)
		assert.Equal(t, input.RunbookURL, *session.RunbookURL)
		assert.NotEmpty(t, session.McpSelection)
	})

	t.Run("uses default alert type when omitted", func(t *testing.T) {
		result, err := service.Submit(ctx, models.SubmitAlertInput{
			Data: map[string]any{"msg": "generic alert data"},
		})
		require.NoError(t, err)
		require.True(t, result.Admitted)

		session, err := client.AlertSession.Get(ctx, result.SessionID)
		require.NoError(t, err)
		assert.Equal(t, "generic", session.AlertType)
		assert.Equal(t, "default-chain", session.ChainID)
	})

	t.Run("rejects empty alert data", func(t *testing.T) {
		result, err := service.Submit(ctx, models.SubmitAlertInput{AlertType: "pod-crash"})
		require.Error(t, err)
		assert.Nil(t, result)

		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "data", validErr.Field)
	})

	t.Run("rejects unknown alert type with no_chain", func(t *testing.T) {
		result, err := service.Submit(ctx, models.SubmitAlertInput{
			AlertType: "nonexistent-type",
			Data:      map[string]any{"msg": "some data"},
		})
		require.NoError(t, err)
		assert.False(t, result.Admitted)
		assert.Equal(t, models.RejectReasonNoChain, result.Reason)
		assert.Empty(t, result.SessionID)
	})

	t.Run("folds severity into stored payload", func(t *testing.T) {
		result, err := service.Submit(ctx, models.SubmitAlertInput{
			AlertType: "pod-crash",
			Data:      map[string]any{"pod": "severity-test"},
			Severity:  "critical",
		})
		require.NoError(t, err)
		require.True(t, result.Admitted)

		session, err := client.AlertSession.Get(ctx, result.SessionID)
		require.NoError(t, err)
		assert.Contains(t, session.AlertData, `"severity":"critical"`)
	})
}

func TestAlertService_Submit_Dedup(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate submission returns existing session", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := setupTestAlertService(t, client)

		data := map[string]any{"pod": "nginx-dup", "namespace": "prod"}

		first, err := service.Submit(ctx, models.SubmitAlertInput{AlertType: "pod-crash", Data: data})
		require.NoError(t, err)
		require.True(t, first.Admitted)

		second, err := service.Submit(ctx, models.SubmitAlertInput{AlertType: "pod-crash", Data: data})
		require.NoError(t, err)
		assert.False(t, second.Admitted)
		assert.Equal(t, models.RejectReasonDuplicate, second.Reason)
		assert.Equal(t, first.SessionID, second.SessionID)

		// No second row was created.
		count, err := client.AlertSession.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("timestamps do not defeat dedup", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := setupTestAlertService(t, client)

		first, err := service.Submit(ctx, models.SubmitAlertInput{
			AlertType: "pod-crash",
			Data:      map[string]any{"pod": "nginx-ts", "timestamp": "2026-08-25T10:00:00Z"},
		})
		require.NoError(t, err)
		require.True(t, first.Admitted)

		second, err := service.Submit(ctx, models.SubmitAlertInput{
			AlertType: "pod-crash",
			Data:      map[string]any{"pod": "nginx-ts", "timestamp": "2026-08-25T10:05:00Z"},
		})
		require.NoError(t, err)
		assert.False(t, second.Admitted)
		assert.Equal(t, first.SessionID, second.SessionID)
	})

	t.Run("DB fallback catches sessions created elsewhere", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		// Two services simulate two pods sharing one database.
		podA := setupTestAlertService(t, client)
		podB := setupTestAlertService(t, client)

		data := map[string]any{"pod": "nginx-cross-pod"}

		first, err := podA.Submit(ctx, models.SubmitAlertInput{AlertType: "pod-crash", Data: data})
		require.NoError(t, err)
		require.True(t, first.Admitted)

		second, err := podB.Submit(ctx, models.SubmitAlertInput{AlertType: "pod-crash", Data: data})
		require.NoError(t, err)
		assert.False(t, second.Admitted, "podB's in-flight map is empty, DB fallback must catch it")
		assert.Equal(t, first.SessionID, second.SessionID)
	})

	t.Run("concurrent duplicate submissions admit exactly one", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := setupTestAlertService(t, client)

		data := map[string]any{"pod": "nginx-race", "namespace": "prod"}

		const submitters = 8
		results := make([]*models.SubmitResult, submitters)
		errs := make([]error, submitters)
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < submitters; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				results[i], errs[i] = service.Submit(ctx, models.SubmitAlertInput{AlertType: "pod-crash", Data: data})
			}(i)
		}
		close(start)
		wg.Wait()

		admitted := 0
		var winnerID string
		for i := range results {
			require.NoError(t, errs[i])
			if results[i].Admitted {
				admitted++
				winnerID = results[i].SessionID
			}
		}
		require.Equal(t, 1, admitted, "the fingerprint reservation must admit exactly one submission")

		for _, r := range results {
			if !r.Admitted {
				assert.Equal(t, models.RejectReasonDuplicate, r.Reason)
				assert.Equal(t, winnerID, r.SessionID, "losers must see the winner's session ID")
			}
		}

		count, err := client.AlertSession.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("rejected submissions release the fingerprint reservation", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := setupTestAlertService(t, client)

		data := map[string]any{"pod": "nginx-unroutable"}

		first, err := service.Submit(ctx, models.SubmitAlertInput{AlertType: "unknown-type", Data: data})
		require.NoError(t, err)
		require.False(t, first.Admitted)
		require.Equal(t, models.RejectReasonNoChain, first.Reason)

		// A stale reservation would turn the retry into a bogus duplicate.
		second, err := service.Submit(ctx, models.SubmitAlertInput{AlertType: "unknown-type", Data: data})
		require.NoError(t, err)
		assert.Equal(t, models.RejectReasonNoChain, second.Reason)
	})

	t.Run("terminal session does not block resubmission", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := setupTestAlertService(t, client)
		sessions := NewSessionService(client.Client)

		data := map[string]any{"pod": "nginx-resubmit"}

		first, err := service.Submit(ctx, models.SubmitAlertInput{AlertType: "pod-crash", Data: data})
		require.NoError(t, err)
		require.True(t, first.Admitted)

		// Finish the session and release the in-flight key, as the worker does.
		require.NoError(t, sessions.UpdateSessionStatus(ctx, first.SessionID, alertsession.StatusCompleted, ""))
		stored, err := client.AlertSession.Get(ctx, first.SessionID)
		require.NoError(t, err)
		service.ReleaseFingerprint(stored.Fingerprint)

		second, err := service.Submit(ctx, models.SubmitAlertInput{AlertType: "pod-crash", Data: data})
		require.NoError(t, err)
		assert.True(t, second.Admitted, "completed sessions are not duplicates")
		assert.NotEqual(t, first.SessionID, second.SessionID)
	})
}

// --- Alert masking tests ---

func TestAlertService_Submit_MaskingApplied(t *testing.T) {
	client := testdb.NewTestClient(t)
	maskingSvc := masking.NewMaskingService(
		config.NewMCPServerRegistry(nil),
		masking.AlertMaskingConfig{Enabled: true, PatternGroup: "security"},
	)
	service := setupTestAlertService(t, client, maskingSvc)
	ctx := context.Background()

	result, err := service.Submit(ctx, models.SubmitAlertInput{
		AlertType: "pod-crash",
		Data: map[string]any{
			"message": `password: "FAKE-S3CRET-NOT-REAL" found in config`,
			"contact": "user@example.com",
		},
	})
	require.NoError(t, err)
	require.True(t, result.Admitted)

	// Read back from DB to verify masking was applied before storage
	stored, err := client.AlertSession.Get(ctx, result.SessionID)
	require.NoError(t, err)

	assert.NotContains(t, stored.AlertData, "FAKE-S3CRET-NOT-REAL", "Password should be masked")
	assert.NotContains(t, stored.AlertData, "user@example.com", "Email should be masked")
	assert.Contains(t, stored.AlertData, "__MASKED_PASSWORD__")
	assert.Contains(t, stored.AlertData, "__MASKED_EMAIL__")
}

func TestAlertService_Submit_MaskingDisabled(t *testing.T) {
	client := testdb.NewTestClient(t)
	maskingSvc := masking.NewMaskingService(
		config.NewMCPServerRegistry(nil),
		masking.AlertMaskingConfig{Enabled: false, PatternGroup: "security"},
	)
	service := setupTestAlertService(t, client, maskingSvc)
	ctx := context.Background()

	result, err := service.Submit(ctx, models.SubmitAlertInput{
		AlertType: "pod-crash",
		Data:      map[string]any{"message": `password: "FAKE-S3CRET-NOT-REAL"`},
	})
	require.NoError(t, err)
	require.True(t, result.Admitted)

	stored, err := client.AlertSession.Get(ctx, result.SessionID)
	require.NoError(t, err)

	assert.Contains(t, stored.AlertData, "FAKE-S3CRET-NOT-REAL", "Data stored as-is when masking disabled")
}

func TestAlertService_Submit_NilMasker(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestAlertService(t, client)
	ctx := context.Background()

	result, err := service.Submit(ctx, models.SubmitAlertInput{
		AlertType: "pod-crash",
		Data:      map[string]any{"message": `password: "FAKE-S3CRET-NOT-REAL"`},
	})
	require.NoError(t, err)
	require.True(t, result.Admitted)

	stored, err := client.AlertSession.Get(ctx, result.SessionID)
	require.NoError(t, err)
	assert.Contains(t, stored.AlertData, "FAKE-S3CRET-NOT-REAL", "Data stored as-is with nil masker")
}
