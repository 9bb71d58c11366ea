package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/masking"
	"github.com/tarsy-project/tarsy/pkg/metrics"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// AlertService handles alert admission: dedup, chain routing, and session
// creation. Sessions are created in "pending" status and picked up by the
// worker pool.
type AlertService struct {
	client        *ent.Client
	chainRegistry *config.ChainRegistry
	defaults      *config.Defaults
	masker        *masking.MaskingService // nil disables alert payload masking

	// In-flight dedup: fingerprint → sessionID for sessions this pod knows
	// are active. The DB fallback in Submit covers other pods and restarts.
	mu       sync.Mutex
	inflight map[string]string
}

// NewAlertService creates a new AlertService. masker may be nil.
func NewAlertService(client *ent.Client, chainRegistry *config.ChainRegistry, defaults *config.Defaults, masker *masking.MaskingService) *AlertService {
	if client == nil {
		panic("NewAlertService: client must not be nil")
	}
	if chainRegistry == nil {
		panic("NewAlertService: chainRegistry must not be nil")
	}
	if defaults == nil {
		panic("NewAlertService: defaults must not be nil")
	}
	return &AlertService{
		client:        client,
		chainRegistry: chainRegistry,
		defaults:      defaults,
		masker:        masker,
		inflight:      make(map[string]string),
	}
}

// Submit admits an alert: computes its fingerprint, rejects duplicates of
// active sessions, resolves the processing chain, and creates the session.
func (s *AlertService) Submit(ctx context.Context, input models.SubmitAlertInput) (*models.SubmitResult, error) {
	if len(input.Data) == 0 {
		return nil, NewValidationError("data", "alert data is required")
	}

	alertType := input.AlertType
	if alertType == "" {
		alertType = s.defaults.AlertType
	}
	if alertType == "" {
		return nil, NewValidationError("alert_type", "alert type is required and no default is configured")
	}

	fingerprint, err := ComputeFingerprint(alertType, input.Data)
	if err != nil {
		return nil, err
	}

	// Reserve the fingerprint under the in-flight lock before anything else.
	// Check and insert happen in one critical section, so two concurrent
	// submissions of the same alert cannot both be admitted; the loser sees
	// the winner's session ID immediately, even before the row is saved.
	sessionID := uuid.New().String()
	existing, reserved := s.reserveInflight(fingerprint, sessionID)
	if !reserved {
		metrics.Default().DuplicateRejected()
		return &models.SubmitResult{
			SessionID: existing,
			Admitted:  false,
			Reason:    models.RejectReasonDuplicate,
		}, nil
	}

	// DB fallback covering other pods and restarts.
	active, err := s.findActiveByFingerprint(ctx, fingerprint)
	if err != nil {
		s.ReleaseFingerprint(fingerprint)
		return nil, err
	}
	if active != nil {
		// Re-point the reservation at the session that actually owns the
		// fingerprint so later duplicates report the right ID.
		s.registerInflight(fingerprint, active.ID)
		metrics.Default().DuplicateRejected()
		return &models.SubmitResult{
			SessionID: active.ID,
			Admitted:  false,
			Reason:    models.RejectReasonDuplicate,
		}, nil
	}

	chainID, err := s.chainRegistry.GetIDByAlertType(alertType)
	if err != nil {
		s.ReleaseFingerprint(fingerprint)
		slog.Warn("Alert rejected: no chain for alert type", "alert_type", alertType)
		return &models.SubmitResult{
			Admitted: false,
			Reason:   models.RejectReasonNoChain,
		}, nil
	}

	alertData, err := s.renderAlertData(input)
	if err != nil {
		s.ReleaseFingerprint(fingerprint)
		return nil, err
	}

	var mcpSelectionJSON map[string]any
	if input.MCPSelection != nil {
		mcpSelectionJSON, err = mcpSelectionToMap(input.MCPSelection)
		if err != nil {
			s.ReleaseFingerprint(fingerprint)
			return nil, err
		}
	}

	builder := s.client.AlertSession.Create().
		SetID(sessionID).
		SetAlertData(alertData).
		SetAlertType(alertType).
		SetFingerprint(fingerprint).
		SetChainID(chainID).
		SetStatus(alertsession.StatusPending)

	if input.Author != "" {
		builder.SetAuthor(input.Author)
	}
	if input.RunbookURL != "" {
		builder.SetRunbookURL(input.RunbookURL)
	}
	if mcpSelectionJSON != nil {
		builder.SetMcpSelection(mcpSelectionJSON)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		s.ReleaseFingerprint(fingerprint)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	slog.Info("Alert admitted",
		"session_id", session.ID,
		"alert_type", alertType,
		"chain_id", chainID)

	return &models.SubmitResult{
		AlertID:   uuid.New().String(),
		SessionID: session.ID,
		Admitted:  true,
	}, nil
}

// ReleaseFingerprint drops the in-flight dedup entry for a finished session.
// Called by the worker when a session reaches a terminal status. Safe to call
// for fingerprints this pod never registered.
func (s *AlertService) ReleaseFingerprint(fingerprint string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, fingerprint)
}

// reserveInflight claims the fingerprint for a new session. Check and insert
// run in one critical section; when another submission already holds the
// fingerprint, its session ID is returned and reserved is false.
func (s *AlertService) reserveInflight(fingerprint, sessionID string) (existing string, reserved bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.inflight[fingerprint]; ok {
		return id, false
	}
	s.inflight[fingerprint] = sessionID
	return "", true
}

func (s *AlertService) registerInflight(fingerprint, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight[fingerprint] = sessionID
}

// findActiveByFingerprint looks for a non-deleted session with the same
// fingerprint that is still pending, running, or paused.
func (s *AlertService) findActiveByFingerprint(ctx context.Context, fingerprint string) (*ent.AlertSession, error) {
	session, err := s.client.AlertSession.Query().
		Where(
			alertsession.FingerprintEQ(fingerprint),
			alertsession.StatusIn(
				alertsession.StatusPending,
				alertsession.StatusInProgress,
				alertsession.StatusPaused,
			),
			alertsession.DeletedAtIsNil(),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check for duplicate session: %w", err)
	}
	return session, nil
}

// renderAlertData serializes the payload for storage, folding severity in
// and applying configured masking before anything touches the database.
func (s *AlertService) renderAlertData(input models.SubmitAlertInput) (string, error) {
	data := input.Data
	if input.Severity != "" {
		if _, exists := data["severity"]; !exists {
			data = make(map[string]any, len(input.Data)+1)
			for k, v := range input.Data {
				data[k] = v
			}
			data["severity"] = input.Severity
		}
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to encode alert data: %w", err)
	}

	alertData := string(encoded)
	if s.masker != nil {
		alertData = s.masker.MaskAlertData(alertData)
	}
	return alertData, nil
}

func mcpSelectionToMap(selection *models.MCPSelectionConfig) (map[string]any, error) {
	encoded, err := json.Marshal(selection)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mcp_selection: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, fmt.Errorf("failed to convert mcp_selection: %w", err)
	}
	return out, nil
}
