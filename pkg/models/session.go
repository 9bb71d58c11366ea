// Package models contains request/response models and business domain types.
package models

import (
	"time"

	"github.com/tarsy-project/tarsy/ent"
)

// SubmitAlertInput is the input for AlertService.Submit.
type SubmitAlertInput struct {
	AlertType    string              `json:"alert_type"`
	Data         map[string]any      `json:"data"`
	RunbookURL   string              `json:"runbook_url,omitempty"`
	Severity     string              `json:"severity,omitempty"`
	Author       string              `json:"author,omitempty"`
	MCPSelection *MCPSelectionConfig `json:"mcp_selection,omitempty"`
}

// Rejection reasons returned by AlertService.Submit.
const (
	RejectReasonDuplicate = "duplicate"
	RejectReasonNoChain   = "no_chain"
)

// SubmitResult reports the outcome of an alert submission. Admitted is false
// for duplicates (SessionID then points at the already-active session).
type SubmitResult struct {
	AlertID   string `json:"alert_id,omitempty"`
	SessionID string `json:"session_id"`
	Admitted  bool   `json:"admitted"`
	Reason    string `json:"reason,omitempty"`
}

// CreateSessionRequest contains fields for creating a new alert session
type CreateSessionRequest struct {
	SessionID    string              `json:"session_id"`
	AlertData    string              `json:"alert_data"`
	AlertType    string              `json:"alert_type"`
	Fingerprint  string              `json:"fingerprint"`
	ChainID      string              `json:"chain_id"`
	Author       string              `json:"author,omitempty"`
	RunbookURL   string              `json:"runbook_url,omitempty"`
	MCPSelection *MCPSelectionConfig `json:"mcp_selection,omitempty"`
}

// SessionFilters contains filtering options for listing sessions
type SessionFilters struct {
	Status         string     `json:"status,omitempty"`
	AlertType      string     `json:"alert_type,omitempty"`
	ChainID        string     `json:"chain_id,omitempty"`
	Author         string     `json:"author,omitempty"`
	StartedAfter   *time.Time `json:"started_after,omitempty"`
	StartedBefore  *time.Time `json:"started_before,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
}

// SessionListResponse contains paginated session list
type SessionListResponse struct {
	Sessions   []*ent.AlertSession `json:"sessions"`
	TotalCount int                 `json:"total_count"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}
