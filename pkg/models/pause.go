package models

import (
	"time"
)

// Pause reasons recorded in PauseMetadata.Reason.
const (
	PauseReasonMaxIterations = "max_iterations_reached"
	PauseReasonUserRequested = "user_requested"
)

// PauseMetadata describes why and where a session was paused. It is stored
// on the session while (and only while) status = paused; resume clears it.
type PauseMetadata struct {
	Reason           string    `json:"reason"`
	CurrentIteration int       `json:"current_iteration"`
	Message          string    `json:"message,omitempty"`
	PausedAt         time.Time `json:"paused_at"`
}

// ToMap converts PauseMetadata to the generic map stored in the session's
// JSON column.
func (p *PauseMetadata) ToMap() map[string]any {
	m := map[string]any{
		"reason":            p.Reason,
		"current_iteration": p.CurrentIteration,
		"paused_at":         p.PausedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.Message != "" {
		m["message"] = p.Message
	}
	return m
}

// PauseMetadataFromMap reconstructs PauseMetadata from the stored JSON map.
// Returns nil for a nil or empty map.
func PauseMetadataFromMap(m map[string]any) *PauseMetadata {
	if len(m) == 0 {
		return nil
	}

	p := &PauseMetadata{}
	if v, ok := m["reason"].(string); ok {
		p.Reason = v
	}
	if v, ok := m["message"].(string); ok {
		p.Message = v
	}
	switch v := m["current_iteration"].(type) {
	case int:
		p.CurrentIteration = v
	case float64: // JSON round-trip decodes numbers as float64
		p.CurrentIteration = int(v)
	}
	if v, ok := m["paused_at"].(string); ok {
		if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
			p.PausedAt = ts
		}
	}
	return p
}
