package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPauseMetadataRoundTrip(t *testing.T) {
	pausedAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	p := &PauseMetadata{
		Reason:           PauseReasonMaxIterations,
		CurrentIteration: 20,
		Message:          "iteration budget exhausted",
		PausedAt:         pausedAt,
	}

	m := p.ToMap()
	assert.Equal(t, PauseReasonMaxIterations, m["reason"])
	assert.Equal(t, 20, m["current_iteration"])

	got := PauseMetadataFromMap(m)
	require.NotNil(t, got)
	assert.Equal(t, p.Reason, got.Reason)
	assert.Equal(t, p.CurrentIteration, got.CurrentIteration)
	assert.Equal(t, p.Message, got.Message)
	assert.True(t, got.PausedAt.Equal(pausedAt))
}

func TestPauseMetadataFromMapAfterJSONDecode(t *testing.T) {
	// Numbers come back as float64 after a JSON round-trip through the DB.
	m := map[string]any{
		"reason":            PauseReasonUserRequested,
		"current_iteration": float64(7),
		"paused_at":         "2026-03-14T09:26:53Z",
	}

	got := PauseMetadataFromMap(m)
	require.NotNil(t, got)
	assert.Equal(t, PauseReasonUserRequested, got.Reason)
	assert.Equal(t, 7, got.CurrentIteration)
	assert.Empty(t, got.Message)
	assert.False(t, got.PausedAt.IsZero())
}

func TestPauseMetadataFromMapNil(t *testing.T) {
	assert.Nil(t, PauseMetadataFromMap(nil))
	assert.Nil(t, PauseMetadataFromMap(map[string]any{}))
}
