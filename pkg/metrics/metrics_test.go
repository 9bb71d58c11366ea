package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionFinishedCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := MustNew(reg)

	m.SessionFinished("completed")
	m.SessionFinished("completed")
	m.SessionFinished("failed")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.sessionsTotal.WithLabelValues("completed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.sessionsTotal.WithLabelValues("failed")))
}

func TestGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := MustNew(reg)

	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.activeSessions))

	m.WSConnectionOpened()
	m.WSConnectionClosed()
	assert.Equal(t, float64(0), testutil.ToFloat64(m.wsConnections))
}

func TestObserveCalls(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := MustNew(reg)

	m.ObserveLLMCall("google", OutcomeSuccess, 2*time.Second)
	m.ObserveToolCall("kubernetes-server", OutcomeError, 100*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.llmCalls.WithLabelValues("google", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.mcpCalls.WithLabelValues("kubernetes-server", "error")))
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, OutcomeOf(nil))
	assert.Equal(t, OutcomeError, OutcomeOf(errors.New("boom")))
}

func TestDefaultIsSingleton(t *testing.T) {
	first := Default()
	second := Default()
	require.Same(t, first, second)
}
