// Package metrics exposes Prometheus collectors for session processing,
// LLM/MCP call outcomes and the WebSocket event stream. Served on /metrics.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	sessionsTotal      *prometheus.CounterVec
	duplicatesRejected prometheus.Counter
	llmCalls           *prometheus.CounterVec
	llmDuration        *prometheus.HistogramVec
	mcpCalls           *prometheus.CounterVec
	mcpDuration        *prometheus.HistogramVec
	activeSessions     prometheus.Gauge
	wsConnections      prometheus.Gauge
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns the package-level instance registered with the global
// Prometheus registry. Collectors are created once to avoid duplicate
// registration panics when components are instantiated repeatedly in tests.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = MustNew(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// MustNew constructs a Metrics instance on the given registerer. Pass a fresh
// registry in tests that need isolated collectors. Registration errors panic,
// mirroring promauto semantics.
func MustNew(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		sessionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tarsy",
				Name:      "sessions_total",
				Help:      "Sessions reaching a terminal status, by status.",
			},
			[]string{"status"},
		),
		duplicatesRejected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "tarsy",
				Name:      "duplicate_alerts_rejected_total",
				Help:      "Alert submissions rejected by fingerprint deduplication.",
			},
		),
		llmCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tarsy",
				Name:      "llm_calls_total",
				Help:      "LLM interactions by provider and outcome.",
			},
			[]string{"provider", "outcome"},
		),
		llmDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "tarsy",
				Name:      "llm_call_duration_seconds",
				Help:      "LLM interaction latency, streaming included.",
				Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300},
			},
			[]string{"provider"},
		),
		mcpCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tarsy",
				Name:      "mcp_tool_calls_total",
				Help:      "MCP tool calls by server and outcome.",
			},
			[]string{"server", "outcome"},
		),
		mcpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "tarsy",
				Name:      "mcp_tool_call_duration_seconds",
				Help:      "MCP tool call latency.",
				Buckets:   []float64{0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
			},
			[]string{"server"},
		),
		activeSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "tarsy",
				Name:      "active_sessions",
				Help:      "Sessions currently in progress on this pod.",
			},
		),
		wsConnections: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "tarsy",
				Name:      "websocket_connections",
				Help:      "Open WebSocket subscriber connections.",
			},
		),
	}

	reg.MustRegister(
		m.sessionsTotal,
		m.duplicatesRejected,
		m.llmCalls,
		m.llmDuration,
		m.mcpCalls,
		m.mcpDuration,
		m.activeSessions,
		m.wsConnections,
	)
	return m
}

// SessionFinished records a session reaching a terminal status.
func (m *Metrics) SessionFinished(status string) {
	m.sessionsTotal.WithLabelValues(status).Inc()
}

// DuplicateRejected records an alert rejected by deduplication.
func (m *Metrics) DuplicateRejected() {
	m.duplicatesRejected.Inc()
}

// ObserveLLMCall records one LLM interaction.
func (m *Metrics) ObserveLLMCall(provider, outcome string, elapsed time.Duration) {
	m.llmCalls.WithLabelValues(provider, outcome).Inc()
	m.llmDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// ObserveToolCall records one MCP tool call.
func (m *Metrics) ObserveToolCall(server, outcome string, elapsed time.Duration) {
	m.mcpCalls.WithLabelValues(server, outcome).Inc()
	m.mcpDuration.WithLabelValues(server).Observe(elapsed.Seconds())
}

// SessionStarted increments the active-session gauge.
func (m *Metrics) SessionStarted() { m.activeSessions.Inc() }

// SessionEnded decrements the active-session gauge.
func (m *Metrics) SessionEnded() { m.activeSessions.Dec() }

// WSConnectionOpened increments the WebSocket connection gauge.
func (m *Metrics) WSConnectionOpened() { m.wsConnections.Inc() }

// WSConnectionClosed decrements the WebSocket connection gauge.
func (m *Metrics) WSConnectionClosed() { m.wsConnections.Dec() }

// Outcome labels for ObserveLLMCall / ObserveToolCall.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// OutcomeOf maps an error to the outcome label.
func OutcomeOf(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
