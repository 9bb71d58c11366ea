package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-project/tarsy/pkg/config"
	testdb "github.com/tarsy-project/tarsy/test/database"
)

func TestMetricsEndpoint(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	server := NewServer(&config.Config{}, dbClient, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestWSUnavailableWithoutConnectionManager(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	server := NewServer(&config.Config{}, dbClient, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthzHealthyDatabase(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	server := NewServer(&config.Config{}, dbClient, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	require.NoError(t, json.NewDecoder(strings.NewReader(rec.Body.String())).Decode(&body))
	assert.Equal(t, healthStatusHealthy, body.Status)
	assert.Equal(t, healthStatusHealthy, body.Checks["database"].Status)
	_, hasPool := body.Checks["worker_pool"]
	assert.False(t, hasPool, "no worker pool configured, no pool check expected")
}

func TestHealthzUnhealthyDatabase(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	require.NoError(t, dbClient.DB().Close())

	server := NewServer(&config.Config{}, dbClient, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, healthStatusUnhealthy, body.Status)
	assert.Equal(t, healthStatusUnhealthy, body.Checks["database"].Status)
}
