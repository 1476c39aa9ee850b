package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiftkoll/skiftkoll/pkg/config"
	"github.com/skiftkoll/skiftkoll/pkg/queue"
	testdb "github.com/skiftkoll/skiftkoll/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHealthEndpoint(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	server := NewServer(dbClient, nil)
	router := server.Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))

	var body HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Checks["database"].Status)
	assert.NotContains(t, body.Checks, "worker_pool")
}

func TestHealthEndpointWithWorkerPool(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	pool := queue.NewWorkerPool("pod-a", dbClient.Client, config.DefaultQueueConfig(), config.DefaultStateLabels(), nil)
	server := NewServer(dbClient, pool)
	router := server.Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	router.ServeHTTP(w, req)

	// Pool never started: no workers, reported degraded but not a 503.
	require.Equal(t, http.StatusOK, w.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "healthy", body.Checks["database"].Status)
	assert.Equal(t, "degraded", body.Checks["worker_pool"].Status)
}

func TestQueueHealthEndpoint(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	pool := queue.NewWorkerPool("pod-a", dbClient.Client, config.DefaultQueueConfig(), config.DefaultStateLabels(), nil)
	server := NewServer(dbClient, pool)
	router := server.Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/system/queue-health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body queue.PoolHealth
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "pod-a", body.WorkerID)
	assert.Equal(t, 0, body.TotalWorkers)
	assert.Equal(t, 0, body.QueueDepth)
}

func TestQueueHealthEndpointWithoutPool(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	server := NewServer(dbClient, nil)
	router := server.Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/system/queue-health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
