package observability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthChecker_NoDatabaseConfigured(t *testing.T) {
	hc := NewHealthChecker(nil)

	status := hc.Check(context.Background())

	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "not configured", status.Checks["database"])
}

func TestHealthHandler_ServesJSON(t *testing.T) {
	hc := NewHealthChecker(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	hc.HealthHandler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "healthy", status.Status)
}
