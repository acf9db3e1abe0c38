package observability

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const dbPingTimeout = 2 * time.Second

// HealthStatus is the /health response body.
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

func (s HealthStatus) healthy() bool {
	return s.Status == "healthy"
}

// HealthChecker probes the service's dependencies. The journal database is
// the only probe: the payment gateway is deliberately not pinged here, a
// health scrape must never spend a gateway call.
type HealthChecker struct {
	dbPool *pgxpool.Pool
}

// NewHealthChecker accepts a nil pool when no journal database is
// configured; the check then reports "not configured" and stays healthy.
func NewHealthChecker(dbPool *pgxpool.Pool) *HealthChecker {
	return &HealthChecker{dbPool: dbPool}
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Checks:    map[string]string{},
	}

	if h.dbPool == nil {
		status.Checks["database"] = "not configured"
		return status
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := h.dbPool.Ping(pingCtx); err != nil {
		status.Status = "unhealthy"
		status.Checks["database"] = "unhealthy: " + err.Error()
		return status
	}

	status.Checks["database"] = "healthy"
	return status
}

// HealthHandler serves Check as JSON, 503 when any probe fails.
func (h *HealthChecker) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := h.Check(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if !status.healthy() {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(status)
	}
}
