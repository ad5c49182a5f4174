package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/ward-alert-service/internal/platform/health"
	"github.com/jsamuelsen11/ward-alert-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"

	// readinessTimeout bounds a readiness round so a hung directory ping
	// cannot hold the probe open.
	readinessTimeout = 3 * time.Second
)

// HealthHandler serves the liveness and readiness probes. Readiness reports
// the mesh agent breaker and, when the directory comes from Postgres, the
// directory database.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.LivenessResponse{Status: statusOK})
}

// Readiness handles GET /health/ready.
//
//	all checks pass               → 200 "ready"
//	only degraded checks failing  → 200 "degraded"
//	anything else failing         → 503 "not_ready"
//
// A degraded agent still takes broadcasts, so the instance stays in rotation.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	results := h.registry.CheckAll(ctx)

	resp := dto.ReadinessResponse{
		Status: statusReady,
		Checks: make(map[string]string, len(results)),
	}
	code := http.StatusOK

	for name, err := range results {
		switch {
		case err == nil:
			resp.Checks[name] = statusOK
		case errors.Is(err, health.ErrDegraded):
			resp.Checks[name] = err.Error()
			if resp.Status == statusReady {
				resp.Status = statusDegraded
			}
		default:
			resp.Checks[name] = err.Error()
			resp.Status = statusNotReady
			code = http.StatusServiceUnavailable
		}
	}

	writeJSON(w, code, resp)
}
