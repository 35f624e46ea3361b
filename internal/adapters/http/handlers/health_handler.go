package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

type checkJSON struct {
	Status   string `json:"status"`
	Critical bool   `json:"critical"`
	Error    string `json:"error,omitempty"`
}

type readinessJSON struct {
	Status ports.HealthStatus   `json:"status"`
	Checks map[string]checkJSON `json:"checks"`
}

// Liveness handles GET /health/live. Always 200.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /health/ready. A failing critical dependency yields
// 503 not_ready; failing degradable ones still answer 200 with status
// degraded so the instance keeps receiving traffic.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	report := h.registry.CheckAll(r.Context())

	body := readinessJSON{
		Status: report.Status(),
		Checks: make(map[string]checkJSON, len(report)),
	}
	for name, res := range report {
		c := checkJSON{Status: "ok", Critical: res.Criticality == ports.Critical}
		if res.Err != nil {
			c.Status = "failing"
			c.Error = res.Err.Error()
		}
		body.Checks[name] = c
	}

	code := http.StatusOK
	if body.Status == ports.HealthNotReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, body)
}
