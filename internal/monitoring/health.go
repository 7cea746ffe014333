// internal/monitoring/health.go
package monitoring

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthStatus is the payload served on the health endpoint.
type HealthStatus struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	UptimeSec int64  `json:"uptime_seconds"`
}

// HealthHandler reports process liveness. The importer holds no connections
// or background state, so liveness is the only meaningful check.
type HealthHandler struct {
	version string
	started time.Time
}

// NewHealthHandler creates a health handler stamped with the build version.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		version: version,
		started: time.Now(),
	}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:    "ok",
		Version:   h.version,
		UptimeSec: int64(time.Since(h.started).Seconds()),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}
