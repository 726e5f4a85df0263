package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnyamakura/loyaltylink/internal/worker"
)

// HealthReporter exposes the latest probe results.
type HealthReporter interface {
	Snapshot() []worker.Status
}

// HealthHandler serves the public health endpoint.
type HealthHandler struct {
	reporter HealthReporter
}

// NewHealthHandler creates HealthHandler instance.
func NewHealthHandler(reporter HealthReporter) *HealthHandler {
	return &HealthHandler{reporter: reporter}
}

// Check handles GET /api/public/health. The gateway itself is up; each
// backing service reports its own probe outcome.
func (h *HealthHandler) Check(c *gin.Context) {
	statuses := h.reporter.Snapshot()
	healthy := true
	for _, s := range statuses {
		if !s.Healthy {
			healthy = false
			break
		}
	}

	code := http.StatusOK
	status := "ok"
	if !healthy {
		code = http.StatusServiceUnavailable
		status = "degraded"
	}
	c.JSON(code, gin.H{"status": status, "services": statuses})
}
