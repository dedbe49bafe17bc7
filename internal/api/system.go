package api

import (
	"net/http"

	"github.com/mergington/activities/internal/system"
)

// SystemHandler handles system monitoring endpoints.
type SystemHandler struct{}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// GetStats handles GET /api/system/stats
// Returns host uptime, memory usage, and load averages.
func (h *SystemHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, system.GetStats())
}
