package api

import (
	"net/http"
	"time"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/models"
	"github.com/mergington/activities/internal/registry"
)

// HealthHandler handles GET /health requests.
type HealthHandler struct {
	cfg       *config.Settings
	registry  *registry.Registry
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(cfg *config.Settings, reg *registry.Registry) *HealthHandler {
	return &HealthHandler{
		cfg:       cfg,
		registry:  reg,
		startTime: time.Now(),
	}
}

// ServeHTTP implements http.Handler for the health check endpoint. The
// service has no external dependencies, so it is healthy whenever it answers.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:     "healthy",
		Version:    h.cfg.Version,
		Uptime:     time.Since(h.startTime).Seconds(),
		Activities: h.registry.Len(),
	})
}
