package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/models"
	"github.com/mergington/activities/internal/registry"
)

func TestHealth(t *testing.T) {
	cfg := &config.Settings{Version: "test-1.0.0"}
	h := NewHealthHandler(cfg, registry.New(registry.Default()))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Health status = %v, want %v", w.Code, http.StatusOK)
	}

	var resp models.HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Status != "healthy" {
		t.Errorf("status = %v, want healthy", resp.Status)
	}
	if resp.Version != "test-1.0.0" {
		t.Errorf("version = %v, want test-1.0.0", resp.Version)
	}
	if resp.Activities != 3 {
		t.Errorf("activities = %v, want 3", resp.Activities)
	}
}
