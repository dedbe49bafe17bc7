// Package api provides HTTP handlers for the school activities REST API.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/mergington/activities/internal/models"
	"github.com/mergington/activities/internal/registry"
)

// ActivitiesHandler serves the activity listing and membership endpoints.
type ActivitiesHandler struct {
	registry *registry.Registry
}

// NewActivitiesHandler creates a new ActivitiesHandler.
func NewActivitiesHandler(reg *registry.Registry) *ActivitiesHandler {
	return &ActivitiesHandler{registry: reg}
}

// Routes returns the sub-router mounted at /activities.
func (h *ActivitiesHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/{name}/signup", h.Signup)
	r.Delete("/{name}/unregister", h.Unregister)
	return r
}

// List handles GET /activities
// Returns the full mapping of activity name to record, participants included.
func (h *ActivitiesHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.List())
}

// Signup handles POST /activities/{name}/signup?email=
// An empty email value is accepted; only a missing parameter is rejected.
func (h *ActivitiesHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)

	email, ok := emailParam(r)
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, "email query parameter is required")
		return
	}

	if err := h.registry.Signup(name, email); err != nil {
		writeRegistryError(w, err)
		return
	}

	log.Info().Str("activity", name).Str("email", email).Msg("Student signed up")
	writeJSON(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// Unregister handles DELETE /activities/{name}/unregister?email=
func (h *ActivitiesHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)

	email, ok := emailParam(r)
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, "email query parameter is required")
		return
	}

	if err := h.registry.Unregister(name, email); err != nil {
		writeRegistryError(w, err)
		return
	}

	log.Info().Str("activity", name).Str("email", email).Msg("Student unregistered")
	writeJSON(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// activityName extracts and percent-decodes the {name} path parameter so that
// names like "Art & Craft" round-trip through the URL.
func activityName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return name
}

// emailParam returns the email query value and whether the parameter was
// present at all. An empty value counts as present.
func emailParam(r *http.Request) (string, bool) {
	q := r.URL.Query()
	if !q.Has("email") {
		return "", false
	}
	return q.Get("email"), true
}

// writeRegistryError maps registry errors to the documented status codes and
// detail strings.
func writeRegistryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrActivityNotFound):
		writeDetail(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, registry.ErrAlreadyRegistered):
		writeDetail(w, http.StatusBadRequest, "Student already signed up")
	case errors.Is(err, registry.ErrNotRegistered):
		writeDetail(w, http.StatusBadRequest, "Student is not registered for this activity")
	default:
		log.Error().Err(err).Msg("Unexpected registry error")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

// --- Helper functions ---

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeDetail writes a JSON error response in the {"detail": ...} envelope.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorDetail{Detail: detail})
}
