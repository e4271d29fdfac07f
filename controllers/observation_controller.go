package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wxtools/wxdb/models"
	"github.com/wxtools/wxdb/repositories"
	"github.com/wxtools/wxdb/services"
)

// ObservationController handles observation requests
type ObservationController struct {
	services *services.Services
}

// NewObservationController creates a new observation controller
func NewObservationController(services *services.Services) *ObservationController {
	return &ObservationController{
		services: services,
	}
}

// parseID parses the {id} URL parameter
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// Create handles POST /observations
func (c *ObservationController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.ObservationForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	obs, err := c.services.Observation.Ingest(r.Context(), &form)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, obs)
}

// Index handles GET /observations
func (c *ObservationController) Index(w http.ResponseWriter, r *http.Request) {
	stationID := r.URL.Query().Get("station_id")

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	observations, err := c.services.Observation.List(r.Context(), stationID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list observations: "+err.Error())
		return
	}

	if observations == nil {
		observations = []models.Observation{}
	}
	writeJSON(w, http.StatusOK, observations)
}

// Show handles GET /observations/{id}
func (c *ObservationController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid observation ID")
		return
	}

	obs, err := c.services.Observation.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get observation: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, obs)
}

// Delete handles DELETE /observations/{id}. A successful response
// means the row is gone and its audit entries are committed; any
// failure leaves both stores untouched.
func (c *ObservationController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid observation ID")
		return
	}

	if err := c.services.Observation.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, services.ErrNoPrincipal):
			writeError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, repositories.ErrNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "delete failed: "+err.Error())
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Audit handles GET /observations/{id}/audit
func (c *ObservationController) Audit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid observation ID")
		return
	}

	entries, err := c.services.Observation.AuditTrail(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load audit trail: "+err.Error())
		return
	}

	if entries == nil {
		entries = []models.AuditEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
