package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wxtools/wxdb/models"
	"github.com/wxtools/wxdb/repositories"
	"github.com/wxtools/wxdb/services"
)

// StationController handles station metadata requests
type StationController struct {
	services *services.Services
}

// NewStationController creates a new station controller
func NewStationController(services *services.Services) *StationController {
	return &StationController{
		services: services,
	}
}

// Create handles POST /stations
func (c *StationController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.StationForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	station, err := c.services.Station.Register(r.Context(), &form)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, station)
}

// Index handles GET /stations
func (c *StationController) Index(w http.ResponseWriter, r *http.Request) {
	stations, err := c.services.Station.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list stations: "+err.Error())
		return
	}

	if stations == nil {
		stations = []models.Station{}
	}
	writeJSON(w, http.StatusOK, stations)
}

// Show handles GET /stations/{primary_id}
func (c *StationController) Show(w http.ResponseWriter, r *http.Request) {
	primaryID := chi.URLParam(r, "primary_id")

	station, err := c.services.Station.GetByPrimaryID(r.Context(), primaryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get station: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, station)
}
