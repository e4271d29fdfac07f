package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/wxtools/wxdb/services"
)

// writeJSON writes a JSON response with the provided status code
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; nothing useful left to do
		return
	}
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// Controllers holds all controller instances
type Controllers struct {
	Observation *ObservationController
	Station     *StationController
	Health      *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services) *Controllers {
	return &Controllers{
		Observation: NewObservationController(services),
		Station:     NewStationController(services),
		Health:      NewHealthController(services),
	}
}
