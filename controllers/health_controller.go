package controllers

import (
	"net/http"

	"github.com/wxtools/wxdb/models"
	"github.com/wxtools/wxdb/services"
)

// HealthController reports service liveness and store counts
type HealthController struct {
	services *services.Services
}

// NewHealthController creates a new health controller
func NewHealthController(services *services.Services) *HealthController {
	return &HealthController{
		services: services,
	}
}

// healthResponse is the GET /health response body
type healthResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Stats   *models.StoreStats `json:"stats,omitempty"`
}

// Show handles GET /health. A database that cannot be counted means
// the service is up but degraded.
func (c *HealthController) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats := &models.StoreStats{}
	var err error

	if stats.Observations, err = c.services.Observation.Count(ctx); err == nil {
		if stats.AuditEntries, err = c.services.Observation.AuditCount(ctx); err == nil {
			stats.Stations, err = c.services.Station.Count(ctx)
		}
	}

	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "degraded",
			Service: "wxdb",
		})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "healthy",
		Service: "wxdb",
		Stats:   stats,
	})
}
