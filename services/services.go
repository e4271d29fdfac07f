package services

import (
	"database/sql"

	"github.com/jonboulle/clockwork"

	"github.com/wxtools/wxdb/observability"
	"github.com/wxtools/wxdb/repositories"
)

// Services holds all service instances
type Services struct {
	Observation ObservationService
	Station     StationService
}

// NewServices creates and initializes all service instances
func NewServices(db *sql.DB, repos *repositories.Repositories, metrics *observability.Metrics) *Services {
	return &Services{
		Observation: NewObservationService(db, repos.Observation, repos.Audit, metrics, clockwork.NewRealClock()),
		Station:     NewStationService(repos.Station),
	}
}
