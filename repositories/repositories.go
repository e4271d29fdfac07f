package repositories

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

// Repositories struct holds all repository interfaces
type Repositories struct {
	Observation ObservationRepository
	Audit       AuditRepository
	Station     StationRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Observation: NewObservationRepository(db),
		Audit:       NewAuditRepository(db),
		Station:     NewStationRepository(db),
	}
}
