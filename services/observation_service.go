package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/wxtools/wxdb/audit"
	"github.com/wxtools/wxdb/models"
	"github.com/wxtools/wxdb/observability"
	"github.com/wxtools/wxdb/repositories"
	"github.com/wxtools/wxdb/userctx"
)

// ErrNoPrincipal is returned when a delete is attempted without a
// resolvable acting principal. An audit row with no actor is worthless,
// so the delete is refused before any write happens.
var ErrNoPrincipal = errors.New("no acting principal in context")

// ObservationService interface defines observation business logic
type ObservationService interface {
	Ingest(ctx context.Context, form *models.ObservationForm) (*models.Observation, error)
	GetByID(ctx context.Context, id int64) (*models.Observation, error)
	List(ctx context.Context, stationID string, limit int) ([]models.Observation, error)
	Delete(ctx context.Context, id int64) error
	AuditTrail(ctx context.Context, rowID int64) ([]models.AuditEntry, error)
	Count(ctx context.Context) (int, error)
	AuditCount(ctx context.Context) (int, error)
}

// observationService implements ObservationService interface
type observationService struct {
	db        *sql.DB
	obsRepo   repositories.ObservationRepository
	auditRepo repositories.AuditRepository
	metrics   *observability.Metrics
	clock     clockwork.Clock
}

// NewObservationService creates a new observation service
func NewObservationService(
	db *sql.DB,
	obsRepo repositories.ObservationRepository,
	auditRepo repositories.AuditRepository,
	metrics *observability.Metrics,
	clock clockwork.Clock,
) ObservationService {
	return &observationService{
		db:        db,
		obsRepo:   obsRepo,
		auditRepo: auditRepo,
		metrics:   metrics,
		clock:     clock,
	}
}

// Ingest validates and stores a new observation
func (s *observationService) Ingest(ctx context.Context, form *models.ObservationForm) (*models.Observation, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errs.GetMessages(), "; "))
	}

	obs := form.ToObservation()
	if err := s.obsRepo.Create(ctx, obs); err != nil {
		return nil, err
	}

	s.metrics.ObservationsIngested.Inc()
	return obs, nil
}

// GetByID retrieves an observation by ID
func (s *observationService) GetByID(ctx context.Context, id int64) (*models.Observation, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid observation ID: %d", id)
	}
	return s.obsRepo.GetByID(ctx, id)
}

// List retrieves observations, optionally filtered by station
func (s *observationService) List(ctx context.Context, stationID string, limit int) ([]models.Observation, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return s.obsRepo.List(ctx, stationID, limit)
}

// Delete removes an observation and records one audit entry per
// populated tracked field, all inside a single transaction. Either the
// row is gone and every qualifying audit entry is persisted, or the
// row stays and nothing is written.
func (s *observationService) Delete(ctx context.Context, id int64) error {
	principal := userctx.GetPrincipal(ctx)
	if principal == "" {
		return ErrNoPrincipal
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Capture the row image before it disappears
	obs, err := s.obsRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		return err
	}

	entries := audit.Entries(obs, principal, s.clock.Now().UTC())
	for i := range entries {
		if err := s.auditRepo.CreateTx(ctx, tx, &entries[i]); err != nil {
			s.metrics.DeleteFailures.Inc()
			return fmt.Errorf("audit write failed, aborting delete of observation %d: %w", id, err)
		}
	}

	if err := s.obsRepo.DeleteTx(ctx, tx, id); err != nil {
		s.metrics.DeleteFailures.Inc()
		return err
	}

	if err := tx.Commit(); err != nil {
		s.metrics.DeleteFailures.Inc()
		return fmt.Errorf("failed to commit delete of observation %d: %w", id, err)
	}

	s.metrics.DeletesTotal.Inc()
	s.metrics.AuditEntriesWritten.Add(float64(len(entries)))
	return nil
}

// AuditTrail retrieves the audit entries recorded for a row ID. The
// trail outlives the row itself.
func (s *observationService) AuditTrail(ctx context.Context, rowID int64) ([]models.AuditEntry, error) {
	if rowID <= 0 {
		return nil, fmt.Errorf("invalid row ID: %d", rowID)
	}
	return s.auditRepo.ListByRowID(ctx, rowID)
}

// Count returns the number of stored observations
func (s *observationService) Count(ctx context.Context) (int, error) {
	return s.obsRepo.Count(ctx)
}

// AuditCount returns the number of audit entries in the audit store
func (s *observationService) AuditCount(ctx context.Context) (int, error) {
	return s.auditRepo.Count(ctx)
}
