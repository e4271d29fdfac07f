package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/wxtools/wxdb/models"
	"github.com/wxtools/wxdb/repositories"
)

// StationService interface defines station metadata business logic
type StationService interface {
	Register(ctx context.Context, form *models.StationForm) (*models.Station, error)
	GetByPrimaryID(ctx context.Context, primaryID string) (*models.Station, error)
	List(ctx context.Context) ([]models.Station, error)
	Count(ctx context.Context) (int, error)
}

// stationService implements StationService interface
type stationService struct {
	stationRepo repositories.StationRepository
}

// NewStationService creates a new station service
func NewStationService(stationRepo repositories.StationRepository) StationService {
	return &stationService{
		stationRepo: stationRepo,
	}
}

// Register validates and stores station metadata
func (s *stationService) Register(ctx context.Context, form *models.StationForm) (*models.Station, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errs.GetMessages(), "; "))
	}

	station := form.ToStation()
	if err := s.stationRepo.Create(ctx, station); err != nil {
		return nil, err
	}

	return station, nil
}

// GetByPrimaryID retrieves a station by its provider station ID
func (s *stationService) GetByPrimaryID(ctx context.Context, primaryID string) (*models.Station, error) {
	if primaryID == "" {
		return nil, fmt.Errorf("primary_id is required")
	}
	return s.stationRepo.GetByPrimaryID(ctx, primaryID)
}

// List retrieves all registered stations
func (s *stationService) List(ctx context.Context) ([]models.Station, error) {
	return s.stationRepo.GetAll(ctx)
}

// Count returns the number of registered stations
func (s *stationService) Count(ctx context.Context) (int, error) {
	return s.stationRepo.Count(ctx)
}
