package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wxtools/wxdb/models"
)

const stationColumns = `id, primary_id, station_name, latitude, longitude,
	       reported_lat, reported_long, elevation,
	       primary_provider, source, state, timezone`

// StationRepository interface defines station metadata database operations
type StationRepository interface {
	Create(ctx context.Context, station *models.Station) error
	GetByPrimaryID(ctx context.Context, primaryID string) (*models.Station, error)
	GetAll(ctx context.Context) ([]models.Station, error)
	Count(ctx context.Context) (int, error)
}

// stationRepository implements StationRepository interface
type stationRepository struct {
	db *sql.DB
}

// NewStationRepository creates a new station repository
func NewStationRepository(db *sql.DB) StationRepository {
	return &stationRepository{db: db}
}

// scanStation scans one row into a Station
func scanStation(row interface{ Scan(...any) error }) (*models.Station, error) {
	var station models.Station

	err := row.Scan(
		&station.ID,
		&station.PrimaryID,
		&station.StationName,
		&station.Latitude,
		&station.Longitude,
		&station.ReportedLat,
		&station.ReportedLong,
		&station.Elevation,
		&station.PrimaryProvider,
		&station.Source,
		&station.State,
		&station.Timezone,
	)
	if err != nil {
		return nil, err
	}

	return &station, nil
}

// Create inserts a new station metadata row
func (r *stationRepository) Create(ctx context.Context, station *models.Station) error {
	query := `
		INSERT INTO tbl_metadata (primary_id, station_name, latitude, longitude,
			reported_lat, reported_long, elevation,
			primary_provider, source, state, timezone)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		station.PrimaryID,
		station.StationName,
		station.Latitude,
		station.Longitude,
		station.ReportedLat,
		station.ReportedLong,
		station.Elevation,
		station.PrimaryProvider,
		station.Source,
		station.State,
		station.Timezone,
	)
	if err != nil {
		return fmt.Errorf("failed to create station: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	station.ID = id
	return nil
}

// GetByPrimaryID retrieves a station by its provider station ID
func (r *stationRepository) GetByPrimaryID(ctx context.Context, primaryID string) (*models.Station, error) {
	query := fmt.Sprintf("SELECT %s FROM tbl_metadata WHERE primary_id = ?", stationColumns)

	station, err := scanStation(r.db.QueryRowContext(ctx, query, primaryID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("station %s: %w", primaryID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get station: %w", err)
	}

	return station, nil
}

// GetAll retrieves all stations ordered by primary ID
func (r *stationRepository) GetAll(ctx context.Context) ([]models.Station, error) {
	query := fmt.Sprintf("SELECT %s FROM tbl_metadata ORDER BY primary_id ASC", stationColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var stations []models.Station
	for rows.Next() {
		station, err := scanStation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, *station)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stations: %w", err)
	}

	return stations, nil
}

// Count returns the total number of stations
func (r *stationRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tbl_metadata").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count stations: %w", err)
	}

	return count, nil
}
