package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wxtools/wxdb/models"
)

// observationColumns is the select list shared by all read queries, in
// struct field order.
const observationColumns = `id, station_id, date_time,
	       air_temp, dew_point_temperature, relative_humidity,
	       wind_speed, wind_direction, wind_gust, solar_radiation,
	       snow_smoothed, snow_depth, snow_accum,
	       precip_accum, precip_intensity, precip_smoothed,
	       vapor_pressure, cloud_factor`

// ObservationRepository interface defines observation database operations
type ObservationRepository interface {
	Create(ctx context.Context, obs *models.Observation) error
	GetByID(ctx context.Context, id int64) (*models.Observation, error)
	GetByIDTx(ctx context.Context, tx *sql.Tx, id int64) (*models.Observation, error)
	List(ctx context.Context, stationID string, limit int) ([]models.Observation, error)
	DeleteTx(ctx context.Context, tx *sql.Tx, id int64) error
	Count(ctx context.Context) (int, error)
}

// observationRepository implements ObservationRepository interface
type observationRepository struct {
	db *sql.DB
}

// NewObservationRepository creates a new observation repository
func NewObservationRepository(db *sql.DB) ObservationRepository {
	return &observationRepository{db: db}
}

// scanObservation scans one row into an Observation. The driver maps
// NULL columns straight onto the nil pointer fields.
func scanObservation(row interface{ Scan(...any) error }) (*models.Observation, error) {
	var obs models.Observation

	err := row.Scan(
		&obs.ID,
		&obs.StationID,
		&obs.DateTime,
		&obs.AirTemp,
		&obs.DewPointTemperature,
		&obs.RelativeHumidity,
		&obs.WindSpeed,
		&obs.WindDirection,
		&obs.WindGust,
		&obs.SolarRadiation,
		&obs.SnowSmoothed,
		&obs.SnowDepth,
		&obs.SnowAccum,
		&obs.PrecipAccum,
		&obs.PrecipIntensity,
		&obs.PrecipSmoothed,
		&obs.VaporPressure,
		&obs.CloudFactor,
	)
	if err != nil {
		return nil, err
	}

	return &obs, nil
}

// Create inserts a new observation row
func (r *observationRepository) Create(ctx context.Context, obs *models.Observation) error {
	query := `
		INSERT INTO tbl_level1 (station_id, date_time,
			air_temp, dew_point_temperature, relative_humidity,
			wind_speed, wind_direction, wind_gust, solar_radiation,
			snow_smoothed, snow_depth, snow_accum,
			precip_accum, precip_intensity, precip_smoothed,
			vapor_pressure, cloud_factor)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		obs.StationID,
		obs.DateTime,
		obs.AirTemp,
		obs.DewPointTemperature,
		obs.RelativeHumidity,
		obs.WindSpeed,
		obs.WindDirection,
		obs.WindGust,
		obs.SolarRadiation,
		obs.SnowSmoothed,
		obs.SnowDepth,
		obs.SnowAccum,
		obs.PrecipAccum,
		obs.PrecipIntensity,
		obs.PrecipSmoothed,
		obs.VaporPressure,
		obs.CloudFactor,
	)
	if err != nil {
		return fmt.Errorf("failed to create observation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	obs.ID = id
	return nil
}

// GetByID retrieves an observation by ID
func (r *observationRepository) GetByID(ctx context.Context, id int64) (*models.Observation, error) {
	query := fmt.Sprintf("SELECT %s FROM tbl_level1 WHERE id = ?", observationColumns)

	obs, err := scanObservation(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("observation %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get observation: %w", err)
	}

	return obs, nil
}

// GetByIDTx retrieves an observation by ID within a transaction. The
// delete path uses this to capture the row image before removal.
func (r *observationRepository) GetByIDTx(ctx context.Context, tx *sql.Tx, id int64) (*models.Observation, error) {
	query := fmt.Sprintf("SELECT %s FROM tbl_level1 WHERE id = ?", observationColumns)

	obs, err := scanObservation(tx.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("observation %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get observation: %w", err)
	}

	return obs, nil
}

// List retrieves observations, newest first, optionally filtered by station
func (r *observationRepository) List(ctx context.Context, stationID string, limit int) ([]models.Observation, error) {
	query := fmt.Sprintf("SELECT %s FROM tbl_level1", observationColumns)

	var args []any
	if stationID != "" {
		query += " WHERE station_id = ?"
		args = append(args, stationID)
	}
	query += " ORDER BY date_time DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}
	defer rows.Close()

	var observations []models.Observation
	for rows.Next() {
		obs, err := scanObservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		observations = append(observations, *obs)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating observations: %w", err)
	}

	return observations, nil
}

// DeleteTx deletes an observation by ID within a transaction
func (r *observationRepository) DeleteTx(ctx context.Context, tx *sql.Tx, id int64) error {
	result, err := tx.ExecContext(ctx, "DELETE FROM tbl_level1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete observation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("observation %d: %w", id, ErrNotFound)
	}

	return nil
}

// Count returns the total number of observations
func (r *observationRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tbl_level1").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count observations: %w", err)
	}

	return count, nil
}
