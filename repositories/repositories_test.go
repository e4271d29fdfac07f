package repositories

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/wxtools/wxdb/database"
	"github.com/wxtools/wxdb/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Initialize test database using the actual migration system
	db, err := database.Initialize("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestObservationRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewObservationRepository(db)
	ctx := context.Background()

	// Test Create with a sparse row
	obs := &models.Observation{
		StationID:        "TUM",
		DateTime:         time.Date(2017, 8, 3, 14, 0, 0, 0, time.UTC),
		AirTemp:          floatPtr(15.2),
		RelativeHumidity: floatPtr(88),
	}

	if err := repo.Create(ctx, obs); err != nil {
		t.Fatalf("Failed to create observation: %v", err)
	}

	if obs.ID == 0 {
		t.Error("Expected observation ID to be set after creation")
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, obs.ID)
	if err != nil {
		t.Fatalf("Failed to get observation by ID: %v", err)
	}

	if retrieved.StationID != "TUM" {
		t.Errorf("Expected station TUM, got %s", retrieved.StationID)
	}
	if retrieved.AirTemp == nil || *retrieved.AirTemp != 15.2 {
		t.Errorf("Expected air_temp 15.2, got %v", retrieved.AirTemp)
	}
	if retrieved.DewPointTemperature != nil {
		t.Error("Expected dew_point_temperature to stay NULL")
	}
	if retrieved.RelativeHumidity == nil || *retrieved.RelativeHumidity != 88 {
		t.Errorf("Expected relative_humidity 88, got %v", retrieved.RelativeHumidity)
	}

	// Test List with station filter
	other := &models.Observation{
		StationID: "CDP",
		DateTime:  time.Date(2017, 8, 3, 15, 0, 0, 0, time.UTC),
		SnowDepth: floatPtr(130),
	}
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("Failed to create second observation: %v", err)
	}

	all, err := repo.List(ctx, "", 100)
	if err != nil {
		t.Fatalf("Failed to list observations: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 observations, got %d", len(all))
	}

	filtered, err := repo.List(ctx, "TUM", 100)
	if err != nil {
		t.Fatalf("Failed to list filtered observations: %v", err)
	}
	if len(filtered) != 1 || filtered[0].StationID != "TUM" {
		t.Errorf("Expected 1 TUM observation, got %v", filtered)
	}

	// Test Count
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count observations: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected count 2, got %d", count)
	}

	// Test DeleteTx
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	if err := repo.DeleteTx(ctx, tx, obs.ID); err != nil {
		tx.Rollback()
		t.Fatalf("Failed to delete observation: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Failed to commit delete: %v", err)
	}

	// Verify deletion
	if _, err := repo.GetByID(ctx, obs.ID); err == nil {
		t.Error("Expected error when getting deleted observation")
	}
}

func TestObservationRepositoryGetByIDTx(t *testing.T) {
	db := setupTestDB(t)
	repo := NewObservationRepository(db)
	ctx := context.Background()

	obs := &models.Observation{
		StationID: "GIN",
		DateTime:  time.Date(2020, 1, 15, 6, 30, 0, 0, time.UTC),
		WindSpeed: floatPtr(4.5),
	}
	if err := repo.Create(ctx, obs); err != nil {
		t.Fatalf("Failed to create observation: %v", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	retrieved, err := repo.GetByIDTx(ctx, tx, obs.ID)
	if err != nil {
		t.Fatalf("Failed to get observation in transaction: %v", err)
	}
	if retrieved.WindSpeed == nil || *retrieved.WindSpeed != 4.5 {
		t.Errorf("Expected wind_speed 4.5, got %v", retrieved.WindSpeed)
	}
}

func TestAuditRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	at := time.Date(2017, 8, 3, 14, 0, 0, 0, time.UTC)
	entries := []models.AuditEntry{
		{Action: "delete", User: "svc_ingest", Timestamp: at, RowID: 42, FieldName: "air_temp", FieldValue: 15.2},
		{Action: "delete", User: "svc_ingest", Timestamp: at, RowID: 42, FieldName: "relative_humidity", FieldValue: 88},
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	for i := range entries {
		if err := repo.CreateTx(ctx, tx, &entries[i]); err != nil {
			tx.Rollback()
			t.Fatalf("Failed to create audit entry: %v", err)
		}
		if entries[i].ID == 0 {
			t.Error("Expected entry ID to be set after creation")
		}
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Failed to commit audit entries: %v", err)
	}

	// Test ListByRowID ordering and content
	listed, err := repo.ListByRowID(ctx, 42)
	if err != nil {
		t.Fatalf("Failed to list audit entries: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("Expected 2 audit entries, got %d", len(listed))
	}
	if listed[0].FieldName != "air_temp" || listed[1].FieldName != "relative_humidity" {
		t.Errorf("Expected insertion order preserved, got %s then %s", listed[0].FieldName, listed[1].FieldName)
	}
	if listed[0].FieldValue != 15.2 {
		t.Errorf("Expected field_value 15.2, got %v", listed[0].FieldValue)
	}
	if !listed[0].Timestamp.Equal(at) {
		t.Errorf("Expected timestamp %v, got %v", at, listed[0].Timestamp)
	}

	// Other row IDs are unaffected
	none, err := repo.ListByRowID(ctx, 7)
	if err != nil {
		t.Fatalf("Failed to list audit entries for other row: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no entries for row 7, got %d", len(none))
	}

	// Test Count
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count audit entries: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected count 2, got %d", count)
	}
}

func TestStationRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStationRepository(db)
	ctx := context.Background()

	// Test Create
	station := &models.Station{
		PrimaryID:       "TUM",
		StationName:     "Tuolumne Meadows",
		Latitude:        37.873,
		Longitude:       -119.35,
		ReportedLat:     floatPtr(37.873),
		ReportedLong:    floatPtr(-119.35),
		Elevation:       floatPtr(2621),
		PrimaryProvider: "CA Dept of Water Resources",
		Source:          "cdec",
		State:           "CA",
		Timezone:        "PDT",
	}

	if err := repo.Create(ctx, station); err != nil {
		t.Fatalf("Failed to create station: %v", err)
	}
	if station.ID == 0 {
		t.Error("Expected station ID to be set after creation")
	}

	// primary_id is unique
	dup := &models.Station{
		PrimaryID: "TUM", StationName: "Duplicate", Latitude: 0, Longitude: 0, Source: "cdec",
	}
	if err := repo.Create(ctx, dup); err == nil {
		t.Error("Expected error when creating duplicate primary_id")
	}

	// Test GetByPrimaryID
	retrieved, err := repo.GetByPrimaryID(ctx, "TUM")
	if err != nil {
		t.Fatalf("Failed to get station: %v", err)
	}
	if retrieved.StationName != "Tuolumne Meadows" {
		t.Errorf("Expected station name Tuolumne Meadows, got %s", retrieved.StationName)
	}
	if retrieved.Elevation == nil || *retrieved.Elevation != 2621 {
		t.Errorf("Expected elevation 2621, got %v", retrieved.Elevation)
	}
	if retrieved.Source != "cdec" || retrieved.State != "CA" {
		t.Errorf("Expected cdec/CA provenance, got %s/%s", retrieved.Source, retrieved.State)
	}

	// Unknown stations report ErrNotFound
	if _, err := repo.GetByPrimaryID(ctx, "NOPE"); err == nil {
		t.Error("Expected error for unknown station")
	}

	// Test GetAll ordering
	other := &models.Station{
		PrimaryID: "CDP", StationName: "Col de Porte", Latitude: 45.295, Longitude: 5.765, Source: "manual",
	}
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("Failed to create second station: %v", err)
	}

	stations, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to list stations: %v", err)
	}
	if len(stations) != 2 {
		t.Fatalf("Expected 2 stations, got %d", len(stations))
	}
	if stations[0].PrimaryID != "CDP" || stations[1].PrimaryID != "TUM" {
		t.Errorf("Expected stations ordered by primary_id, got %s then %s",
			stations[0].PrimaryID, stations[1].PrimaryID)
	}

	// Test Count
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count stations: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected count 2, got %d", count)
	}
}

// A rolled back transaction must leave no audit entries behind
func TestAuditRepositoryRollback(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}

	entry := &models.AuditEntry{
		Action: "delete", User: "svc_ingest", Timestamp: time.Now().UTC(),
		RowID: 1, FieldName: "air_temp", FieldValue: 1.5,
	}
	if err := repo.CreateTx(ctx, tx, entry); err != nil {
		t.Fatalf("Failed to create audit entry: %v", err)
	}
	tx.Rollback()

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count audit entries: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 entries after rollback, got %d", count)
	}
}
