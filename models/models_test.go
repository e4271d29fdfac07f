package models

import (
	"strings"
	"testing"
)

// Test ObservationForm validation
func TestObservationFormValidation(t *testing.T) {
	temp := 12.5
	validForm := ObservationForm{
		StationID: "TUM",
		DateTime:  "2017-08-03T14:00:00Z",
		AirTemp:   &temp,
	}
	errors := validForm.Validate()
	if errors.HasErrors() {
		t.Errorf("Expected no errors for valid form, got: %v", errors.GetMessages())
	}

	invalidForm := ObservationForm{
		StationID: "", // Empty station
		DateTime:  "03-08-2017 14:00",
	}
	errors = invalidForm.Validate()
	if len(errors) != 2 {
		t.Errorf("Expected 2 errors for invalid form, got: %v", errors.GetMessages())
	}
	if errors[0].Field != "station_id" || errors[1].Field != "date_time" {
		t.Errorf("Expected errors on station_id and date_time, got: %v", errors)
	}
}

func TestObservationFormRangeChecks(t *testing.T) {
	humidity := 120.0
	direction := 360.0
	form := ObservationForm{
		StationID:        "CDP",
		DateTime:         "2017-08-03T14:00:00Z",
		RelativeHumidity: &humidity,
		WindDirection:    &direction,
	}
	errors := form.Validate()
	if len(errors) != 2 {
		t.Errorf("Expected 2 range errors, got: %v", errors.GetMessages())
	}
}

// wind_direction is a half-open range: 0 is valid, 360 is not, and the
// message must say so
func TestObservationFormWindDirectionBounds(t *testing.T) {
	north := 0.0
	form := ObservationForm{StationID: "TUM", DateTime: "2017-08-03T14:00:00Z", WindDirection: &north}
	if errors := form.Validate(); errors.HasErrors() {
		t.Errorf("Expected wind_direction 0 to be valid, got: %v", errors.GetMessages())
	}

	wrapped := 360.0
	form.WindDirection = &wrapped
	errors := form.Validate()
	if len(errors) != 1 {
		t.Fatalf("Expected 1 error for wind_direction 360, got: %v", errors.GetMessages())
	}
	if !strings.Contains(errors[0].Message, "at least 0 and less than 360") {
		t.Errorf("Expected half-open range message, got: %s", errors[0].Message)
	}
}

func TestObservationFormToObservation(t *testing.T) {
	temp := -3.25
	form := ObservationForm{
		StationID: "GIN",
		DateTime:  "2020-01-15T06:30:00Z",
		AirTemp:   &temp,
	}

	obs := form.ToObservation()

	if obs.StationID != "GIN" {
		t.Errorf("Expected station GIN, got %s", obs.StationID)
	}
	if obs.DateTime.IsZero() {
		t.Error("Expected date_time to be parsed")
	}
	if obs.AirTemp == nil || *obs.AirTemp != -3.25 {
		t.Errorf("Expected air_temp -3.25, got %v", obs.AirTemp)
	}
	if obs.DewPointTemperature != nil {
		t.Error("Expected unset fields to stay nil")
	}
}

// Test StationForm validation
func TestStationFormValidation(t *testing.T) {
	lat := 38.1
	long := -119.8
	validForm := StationForm{
		PrimaryID:   "TUM",
		StationName: "Tuolumne Meadows",
		Latitude:    &lat,
		Longitude:   &long,
		Source:      "cdec",
	}
	if errors := validForm.Validate(); errors.HasErrors() {
		t.Errorf("Expected no errors for valid form, got: %v", errors.GetMessages())
	}

	badLat := 95.0
	invalidForm := StationForm{
		PrimaryID: "",
		Latitude:  &badLat,
	}
	errors := invalidForm.Validate()
	// Missing primary_id, station_name, longitude, source plus the
	// latitude range check
	if len(errors) != 5 {
		t.Errorf("Expected 5 errors for invalid form, got: %v", errors.GetMessages())
	}
}

func TestStationFormToStation(t *testing.T) {
	lat := 38.1
	long := -119.8
	form := StationForm{
		PrimaryID:   "TUM",
		StationName: "Tuolumne Meadows",
		Latitude:    &lat,
		Longitude:   &long,
		Source:      "cdec",
		State:       "CA",
		Timezone:    "PDT",
	}

	station := form.ToStation()

	if station.PrimaryID != "TUM" {
		t.Errorf("Expected primary_id TUM, got %s", station.PrimaryID)
	}
	if station.Latitude != 38.1 || station.Longitude != -119.8 {
		t.Errorf("Expected coordinates (38.1, -119.8), got (%v, %v)", station.Latitude, station.Longitude)
	}
	if station.ReportedLat == nil || *station.ReportedLat != 38.1 {
		t.Errorf("Expected reported_lat seeded from latitude, got %v", station.ReportedLat)
	}
	if station.ReportedLong == nil || *station.ReportedLong != -119.8 {
		t.Errorf("Expected reported_long seeded from longitude, got %v", station.ReportedLong)
	}
}
