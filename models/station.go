package models

// Station represents one station metadata record in tbl_metadata.
// The reported coordinates keep what the provider originally sent;
// latitude/longitude may later be corrected for location errors.
type Station struct {
	ID              int64    `json:"id" db:"id"`
	PrimaryID       string   `json:"primary_id" db:"primary_id"`
	StationName     string   `json:"station_name" db:"station_name"`
	Latitude        float64  `json:"latitude" db:"latitude"`
	Longitude       float64  `json:"longitude" db:"longitude"`
	ReportedLat     *float64 `json:"reported_lat,omitempty" db:"reported_lat"`
	ReportedLong    *float64 `json:"reported_long,omitempty" db:"reported_long"`
	Elevation       *float64 `json:"elevation,omitempty" db:"elevation"`
	PrimaryProvider string   `json:"primary_provider" db:"primary_provider"`
	Source          string   `json:"source" db:"source"`
	State           string   `json:"state" db:"state"`
	Timezone        string   `json:"timezone" db:"timezone"`
}

// StationForm represents the JSON body for registering a station
type StationForm struct {
	PrimaryID       string   `json:"primary_id"`
	StationName     string   `json:"station_name"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Elevation       *float64 `json:"elevation"`
	PrimaryProvider string   `json:"primary_provider"`
	Source          string   `json:"source"`
	State           string   `json:"state"`
	Timezone        string   `json:"timezone"`
}

// Validate validates the station form data
func (f *StationForm) Validate() ValidationErrors {
	var errors ValidationErrors

	if f.PrimaryID == "" {
		errors = append(errors, ValidationError{Field: "primary_id", Message: "primary_id is required"})
	}

	if len(f.PrimaryID) > 10 {
		errors = append(errors, ValidationError{Field: "primary_id", Message: "primary_id must be at most 10 characters"})
	}

	if f.StationName == "" {
		errors = append(errors, ValidationError{Field: "station_name", Message: "station_name is required"})
	}

	if f.Latitude == nil {
		errors = append(errors, ValidationError{Field: "latitude", Message: "latitude is required"})
	} else if *f.Latitude < -90 || *f.Latitude > 90 {
		errors = append(errors, ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}

	if f.Longitude == nil {
		errors = append(errors, ValidationError{Field: "longitude", Message: "longitude is required"})
	} else if *f.Longitude < -180 || *f.Longitude > 180 {
		errors = append(errors, ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}

	if f.Source == "" {
		errors = append(errors, ValidationError{Field: "source", Message: "source is required"})
	}

	return errors
}

// ToStation converts a validated form into a Station. The reported
// coordinates are seeded from the submitted ones, matching how
// provider metadata is first captured.
func (f *StationForm) ToStation() *Station {
	station := &Station{
		PrimaryID:       f.PrimaryID,
		StationName:     f.StationName,
		Elevation:       f.Elevation,
		PrimaryProvider: f.PrimaryProvider,
		Source:          f.Source,
		State:           f.State,
		Timezone:        f.Timezone,
	}

	if f.Latitude != nil {
		station.Latitude = *f.Latitude
		reported := *f.Latitude
		station.ReportedLat = &reported
	}
	if f.Longitude != nil {
		station.Longitude = *f.Longitude
		reported := *f.Longitude
		station.ReportedLong = &reported
	}

	return station
}
