package models

import (
	"time"
)

// Observation represents one measurement record in tbl_level1.
// Every tracked measurement field is independently nullable: stations
// report different sensor sets, and a nil field means the sensor did
// not report.
type Observation struct {
	ID        int64     `json:"id" db:"id"`
	StationID string    `json:"station_id" db:"station_id"`
	DateTime  time.Time `json:"date_time" db:"date_time"`

	AirTemp             *float64 `json:"air_temp,omitempty" db:"air_temp"`
	DewPointTemperature *float64 `json:"dew_point_temperature,omitempty" db:"dew_point_temperature"`
	RelativeHumidity    *float64 `json:"relative_humidity,omitempty" db:"relative_humidity"`
	WindSpeed           *float64 `json:"wind_speed,omitempty" db:"wind_speed"`
	WindDirection       *float64 `json:"wind_direction,omitempty" db:"wind_direction"`
	WindGust            *float64 `json:"wind_gust,omitempty" db:"wind_gust"`
	SolarRadiation      *float64 `json:"solar_radiation,omitempty" db:"solar_radiation"`
	SnowSmoothed        *float64 `json:"snow_smoothed,omitempty" db:"snow_smoothed"`
	SnowDepth           *float64 `json:"snow_depth,omitempty" db:"snow_depth"`
	SnowAccum           *float64 `json:"snow_accum,omitempty" db:"snow_accum"`
	PrecipAccum         *float64 `json:"precip_accum,omitempty" db:"precip_accum"`
	PrecipIntensity     *float64 `json:"precip_intensity,omitempty" db:"precip_intensity"`
	PrecipSmoothed      *float64 `json:"precip_smoothed,omitempty" db:"precip_smoothed"`
	VaporPressure       *float64 `json:"vapor_pressure,omitempty" db:"vapor_pressure"`
	CloudFactor         *float64 `json:"cloud_factor,omitempty" db:"cloud_factor"`
}

// ObservationForm represents the JSON body for ingesting an observation
type ObservationForm struct {
	StationID string `json:"station_id"`
	DateTime  string `json:"date_time"` // RFC 3339

	AirTemp             *float64 `json:"air_temp"`
	DewPointTemperature *float64 `json:"dew_point_temperature"`
	RelativeHumidity    *float64 `json:"relative_humidity"`
	WindSpeed           *float64 `json:"wind_speed"`
	WindDirection       *float64 `json:"wind_direction"`
	WindGust            *float64 `json:"wind_gust"`
	SolarRadiation      *float64 `json:"solar_radiation"`
	SnowSmoothed        *float64 `json:"snow_smoothed"`
	SnowDepth           *float64 `json:"snow_depth"`
	SnowAccum           *float64 `json:"snow_accum"`
	PrecipAccum         *float64 `json:"precip_accum"`
	PrecipIntensity     *float64 `json:"precip_intensity"`
	PrecipSmoothed      *float64 `json:"precip_smoothed"`
	VaporPressure       *float64 `json:"vapor_pressure"`
	CloudFactor         *float64 `json:"cloud_factor"`
}

// Validate validates the observation form data
func (f *ObservationForm) Validate() ValidationErrors {
	var errors ValidationErrors

	if f.StationID == "" {
		errors = append(errors, ValidationError{Field: "station_id", Message: "station_id is required"})
	}

	if len(f.StationID) > 10 {
		errors = append(errors, ValidationError{Field: "station_id", Message: "station_id must be at most 10 characters"})
	}

	if f.DateTime == "" {
		errors = append(errors, ValidationError{Field: "date_time", Message: "date_time is required"})
	} else if _, err := time.Parse(time.RFC3339, f.DateTime); err != nil {
		errors = append(errors, ValidationError{Field: "date_time", Message: "date_time must be RFC 3339 formatted"})
	}

	if f.RelativeHumidity != nil && (*f.RelativeHumidity < 0 || *f.RelativeHumidity > 100) {
		errors = append(errors, ValidationError{Field: "relative_humidity", Message: "relative_humidity must be between 0 and 100"})
	}

	if f.WindDirection != nil && (*f.WindDirection < 0 || *f.WindDirection >= 360) {
		errors = append(errors, ValidationError{Field: "wind_direction", Message: "wind_direction must be at least 0 and less than 360"})
	}

	return errors
}

// ToObservation converts a validated form into an Observation.
// Call Validate first; a malformed date_time becomes the zero time here.
func (f *ObservationForm) ToObservation() *Observation {
	dateTime, _ := time.Parse(time.RFC3339, f.DateTime)

	return &Observation{
		StationID:           f.StationID,
		DateTime:            dateTime,
		AirTemp:             f.AirTemp,
		DewPointTemperature: f.DewPointTemperature,
		RelativeHumidity:    f.RelativeHumidity,
		WindSpeed:           f.WindSpeed,
		WindDirection:       f.WindDirection,
		WindGust:            f.WindGust,
		SolarRadiation:      f.SolarRadiation,
		SnowSmoothed:        f.SnowSmoothed,
		SnowDepth:           f.SnowDepth,
		SnowAccum:           f.SnowAccum,
		PrecipAccum:         f.PrecipAccum,
		PrecipIntensity:     f.PrecipIntensity,
		PrecipSmoothed:      f.PrecipSmoothed,
		VaporPressure:       f.VaporPressure,
		CloudFactor:         f.CloudFactor,
	}
}
