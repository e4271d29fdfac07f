// Package audit builds the audit trail written when an observation row
// is deleted. For every tracked measurement column that still held a
// value, one append-only entry records who deleted the row, when, and
// what the value was.
package audit

import (
	"time"

	"github.com/wxtools/wxdb/models"
)

// ActionDelete is the action recorded for deletion audit entries.
const ActionDelete = "delete"

// TrackedField pairs an audited column name with an accessor into the
// row image.
type TrackedField struct {
	Column string
	Value  func(o *models.Observation) *float64
}

// TrackedFields enumerates the measurement columns captured on delete.
// The order is fixed: entries are emitted in this order, so audit rows
// for one deletion are reproducible.
var TrackedFields = []TrackedField{
	{"air_temp", func(o *models.Observation) *float64 { return o.AirTemp }},
	{"dew_point_temperature", func(o *models.Observation) *float64 { return o.DewPointTemperature }},
	{"relative_humidity", func(o *models.Observation) *float64 { return o.RelativeHumidity }},
	{"wind_speed", func(o *models.Observation) *float64 { return o.WindSpeed }},
	{"wind_direction", func(o *models.Observation) *float64 { return o.WindDirection }},
	{"wind_gust", func(o *models.Observation) *float64 { return o.WindGust }},
	{"solar_radiation", func(o *models.Observation) *float64 { return o.SolarRadiation }},
	{"snow_smoothed", func(o *models.Observation) *float64 { return o.SnowSmoothed }},
	{"snow_depth", func(o *models.Observation) *float64 { return o.SnowDepth }},
	{"snow_accum", func(o *models.Observation) *float64 { return o.SnowAccum }},
	{"precip_accum", func(o *models.Observation) *float64 { return o.PrecipAccum }},
	{"precip_intensity", func(o *models.Observation) *float64 { return o.PrecipIntensity }},
	{"precip_smoothed", func(o *models.Observation) *float64 { return o.PrecipSmoothed }},
	{"vapor_pressure", func(o *models.Observation) *float64 { return o.VaporPressure }},
	{"cloud_factor", func(o *models.Observation) *float64 { return o.CloudFactor }},
}

// Entries builds the audit entries for deleting the given row image.
// Null fields produce no entry, so the result holds between zero and
// len(TrackedFields) entries. The caller supplies the acting principal
// and the timestamp; Entries itself reads no ambient state.
func Entries(row *models.Observation, principal string, at time.Time) []models.AuditEntry {
	var entries []models.AuditEntry

	for _, field := range TrackedFields {
		value := field.Value(row)
		if value == nil {
			continue
		}

		entries = append(entries, models.AuditEntry{
			Action:     ActionDelete,
			User:       principal,
			Timestamp:  at,
			RowID:      row.ID,
			FieldName:  field.Column,
			FieldValue: *value,
		})
	}

	return entries
}
