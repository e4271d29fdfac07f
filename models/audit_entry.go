package models

import "time"

// AuditEntry represents a single row in the append-only audit store.
// Entries are only ever inserted; nothing in this codebase updates or
// deletes them.
type AuditEntry struct {
	ID         int64     `json:"id" db:"id"`
	Action     string    `json:"action" db:"action"`
	User       string    `json:"user" db:"user"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
	RowID      int64     `json:"row_id" db:"row_id"`
	FieldName  string    `json:"field_name" db:"field_name"`
	FieldValue float64   `json:"field_value" db:"field_value"`
}
