package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wxtools/wxdb/models"
)

// AuditRepository handles audit store persistence. The audit store is
// append-only: there are no update or delete operations.
type AuditRepository interface {
	// CreateTx inserts an audit entry within the caller's transaction,
	// so the entry commits or rolls back together with the deletion
	// that produced it.
	CreateTx(ctx context.Context, tx *sql.Tx, entry *models.AuditEntry) error
	ListByRowID(ctx context.Context, rowID int64) ([]models.AuditEntry, error)
	Count(ctx context.Context) (int, error)
}

// auditRepository implements AuditRepository interface
type auditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &auditRepository{db: db}
}

// CreateTx inserts a new audit entry within the given transaction
func (r *auditRepository) CreateTx(ctx context.Context, tx *sql.Tx, entry *models.AuditEntry) error {
	query := "INSERT INTO tbl_audit (`action`, `user`, `timestamp`, row_id, field_name, field_value) VALUES (?, ?, ?, ?, ?, ?)"

	result, err := tx.ExecContext(ctx, query,
		entry.Action,
		entry.User,
		entry.Timestamp,
		entry.RowID,
		entry.FieldName,
		entry.FieldValue,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	entry.ID = id
	return nil
}

// ListByRowID retrieves all audit entries referencing a source row, in
// insertion order
func (r *auditRepository) ListByRowID(ctx context.Context, rowID int64) ([]models.AuditEntry, error) {
	query := "SELECT id, `action`, `user`, `timestamp`, row_id, field_name, field_value FROM tbl_audit WHERE row_id = ? ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, query, rowID)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditEntry
	for rows.Next() {
		var entry models.AuditEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&entry.User,
			&entry.Timestamp,
			&entry.RowID,
			&entry.FieldName,
			&entry.FieldValue,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit entries: %w", err)
	}

	return entries, nil
}

// Count returns the total number of audit entries
func (r *auditRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tbl_audit").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	return count, nil
}
