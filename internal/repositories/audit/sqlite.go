package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KirkDiggler/fortune/internal/models"
)

// SQLiteConfig holds configuration for the SQLite audit repository
type SQLiteConfig struct {
	// DB must already be migrated (database.OpenSQLite)
	DB *sql.DB
}

// sqliteRepository implements the Repository interface on the audit_log table
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed audit repository
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("db cannot be nil")
	}

	return &sqliteRepository{db: cfg.DB}, nil
}

func (r *sqliteRepository) AppendEntry(ctx context.Context, input *AppendEntryInput) (*models.AuditEntry, error) {
	if err := validateEntry(input); err != nil {
		return nil, err
	}

	e := *input.Entry
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_log (admin_id, admin_name, action, details, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.AdminID, e.AdminName, e.Action, sql.NullString{String: e.Details, Valid: e.Details != ""}, e.CreatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to append audit entry: %w", err)
	}

	if e.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("failed to read audit entry id: %w", err)
	}

	return &e, nil
}

func (r *sqliteRepository) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, admin_id, admin_name, action, details, created_at FROM audit_log
		ORDER BY created_at DESC, id DESC LIMIT ?`,
		listLimit(input),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	entries := []*models.AuditEntry{}
	for rows.Next() {
		var (
			e             models.AuditEntry
			name, details sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.AdminID, &name, &e.Action, &details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		e.AdminName = name.String
		e.Details = details.String
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	return &ListEntriesOutput{Entries: entries}, nil
}
