package staff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KirkDiggler/fortune/internal/models"
)

// SQLiteConfig holds configuration for the SQLite staff repository
type SQLiteConfig struct {
	// DB must already be migrated (database.OpenSQLite)
	DB *sql.DB
}

// sqliteRepository implements the Repository interface on the staff table
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed staff repository
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("db cannot be nil")
	}

	return &sqliteRepository{db: cfg.DB}, nil
}

const memberColumns = `id, tg_user_id, tg_username, tg_first_name, role, added_by, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*models.StaffMember, error) {
	var (
		m               models.StaffMember
		username, first sql.NullString
		addedBy         sql.NullInt64
	)
	if err := row.Scan(&m.ID, &m.UserID, &username, &first, &m.Role, &addedBy, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.Username = username.String
	m.FirstName = first.String
	m.AddedBy = addedBy.Int64
	return &m, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// CreateMember leans on the UNIQUE tg_user_id column; zero rows affected
// means the user already has a grant.
func (r *sqliteRepository) CreateMember(ctx context.Context, input *CreateMemberInput) (*models.StaffMember, error) {
	if err := validateMember(input); err != nil {
		return nil, err
	}

	m := *input.Member
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO staff (tg_user_id, tg_username, tg_first_name, role, added_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(tg_user_id) DO NOTHING`,
		m.UserID, nullString(m.Username), nullString(m.FirstName), string(m.Role),
		sql.NullInt64{Int64: m.AddedBy, Valid: m.AddedBy != 0}, m.CreatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert member: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to insert member: %w", err)
	}
	if n == 0 {
		return nil, ErrMemberExists
	}

	if m.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("failed to read member id: %w", err)
	}

	return &m, nil
}

func (r *sqliteRepository) GetMemberByUser(ctx context.Context, input *GetMemberByUserInput) (*models.StaffMember, error) {
	if input == nil || input.UserID == 0 {
		return nil, errors.New("input and user ID cannot be empty")
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+memberColumns+` FROM staff WHERE tg_user_id = ?`, input.UserID)
	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return m, nil
}

func (r *sqliteRepository) ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+memberColumns+` FROM staff ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := []*models.StaffMember{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return &ListMembersOutput{Members: members}, nil
}

func (r *sqliteRepository) DeleteMember(ctx context.Context, input *DeleteMemberInput) (*models.StaffMember, error) {
	if input == nil || input.MemberID <= 0 {
		return nil, errors.New("input and member ID cannot be empty")
	}

	row := r.db.QueryRowContext(ctx, `DELETE FROM staff WHERE id = ? RETURNING `+memberColumns, input.MemberID)
	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to delete member: %w", err)
	}

	return m, nil
}
