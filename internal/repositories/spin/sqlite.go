package spin

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/fortune/internal/models"
)

// SQLiteConfig holds configuration for the SQLite spin repository
type SQLiteConfig struct {
	// DB must already be migrated (database.OpenSQLite)
	DB *sql.DB
}

// sqliteRepository implements the Repository interface on the spins table,
// whose UNIQUE tg_user_id column arbitrates concurrent inserts
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed spin repository
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("db cannot be nil")
	}

	return &sqliteRepository{db: cfg.DB}, nil
}

const spinColumns = `id, tg_user_id, tg_username, tg_first_name, tg_last_name, prize_id, prize_text, attributes, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSpin(row rowScanner) (*models.Spin, error) {
	var (
		s                           models.Spin
		username, first, last, attr sql.NullString
	)
	if err := row.Scan(&s.ID, &s.UserID, &username, &first, &last, &s.PrizeID, &s.PrizeText, &attr, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.Username = username.String
	s.FirstName = first.String
	s.LastName = last.String

	if attr.Valid && attr.String != "" {
		if err := json.Unmarshal([]byte(attr.String), &s.Attributes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attributes: %w", err)
		}
	}

	return &s, nil
}

// InsertSpinIfAbsent relies on ON CONFLICT DO NOTHING; zero rows affected
// means another request already holds the user's row.
func (r *sqliteRepository) InsertSpinIfAbsent(ctx context.Context, input *InsertSpinInput) (InsertOutcome, error) {
	if err := validateSpin(input); err != nil {
		return InsertOutcomeUnknown, err
	}

	s := input.Spin
	var attr sql.NullString
	if len(s.Attributes) > 0 {
		data, err := json.Marshal(s.Attributes)
		if err != nil {
			return InsertOutcomeUnknown, fmt.Errorf("failed to marshal attributes: %w", err)
		}
		attr = sql.NullString{String: string(data), Valid: true}
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO spins (`+spinColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(tg_user_id) DO NOTHING`,
		s.ID, s.UserID, s.Username, s.FirstName, s.LastName, s.PrizeID, s.PrizeText, attr, s.CreatedAt.UTC(),
	)
	if err != nil {
		return InsertOutcomeUnknown, fmt.Errorf("failed to insert spin: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return InsertOutcomeUnknown, fmt.Errorf("failed to insert spin: %w", err)
	}
	if n == 0 {
		return InsertOutcomeAlreadyExists, nil
	}

	return InsertOutcomeInserted, nil
}

func (r *sqliteRepository) GetSpin(ctx context.Context, input *GetSpinInput) (*models.Spin, error) {
	if input == nil || input.UserID == 0 {
		return nil, errors.New("input and user ID cannot be empty")
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+spinColumns+` FROM spins WHERE tg_user_id = ?`, input.UserID)
	s, err := scanSpin(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSpinNotFound
		}
		return nil, fmt.Errorf("failed to get spin: %w", err)
	}

	return s, nil
}

func (r *sqliteRepository) ListSpins(ctx context.Context, input *ListSpinsInput) (*ListSpinsOutput, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+spinColumns+` FROM spins ORDER BY created_at DESC, tg_user_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list spins: %w", err)
	}
	defer rows.Close()

	spins := []*models.Spin{}
	for rows.Next() {
		s, err := scanSpin(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan spin: %w", err)
		}
		spins = append(spins, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list spins: %w", err)
	}

	return &ListSpinsOutput{Spins: spins}, nil
}

func (r *sqliteRepository) DeleteSpin(ctx context.Context, input *DeleteSpinInput) error {
	if input == nil || input.UserID == 0 {
		return errors.New("input and user ID cannot be empty")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM spins WHERE tg_user_id = ?`, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete spin: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete spin: %w", err)
	}
	if n == 0 {
		return ErrSpinNotFound
	}

	return nil
}

func (r *sqliteRepository) DeleteAllSpins(ctx context.Context, input *DeleteAllSpinsInput) (*DeleteAllSpinsOutput, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM spins`)
	if err != nil {
		return nil, fmt.Errorf("failed to delete spins: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to delete spins: %w", err)
	}

	return &DeleteAllSpinsOutput{Deleted: n}, nil
}
