package prize

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KirkDiggler/fortune/internal/models"
)

// SQLiteConfig holds configuration for the SQLite prize repository
type SQLiteConfig struct {
	// DB must already be migrated (database.OpenSQLite)
	DB *sql.DB
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed prize repository
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("db cannot be nil")
	}

	return &sqliteRepository{db: cfg.DB}, nil
}

const prizeColumns = `id, text, icon, color, position, is_active, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrize(row rowScanner) (*models.Prize, error) {
	var p models.Prize
	if err := row.Scan(&p.ID, &p.Text, &p.Icon, &p.Color, &p.Position, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) ListPrizes(ctx context.Context, input *ListPrizesInput) (*ListPrizesOutput, error) {
	query := `SELECT ` + prizeColumns + ` FROM prizes`
	if input != nil && input.ActiveOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY position, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list prizes: %w", err)
	}
	defer rows.Close()

	prizes := []*models.Prize{}
	for rows.Next() {
		p, err := scanPrize(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prize: %w", err)
		}
		prizes = append(prizes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list prizes: %w", err)
	}

	return &ListPrizesOutput{Prizes: prizes}, nil
}

func (r *sqliteRepository) GetPrize(ctx context.Context, input *GetPrizeInput) (*models.Prize, error) {
	if input == nil || input.PrizeID <= 0 {
		return nil, errors.New("input and prize ID cannot be empty")
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+prizeColumns+` FROM prizes WHERE id = ?`, input.PrizeID)
	p, err := scanPrize(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPrizeNotFound
		}
		return nil, fmt.Errorf("failed to get prize: %w", err)
	}

	return p, nil
}

func (r *sqliteRepository) CreatePrize(ctx context.Context, input *CreatePrizeInput) (*models.Prize, error) {
	if input == nil || input.Prize == nil {
		return nil, errors.New("input and prize cannot be nil")
	}

	p := *input.Prize
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO prizes (text, icon, color, position, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Text, p.Icon, p.Color, p.Position, p.Active, p.CreatedAt.UTC(), p.UpdatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert prize: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read prize id: %w", err)
	}
	p.ID = id

	return &p, nil
}

func (r *sqliteRepository) SavePrize(ctx context.Context, input *SavePrizeInput) error {
	if input == nil || input.Prize == nil {
		return errors.New("input and prize cannot be nil")
	}

	p := input.Prize
	if p.ID <= 0 {
		return errors.New("prize ID cannot be empty")
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE prizes SET text = ?, icon = ?, color = ?, position = ?, is_active = ?, updated_at = ? WHERE id = ?`,
		p.Text, p.Icon, p.Color, p.Position, p.Active, p.UpdatedAt.UTC(), p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update prize: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update prize: %w", err)
	}
	if n == 0 {
		return ErrPrizeNotFound
	}

	return nil
}

func (r *sqliteRepository) DeletePrize(ctx context.Context, input *DeletePrizeInput) error {
	if input == nil || input.PrizeID <= 0 {
		return errors.New("input and prize ID cannot be empty")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM prizes WHERE id = ?`, input.PrizeID)
	if err != nil {
		return fmt.Errorf("failed to delete prize: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete prize: %w", err)
	}
	if n == 0 {
		return ErrPrizeNotFound
	}

	return nil
}
