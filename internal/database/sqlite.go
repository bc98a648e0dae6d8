package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens (creating if needed) the SQLite database at path and
// applies the schema.
func OpenSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// WAL plus a busy timeout so concurrent spins wait for the writer
	// instead of failing with SQLITE_BUSY
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	// SQLite has a single writer
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the tables if they do not exist
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS prizes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		text TEXT NOT NULL,
		icon TEXT NOT NULL,
		color TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 1,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create prizes table: %w", err)
	}

	// tg_user_id is UNIQUE: the one-spin-per-user guarantee lives here
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS spins (
		id TEXT PRIMARY KEY,
		tg_user_id INTEGER NOT NULL UNIQUE,
		tg_username TEXT,
		tg_first_name TEXT,
		tg_last_name TEXT,
		prize_id INTEGER NOT NULL,
		prize_text TEXT NOT NULL,
		attributes TEXT,
		created_at TIMESTAMP NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create spins table: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_spins_created_at ON spins(created_at DESC)`); err != nil {
		return fmt.Errorf("failed to create spins index: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS staff (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tg_user_id INTEGER NOT NULL UNIQUE,
		tg_username TEXT,
		tg_first_name TEXT,
		role TEXT NOT NULL DEFAULT 'admin',
		added_by INTEGER,
		created_at TIMESTAMP NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create staff table: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS audit_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		admin_id INTEGER NOT NULL,
		admin_name TEXT,
		action TEXT NOT NULL,
		details TEXT,
		created_at TIMESTAMP NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create audit_log table: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_audit_log_created_at ON audit_log(created_at DESC)`); err != nil {
		return fmt.Errorf("failed to create audit_log index: %w", err)
	}

	return nil
}
