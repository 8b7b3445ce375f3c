// Package storage provides a SQLite-backed archive of generated experiment
// specs. The JSON files under the output directory stay the canonical
// artifacts; the archive makes past runs queryable from the API and CLI.
package storage

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the required tables. It is idempotent and can be run
// multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS specs (
			exp_id TEXT PRIMARY KEY,
			query_original TEXT NOT NULL,
			query_canonical TEXT NOT NULL,
			mof_name TEXT NOT NULL DEFAULT '',
			task_type TEXT NOT NULL DEFAULT '',
			verdict_status TEXT NOT NULL,
			output_path TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_specs_created_at ON specs(created_at);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
