package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// SpecRow is one archived experiment spec.
type SpecRow struct {
	ExpID          string    `json:"exp_id"`
	QueryOriginal  string    `json:"query_original"`
	QueryCanonical string    `json:"query_canonical"`
	MOFName        string    `json:"mof_name"`
	TaskType       string    `json:"task_type"`
	VerdictStatus  string    `json:"verdict_status"`
	OutputPath     string    `json:"output_path"`
	CreatedAt      time.Time `json:"created_at"`
}

// SpecRepo provides access to the spec archive.
type SpecRepo struct {
	db *sql.DB
}

// NewSpecRepo creates a new SpecRepo.
func NewSpecRepo(db *sql.DB) *SpecRepo {
	return &SpecRepo{db: db}
}

// Insert archives a spec row. Re-inserting the same exp_id replaces the
// previous row, so a rerun that reuses an id stays consistent.
func (r *SpecRepo) Insert(row SpecRow) error {
	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO specs
			(exp_id, query_original, query_canonical, mof_name, task_type, verdict_status, output_path)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		row.ExpID, row.QueryOriginal, row.QueryCanonical,
		row.MOFName, row.TaskType, row.VerdictStatus, row.OutputPath,
	)
	if err != nil {
		return fmt.Errorf("failed to insert spec row: %w", err)
	}
	return nil
}

// GetByExpID returns the archived row for exp_id, or sql.ErrNoRows.
func (r *SpecRepo) GetByExpID(expID string) (SpecRow, error) {
	row := r.db.QueryRow(
		`SELECT exp_id, query_original, query_canonical, mof_name, task_type, verdict_status, output_path, created_at
		 FROM specs WHERE exp_id = ?`, expID)
	return scanSpecRow(row)
}

// ListRecent returns up to limit archived specs, newest first.
func (r *SpecRepo) ListRecent(limit int) ([]SpecRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(
		`SELECT exp_id, query_original, query_canonical, mof_name, task_type, verdict_status, output_path, created_at
		 FROM specs ORDER BY created_at DESC, exp_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list spec rows: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []SpecRow
	for rows.Next() {
		row, err := scanSpecRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSpecRow(s scanner) (SpecRow, error) {
	var row SpecRow
	var createdAt string
	err := s.Scan(
		&row.ExpID, &row.QueryOriginal, &row.QueryCanonical,
		&row.MOFName, &row.TaskType, &row.VerdictStatus,
		&row.OutputPath, &createdAt,
	)
	if err != nil {
		return SpecRow{}, err
	}

	// SQLite's CURRENT_TIMESTAMP renders as "2006-01-02 15:04:05".
	row.CreatedAt, err = time.Parse("2006-01-02 15:04:05", createdAt)
	if err != nil {
		row.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return SpecRow{}, fmt.Errorf("failed to parse created_at %q: %w", createdAt, err)
		}
	}
	return row, nil
}
