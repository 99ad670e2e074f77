// Package store provides SQLite-backed persistence for past review runs, so
// reports remain inspectable after the process exits. It is a record, not a
// cache: the pipeline never reads it to skip work.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is one persisted pipeline run.
type Run struct {
	ID        string
	Repo      string
	Status    string
	Report    string
	CreatedAt time.Time
}

// Store wraps a SQLite database for run history.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) a SQLite database at dbPath and ensures the
// runs table exists. Use ":memory:" for an in-memory database.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	stmt := `CREATE TABLE IF NOT EXISTS runs (
		id         TEXT PRIMARY KEY,
		repo       TEXT NOT NULL,
		status     TEXT NOT NULL,
		report     TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT (datetime('now'))
	)`
	if _, err := db.Exec(stmt); err != nil {
		return fmt.Errorf("exec create runs: %w", err)
	}
	return nil
}

// SaveRun records one completed or failed run and returns its generated ID.
func (s *Store) SaveRun(repo, status, report string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, repo, status, report, created_at)
		 VALUES (?, ?, ?, ?, datetime('now'))`,
		id, repo, status, report,
	)
	if err != nil {
		return "", fmt.Errorf("save run: %w", err)
	}
	return id, nil
}

// ListRuns returns up to limit runs, most recent first. Reports are included.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, repo, status, report, created_at
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Repo, &r.Status, &r.Report, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun returns one run by ID, or an error if it does not exist.
func (s *Store) GetRun(id string) (*Run, error) {
	var r Run
	err := s.db.QueryRow(
		`SELECT id, repo, status, report, created_at FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &r.Repo, &r.Status, &r.Report, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return &r, nil
}
