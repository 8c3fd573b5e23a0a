package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"svw.info/elevator/internal/domain"
)

const createSolutions = `CREATE TABLE IF NOT EXISTS solutions (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    part INTEGER NOT NULL,
    solved INTEGER NOT NULL,
    cost INTEGER NOT NULL,
    explored INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    payload TEXT NOT NULL
);`

const idxSolutionsCreated = `CREATE INDEX IF NOT EXISTS idx_solutions_created ON solutions(created_at);`

// SQLite stores solutions in a single table; the full record is kept as JSON.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) solutions.db inside dir.
func OpenSQLite(dir string) (*SQLite, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, "solutions.db"))
	if err != nil {
		return nil, err
	}
	for _, ddl := range []string{createSolutions, idxSolutionsCreated} {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Save(ctx context.Context, sol *domain.Solution) error {
	if sol == nil || sol.ID == "" {
		return errors.New("invalid solution: missing ID")
	}
	payload, err := json.Marshal(sol)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO solutions (id, name, part, solved, cost, explored, duration_ms, created_at, payload)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sol.ID, sol.Name, sol.Part, sol.Solved, sol.Cost, sol.Explored, sol.DurationMs, sol.CreatedAt, string(payload))
	if err != nil {
		return fmt.Errorf("save solution %s: %w", sol.ID, err)
	}
	return nil
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Solution, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM solutions WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, os.ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("load solution %s: %w", id, err)
	}
	var out domain.Solution
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.SolutionMeta, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, part, solved, cost, created_at FROM solutions ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list solutions: %w", err)
	}
	defer rows.Close()
	var out []domain.SolutionMeta
	for rows.Next() {
		var m domain.SolutionMeta
		if err := rows.Scan(&m.ID, &m.Name, &m.Part, &m.Solved, &m.Cost, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
