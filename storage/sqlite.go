// Package storage keeps a SQLite history of completed level runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// RunRecord is one completed level.
type RunRecord struct {
	ID          string
	Level       int
	LevelName   string
	Deaths      int
	Score       int
	Duration    time.Duration
	CompletedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// DefaultPath is where the history lives when no path is given.
func DefaultPath() string {
	return filepath.Join("~", ".parrybound", "history.db")
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			level INTEGER NOT NULL,
			level_name TEXT NOT NULL,
			deaths INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			completed_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level);
		CREATE INDEX IF NOT EXISTS idx_runs_completed ON runs(completed_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun stores a completed level and returns its generated id.
// A zero CompletedAt is stamped with the current time.
func (s *Store) RecordRun(run RunRecord) (string, error) {
	run.ID = uuid.NewString()
	if run.CompletedAt.IsZero() {
		run.CompletedAt = s.now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, level, level_name, deaths, score, duration_ms, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Level,
		run.LevelName,
		run.Deaths,
		run.Score,
		run.Duration.Milliseconds(),
		run.CompletedAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record run: %w", err)
	}
	return run.ID, nil
}

// BestForLevel returns the run with the fewest deaths for a level, breaking
// ties by higher score then shorter time. Returns nil if the level has no runs.
func (s *Store) BestForLevel(level int) (*RunRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, level, level_name, deaths, score, duration_ms, completed_at
		 FROM runs
		 WHERE level = ?
		 ORDER BY deaths ASC, score DESC, duration_ms ASC
		 LIMIT 1`,
		level,
	)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	return run, nil
}

// RecentRuns retrieves the most recently completed runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level, level_name, deaths, score, duration_ms, completed_at
		 FROM runs
		 ORDER BY completed_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*RunRecord, error) {
	var run RunRecord
	var durationMs, completedMs int64
	if err := sc.Scan(&run.ID, &run.Level, &run.LevelName, &run.Deaths, &run.Score, &durationMs, &completedMs); err != nil {
		return nil, err
	}
	run.Duration = time.Duration(durationMs) * time.Millisecond
	run.CompletedAt = time.UnixMilli(completedMs)
	return &run, nil
}
