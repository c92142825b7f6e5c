// Package storage provides SQLite-based history of maze generation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// A run records the generator inputs, the resulting counts and a digest of
// the encoding. The maze itself is never stored: the same inputs regenerate it.
package storage

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tank-maze/internal/mazegen"
)

// ErrRunNotFound is returned when a run ID has no record.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run represents one recorded generation.
type Run struct {
	ID        int64
	RunID     string
	Preset    string
	Params    mazegen.Params // normalized inputs with the seed actually used
	Enemies   int
	Walls     int // destructible obstacles
	Rewards   int
	Heals     int
	Fallbacks int
	Digest    string
	CreatedAt time.Time
}

// Mode returns the generation mode of the run.
func (r Run) Mode() string {
	return r.Params.Mode()
}

// Digest returns the hex SHA-256 of an encoding, rows joined by newlines.
func Digest(rows []string) string {
	sum := sha256.Sum256([]byte(strings.Join(rows, "\n")))
	return hex.EncodeToString(sum[:])
}

// NewRun builds a record for a finished generation with a fresh run ID.
func NewRun(preset string, p mazegen.Params, rep mazegen.Report, rows []string) Run {
	p = p.Normalized()
	p.Seed = rep.Seed
	return Run{
		RunID:     uuid.NewString(),
		Preset:    preset,
		Params:    p,
		Enemies:   rep.Enemies,
		Walls:     rep.Destructibles,
		Rewards:   rep.Rewards,
		Heals:     rep.Heals,
		Fallbacks: len(rep.Fallbacks),
		Digest:    Digest(rows),
	}
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

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			preset TEXT NOT NULL DEFAULT '',
			mode TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			enemy_count INTEGER NOT NULL,
			destructible_ratio REAL NOT NULL,
			dual_spawn INTEGER NOT NULL DEFAULT 0,
			escape_mode INTEGER NOT NULL DEFAULT 0,
			enemies INTEGER NOT NULL DEFAULT 0,
			walls INTEGER NOT NULL DEFAULT 0,
			rewards INTEGER NOT NULL DEFAULT 0,
			heals INTEGER NOT NULL DEFAULT 0,
			fallbacks INTEGER NOT NULL DEFAULT 0,
			digest TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_seed ON runs(seed);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a generation run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, preset, mode, width, height, seed, enemy_count, destructible_ratio,
		  dual_spawn, escape_mode, enemies, walls, rewards, heals, fallbacks, digest)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Preset, r.Mode(),
		r.Params.Width, r.Params.Height, r.Params.Seed,
		r.Params.EnemyCount, r.Params.DestructibleRatio,
		r.Params.DualSpawn, r.Params.Escape,
		r.Enemies, r.Walls, r.Rewards, r.Heals, r.Fallbacks,
		r.Digest,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, run_id, preset, width, height, seed, enemy_count, destructible_ratio,
	dual_spawn, escape_mode, enemies, walls, rewards, heals, fallbacks, digest, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var r Run
	var createdAt any
	err := row.Scan(
		&r.ID, &r.RunID, &r.Preset,
		&r.Params.Width, &r.Params.Height, &r.Params.Seed,
		&r.Params.EnemyCount, &r.Params.DestructibleRatio,
		&r.Params.DualSpawn, &r.Params.Escape,
		&r.Enemies, &r.Walls, &r.Rewards, &r.Heals, &r.Fallbacks,
		&r.Digest, &createdAt,
	)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a run by its run ID.
func (s *Store) RunByID(runID string) (Run, error) {
	r, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		runID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return r, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// ModeStats contains aggregated statistics for one generation mode.
type ModeStats struct {
	Mode      string
	Runs      int
	AvgWalls  float64
	AvgEnemy  float64
	Fallbacks int
	LastRun   time.Time
}

// AllModeStats retrieves statistics for every mode that has runs.
func (s *Store) AllModeStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), AVG(walls), AVG(enemies), SUM(fallbacks), MAX(created_at)
		 FROM runs
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var m ModeStats
		var lastRun any
		if err := rows.Scan(&m.Mode, &m.Runs, &m.AvgWalls, &m.AvgEnemy, &m.Fallbacks, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		m.LastRun = parseTime(lastRun)
		stats[m.Mode] = &m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
