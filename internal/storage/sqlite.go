// Package storage provides SQLite-based persistence for Legacy progress and
// run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// LegacyState is the persisted Legacy progress of one profile.
type LegacyState struct {
	Profile  string
	Points   int
	Upgrades map[string]int // upgrade id -> purchase count
}

// RunRecord is one finished expedition.
type RunRecord struct {
	ID           int64
	RunID        string // UUID
	Profile      string
	Seed         int64
	Result       string // "Sank", "Returned", "Stranded", "Abandoned"
	Rescued      int
	PointsEarned int
	Duration     float64 // seconds
	CreatedAt    time.Time
}

// RunStats contains aggregated statistics for a profile.
type RunStats struct {
	Profile      string
	Runs         int
	Sank         int
	TotalRescued int
	BestRescued  int
	TotalPoints  int
	LastPlayed   time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// play, serve and the legacy command may write the same file at once
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
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
		CREATE TABLE IF NOT EXISTS legacy_profiles (
			profile TEXT PRIMARY KEY,
			points INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS legacy_upgrades (
			profile TEXT NOT NULL,
			upgrade_id TEXT NOT NULL,
			count INTEGER NOT NULL DEFAULT 1,
			PRIMARY KEY (profile, upgrade_id)
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			profile TEXT NOT NULL,
			seed INTEGER NOT NULL,
			result TEXT NOT NULL,
			rescued INTEGER NOT NULL DEFAULT 0,
			points_earned INTEGER NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_profile ON runs(profile, created_at DESC);
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

// LoadLegacy returns the saved progress of profile.
// A profile that was never saved has zero points and no upgrades.
func (s *Store) LoadLegacy(profile string) (LegacyState, error) {
	state := LegacyState{Profile: profile, Upgrades: make(map[string]int)}

	err := s.db.QueryRow(
		"SELECT points FROM legacy_profiles WHERE profile = ?",
		profile,
	).Scan(&state.Points)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return state, fmt.Errorf("storage: cannot query legacy points: %w", err)
	}

	rows, err := s.db.Query(
		"SELECT upgrade_id, count FROM legacy_upgrades WHERE profile = ?",
		profile,
	)
	if err != nil {
		return state, fmt.Errorf("storage: cannot query upgrades: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return state, fmt.Errorf("storage: cannot scan upgrade row: %w", err)
		}
		state.Upgrades[id] = count
	}

	if err := rows.Err(); err != nil {
		return state, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return state, nil
}

// AddLegacyPoints adds delta to the profile's points, never going below
// zero, and returns the stored progress. Writers add deltas rather than
// overwrite totals, so sessions sharing a profile never erase each other.
func (s *Store) AddLegacyPoints(profile string, delta int) (LegacyState, error) {
	_, err := s.db.Exec(
		`INSERT INTO legacy_profiles (profile, points, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile) DO UPDATE SET points = MAX(legacy_profiles.points + ?, 0), updated_at = CURRENT_TIMESTAMP`,
		profile, max(delta, 0), delta,
	)
	if err != nil {
		return LegacyState{}, fmt.Errorf("storage: cannot add legacy points: %w", err)
	}
	return s.LoadLegacy(profile)
}

// BuyUpgrade debits cost and counts one more purchase of upgradeID in one
// transaction. The purchase is checked against the stored balance: it is
// refused when the points fall short, or when a non-stackable upgrade is
// already owned. Returns the stored progress and whether the purchase went through.
func (s *Store) BuyUpgrade(profile, upgradeID string, cost int, stackable bool) (LegacyState, bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return LegacyState{}, false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO legacy_profiles (profile, points) VALUES (?, 0) ON CONFLICT(profile) DO NOTHING",
		profile,
	); err != nil {
		return LegacyState{}, false, fmt.Errorf("storage: cannot create profile: %w", err)
	}

	res, err := tx.Exec(
		`UPDATE legacy_profiles SET points = points - ?, updated_at = CURRENT_TIMESTAMP
		 WHERE profile = ? AND points >= ?
		   AND (? OR NOT EXISTS (
		     SELECT 1 FROM legacy_upgrades WHERE profile = ? AND upgrade_id = ? AND count > 0))`,
		cost, profile, cost, stackable, profile, upgradeID,
	)
	if err != nil {
		return LegacyState{}, false, fmt.Errorf("storage: cannot debit upgrade %s: %w", upgradeID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return LegacyState{}, false, fmt.Errorf("storage: cannot debit upgrade %s: %w", upgradeID, err)
	}
	if n == 0 {
		tx.Rollback()
		state, err := s.LoadLegacy(profile)
		return state, false, err
	}

	if _, err := tx.Exec(
		`INSERT INTO legacy_upgrades (profile, upgrade_id, count) VALUES (?, ?, 1)
		 ON CONFLICT(profile, upgrade_id) DO UPDATE SET count = legacy_upgrades.count + 1`,
		profile, upgradeID,
	); err != nil {
		return LegacyState{}, false, fmt.Errorf("storage: cannot save upgrade %s: %w", upgradeID, err)
	}

	if err := tx.Commit(); err != nil {
		return LegacyState{}, false, fmt.Errorf("storage: cannot commit purchase: %w", err)
	}

	state, err := s.LoadLegacy(profile)
	return state, true, err
}

// Profiles lists every profile with saved Legacy progress.
func (s *Store) Profiles() ([]string, error) {
	rows, err := s.db.Query("SELECT profile FROM legacy_profiles ORDER BY profile")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return profiles, nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (run_id, profile, seed, result, rescued, points_earned, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Profile, r.Seed, r.Result, r.Rescued, r.PointsEarned, r.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
// An empty profile returns runs of every profile.
func (s *Store) RecentRuns(profile string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, profile, seed, result, rescued, points_earned, duration_secs, created_at
		 FROM runs
		 WHERE ? = '' OR profile = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		profile, profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.RunID,
			&r.Profile,
			&r.Seed,
			&r.Result,
			&r.Rescued,
			&r.PointsEarned,
			&r.Duration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// GetRunStats retrieves aggregated run statistics for a profile.
func (s *Store) GetRunStats(profile string) (*RunStats, error) {
	stats := &RunStats{Profile: profile}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN result = 'Sank' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(rescued), 0),
		        COALESCE(MAX(rescued), 0),
		        COALESCE(SUM(points_earned), 0),
		        MAX(created_at)
		 FROM runs WHERE profile = ?`,
		profile,
	).Scan(&stats.Runs, &stats.Sank, &stats.TotalRescued, &stats.BestRescued, &stats.TotalPoints, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string for DATETIME columns.
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
