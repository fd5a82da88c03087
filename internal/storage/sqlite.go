// Package storage provides SQLite-based persistence for round results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/speedtype/internal/core"
	"github.com/vovakirdan/speedtype/internal/game"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for result history.
type Store struct {
	db *sql.DB
}

// ResultEntry is one stored round.
type ResultEntry struct {
	ID        int64
	Player    string
	Score     int
	TimeMs    int64
	Correct   int
	Incorrect int
	Accuracy  float64
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all stored rounds.
type Stats struct {
	Rounds      int
	BestScore   int
	AvgScore    float64
	AvgTimeMs   float64
	AvgAccuracy float64
	LastPlayed  time.Time
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			time_ms INTEGER NOT NULL,
			correct INTEGER NOT NULL DEFAULT 0,
			incorrect INTEGER NOT NULL DEFAULT 0,
			accuracy REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(score DESC);
		CREATE INDEX IF NOT EXISTS idx_results_player ON results(player, score DESC);
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

// SaveResult records a finished round for player.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(player string, r core.RoundResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (player, score, time_ms, correct, incorrect, accuracy)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		player, r.Score, r.TimeMs, r.Correct, r.Incorrect, r.Accuracy,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const resultColumns = `id, player, score, time_ms, correct, incorrect, accuracy, created_at`

// TopResults retrieves the best N rounds of all players, highest score first.
// Ties go to the faster round.
func (s *Store) TopResults(limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT `+resultColumns+`
		 FROM results
		 ORDER BY score DESC, time_ms ASC
		 LIMIT ?`,
		limit,
	)
}

// PlayerResults retrieves the most recent rounds of one player.
func (s *Store) PlayerResults(player string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE player = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		player, limit,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]ResultEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &e.TimeMs, &e.Correct, &e.Incorrect, &e.Accuracy, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the best score of all players, or 0 if nothing is stored.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM results").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// PersonalBest returns the best round of player. ok is false if the player has
// no stored rounds.
func (s *Store) PersonalBest(player string) (entry ResultEntry, ok bool, err error) {
	var createdAt any
	err = s.db.QueryRow(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE player = ?
		 ORDER BY score DESC, time_ms ASC
		 LIMIT 1`,
		player,
	).Scan(&entry.ID, &entry.Player, &entry.Score, &entry.TimeMs, &entry.Correct, &entry.Incorrect, &entry.Accuracy, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ResultEntry{}, false, nil
	}
	if err != nil {
		return ResultEntry{}, false, fmt.Errorf("storage: cannot query personal best: %w", err)
	}
	entry.CreatedAt = parseTime(createdAt)
	return entry, true, nil
}

// Stats returns aggregated statistics over all stored rounds.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(AVG(time_ms), 0), COALESCE(AVG(accuracy), 0), MAX(created_at)
		 FROM results`,
	).Scan(&stats.Rounds, &stats.BestScore, &stats.AvgScore, &stats.AvgTimeMs, &stats.AvgAccuracy, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearResults deletes all stored rounds.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Recorder saves rounds finished in a game under a fixed player name.
type Recorder struct {
	Store  *Store
	Player string
}

// RecordResult implements game.ResultRecorder.
func (r Recorder) RecordResult(result core.RoundResult) error {
	if r.Store == nil {
		return nil
	}
	_, err := r.Store.SaveResult(r.Player, result)
	return err
}

var _ game.ResultRecorder = Recorder{}
