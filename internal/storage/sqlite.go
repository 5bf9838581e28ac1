// Package storage provides SQLite-based persistence for saved games,
// finished-game results and unlocked achievements.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/dkozhevn/tile48/internal/engine"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SavedGame is the single resumable game slot.
type SavedGame struct {
	ID        string
	Board     engine.Board
	Score     int
	BestScore int
	MoveCount int
	Elapsed   time.Duration
	UpdatedAt time.Time
}

// Result is one finished game.
type Result struct {
	ID        int64
	Score     int
	MaxTile   int
	Moves     int
	Duration  time.Duration
	CreatedAt time.Time
}

// DefaultDBPath returns the database location under the XDG data dir.
func DefaultDBPath() string {
	return filepath.Join(xdg.DataHome, "tile48", "tile48.db")
}

// Open creates or opens a SQLite database at the given path.
// An empty path selects the default location. Parent directories are
// created as needed and migrations run before the store is returned.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = DefaultDBPath()
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
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
		CREATE TABLE IF NOT EXISTS saved_games (
			id TEXT PRIMARY KEY,
			slot TEXT NOT NULL UNIQUE,
			board TEXT NOT NULL,
			score INTEGER NOT NULL,
			best_score INTEGER NOT NULL,
			move_count INTEGER NOT NULL DEFAULT 0,
			elapsed_secs INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(score DESC);

		CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// currentSlot names the single resumable game. The schema carries a
// slot column so named profiles can be added without a migration.
const currentSlot = "current"

// SaveGame writes the resumable game slot, replacing any previous save.
func (s *Store) SaveGame(g SavedGame) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO saved_games (id, slot, board, score, best_score, move_count, elapsed_secs, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
			id = excluded.id,
			board = excluded.board,
			score = excluded.score,
			best_score = excluded.best_score,
			move_count = excluded.move_count,
			elapsed_secs = excluded.elapsed_secs,
			updated_at = CURRENT_TIMESTAMP`,
		g.ID, currentSlot, EncodeBoard(g.Board), g.Score, g.BestScore,
		g.MoveCount, int(g.Elapsed.Seconds()),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame reads the resumable game slot. Returns (nil, nil) when no
// save exists; a corrupt board is an error so the caller starts fresh.
func (s *Store) LoadGame() (*SavedGame, error) {
	var (
		g           SavedGame
		boardStr    string
		elapsedSecs int
		updatedAt   any
	)

	err := s.db.QueryRow(
		`SELECT id, board, score, best_score, move_count, elapsed_secs, updated_at
		 FROM saved_games WHERE slot = ?`,
		currentSlot,
	).Scan(&g.ID, &boardStr, &g.Score, &g.BestScore, &g.MoveCount, &elapsedSecs, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load game: %w", err)
	}

	g.Board, err = DecodeBoard(boardStr)
	if err != nil {
		return nil, err
	}
	if g.Score < 0 || g.BestScore < 0 {
		return nil, fmt.Errorf("storage: saved game has negative score")
	}

	g.Elapsed = time.Duration(elapsedSecs) * time.Second
	g.UpdatedAt = parseTimestamp(updatedAt)
	return &g, nil
}

// ClearSavedGame removes the resumable slot, e.g. after game over.
func (s *Store) ClearSavedGame() error {
	_, err := s.db.Exec("DELETE FROM saved_games WHERE slot = ?", currentSlot)
	if err != nil {
		return fmt.Errorf("storage: cannot clear saved game: %w", err)
	}
	return nil
}

// RecordResult appends a finished game to the history.
// Returns the ID of the inserted record.
func (s *Store) RecordResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO results (score, max_tile, moves, duration_secs) VALUES (?, ?, ?, ?)",
		r.Score, r.MaxTile, r.Moves, int(r.Duration.Seconds()),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopResults retrieves the best N results ordered by score descending.
func (s *Store) TopResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, max_tile, moves, duration_secs, created_at
		 FROM results
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			r            Result
			durationSecs int
			createdAt    any
		)
		if err := rows.Scan(&r.ID, &r.Score, &r.MaxTile, &r.Moves, &durationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationSecs) * time.Second
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// BestScore returns the highest recorded score, or 0 with no history.
func (s *Store) BestScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM results").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats contains aggregated play statistics.
type Stats struct {
	GamesCount int
	BestScore  int
	AvgScore   float64
	BestTile   int
	TotalMoves int64
	LastPlayed time.Time
}

// GetStats retrieves aggregated statistics over the results history.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(max_tile), 0), COALESCE(SUM(moves), 0)
		 FROM results`,
	).Scan(&stats.GamesCount, &stats.BestScore, &stats.AvgScore, &stats.BestTile, &stats.TotalMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		"SELECT created_at FROM results ORDER BY created_at DESC LIMIT 1",
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// UnlockAchievement records an achievement ID. Recording the same ID
// twice is a no-op.
func (s *Store) UnlockAchievement(id string) error {
	_, err := s.db.Exec(
		"INSERT INTO achievements (id) VALUES (?) ON CONFLICT(id) DO NOTHING",
		id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot unlock achievement: %w", err)
	}
	return nil
}

// UnlockedAchievements returns all recorded achievement IDs.
func (s *Store) UnlockedAchievements() ([]string, error) {
	rows, err := s.db.Query("SELECT id FROM achievements ORDER BY unlocked_at, id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query achievements: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return ids, nil
}

// ClearResults deletes the results history.
func (s *Store) ClearResults() error {
	_, err := s.db.Exec("DELETE FROM results")
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or the
// SQLite datetime string.
func parseTimestamp(v any) time.Time {
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
