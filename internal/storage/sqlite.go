// Package storage persists CubePop scores and finished puzzles in SQLite.
// It uses the pure-Go modernc.org/sqlite driver so builds need no CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/cubepop/internal/core"
)

const timeLayout = "2006-01-02 15:04:05"

// Store wraps the score database.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one row of the leaderboard.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// PuzzleResult records how a single cube ended.
type PuzzleResult struct {
	ID         string // UUID assigned on save
	GameID     string
	Seed       string
	Size       int
	Colors     int
	MoveLimit  int
	MovesUsed  int
	BlocksLeft int
	Won        bool
	Score      int
	CreatedAt  time.Time
}

// ResultFromSummary converts a finished game summary into a result row.
func ResultFromSummary(gameID string, s core.GameSummary) PuzzleResult {
	return PuzzleResult{
		GameID:     gameID,
		Seed:       s.Seed,
		Size:       s.Size,
		Colors:     s.Colors,
		MoveLimit:  s.MoveLimit,
		MovesUsed:  s.MovesUsed,
		BlocksLeft: s.BlocksLeft,
		Won:        s.Won,
		Score:      s.Score,
	}
}

// Open creates or opens the database at dbPath, creating parent
// directories and running migrations. A leading ~ expands to the home dir.
func Open(dbPath string) (*Store, error) {
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS puzzle_results (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			seed TEXT NOT NULL,
			size INTEGER NOT NULL,
			colors INTEGER NOT NULL,
			move_limit INTEGER NOT NULL,
			moves_used INTEGER NOT NULL,
			blocks_left INTEGER NOT NULL,
			won INTEGER NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_puzzle_results_game ON puzzle_results(game_id, created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_puzzle_results_seed ON puzzle_results(seed);
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

// SaveScore records a score and returns its row ID.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns the best scores for a game, highest first.
// A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
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

// HighScore returns the best score for a game, or 0 when none exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores and results for a game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM puzzle_results WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// SavePuzzleResult stores a finished puzzle and returns the UUID it was given.
func (s *Store) SavePuzzleResult(r PuzzleResult) (string, error) {
	id := uuid.NewString()
	won := 0
	if r.Won {
		won = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO puzzle_results
		 (id, game_id, seed, size, colors, move_limit, moves_used, blocks_left, won, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, r.GameID, r.Seed, r.Size, r.Colors, r.MoveLimit, r.MovesUsed, r.BlocksLeft, won, r.Score,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save puzzle result: %w", err)
	}
	return id, nil
}

// RecentResults returns the latest finished puzzles for a game, newest first.
// A non-positive limit means 20.
func (s *Store) RecentResults(gameID string, limit int) ([]PuzzleResult, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, seed, size, colors, move_limit, moves_used, blocks_left, won, score, created_at
		 FROM puzzle_results
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query puzzle results: %w", err)
	}
	defer rows.Close()

	var results []PuzzleResult
	for rows.Next() {
		var r PuzzleResult
		var won int
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Seed, &r.Size, &r.Colors, &r.MoveLimit,
			&r.MovesUsed, &r.BlocksLeft, &won, &r.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Won = won != 0
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// GameStats aggregates finished puzzles for one game.
type GameStats struct {
	GameID     string
	GamesCount int
	Wins       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// WinRate returns the fraction of games won.
func (g GameStats) WinRate() float64 {
	if g.GamesCount == 0 {
		return 0
	}
	return float64(g.Wins) / float64(g.GamesCount)
}

// GetGameStats aggregates the puzzle results for a game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM puzzle_results WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.Wins, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// parseTime accepts the driver's DATETIME value in either form it returns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
