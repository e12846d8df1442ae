// Package storage keeps the round ledger in an in-memory SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Nothing is written to disk: the ledger lives as long as the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/hotdog-arcade/internal/core"
)

// Store manages the SQLite connection for the round ledger.
type Store struct {
	db *sql.DB
}

// Round is one decided round: the enemy was destroyed or the player was caught.
type Round struct {
	ID         int64
	GameID     string
	Player     string
	Outcome    core.Outcome
	Ticks      int
	ShotsFired int
	CreatedAt  time.Time
}

// RoundStats contains aggregated results for one game.
type RoundStats struct {
	GameID     string
	Rounds     int
	Victories  int
	Defeats    int
	FastestWin int // Fewest ticks to a victory, 0 if never won
	LastPlayed time.Time
}

// OpenMemory creates an empty in-memory ledger.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every new connection to :memory: is a separate empty database,
	// so the single connection must never be closed by the pool.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	// Test connection
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

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL,
			outcome TEXT NOT NULL CHECK (outcome IN ('victory', 'defeat')),
			ticks INTEGER NOT NULL DEFAULT 0,
			shots_fired INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The ledger is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRound stores a decided round and returns its ID.
func (s *Store) RecordRound(r Round) (int64, error) {
	if r.Outcome != core.OutcomeVictory && r.Outcome != core.OutcomeDefeat {
		return 0, fmt.Errorf("storage: round for %q is undecided", r.GameID)
	}

	result, err := s.db.Exec(
		"INSERT INTO rounds (game_id, player, outcome, ticks, shots_fired) VALUES (?, ?, ?, ?, ?)",
		r.GameID, r.Player, string(r.Outcome), r.Ticks, r.ShotsFired,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds returns the latest rounds, newest first.
// An empty gameID returns rounds of every game.
func (s *Store) RecentRounds(gameID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, outcome, ticks, shots_fired, created_at
		 FROM rounds
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Player, &outcome, &r.Ticks, &r.ShotsFired, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = core.Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// Stats returns aggregated results for the given game.
func (s *Store) Stats(gameID string) (*RoundStats, error) {
	stats := &RoundStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'victory'), 0),
		        COALESCE(SUM(outcome = 'defeat'), 0),
		        COALESCE(MIN(CASE WHEN outcome = 'victory' THEN ticks END), 0),
		        MAX(created_at)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Rounds, &stats.Victories, &stats.Defeats, &stats.FastestWin, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllStats returns aggregated results for every game that has been played.
func (s *Store) AllStats() (map[string]*RoundStats, error) {
	rows, err := s.db.Query(`SELECT DISTINCT game_id FROM rounds`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list games: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	// The single connection must be released before the per-game queries
	err = errors.Join(rows.Err(), rows.Close())
	if err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	stats := make(map[string]*RoundStats, len(ids))
	for _, id := range ids {
		st, err := s.Stats(id)
		if err != nil {
			return nil, err
		}
		stats[id] = st
	}

	return stats, nil
}

// parseTime converts a scanned DATETIME, which the driver may return as
// time.Time or as text.
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
