// Package storage keeps the round log of the running process in an
// in-memory SQLite database. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies. Nothing is written to disk: the log is gone when
// the process exits.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN opens a private in-memory database. Each connection to it would
// get its own database, so the pool is pinned to a single connection.
const memoryDSN = ":memory:"

// Store manages the round log.
type Store struct {
	db *sql.DB
}

// Round is one finished game.
type Round struct {
	ID                string
	Player            string // SSH user name, or the local user
	Score             int
	CaughtRecyclables int
	CaughtTrash       int
	MissedRecyclables int
	Frames            uint64
	FinishedAt        time.Time
}

// Stats aggregates all rounds in the log.
type Stats struct {
	Rounds       int
	BestScore    int
	AverageScore float64
	TotalCaught  int
	TotalMissed  int
}

// Open creates an empty in-memory round log.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

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

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			caught INTEGER NOT NULL DEFAULT 0,
			trash INTEGER NOT NULL DEFAULT 0,
			missed INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			finished_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(score DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_finished ON rounds(finished_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database and discards the log.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record adds a finished round. A missing ID or timestamp is filled in.
// Returns the round ID.
func (s *Store) Record(r Round) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds (id, player, score, caught, trash, missed, frames, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Player, r.Score, r.CaughtRecyclables, r.CaughtTrash, r.MissedRecyclables,
		int64(r.Frames), r.FinishedAt.UnixNano(), //#nosec G115 -- frame counts fit in int64
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record round: %w", err)
	}
	return r.ID, nil
}

// TopRounds returns the best rounds, highest score first.
func (s *Store) TopRounds(limit int) ([]Round, error) {
	return s.queryRounds(`ORDER BY score DESC, finished_at ASC`, limit)
}

// RecentRounds returns the latest rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]Round, error) {
	return s.queryRounds(`ORDER BY finished_at DESC, rowid DESC`, limit)
}

func (s *Store) queryRounds(order string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, caught, trash, missed, frames, finished_at
		 FROM rounds `+order+` LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var frames, finishedAt int64
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.CaughtRecyclables, &r.CaughtTrash,
			&r.MissedRecyclables, &frames, &finishedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Frames = uint64(frames) //#nosec G115 -- stored from a uint64
		r.FinishedAt = time.Unix(0, finishedAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// BestScore returns the highest recorded score. ok is false when the log is empty.
func (s *Store) BestScore() (best int, ok bool, err error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM rounds").Scan(&score); err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, false, nil
	}
	return int(score.Int64), true, nil
}

// Stats returns aggregate figures over all rounds.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var best sql.NullInt64
	var avg sql.NullFloat64
	var caught, missed sql.NullInt64

	err := s.db.QueryRow(
		`SELECT COUNT(*), MAX(score), AVG(score), SUM(caught), SUM(missed) FROM rounds`,
	).Scan(&st.Rounds, &best, &avg, &caught, &missed)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	st.BestScore = int(best.Int64)
	st.AverageScore = avg.Float64
	st.TotalCaught = int(caught.Int64)
	st.TotalMissed = int(missed.Int64)
	return st, nil
}
