package game

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const historyFile = "history.db"

const historySchema = `
CREATE TABLE IF NOT EXISTS sessions (
	id          TEXT PRIMARY KEY,
	started_at  DATETIME NOT NULL,
	ended_at    DATETIME NOT NULL,
	maps_played INTEGER NOT NULL,
	last_map    TEXT NOT NULL,
	score       INTEGER NOT NULL,
	outcome     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_ended ON sessions(ended_at);
`

// Outcome labels how a campaign ended.
type Outcome string

const (
	OutcomeGameOver Outcome = "game_over"
	OutcomeVictory  Outcome = "victory"
	OutcomeQuit     Outcome = "quit"
)

// SessionRecord is one finished campaign in the history store.
type SessionRecord struct {
	ID         string
	StartedAt  time.Time
	EndedAt    time.Time
	MapsPlayed int
	LastMap    string
	Score      int
	Outcome    Outcome
}

// HistoryStore logs finished campaigns in a local SQLite database.
// Persistence failures are the caller's to log; gameplay never depends
// on them.
type HistoryStore struct {
	db *sql.DB
}

// HistoryPath returns the database path inside the data directory.
func HistoryPath(dir string) string {
	return filepath.Join(dir, historyFile)
}

// OpenHistory opens and migrates the database at path. ":memory:"
// gives an ephemeral store.
func OpenHistory(path string) (*HistoryStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history: %w", err)
	}
	return &HistoryStore{db: db}, nil
}

func (h *HistoryStore) Close() error { return h.db.Close() }

// Record inserts a finished campaign. An empty ID gets a fresh one.
func (h *HistoryStore) Record(r SessionRecord) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	_, err := h.db.Exec(
		`INSERT INTO sessions (id, started_at, ended_at, maps_played, last_map, score, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.StartedAt.UTC(), r.EndedAt.UTC(), r.MapsPlayed, r.LastMap, r.Score, string(r.Outcome),
	)
	if err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

// Recent returns the latest finished campaigns, newest first.
func (h *HistoryStore) Recent(limit int) ([]SessionRecord, error) {
	rows, err := h.db.Query(
		`SELECT id, started_at, ended_at, maps_played, last_map, score, outcome
		 FROM sessions ORDER BY ended_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var recs []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var outcome string
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.EndedAt, &r.MapsPlayed,
			&r.LastMap, &r.Score, &outcome); err != nil {
			return nil, err
		}
		r.Outcome = Outcome(outcome)
		recs = append(recs, r)
	}
	return recs, rows.Err()
}
