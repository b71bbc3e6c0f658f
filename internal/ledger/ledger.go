// internal/ledger/ledger.go
package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one finished match.
type Entry struct {
	ID           string
	Name         string
	Bottom       string
	Top          string
	Winner       string
	Turns        int
	Frames       int
	BottomHealth int
	TopHealth    int
	PlayedAt     time.Time
}

// Ledger keeps match results in a SQLite file.
type Ledger struct {
	db     *sql.DB
	mu     sync.Mutex
	dbPath string
}

// Open creates or opens the ledger at path.
func Open(path string) (*Ledger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	l := &Ledger{db: db, dbPath: path}
	if err := l.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return l, nil
}

func (l *Ledger) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS matches (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		bottom TEXT NOT NULL,
		top TEXT NOT NULL,
		winner TEXT NOT NULL,
		turns INTEGER NOT NULL,
		frames INTEGER NOT NULL,
		bottom_health INTEGER NOT NULL,
		top_health INTEGER NOT NULL,
		played_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_matches_played_at ON matches(played_at);
	`
	if _, err := l.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create matches table: %w", err)
	}
	return nil
}

// Path returns the database file.
func (l *Ledger) Path() string { return l.dbPath }

// Record stores e. An empty ID is filled with a new UUID and a zero
// PlayedAt with the current time. It returns the stored ID.
func (l *Ledger) Record(e Entry) (string, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.PlayedAt.IsZero() {
		e.PlayedAt = time.Now().UTC()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := l.db.Exec(
		`INSERT INTO matches (id, name, bottom, top, winner, turns, frames, bottom_health, top_health, played_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Bottom, e.Top, e.Winner, e.Turns, e.Frames, e.BottomHealth, e.TopHealth, e.PlayedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to record match: %w", err)
	}
	return e.ID, nil
}

// List returns up to limit entries, most recent first. limit <= 0 returns all.
func (l *Ledger) List(limit int) ([]Entry, error) {
	query := `SELECT id, name, bottom, top, winner, turns, frames, bottom_health, top_health, played_at
		FROM matches ORDER BY played_at DESC, id`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	rows, err := l.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Bottom, &e.Top, &e.Winner, &e.Turns, &e.Frames,
			&e.BottomHealth, &e.TopHealth, &e.PlayedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Standings counts matches by winner.
func (l *Ledger) Standings() (map[string]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rows, err := l.db.Query(`SELECT winner, COUNT(*) FROM matches GROUP BY winner`)
	if err != nil {
		return nil, fmt.Errorf("failed to count matches: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var winner string
		var n int
		if err := rows.Scan(&winner, &n); err != nil {
			return nil, fmt.Errorf("failed to scan standings: %w", err)
		}
		out[winner] = n
	}
	return out, rows.Err()
}

// Close closes the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}
