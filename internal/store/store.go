// Package store provides a SQLite-backed memory of the last cursor position
// in each edited file.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS cursor_positions (
	path     TEXT PRIMARY KEY,
	row      INTEGER NOT NULL,
	col      INTEGER NOT NULL,
	updated  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_positions_updated ON cursor_positions(updated);
`

// DefaultMaxEntries bounds how many files are remembered.
const DefaultMaxEntries = 1000

// Positions remembers cursor positions keyed by absolute file path.
type Positions struct {
	mu         sync.Mutex
	db         *sql.DB
	maxEntries int
}

// Open creates or opens a position database at the given path. Entries beyond
// maxEntries (oldest first) are dropped on open; zero or less keeps
// DefaultMaxEntries.
func Open(dbPath string, maxEntries int) (*Positions, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open positions db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	p := &Positions{db: db, maxEntries: maxEntries}
	p.prune()
	return p, nil
}

// Close closes the database.
func (p *Positions) Close() error {
	if p == nil {
		return nil
	}
	return p.db.Close()
}

// Get returns the remembered position for path.
// Safe to call on a nil receiver (returns miss).
func (p *Positions) Get(path string) (row, col int, ok bool) {
	if p == nil {
		return 0, 0, false
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.db.QueryRow(
		"SELECT row, col FROM cursor_positions WHERE path = ?",
		path,
	).Scan(&row, &col)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Warn().Err(err).Str("file", path).Msg("failed to read cursor position")
		}
		return 0, 0, false
	}
	return row, col, true
}

// Put stores the position for path. No-op on nil receiver.
func (p *Positions) Put(path string, row, col int) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	_, err := p.db.Exec(
		"INSERT OR REPLACE INTO cursor_positions (path, row, col, updated) VALUES (?, ?, ?, ?)",
		path, row, col, time.Now().UnixNano(),
	)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("failed to store cursor position")
	}
}

// Forget removes the entry for path. No-op on nil receiver.
func (p *Positions) Forget(path string) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := p.db.Exec("DELETE FROM cursor_positions WHERE path = ?", path); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("failed to forget cursor position")
	}
}

// Len returns the number of remembered files.
func (p *Positions) Len() int {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	var n int
	if err := p.db.QueryRow("SELECT COUNT(*) FROM cursor_positions").Scan(&n); err != nil {
		return 0
	}
	return n
}

// prune keeps only the maxEntries most recently updated rows.
func (p *Positions) prune() {
	res, err := p.db.Exec(
		`DELETE FROM cursor_positions WHERE path NOT IN (
			SELECT path FROM cursor_positions ORDER BY updated DESC LIMIT ?
		)`,
		p.maxEntries,
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to prune cursor positions")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Info().Int64("deleted", n).Msg("pruned old cursor positions")
	}
}
