// Package history records catalog lookups in a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a persistent log of lookups backed by SQLite.
type Store struct {
	db *sql.DB
}

// Lookup is one recorded catalog lookup.
type Lookup struct {
	ID        int64
	Kind      string // "track", "album", "playlist" or "search"
	SpotifyID string // catalog ID, empty for searches
	Query     string // the raw user input
	Items     int    // number of items retrieved
	Partial   bool   // the fetch failed part-way and Items is a prefix
	CreatedAt time.Time
}

// Open opens (creating if needed) a lookup store at dbPath.
// Use ":memory:" for an ephemeral store.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single connection keeps in-memory databases consistent and is
	// plenty for a CLI.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS lookups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			spotify_id TEXT,
			query TEXT NOT NULL,
			items INTEGER NOT NULL DEFAULT 0,
			partial BOOLEAN NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
		);

		CREATE INDEX IF NOT EXISTS idx_lookups_created_at ON lookups(created_at);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record appends a lookup to the log and returns its row ID.
func (s *Store) Record(ctx context.Context, l Lookup) (int64, error) {
	createdAt := l.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO lookups (kind, spotify_id, query, items, partial, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, l.Kind, l.SpotifyID, l.Query, l.Items, l.Partial, createdAt.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to insert lookup: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get insert id: %w", err)
	}

	return id, nil
}

// Recent returns up to limit lookups, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Lookup, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, spotify_id, query, items, partial, created_at
		FROM lookups
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookups: %w", err)
	}
	defer rows.Close()

	var lookups []Lookup
	for rows.Next() {
		var l Lookup
		var createdAt int64
		if err := rows.Scan(&l.ID, &l.Kind, &l.SpotifyID, &l.Query, &l.Items, &l.Partial, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan lookup: %w", err)
		}
		l.CreatedAt = time.Unix(createdAt, 0)
		lookups = append(lookups, l)
	}

	return lookups, rows.Err()
}

// Count returns the total number of recorded lookups.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM lookups").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count lookups: %w", err)
	}
	return count, nil
}
