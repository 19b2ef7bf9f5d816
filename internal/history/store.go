package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/miralushch/ipa2ru/internal"
)

// Entry is one recorded conversion
type Entry struct {
	ID        string
	IPA       string
	Cyrillic  string
	CreatedAt time.Time
}

// Store wraps the SQLite history database
type Store struct {
	db *sql.DB
}

// DefaultPath returns the history database location under the XDG state dir
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, ".local", "state", "ipa2ru", "history.db"), nil
}

// Open opens (creating if necessary) the history database at path
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS conversions (
		id TEXT PRIMARY KEY,
		ipa TEXT NOT NULL,
		cyrillic TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record stores a finished conversion
func (s *Store) Record(ipaText, cyrillic string) error {
	_, err := s.db.Exec(
		"INSERT INTO conversions (id, ipa, cyrillic, created_at) VALUES (?, ?, ?, ?)",
		internal.GenerateEntryID(ipaText), ipaText, cyrillic, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to record conversion: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		"SELECT id, ipa, cyrillic, created_at FROM conversions ORDER BY created_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.IPA, &e.Cyrillic, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}

	return entries, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
