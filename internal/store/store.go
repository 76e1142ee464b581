// Package store persists the session record and the theme preference in a
// local SQLite database. Both live in a single key-value table so the on-disk
// layout stays two slots: "session" holds a JSON user record, "theme" holds
// the literal string "dark" or "light".
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"agrilink/internal/logging"
	"agrilink/internal/session"
)

const (
	keySession = "session"
	keyTheme   = "theme"

	themeDark  = "dark"
	themeLight = "light"
)

// Store wraps the SQLite key-value slots. All writes come from the
// single-threaded TUI event loop, so last-write-wins is the only discipline
// needed; the mutex covers the CLI subcommands that share a process.
type Store struct {
	db     *sql.DB
	mu     sync.Mutex
	dbPath string
}

// Open initializes the database at the given path, creating the directory
// and schema as needed.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.L().Sugar().Debugf("failed to set sqlite busy_timeout: %v", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.L().Sugar().Debugf("failed to set sqlite journal_mode=WAL: %v", err)
	}

	s := &Store{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create kv table: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the location of the backing database file.
func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) put(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *Store) delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// LoadSession returns the stored session, or nil if none is stored. A record
// that fails to parse or validate is treated as absent and purged; corruption
// never surfaces to the caller.
func (s *Store) LoadSession() (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.get(keySession)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var sess session.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		logging.L().Sugar().Warnf("purging malformed session record: %v", err)
		return nil, s.delete(keySession)
	}
	if err := sess.Validate(); err != nil {
		logging.L().Sugar().Warnf("purging invalid session record: %v", err)
		return nil, s.delete(keySession)
	}
	return &sess, nil
}

// SaveSession overwrites the stored session record. Idempotent.
func (s *Store) SaveSession(sess session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.put(keySession, string(data))
}

// ClearSession removes the stored session record.
func (s *Store) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delete(keySession)
}

// ClearTheme removes the stored theme preference.
func (s *Store) ClearTheme() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delete(keyTheme)
}

// LoadTheme returns the stored dark-mode flag, or nil if no preference has
// been saved yet. An unrecognized value is purged and treated as absent.
func (s *Store) LoadTheme() (*bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.get(keyTheme)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	switch raw {
	case themeDark:
		dark := true
		return &dark, nil
	case themeLight:
		dark := false
		return &dark, nil
	default:
		logging.L().Sugar().Warnf("purging unrecognized theme value %q", raw)
		return nil, s.delete(keyTheme)
	}
}

// SaveTheme persists the dark-mode flag. Idempotent.
func (s *Store) SaveTheme(dark bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	value := themeLight
	if dark {
		value = themeDark
	}
	return s.put(keyTheme, value)
}
