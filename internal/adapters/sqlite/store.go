package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"hidenb/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// SettingsFileName is the database file created inside the data directory
const SettingsFileName = "settings.db"

// SettingsStore implements ports.SettingsStore using SQLite.
// Values are stored as JSON text.
type SettingsStore struct {
	db     *sql.DB
	dbPath string

	mu       sync.Mutex
	handlers []ports.ChangeHandler
}

// Ensure SettingsStore implements ports.SettingsStore
var _ ports.SettingsStore = (*SettingsStore)(nil)

// NewSettingsStore creates a new SQLite settings store
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{}
}

// Open creates or opens the settings database inside dataDir
func (s *SettingsStore) Open(dataDir string) error {
	dataDir, err := expandHome(dataDir)
	if err != nil {
		return err
	}
	s.dbPath = filepath.Join(dataDir, SettingsFileName)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Path returns the database file path
func (s *SettingsStore) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *SettingsStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Register stores defaultValue unless key already has a value
func (s *SettingsStore) Register(ctx context.Context, key string, defaultValue any) error {
	raw, err := json.Marshal(defaultValue)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`, key, string(raw))
	return err
}

// Value returns the decoded value, or nil when key is unset
func (s *SettingsStore) Value(ctx context.Context, key string) (any, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		// Hand-edited rows surface as raw text for the caller to reject.
		return raw, nil
	}
	return v, nil
}

// SetValue stores one key
func (s *SettingsStore) SetValue(ctx context.Context, key string, value any) error {
	return s.SetValues(ctx, map[string]any{key: value})
}

// SetValues stores several keys in one transaction, then notifies subscribers
func (s *SettingsStore) SetValues(ctx context.Context, values map[string]any) error {
	tx, err := s.beginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	keys := slices.Sorted(maps.Keys(values))
	for _, key := range keys {
		if err := tx.put(ctx, key, values[key]); err != nil {
			tx.rollback()
			return fmt.Errorf("failed to write %s: %w", key, err)
		}
	}
	if err := tx.commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}

	s.mu.Lock()
	handlers := slices.Clone(s.handlers)
	s.mu.Unlock()
	for _, h := range handlers {
		h(ctx, keys)
	}
	return nil
}

// OnChange subscribes to writes made through this store
func (s *SettingsStore) OnChange(handler ports.ChangeHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, handler)
}

// Keys returns every stored key in order
func (s *SettingsStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM settings ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}
