package kv

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/daykeep/daykeep/internal/constants"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

// SQLiteStore is a quota-bound key-value medium backed by a single
// sqlite file.
type SQLiteStore struct {
	path  string
	quota int64
	db    *sql.DB
}

// OpenSQLite opens (creating if necessary) the key-value medium at path.
// quota <= 0 selects the default quota.
func OpenSQLite(path string, quota int64) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	if quota <= 0 {
		quota = constants.DefaultQuotaBytes
	}

	return &SQLiteStore{path: path, quota: quota, db: db}, nil
}

func (s *SQLiteStore) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoKey
		}
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(key string, value []byte) error {
	used, quota, err := s.Usage()
	if err != nil {
		return err
	}

	// Replacing a key frees its old footprint first.
	var existing int64
	if err := s.db.QueryRow(
		"SELECT length(key) + length(value) FROM kv WHERE key = ?", key,
	).Scan(&existing); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to size key %q: %w", key, err)
	}

	incoming := int64(len(key) + len(value))
	if used-existing+incoming > quota {
		return fmt.Errorf("%w: %d of %d bytes used", ErrQuotaExceeded, used, quota)
	}

	_, err = s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Keys() ([]string, error) {
	rows, err := s.db.Query("SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (s *SQLiteStore) Usage() (int64, int64, error) {
	var used sql.NullInt64
	if err := s.db.QueryRow("SELECT SUM(length(key) + length(value)) FROM kv").Scan(&used); err != nil {
		return 0, 0, fmt.Errorf("failed to estimate usage: %w", err)
	}
	return used.Int64, s.quota, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
