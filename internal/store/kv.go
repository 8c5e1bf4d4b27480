package store

import (
	"database/sql"
	"fmt"
)

// KV is the raw persistence capability: one string value per key,
// last write wins, no transactional guarantees beyond that.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// SQLiteKV backs KV with the diary_kv table.
type SQLiteKV struct {
	DB *sql.DB
}

func (s *SQLiteKV) Get(key string) (string, bool, error) {
	var value string
	err := s.DB.QueryRow(`SELECT value FROM diary_kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get %q: %v", ErrPersistence, key, err)
	}
	return value, true, nil
}

func (s *SQLiteKV) Set(key, value string) error {
	_, err := s.DB.Exec(`
INSERT INTO diary_kv(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("%w: set %q: %v", ErrPersistence, key, err)
	}
	return nil
}
