package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// PrefStore persists preference key/value pairs. It satisfies prefs.Store.
type PrefStore struct {
	db *DB
}

// NewPrefStore creates a new preference storage handler.
func NewPrefStore(db *DB) *PrefStore {
	return &PrefStore{db: db}
}

// Get returns the stored value for key, or "" when it was never set.
func (s *PrefStore) Get(key string) (string, error) {
	var value string
	err := s.db.WithRLock(func() error {
		return s.db.QueryRow(
			"SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	})
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *PrefStore) Set(key, value string) error {
	query := `INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
			  ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	err := s.db.WithLock(func() error {
		_, err := s.db.Exec(query, key, value, time.Now())
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save preference %s: %w", key, err)
	}
	return nil
}

// All returns every stored preference.
func (s *PrefStore) All() (map[string]string, error) {
	out := make(map[string]string)
	err := s.db.WithRLock(func() error {
		rows, err := s.db.Query("SELECT key, value FROM preferences ORDER BY key")
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var k, v string
			if err := rows.Scan(&k, &v); err != nil {
				return err
			}
			out[k] = v
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	return out, nil
}
