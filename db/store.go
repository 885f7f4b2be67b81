// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"log/slog"

	"github.com/danielhkuo/ftc-scout/models"
)

// Document keys
const (
	KeyQuestions = "ftc_scouting_questions"
	KeyData      = "ftc_scouting_data"
)

// Store reads and writes named JSON documents. Reads are fail-soft: any
// failure is logged and reported as "absent" so callers can fall back to
// defaults. Writes report failure so callers never pretend a mutation
// that was not durably written.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load returns the document stored under key, or (nil, false) if it is
// missing or unreadable.
func (s *Store) Load(key string) ([]byte, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM document WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		slog.Warn("document load failed", "key", key, "error", err)
		return nil, false
	}
	return []byte(value), true
}

// Save writes the full document under key, replacing any previous value.
func (s *Store) Save(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO document (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, string(value))

	if err != nil {
		return &models.StorageError{Op: "save " + key, Err: err}
	}
	return nil
}
