// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Named JSON documents. Exactly two keys are in use: the question schema
-- and the record list, each serialized as one blob per write.
CREATE TABLE IF NOT EXISTS document (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`
