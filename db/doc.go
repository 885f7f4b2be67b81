// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles schema creation and named-document storage.

# Schema Creation

CreateSchema initializes the single required table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Document Storage

All persistent state lives in two independently keyed JSON documents:

	KeyQuestions = "ftc_scouting_questions"  (ordered question list)
	KeyData      = "ftc_scouting_data"       (ordered record list)

Store wraps *sql.DB with blob-granularity access:

	docs := db.New(conn)
	raw, ok := docs.Load(db.KeyQuestions)
	err := docs.Save(db.KeyQuestions, raw)

# Failure Semantics

Load is fail-soft: a missing row, a driver error, or a scan failure all
yield (nil, false) plus a log line, never an error. Callers treat an
unreadable document as absent and fall back to a default.

Save is fail-loud: an upsert failure comes back as a StorageError so the
caller can refuse to apply the corresponding in-memory mutation.

The `$1` placeholder style works on both supported drivers
(modernc.org/sqlite and lib/pq).
*/
package db
