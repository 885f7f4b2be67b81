// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/ftc-scout/cliparse"
	"github.com/danielhkuo/ftc-scout/db"
	"github.com/danielhkuo/ftc-scout/models"
	"github.com/danielhkuo/ftc-scout/notify"
	"github.com/danielhkuo/ftc-scout/store"
)

// SetupTestDB creates a fresh in-memory sqlite database with the schema.
// Max one open connection - :memory: databases are per-connection.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8126,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
	}
}

// SetupStores builds the full store stack over a fresh test database.
func SetupStores(t *testing.T) (*db.Store, *store.QuestionStore, *store.RecordStore) {
	t.Helper()

	docs := db.New(SetupTestDB(t))
	questions := store.NewQuestionStore(docs, Silent())
	records := store.NewRecordStore(docs, questions, Silent())
	return docs, questions, records
}

// Silent returns a notifier that drops every message.
func Silent() notify.Notifier {
	return notify.Func(func(notify.Kind, string) {})
}

// SubmitTestRecord adds a record with the given answers and fails the
// test on any error.
func SubmitTestRecord(t *testing.T, records *store.RecordStore, answers map[int64]any) models.Record {
	t.Helper()

	record, err := records.Add(answers)
	if err != nil {
		t.Fatalf("Failed to submit test record: %v", err)
	}
	return record
}

// RequiredDefaults returns answers satisfying the default schema's
// required questions, ready to be extended per test.
func RequiredDefaults() map[int64]any {
	return map[int64]any{
		1: "254",
		2: "Robo Raiders",
		3: "Yes",
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}

	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
