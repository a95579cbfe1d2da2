// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-notes/cliparse"
	"github.com/danielhkuo/quickly-notes/db"
)

// TestDBURL is an in-memory SQLite database, private to each connection pool
const TestDBURL = "file::memory:"

// SetupTestDB creates a fresh test database with the full schema.
// The pool is closed when the test finishes.
func SetupTestDB(t testing.TB) *db.DB {
	t.Helper()

	conn, err := db.Open(cliparse.DatabaseSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3000,
		DatabaseURL:   TestDBURL,
		DatabaseType:  cliparse.DatabaseSQLite,
		AllowedOrigin: "http://localhost:5173",
	}
}

// CreateTestProject inserts a project and returns its ID
func CreateTestProject(t testing.TB, conn *db.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(conn.Rebind(`INSERT INTO project (name) VALUES (?) RETURNING id`), name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}

	return id
}

// CreateTestNote inserts a note and returns its ID
func CreateTestNote(t testing.TB, conn *db.DB, projectID int64, title, content string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(conn.Rebind(`
		INSERT INTO note (title, content, project_id)
		VALUES (?, ?, ?)
		RETURNING id
	`), title, content, projectID).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test note: %v", err)
	}

	return id
}

// CountNotes returns the number of notes stored for a project
func CountNotes(t testing.TB, conn *db.DB, projectID int64) int {
	t.Helper()

	var count int
	err := conn.QueryRow(conn.Rebind(`SELECT COUNT(*) FROM note WHERE project_id = ?`), projectID).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count notes: %v", err)
	}

	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

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
