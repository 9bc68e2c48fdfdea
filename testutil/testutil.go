// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/idea-board/cliparse"
	"github.com/danielhkuo/idea-board/db"
	"github.com/danielhkuo/idea-board/models"
)

// SetupTestDB creates a fresh sqlite database with the full schema in a
// per-test temp directory. It is closed automatically when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(cliparse.DatabaseSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "test.db",
		DatabaseType: cliparse.DatabaseSQLite,
		PrivilegedRoles: []models.Role{
			models.RoleSergeant, models.RoleExpert, models.RoleActivist,
		},
		LogLevel: slog.LevelInfo,
	}
}

// CreateTestSubmitter inserts a submitter directly and returns its ID
func CreateTestSubmitter(t *testing.T, db *sql.DB, name string, role models.Role) string {
	t.Helper()

	id := newTestID(t)
	_, err := db.Exec(`
		INSERT INTO submitter (id, name, role, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, name, string(role), time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test submitter: %v", err)
	}

	return id
}

// CreateTestIdea inserts an idea with the given vote count and returns its ID
func CreateTestIdea(t *testing.T, db *sql.DB, authorID, title string, votes int) string {
	t.Helper()

	id := newTestID(t)
	_, err := db.Exec(`
		INSERT INTO idea (id, title, description, author_id, created_at, vote_count)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, title, title+" description", authorID, time.Now().UTC(), votes)
	if err != nil {
		t.Fatalf("Failed to create test idea: %v", err)
	}

	return id
}

// VoteCount reads an idea's vote count straight from the table
func VoteCount(t *testing.T, db *sql.DB, ideaID string) int64 {
	t.Helper()

	var votes int64
	if err := db.QueryRow("SELECT vote_count FROM idea WHERE id = $1", ideaID).Scan(&votes); err != nil {
		t.Fatalf("Failed to read vote count: %v", err)
	}
	return votes
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

func newTestID(t *testing.T) string {
	t.Helper()

	id, err := uuid.NewV7()
	if err != nil {
		t.Fatalf("Failed to generate id: %v", err)
	}
	return id.String()
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var jsonBody []byte
		if s, ok := body.(string); ok {
			jsonBody = []byte(s)
		} else {
			jsonBody, _ = json.Marshal(body)
		}
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
