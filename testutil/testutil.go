// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/holiday-vote/cliparse"
	"github.com/danielhkuo/holiday-vote/db"
)

// SetupTestDB creates a fresh SQLite database file with the full schema and no rows
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig()
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "votes_test.db")

	conn, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupSeededDB creates a fresh test database holding the default roster and holidays
func SetupSeededDB(t *testing.T) *sql.DB {
	t.Helper()

	conn := SetupTestDB(t)
	if _, err := db.SeedIfEmpty(context.Background(), conn, db.DefaultSeed()); err != nil {
		conn.Close()
		t.Fatalf("Failed to seed test database: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  ":memory:",
		CacheTTL:     30 * time.Second,
		IPHashSalt:   "test-ip-salt",
		LogFormat:    "text",
		LogLevel:     "info",
	}
}

// CreateTestTraveler adds a traveler who has not voted yet
func CreateTestTraveler(t *testing.T, conn *sql.DB, id int, name string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO traveler (id, name, has_voted)
		VALUES ($1, $2, FALSE)
	`, id, name)
	if err != nil {
		t.Fatalf("Failed to create test traveler: %v", err)
	}
}

// CreateTestHoliday adds a holiday; lat and lng may be nil
func CreateTestHoliday(t *testing.T, conn *sql.DB, id int, destination, by string, lat, lng *float64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO holiday (id, destination, proposed_by, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
	`, id, destination, by, lat, lng)
	if err != nil {
		t.Fatalf("Failed to create test holiday: %v", err)
	}
}

// InsertTestBallot writes a ballot directly, bypassing validation, and marks the traveler voted
func InsertTestBallot(t *testing.T, conn *sql.DB, voterName, first, second string) string {
	t.Helper()

	ballotID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO ballot (id, voter_name, first_choice, second_choice, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
	`, ballotID, voterName, first, second, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test ballot: %v", err)
	}

	_, err = conn.Exec(`UPDATE traveler SET has_voted = TRUE WHERE name = $1`, voterName)
	if err != nil {
		t.Fatalf("Failed to mark test traveler voted: %v", err)
	}

	return ballotID
}

// CountRows returns the number of rows in one of the schema tables
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("Failed to count %s rows: %v", table, err)
	}
	return count
}

// HasVoted reads a traveler's has_voted flag
func HasVoted(t *testing.T, conn *sql.DB, name string) bool {
	t.Helper()

	var voted bool
	if err := conn.QueryRow(`SELECT has_voted FROM traveler WHERE name = $1`, name).Scan(&voted); err != nil {
		t.Fatalf("Failed to read has_voted for %s: %v", name, err)
	}
	return voted
}

// MakeRequest creates an HTTP test request with a JSON body
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

// MakeFormRequest creates an HTTP test request with a url-encoded form body
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
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

// Float returns a pointer to v, for optional coordinates
func Float(v float64) *float64 {
	return &v
}
