// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/christmas-map/cliparse"
	"github.com/danielhkuo/christmas-map/db"
	"github.com/danielhkuo/christmas-map/models"
	"github.com/danielhkuo/christmas-map/store"
)

// SetupTestDB creates a fresh SQLite database in a temp dir with the full schema.
// The connection is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, "file:"+filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// NewTestStore wraps a test database in a Store
func NewTestStore(conn *sql.DB) *store.Store {
	return store.New(conn, db.TypeSQLite)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig(t *testing.T) cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file:test.db",
		DatabaseType: db.TypeSQLite,
		BasePath:     "/api",
		UploadDir:    t.TempDir(),
		Geocoder: cliparse.GeocoderConfig{
			URL:       "http://127.0.0.1:1",
			Region:    "New Orleans, LA",
			UserAgent: "christmas-map-test",
		},
	}
}

// CreateTestHouse inserts a house and returns its ID.
// createdBy "" makes an ownerless house; a zero createdAt means now.
func CreateTestHouse(t *testing.T, conn *sql.DB, name, createdBy string, createdAt time.Time) string {
	t.Helper()

	house := models.House{
		Name:      name,
		Latitude:  29.9511,
		Longitude: -90.0715,
		CreatedAt: createdAt.UTC(),
	}
	if createdBy != "" {
		house.CreatedBy = &createdBy
	}

	if err := NewTestStore(conn).InsertHouse(context.Background(), &house); err != nil {
		t.Fatalf("Failed to create test house: %v", err)
	}

	return house.ID
}

// CastTestVote records a +1/-1 vote directly in the store
func CastTestVote(t *testing.T, conn *sql.DB, houseID, browserID string, value int) {
	t.Helper()

	if err := NewTestStore(conn).UpsertVote(context.Background(), houseID, browserID, value); err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
}

// CountVotes returns the number of vote rows for a house
func CountVotes(t *testing.T, conn *sql.DB, houseID string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote WHERE house_id = ?`, houseID).Scan(&n); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return n
}

// HouseExists reports whether a house row is present
func HouseExists(t *testing.T, conn *sql.DB, houseID string) bool {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM house WHERE id = ?`, houseID).Scan(&n); err != nil {
		t.Fatalf("Failed to query house: %v", err)
	}
	return n > 0
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

// MakeUploadRequest builds a multipart request with one "file" part
func MakeUploadRequest(t *testing.T, path, filename, contentType string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("Failed to create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("Failed to write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
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
