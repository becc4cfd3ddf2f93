// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/christmas-map/models"
	"github.com/danielhkuo/christmas-map/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig(t)
	r := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	r := NewRouter(db, testutil.GetTestConfig(t))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "christmas-map API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)

	r := NewRouter(db, testutil.GetTestConfig(t))

	// 400 and 404 from the handler still mean the route matched
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/api/houses"},
		{"POST", "/api/houses"},
		{"DELETE", "/api/houses/test-id"},
		{"POST", "/api/houses/test-id/vote"},
		{"POST", "/api/upload"},
		{"GET", "/api/geocode/search"},
		{"GET", "/api/geocode/reverse"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)

	r := NewRouter(db, testutil.GetTestConfig(t))

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"PUT", "/api/houses"},
		{"GET", "/api/houses/test-id"},
		{"GET", "/api/houses/test-id/vote"},
		{"GET", "/api/upload"},
		{"POST", "/api/geocode/search"},
		{"DELETE", "/api/houses/test-id/vote"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	db := testutil.SetupTestDB(t)

	t.Run("custom prefix", func(t *testing.T) {
		cfg := testutil.GetTestConfig(t)
		cfg.BasePath = "/v1"
		r := NewRouter(db, cfg)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/v1/houses", nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/houses", nil))
		testutil.AssertStatus(t, w, http.StatusNotFound)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("PUT", "/v1/houses", nil))
		testutil.AssertStatus(t, w, http.StatusMethodNotAllowed)
	})

	t.Run("no prefix", func(t *testing.T) {
		cfg := testutil.GetTestConfig(t)
		cfg.BasePath = ""
		r := NewRouter(db, cfg)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/houses", nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	})
}

func TestPathParameterExtraction(t *testing.T) {
	db := testutil.SetupTestDB(t)

	houseID := testutil.CreateTestHouse(t, db, "Lit Up", "owner", time.Time{})
	r := NewRouter(db, testutil.GetTestConfig(t))

	t.Run("vote reaches the right house", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/houses/"+houseID+"/vote",
			map[string]any{"browserId": "voter", "value": 1}, nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.VoteResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.VoteScore != 1 {
			t.Errorf("Expected score 1, got %d", resp.VoteScore)
		}
	})

	t.Run("delete uses the path id", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/api/houses/"+houseID, nil,
			map[string]string{models.BrowserIDHeader: "owner"})
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if testutil.HouseExists(t, db, houseID) {
			t.Error("House should be gone")
		}
	})
}

func TestUploadAndServe(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig(t)
	r := NewRouter(db, cfg)

	data := []byte("\x89PNG\r\n\x1a\nnot really a png")
	req := testutil.MakeUploadRequest(t, "/api/upload", "lights.png", "image/png", data)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
	var resp models.UploadResponse
	testutil.AssertJSON(t, w, &resp)

	if !strings.HasPrefix(resp.ImagePath, "/uploads/") || !strings.HasSuffix(resp.ImagePath, ".png") {
		t.Fatalf("Unexpected image path %q", resp.ImagePath)
	}
	if _, err := os.Stat(filepath.Join(cfg.UploadDir, strings.TrimPrefix(resp.ImagePath, "/uploads/"))); err != nil {
		t.Fatalf("Uploaded file missing: %v", err)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", resp.ImagePath, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	body, _ := io.ReadAll(w.Body)
	if string(body) != string(data) {
		t.Error("Served image differs from upload")
	}
}

func TestGeocodeProxy(t *testing.T) {
	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("q"); got != "1 Canal St, New Orleans, LA" {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`[{"lat":"29.95","lon":"-90.06","display_name":"1, Canal Street, Central Business District, New Orleans"}]`))
	}))
	defer nominatim.Close()

	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig(t)
	cfg.Geocoder.URL = nominatim.URL
	r := NewRouter(db, cfg)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/geocode/search?q=1+Canal+St", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.GeocodeResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Latitude != 29.95 || resp.Longitude != -90.06 {
		t.Errorf("Unexpected coordinates %+v", resp)
	}
	if resp.DisplayName != "1, Canal Street, Central Business District" {
		t.Errorf("Unexpected display name %q", resp.DisplayName)
	}
}

func TestUploadsDirectoryNotListed(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig(t)
	if err := os.WriteFile(filepath.Join(cfg.UploadDir, "porch.jpg"), []byte("jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(cfg.UploadDir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	r := NewRouter(db, cfg)

	for _, path := range []string{"/uploads/", "/uploads/nested/"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", path, nil))

		testutil.AssertStatus(t, w, http.StatusNotFound)
		if strings.Contains(w.Body.String(), "porch.jpg") {
			t.Errorf("%s leaked a directory listing", path)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/uploads/porch.jpg", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
}
