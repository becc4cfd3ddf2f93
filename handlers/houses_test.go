// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/danielhkuo/christmas-map/houses"
	"github.com/danielhkuo/christmas-map/models"
	"github.com/danielhkuo/christmas-map/testutil"
)

func newHouseHandler(t *testing.T) (*HouseHandler, *VotingHandler) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := houses.NewService(testutil.NewTestStore(db))
	return NewHouseHandler(svc), NewVotingHandler(svc)
}

func TestListHouses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewHouseHandler(houses.NewService(testutil.NewTestStore(db)))

	base := time.Date(2025, 12, 1, 18, 0, 0, 0, time.UTC)
	older := testutil.CreateTestHouse(t, db, "Older", "alice", base)
	newer := testutil.CreateTestHouse(t, db, "Newer", "bob", base.Add(time.Hour))
	buried := testutil.CreateTestHouse(t, db, "Buried", "alice", base.Add(2*time.Hour))
	for _, voter := range []string{"v1", "v2", "v3"} {
		testutil.CastTestVote(t, db, buried, voter, models.VoteDown)
	}
	testutil.CastTestVote(t, db, newer, "alice", models.VoteUp)

	t.Run("anonymous viewer", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/houses", nil, nil)
		w := httptest.NewRecorder()

		handler.ListHouses(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var views []models.HouseView
		testutil.AssertJSON(t, w, &views)

		if len(views) != 2 {
			t.Fatalf("Expected 2 visible houses, got %d", len(views))
		}
		if views[0].ID != newer || views[1].ID != older {
			t.Errorf("Expected newest first, got %s then %s", views[0].Name, views[1].Name)
		}
		if views[0].VoteScore != 1 || views[0].UserVote != nil || views[0].IsOwner {
			t.Errorf("Unexpected projection for anonymous viewer: %+v", views[0])
		}
	})

	t.Run("owner sees buried house", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/houses", nil, map[string]string{models.BrowserIDHeader: "alice"})
		w := httptest.NewRecorder()

		handler.ListHouses(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var views []models.HouseView
		testutil.AssertJSON(t, w, &views)

		if len(views) != 3 {
			t.Fatalf("Expected 3 houses for owner, got %d", len(views))
		}
		if views[0].ID != buried || !views[0].IsOwner || views[0].VoteScore != -3 {
			t.Errorf("Unexpected buried projection: %+v", views[0])
		}
		if views[1].UserVote == nil || *views[1].UserVote != 1 {
			t.Errorf("Expected alice's upvote on %s", views[1].Name)
		}
	})

	t.Run("empty list is an array", func(t *testing.T) {
		emptyDB := testutil.SetupTestDB(t)
		h := NewHouseHandler(houses.NewService(testutil.NewTestStore(emptyDB)))
		w := httptest.NewRecorder()

		h.ListHouses(w, testutil.MakeRequest("GET", "/api/houses", nil, nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		if got := bytes.TrimSpace(w.Body.Bytes()); string(got) != "[]" {
			t.Errorf("Expected [], got %s", got)
		}
	})
}

func TestCreateHouse(t *testing.T) {
	handler, _ := newHouseHandler(t)

	lat, lng := 29.9511, -90.0715

	t.Run("success", func(t *testing.T) {
		body := models.CreateHouseRequest{
			Address:   "5 Oak St",
			Latitude:  &lat,
			Longitude: &lng,
			ImagePath: "/uploads/a.jpg",
		}
		req := testutil.MakeRequest("POST", "/api/houses", body, map[string]string{models.BrowserIDHeader: "alice"})
		w := httptest.NewRecorder()

		handler.CreateHouse(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)
		var view models.HouseView
		testutil.AssertJSON(t, w, &view)

		if view.ID == "" {
			t.Error("Expected generated id")
		}
		if view.Name != "5 Oak St" {
			t.Errorf("Expected name from address, got %q", view.Name)
		}
		if !view.IsOwner || view.VoteScore != 0 || view.UserVote != nil {
			t.Errorf("Unexpected projection: %+v", view)
		}
		if view.CreatedBy == nil || *view.CreatedBy != "alice" {
			t.Errorf("Expected createdBy alice, got %v", view.CreatedBy)
		}
		if view.Description != nil {
			t.Errorf("Expected null description, got %q", *view.Description)
		}
		if view.MarkerSize != 25 {
			t.Errorf("Expected marker size 25, got %d", view.MarkerSize)
		}
	})

	t.Run("missing coordinates", func(t *testing.T) {
		body := map[string]any{"name": "No Pin", "latitude": lat}
		w := httptest.NewRecorder()

		handler.CreateHouse(w, testutil.MakeRequest("POST", "/api/houses", body, nil))

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		var resp models.ErrorResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Error != "Latitude and longitude are required" {
			t.Errorf("Unexpected error message %q", resp.Error)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/houses", bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()

		handler.CreateHouse(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("string coordinates are rejected", func(t *testing.T) {
		body := map[string]any{"latitude": "29.95", "longitude": "-90.07"}
		w := httptest.NewRecorder()

		handler.CreateHouse(w, testutil.MakeRequest("POST", "/api/houses", body, nil))

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestDeleteHouse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewHouseHandler(houses.NewService(testutil.NewTestStore(db)))

	owned := testutil.CreateTestHouse(t, db, "Owned", "alice", time.Time{})
	seeded := testutil.CreateTestHouse(t, db, "Seeded", "", time.Time{})
	testutil.CastTestVote(t, db, owned, "bob", models.VoteUp)

	tests := []struct {
		name       string
		houseID    string
		browserID  string
		wantStatus int
	}{
		{"missing browser id", owned, "", http.StatusBadRequest},
		{"unknown house", "nope", "alice", http.StatusNotFound},
		{"not the creator", owned, "bob", http.StatusForbidden},
		{"ownerless house", seeded, "alice", http.StatusForbidden},
		{"creator deletes", owned, "alice", http.StatusOK},
		{"already deleted", owned, "alice", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.browserID != "" {
				headers[models.BrowserIDHeader] = tt.browserID
			}
			req := testutil.MakeRequest("DELETE", "/api/houses/"+tt.houseID, nil, headers)
			req = mux.SetURLVars(req, map[string]string{"id": tt.houseID})
			w := httptest.NewRecorder()

			handler.DeleteHouse(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}

	if testutil.HouseExists(t, db, owned) {
		t.Error("Owned house should be deleted")
	}
	if testutil.CountVotes(t, db, owned) != 0 {
		t.Error("Votes should be deleted with the house")
	}
	if !testutil.HouseExists(t, db, seeded) {
		t.Error("Seeded house should remain")
	}
}

func TestDeleteHouse_SuccessBody(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewHouseHandler(houses.NewService(testutil.NewTestStore(db)))
	id := testutil.CreateTestHouse(t, db, "Mine", "alice", time.Time{})

	req := testutil.MakeRequest("DELETE", "/api/houses/"+id, nil, map[string]string{models.BrowserIDHeader: "alice"})
	req = mux.SetURLVars(req, map[string]string{"id": id})
	w := httptest.NewRecorder()

	handler.DeleteHouse(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.DeleteHouseResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success {
		t.Error("Expected success true")
	}
}
