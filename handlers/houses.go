// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/danielhkuo/christmas-map/auth"
	"github.com/danielhkuo/christmas-map/houses"
	"github.com/danielhkuo/christmas-map/middleware"
	"github.com/danielhkuo/christmas-map/models"
)

type HouseHandler struct {
	svc *houses.Service
}

func NewHouseHandler(svc *houses.Service) *HouseHandler {
	return &HouseHandler{svc: svc}
}

// ListHouses handles GET /houses
// Returns the houses visible to the caller, newest first
func (h *HouseHandler) ListHouses(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.List(r.Context(), auth.BrowserID(r))
	if err != nil {
		writeServiceError(w, err, "Failed to fetch houses")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// CreateHouse handles POST /houses
func (h *HouseHandler) CreateHouse(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHouseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	view, err := h.svc.Create(r.Context(), req, auth.BrowserID(r))
	if err != nil {
		writeServiceError(w, err, "Failed to create house")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, view)
}

// DeleteHouse handles DELETE /houses/{id}
// Only the browser that created the house may delete it
func (h *HouseHandler) DeleteHouse(w http.ResponseWriter, r *http.Request) {
	houseID := mux.Vars(r)["id"]
	if houseID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.svc.Delete(r.Context(), houseID, auth.BrowserID(r)); err != nil {
		writeServiceError(w, err, "Failed to delete house")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DeleteHouseResponse{Success: true})
}
