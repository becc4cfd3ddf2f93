// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/christmas-map/geocode"
	"github.com/danielhkuo/christmas-map/middleware"
	"github.com/danielhkuo/christmas-map/models"
)

type GeocodeHandler struct {
	geocoder *geocode.Client
}

func NewGeocodeHandler(geocoder *geocode.Client) *GeocodeHandler {
	return &GeocodeHandler{geocoder: geocoder}
}

// Search handles GET /geocode/search?q=
// The address is qualified with the configured region before lookup
func (h *GeocodeHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "q is required")
		return
	}

	res, err := h.geocoder.Search(r.Context(), h.geocoder.InRegion(q))
	if errors.Is(err, geocode.ErrNoResult) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Address not found. Please try a more specific address or enter coordinates manually.")
		return
	}
	if err != nil {
		slog.Error("geocode search failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to geocode address")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GeocodeResponse{
		Latitude:    res.Latitude,
		Longitude:   res.Longitude,
		DisplayName: res.DisplayName,
	})
}

// Reverse handles GET /geocode/reverse?lat=&lng=
func (h *GeocodeHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "lat and lng must be numbers")
		return
	}

	res, err := h.geocoder.Reverse(r.Context(), lat, lng)
	if errors.Is(err, geocode.ErrNoResult) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No address found at these coordinates")
		return
	}
	if err != nil {
		slog.Error("reverse geocode failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to look up address")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ReverseGeocodeResponse{Address: res.DisplayName})
}
