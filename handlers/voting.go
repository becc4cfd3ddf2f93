// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/danielhkuo/christmas-map/houses"
	"github.com/danielhkuo/christmas-map/middleware"
	"github.com/danielhkuo/christmas-map/models"
)

type VotingHandler struct {
	svc *houses.Service
}

func NewVotingHandler(svc *houses.Service) *VotingHandler {
	return &VotingHandler{svc: svc}
}

// CastVote handles POST /houses/{id}/vote
// value 1 or -1 casts or replaces the caller's vote, 0 clears it
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	houseID := mux.Vars(r)["id"]
	if houseID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	resp, err := h.svc.Vote(r.Context(), houseID, strings.TrimSpace(req.BrowserID), req.Value)
	if err != nil {
		writeServiceError(w, err, "Failed to vote")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
