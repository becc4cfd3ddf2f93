// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package houses

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/christmas-map/models"
	"github.com/danielhkuo/christmas-map/scoring"
	"github.com/danielhkuo/christmas-map/store"
)

type Service struct {
	store *store.Store
}

func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// List returns every house visible to actorID, newest first
func (s *Service) List(ctx context.Context, actorID string) ([]models.HouseView, error) {
	houses, votes, err := s.store.ListHousesWithVotes(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.HouseView, 0, len(houses))
	for _, h := range houses {
		view := scoring.Project(h, votes[h.ID], actorID)
		if scoring.IsVisible(view.VoteScore, view.IsOwner, scoring.HideThreshold) {
			views = append(views, view)
		}
	}
	return views, nil
}

// Create stores a new house owned by actorID (ownerless if actorID is empty)
func (s *Service) Create(ctx context.Context, req models.CreateHouseRequest, actorID string) (models.HouseView, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return models.HouseView{}, validationError("Latitude and longitude are required")
	}

	house := models.House{
		Name:        DisplayName(req.Name, req.Address, *req.Latitude, *req.Longitude),
		Description: optional(req.Description),
		Address:     optional(req.Address),
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		ImagePath:   optional(req.ImagePath),
		CreatedBy:   optional(actorID),
	}

	if err := s.store.InsertHouse(ctx, &house); err != nil {
		return models.HouseView{}, err
	}

	slog.Info("house created", "house_id", house.ID, "name", house.Name)

	view := scoring.Project(house, nil, actorID)
	view.IsOwner = true
	return view, nil
}

// Delete removes a house and its votes. Only the creator may delete.
func (s *Service) Delete(ctx context.Context, houseID, actorID string) error {
	if actorID == "" {
		return validationError("Browser ID is required")
	}

	house, err := s.store.GetHouse(ctx, houseID)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError("House not found")
	}
	if err != nil {
		return err
	}

	if !scoring.IsOwner(house, actorID) {
		return forbiddenError("You can only delete houses you created")
	}

	err = s.store.DeleteHouse(ctx, houseID)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError("House not found")
	}
	if err != nil {
		return err
	}

	slog.Info("house deleted", "house_id", houseID)
	return nil
}

// Vote casts (+1/-1) or clears (0) actorID's vote and returns the new tally
func (s *Service) Vote(ctx context.Context, houseID, actorID string, value *int) (models.VoteResponse, error) {
	if actorID == "" {
		return models.VoteResponse{}, validationError("Browser ID is required")
	}
	if value == nil || !isValidVote(*value) {
		return models.VoteResponse{}, validationError("Vote value must be 1, -1, or 0")
	}

	_, err := s.store.GetHouse(ctx, houseID)
	if errors.Is(err, store.ErrNotFound) {
		return models.VoteResponse{}, notFoundError("House not found")
	}
	if err != nil {
		return models.VoteResponse{}, err
	}

	if *value == models.VoteClear {
		err = s.store.DeleteVote(ctx, houseID, actorID)
	} else {
		err = s.store.UpsertVote(ctx, houseID, actorID, *value)
	}
	if err != nil {
		return models.VoteResponse{}, err
	}

	votes, err := s.store.ListVotes(ctx, houseID)
	if err != nil {
		return models.VoteResponse{}, err
	}

	resp := models.VoteResponse{
		VoteScore: scoring.VoteScore(votes),
		UserVote:  scoring.UserVote(votes, actorID),
	}

	slog.Info("vote recorded", "house_id", houseID, "value", *value, "vote_score", resp.VoteScore)
	return resp, nil
}

// DisplayName picks the house name: the trimmed name, else the trimmed
// address, else a label built from the coordinates.
func DisplayName(name, address string, latitude, longitude float64) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	if a := strings.TrimSpace(address); a != "" {
		return a
	}
	return fmt.Sprintf("House at %.4f, %.4f", latitude, longitude)
}

func isValidVote(value int) bool {
	switch value {
	case models.VoteUp, models.VoteClear, models.VoteDown:
		return true
	}
	return false
}

// optional maps "" to nil (stored as NULL)
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
