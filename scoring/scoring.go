// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import "github.com/danielhkuo/christmas-map/models"

// HideThreshold is the score at or below which a house is hidden from everyone but its owner
const HideThreshold = -3

// Marker sizes in pixels
const (
	MinMarkerSize = 25
	MaxMarkerSize = 40
)

// VoteScore sums the vote values. No votes scores 0.
func VoteScore(votes []models.Vote) int {
	score := 0
	for _, v := range votes {
		score += v.Value
	}
	return score
}

// UserVote returns the value of actorID's vote, or nil if they have not voted
func UserVote(votes []models.Vote, actorID string) *int {
	if actorID == "" {
		return nil
	}
	for _, v := range votes {
		if v.BrowserID == actorID {
			value := v.Value
			return &value
		}
	}
	return nil
}

// IsOwner reports whether actorID created the house. Ownerless houses have no owner.
func IsOwner(house models.House, actorID string) bool {
	return actorID != "" && house.CreatedBy != nil && *house.CreatedBy == actorID
}

// IsVisible reports whether a house should be listed for a viewer
func IsVisible(voteScore int, isOwner bool, hideThreshold int) bool {
	return voteScore > hideThreshold || isOwner
}

// MarkerSize grows the map marker by 2px per point of score, clamped to [25, 40]
func MarkerSize(voteScore int) int {
	size := MinMarkerSize + voteScore*2
	if size < MinMarkerSize {
		return MinMarkerSize
	}
	if size > MaxMarkerSize {
		return MaxMarkerSize
	}
	return size
}

// Project builds the view of house for actorID
func Project(house models.House, votes []models.Vote, actorID string) models.HouseView {
	score := VoteScore(votes)
	return models.HouseView{
		House:      house,
		VoteScore:  score,
		UserVote:   UserVote(votes, actorID),
		IsOwner:    IsOwner(house, actorID),
		MarkerSize: MarkerSize(score),
	}
}
