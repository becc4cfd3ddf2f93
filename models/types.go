package models

import "time"

// Header carrying the caller's actor identifier
const BrowserIDHeader = "X-Browser-ID"

// Vote values
const (
	VoteUp    = 1
	VoteClear = 0
	VoteDown  = -1
)

// Request types

type CreateHouseRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	ImagePath   string   `json:"imagePath"`
}

// Value is a pointer so a missing value can be told apart from 0 (clear)
type VoteRequest struct {
	BrowserID string `json:"browserId"`
	Value     *int   `json:"value"`
}

// Response types

type VoteResponse struct {
	VoteScore int  `json:"voteScore"`
	UserVote  *int `json:"userVote"`
}

type DeleteHouseResponse struct {
	Success bool `json:"success"`
}

type UploadResponse struct {
	ImagePath string `json:"imagePath"`
}

type GeocodeResponse struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"displayName"`
}

type ReverseGeocodeResponse struct {
	Address string `json:"address"`
}

// Domain types

type House struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Address     *string   `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	ImagePath   *string   `json:"imagePath"`
	CreatedBy   *string   `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Vote struct {
	HouseID   string    `json:"houseId"`
	BrowserID string    `json:"-"` // Never expose in JSON
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HouseView is a house as seen by one viewer
type HouseView struct {
	House
	VoteScore  int  `json:"voteScore"`
	UserVote   *int `json:"userVote"` // 1, -1, or null if not voted
	IsOwner    bool `json:"isOwner"`
	MarkerSize int  `json:"markerSize"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
