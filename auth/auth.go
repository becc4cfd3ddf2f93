// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/christmas-map/models"
)

// BrowserID returns the actor identifier sent by the caller, or "" if none
func BrowserID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(models.BrowserIDHeader))
}

// NewID creates a random UUID string for a new record
func NewID() string {
	return uuid.NewString()
}
