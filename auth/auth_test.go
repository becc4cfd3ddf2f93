// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"net/http/httptest"
	"testing"
)

func TestBrowserID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"present", "3f1c2b7e-aaaa-bbbb-cccc-000000000001", "3f1c2b7e-aaaa-bbbb-cccc-000000000001"},
		{"missing", "", ""},
		{"whitespace only", "   ", ""},
		{"padded", "  abc  ", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/houses", nil)
			if tt.header != "" {
				req.Header.Set("X-Browser-ID", tt.header)
			}
			if got := BrowserID(req); got != tt.want {
				t.Errorf("BrowserID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewID(t *testing.T) {
	id := NewID()
	if len(id) != 36 {
		t.Errorf("NewID() length = %d, want 36", len(id))
	}
	if id[8] != '-' || id[14] != '4' {
		t.Errorf("NewID() = %q is not a version 4 UUID", id)
	}

	// Two IDs should be different
	if NewID() == NewID() {
		t.Error("NewID() produced duplicate IDs (extremely unlikely)")
	}
}
