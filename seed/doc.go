// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package seed fills the map with houses from a list of street addresses.
//
// Each address is geocoded, then stored with no creator, so seeded houses
// can be voted on but never deleted through the API. The geocoder's own
// rate limiter paces the run.
package seed
