// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/christmas-map/geocode"
	"github.com/danielhkuo/christmas-map/models"
)

//go:embed addresses.yaml
var defaultAddresses []byte

type Entry struct {
	Address string `yaml:"address"`
	// Search replaces the region-qualified address as the geocoder query
	Search string `yaml:"search,omitempty"`
}

type file struct {
	Addresses []Entry `yaml:"addresses"`
}

// Geocoder is the part of geocode.Client the seeder needs
type Geocoder interface {
	Search(ctx context.Context, query string) (geocode.Result, error)
	InRegion(address string) string
}

type HouseInserter interface {
	InsertHouse(ctx context.Context, h *models.House) error
}

type Report struct {
	Added  int
	Failed []string
}

// LoadAddresses reads an address list in YAML
func LoadAddresses(r io.Reader) ([]Entry, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse address list: %w", err)
	}

	entries := make([]Entry, 0, len(f.Addresses))
	for i, e := range f.Addresses {
		e.Address = strings.TrimSpace(e.Address)
		e.Search = strings.TrimSpace(e.Search)
		if e.Address == "" {
			return nil, fmt.Errorf("entry %d: address is required", i+1)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// DefaultAddresses returns the built-in New Orleans list
func DefaultAddresses() ([]Entry, error) {
	return LoadAddresses(bytes.NewReader(defaultAddresses))
}

// Run geocodes each entry and inserts it as an ownerless house. Lookups
// that fail are logged and skipped. A nil inserter or dryRun inserts nothing.
func Run(ctx context.Context, g Geocoder, ins HouseInserter, entries []Entry, dryRun bool) (Report, error) {
	var report Report

	for _, e := range entries {
		query := e.Search
		if query == "" {
			query = g.InRegion(e.Address)
		}
		slog.Info("geocoding", "address", e.Address, "query", query)

		res, err := g.Search(ctx, query)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return report, ctxErr
			}
			slog.Warn("failed to geocode", "address", e.Address, "error", err)
			report.Failed = append(report.Failed, e.Address)
			continue
		}

		if dryRun || ins == nil {
			slog.Info("would add", "address", e.Address, "lat", res.Latitude, "lng", res.Longitude)
			report.Added++
			continue
		}

		displayName := res.DisplayName
		house := models.House{
			Name:      e.Address,
			Address:   &displayName,
			Latitude:  res.Latitude,
			Longitude: res.Longitude,
		}
		if displayName == "" {
			house.Address = nil
		}

		if err := ins.InsertHouse(ctx, &house); err != nil {
			return report, fmt.Errorf("failed to insert %q: %w", e.Address, err)
		}
		slog.Info("added", "house_id", house.ID, "name", house.Name,
			"lat", fmt.Sprintf("%.4f", house.Latitude), "lng", fmt.Sprintf("%.4f", house.Longitude))
		report.Added++
	}

	return report, nil
}
