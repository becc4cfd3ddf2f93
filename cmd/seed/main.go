// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command seed geocodes a list of addresses and adds them to the map as
// ownerless houses.
//
//	go run ./cmd/seed -d file:christmas.db
//	go run ./cmd/seed -d file:christmas.db --file more.yaml --dry-run
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/christmas-map/cliparse"
	"github.com/danielhkuo/christmas-map/db"
	"github.com/danielhkuo/christmas-map/geocode"
	"github.com/danielhkuo/christmas-map/seed"
	"github.com/danielhkuo/christmas-map/store"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup happens first
func run() int {
	if err := cliparse.LoadEnvFile(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		return 1
	}

	cfg, err := cliparse.ParseSeedFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		return 1
	}

	entries, err := loadEntries(cfg.File)
	if err != nil {
		slog.Error("failed to load addresses", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var inserter seed.HouseInserter
	if !cfg.DryRun {
		dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			return 1
		}
		defer dbConn.Close()

		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			return 1
		}
		inserter = store.New(dbConn, cfg.DatabaseType)
	}

	geocoder := geocode.New(geocode.Config{
		BaseURL:   cfg.Geocoder.URL,
		UserAgent: cfg.Geocoder.UserAgent,
		Region:    cfg.Geocoder.Region,
		Interval:  geocode.DefaultInterval,
	})

	slog.Info("Seeding Christmas houses", "addresses", len(entries), "dry_run", cfg.DryRun)

	report, err := seed.Run(ctx, geocoder, inserter, entries, cfg.DryRun)
	if err != nil {
		slog.Error("seeding stopped", "error", err, "added", report.Added)
		return 1
	}

	slog.Info("Seeding complete",
		"added", report.Added,
		"failed", len(report.Failed),
		"summary", humanize.Comma(int64(report.Added))+" of "+humanize.Comma(int64(len(entries)))+" houses")
	for _, address := range report.Failed {
		slog.Warn("not added", "address", address)
	}
	return 0
}

func loadEntries(path string) ([]seed.Entry, error) {
	if path == "" {
		return seed.DefaultAddresses()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return seed.LoadAddresses(f)
}
