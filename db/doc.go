// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connections

Open picks the driver from the configured database type:

	conn, err := db.Open(db.TypePostgres, "postgres://...")
	conn, err := db.Open(db.TypeSQLite, "file:houses.db")

Postgres uses github.com/lib/pq and SQLite uses modernc.org/sqlite.
SQLite DSNs get foreign_keys and busy_timeout pragmas appended unless the
caller already set them.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - house: pinned houses; created_by is NULL for seeded rows
  - vote: one +1/-1 per (house_id, browser_id)

# Relationships

	house 1──* vote

vote.house_id uses ON DELETE CASCADE.
*/
package db
