// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Christmas map API server.

The Christmas map is a community map of decorated houses. Anyone can drop a
pin with a name, description and photo, and vote houses up or down. Houses
voted down to -3 are hidden from everyone except the browser that added them.

# Starting the Server

	DATABASE_URL=file:christmas.db go run .

Or with flags, against Postgres:

	go run . -p 3318 -t postgres -d "postgres://..."

Settings may also live in a .env file in the working directory.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string

Optional settings:

  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - PORT (-p): Server port (default: 3318)
  - BASE_PATH (--base-path): API prefix (default: /api)
  - UPLOAD_DIR (--upload-dir): Image directory (default: public/uploads)
  - ALLOWED_ORIGINS (--origins): CORS origins (default: any)
  - GEOCODER_URL, GEOCODE_REGION, GEOCODER_USER_AGENT: Nominatim settings

# Architecture

  - handlers: HTTP request handlers (houses, votes, uploads, geocoding)
  - router: Route definitions using gorilla/mux
  - houses: Create, list, delete and vote operations
  - scoring: Vote totals, ownership and visibility rules
  - store: SQL access for houses and votes
  - middleware: CORS, logging, JSON helpers
  - upload: Image storage
  - geocode: Rate limited, cached Nominatim client
  - models: Request/response types
  - auth: Browser identifier handling
  - db: Connection and schema creation
  - cliparse: Configuration parsing

The seeder in cmd/seed fills the map with geocoded addresses.
*/
package main
