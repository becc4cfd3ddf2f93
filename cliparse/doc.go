// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

LoadEnvFile reads an optional .env file, then ParseFlags returns a Config:

	_ = cliparse.LoadEnvFile(".env")
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p, --port         Server port (default 3318)
	-d, --database     Database URL (required)
	-t, --type         sqlite or postgres (default sqlite)
	--base-path        API prefix (default /api)
	--upload-dir       Image directory (default public/uploads)
	--origins          Comma separated CORS origins (default any)
	--geocoder-url     Nominatim base URL
	--region           Search region (default "New Orleans, LA")
	--user-agent       User-Agent sent to Nominatim

# Environment Variables

Flags fall back to environment variables:

	PORT, DATABASE_URL, DATABASE_TYPE, BASE_PATH, UPLOAD_DIR,
	ALLOWED_ORIGINS, GEOCODER_URL, GEOCODE_REGION, GEOCODER_USER_AGENT

CLI flags take precedence over environment variables, which take
precedence over .env entries.

ParseSeedFlags parses the seeder's flags (-d, -t, --file, --dry-run and
the geocoder flags) with the same fallbacks.
*/
package cliparse
