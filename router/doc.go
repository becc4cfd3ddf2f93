// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Christmas map API.

# Route Registration

NewRouter wires the store, services and handlers into a gorilla/mux router:

	r := router.NewRouter(db, cfg)

# Endpoints

Outside the base path:

	GET /health          - Liveness check
	GET /uploads/{file}  - Uploaded images
	GET /                - Version banner

Under cfg.BasePath (default /api):

	GET    /houses            - Houses visible to X-Browser-ID
	POST   /houses            - Create a house
	DELETE /houses/{id}       - Delete (creator only)
	POST   /houses/{id}/vote  - Cast or clear a vote
	POST   /upload            - Store an image
	GET    /geocode/search    - Address to coordinates
	GET    /geocode/reverse   - Coordinates to address

A path that exists with the wrong method gets 405. CORS is applied by the
caller around the whole router.
*/
package router
