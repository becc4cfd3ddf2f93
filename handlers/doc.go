// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Christmas map API.

# Handler Types

  - HouseHandler: list, create and delete houses
  - VotingHandler: cast or clear a vote
  - UploadHandler: store a house photo
  - GeocodeHandler: address search and reverse lookup through Nominatim

House and voting handlers are thin wrappers over houses.Service:

	svc := houses.NewService(store.New(conn, cfg.DatabaseType))
	houseHandler := handlers.NewHouseHandler(svc)

# Actor Identity

Callers identify themselves with the X-Browser-ID header (the vote
endpoint takes browserId in the body instead). The value is not verified.

	GET    /houses           → ListHouses (filters heavily downvoted houses)
	POST   /houses           → CreateHouse (201)
	DELETE /houses/{id}      → DeleteHouse (creator only)
	POST   /houses/{id}/vote → CastVote ({browserId, value})

# Errors

Service errors map to 400 (validation), 404 (not found), 403 (forbidden)
and 500 (anything else). Every error body is {"error": "message"}.
*/
package handlers
