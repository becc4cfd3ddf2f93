// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

JSON field names follow the front end's camelCase contract.

# Request Types

  - CreateHouseRequest: name, description, address, latitude, longitude, imagePath
  - VoteRequest: browserId, value (-1, 0 or 1)

# Response Types

  - HouseView: a house projected for one viewer (voteScore, userVote, isOwner, markerSize)
  - VoteResponse: voteScore, userVote
  - DeleteHouseResponse: success
  - UploadResponse: imagePath
  - GeocodeResponse, ReverseGeocodeResponse: geocoding proxy results
  - ErrorResponse: error

# Domain Types

  - House: a pinned house; optional fields are nil pointers and encode as null
  - Vote: one actor's +1/-1 on a house

Nullable columns are pointers so that absent values encode as JSON null
rather than empty strings.
*/
package models
