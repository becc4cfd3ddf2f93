// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package geocode is a small client for the Nominatim geocoding API.

	gc := geocode.New(geocode.Config{
		Region:   "New Orleans, LA",
		Interval: geocode.DefaultInterval,
	})

	res, err := gc.Search(ctx, gc.InRegion("21 Dove Street"))
	res, err := gc.Reverse(ctx, 29.9511, -90.0715)

Outgoing requests share one golang.org/x/time/rate limiter, so concurrent
callers queue instead of tripping the public instance's usage policy.
Results are cached with github.com/jellydator/ttlcache for CacheTTL.

Display names are shortened to their first three comma-separated parts
("21, Dove Street, Lakeview") to fit the map popup. ErrNoResult means the
geocoder answered but found nothing.
*/
package geocode
