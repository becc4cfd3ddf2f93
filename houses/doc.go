// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package houses implements the house and vote operations behind the HTTP API.

Each operation is a single stateless call against the store:

	svc := houses.NewService(store.New(conn, db.TypePostgres))

	views, err := svc.List(ctx, actorID)
	view, err := svc.Create(ctx, req, actorID)
	err := svc.Delete(ctx, houseID, actorID)
	tally, err := svc.Vote(ctx, houseID, actorID, &value)

# Errors

Failures the caller can fix come back as *Error values that unwrap to one
of three kinds:

	errors.Is(err, houses.ErrValidation) // 400
	errors.Is(err, houses.ErrNotFound)   // 404
	errors.Is(err, houses.ErrForbidden)  // 403

Their Error() text is meant for the caller. Any other error is a store
failure and should be reported as a 500 without its details.

# Ownership

A house belongs to the actor identifier that created it. Only that actor
may delete it; houses inserted without an actor (seeded rows) cannot be
deleted through the API at all.
*/
package houses
