// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth extracts the caller's actor identifier and generates record IDs.

# Actor Identifiers

Browsers generate a random identifier once, keep it in local storage and
send it on every request in the X-Browser-ID header:

	actorID := auth.BrowserID(r)

The server does not verify it. It only answers "who did this" for
ownership and vote bookkeeping, and any client can claim any identifier.
An empty string means the caller sent none.

# ID Generation

House IDs and upload filenames are random UUIDs:

	id := auth.NewID()
*/
package auth
