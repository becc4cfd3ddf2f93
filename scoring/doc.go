// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring derives per-viewer fields from stored houses and votes.

Everything here is a pure function of its arguments:

	score := scoring.VoteScore(votes)           // sum of +1/-1 values
	mine := scoring.UserVote(votes, actorID)    // nil if not voted
	owner := scoring.IsOwner(house, actorID)
	shown := scoring.IsVisible(score, owner, scoring.HideThreshold)

Houses scoring at or below HideThreshold (-3) are hidden from non-owners.
Owners always see their own houses.

Project combines these into a models.HouseView, including the marker size
the map uses to draw popular houses larger.
*/
package scoring
