// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally records ballots and ranks holiday destinations.

# Submitting

	engine := tally.NewEngine(conn, nil)
	ballot, total, err := engine.SubmitBallot(ctx, models.VoteRequest{
		VoterName:    "Amy",
		FirstChoice:  "Porto",
		SecondChoice: "Leucate",
	})

Checks run in order and the first failure wins:

  - ErrMissingFields: a field is empty after trimming whitespace
  - ErrUnknownVoter: the name is not on the roster
  - ErrAlreadyVoted: the traveler has voted, including when a concurrent
    submission for the same traveler committed first

# Scoring

A first choice is worth 2 points and a second choice 1 point:

	results, err := engine.ComputeResults(ctx)

Destinations are ordered by descending score. Equal scores keep catalog order
and share a rank (1st, 1st, 3rd).

# Caching

An optional Cache (RedisCache in production) holds the last tally. Every
successful ballot invalidates it and bumps the cache generation. A tally is
only written back if the generation it was computed under is still current,
so a recomputation racing a vote never caches the older count.
*/
package tally
