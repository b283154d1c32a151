// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the holiday vote API.

# Handler Types

Each handler is a struct with database, engine and config dependencies:

  - VotingHandler: voting form state and ballot submission
  - ResultsHandler: ranked results and the holiday catalog

	engine := tally.NewEngine(db, cache)
	votingHandler := handlers.NewVotingHandler(db, engine, cfg)

# Voting Flow

	GET  /      → Index (holidays, travelers who have not voted)
	POST /vote  → Vote (records one ballot per traveler)

Validation failures re-render the form state with one of:

	400 Please fill in all fields!
	400 Invalid traveler selected!
	409 {name} has already voted!

# Results

	GET /results      → GetResults (2 points per first choice, 1 per second)
	GET /api/holidays → GetHolidays (id, destination, by, latitude, longitude)
*/
package handlers
