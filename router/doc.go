// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the holiday vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	engine := tally.NewEngine(db, cache)
	mux := router.NewRouter(db, engine, cfg)

# Endpoints

	GET  /health        - Liveness check
	GET  /              - Holidays and travelers who can still vote
	POST /vote          - Cast a ballot (form or JSON)
	GET  /results       - Ranked results and participation
	GET  /api/holidays  - Holiday catalog with coordinates for the map

"GET /" matches only the root path; anything else is a 404.
*/
package router
