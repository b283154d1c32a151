// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the holiday vote API server.

A fixed group of travelers each cast one ballot naming a first and second
choice destination. First choices score 2 points, second choices 1, and the
results page ranks every proposed holiday by total score.

# Starting the Server

With no configuration the server uses a local SQLite file and the built-in
roster:

	go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..." -redis redis://localhost:6379/0

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string or SQLite path (default: votes.db)
  - SEED_FILE (-seed): YAML roster and holidays used on first start
  - REDIS_URL (-redis): Enables the results cache
  - IP_HASH_SALT (-ip-salt): Enables hashed client IPs on ballots

A .env file in the working directory is read first if present.

# Architecture

  - handlers: HTTP request handlers (voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, IP hashing
  - tally: Ballot submission, scoring and the results cache
  - models: Request/response and domain types
  - db: Connection, schema, seeding and queries
  - logging: slog handler selection
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
