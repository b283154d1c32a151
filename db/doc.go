// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db is the roster and catalog store.

# Connecting

Open picks the driver from the config and pings before returning:

	conn, err := db.Open(ctx, cfg)

  - postgres: github.com/lib/pq
  - sqlite: modernc.org/sqlite (pure Go, limited to one open connection)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS. The SQL is valid on both
PostgreSQL and SQLite.

# Tables

  - traveler: the voter roster with a one-shot has_voted flag
  - holiday: destination proposals with optional coordinates
  - ballot: one ballot per traveler (UNIQUE voter_name)

# Seeding

SeedIfEmpty inserts travelers and holidays only into empty tables, so it can
run on every start:

	seed := db.DefaultSeed()
	if cfg.SeedFile != "" {
		seed, err = db.LoadSeed(cfg.SeedFile)
	}
	report, err := db.SeedIfEmpty(ctx, conn, seed)

# Errors

IsUniqueViolation recognises constraint failures from both drivers so
callers can turn a lost race into a domain error.
*/
package db
