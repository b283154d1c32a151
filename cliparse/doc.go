// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

LoadEnv reads an optional .env file, then ParseFlags returns a Config:

	cliparse.LoadEnv()
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: Connection string, or a file path for sqlite (default: votes.db)
  - SeedFile: YAML file with travelers and holidays (default: built-in roster)
  - RedisURL: Enables the Redis results cache when set
  - CacheTTL: Results cache TTL (default: 30s)
  - IPHashSalt: Enables hashed client IPs on ballots when set
  - LogFormat: auto, text or json (default: auto)
  - LogLevel: debug, info, warn or error (default: info)

# CLI Flags

	-p           Server port
	-t           Database type
	-d           Database URL
	-seed        Seed file
	-redis       Redis URL
	-cache-ttl   Results cache TTL
	-ip-salt     IP hash salt
	-log-format  Log format
	-log-level   Log level

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_TYPE → -t
	DATABASE_URL  → -d
	SEED_FILE     → -seed
	REDIS_URL     → -redis
	CACHE_TTL     → -cache-ttl
	IP_HASH_SALT  → -ip-salt
	LOG_FORMAT    → -log-format
	LOG_LEVEL     → -log-level

CLI flags take precedence over environment variables, and variables already
in the environment take precedence over the .env file.

# Validation

ParseFlags returns an error if:

  - DATABASE_TYPE is not sqlite or postgres
  - DATABASE_URL is missing for postgres
  - PORT or CACHE_TTL cannot be parsed
  - LOG_FORMAT is not auto, text or json
*/
package cliparse
