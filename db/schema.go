// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Portable between PostgreSQL and SQLite: no SERIAL, no NOW(), no JSONB.
const schema = `
-- Travelers (the voter roster)
CREATE TABLE IF NOT EXISTS traveler (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    has_voted BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_traveler_has_voted ON traveler(has_voted);

-- Holidays (destination proposals)
CREATE TABLE IF NOT EXISTS holiday (
    id INTEGER PRIMARY KEY,
    destination TEXT NOT NULL UNIQUE,
    proposed_by TEXT NOT NULL,
    latitude DOUBLE PRECISION,
    longitude DOUBLE PRECISION
);

-- Ballots (one per traveler)
CREATE TABLE IF NOT EXISTS ballot (
    id TEXT PRIMARY KEY,
    voter_name TEXT NOT NULL UNIQUE REFERENCES traveler(name),
    first_choice TEXT NOT NULL,
    second_choice TEXT NOT NULL,
    submitted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    ip_hash TEXT,
    user_agent TEXT
);
`
