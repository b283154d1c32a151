// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Seed is the fixed reference data: who may vote and what they vote on.
type Seed struct {
	Travelers []string      `yaml:"travelers"`
	Holidays  []SeedHoliday `yaml:"holidays"`
}

type SeedHoliday struct {
	Destination string   `yaml:"destination"`
	By          string   `yaml:"by"`
	Latitude    *float64 `yaml:"latitude"`
	Longitude   *float64 `yaml:"longitude"`
}

// SeedReport says how many rows SeedIfEmpty inserted
type SeedReport struct {
	TravelersInserted int
	HolidaysInserted  int
}

func coord(v float64) *float64 { return &v }

// DefaultSeed returns the built-in roster of 14 travelers and the initial holiday proposals
func DefaultSeed() Seed {
	return Seed{
		Travelers: []string{
			"Amy", "Matt McP", "Finni", "Jack Marsh", "Gabbie", "Chiz", "Will",
			"Katie", "Jack Houst", "Kirsty", "Sophie", "Matt Gall", "Laura", "Finlay",
		},
		Holidays: []SeedHoliday{
			{Destination: "Leucate", By: "Will", Latitude: coord(42.9114), Longitude: coord(3.0296)},
			{Destination: "Lake Garda", By: "Kirsty", Latitude: coord(45.4906), Longitude: coord(10.6067)},
			{Destination: "Porto", By: "Amy", Latitude: coord(41.1579), Longitude: coord(-8.6291)},
			{Destination: "Marrakesh", By: "Gabbie", Latitude: coord(31.6295), Longitude: coord(-7.9811)},
		},
	}
}

// LoadSeed reads a YAML seed file. A section missing from the file falls
// back to the built-in default for that section.
//
//	travelers: [Amy, Will]
//	holidays:
//	  - destination: Porto
//	    by: Amy
//	    latitude: 41.1579
//	    longitude: -8.6291
func LoadSeed(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	def := DefaultSeed()
	if len(seed.Travelers) == 0 {
		seed.Travelers = def.Travelers
	}
	if len(seed.Holidays) == 0 {
		seed.Holidays = def.Holidays
	}

	if err := seed.normalize(); err != nil {
		return Seed{}, fmt.Errorf("invalid seed file %s: %w", path, err)
	}
	return seed, nil
}

// normalize trims names and rejects blanks and duplicates
func (s *Seed) normalize() error {
	seen := make(map[string]bool, len(s.Travelers))
	for i, name := range s.Travelers {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("traveler %d has an empty name", i+1)
		}
		if seen[name] {
			return fmt.Errorf("duplicate traveler %q", name)
		}
		seen[name] = true
		s.Travelers[i] = name
	}

	seen = make(map[string]bool, len(s.Holidays))
	for i := range s.Holidays {
		h := &s.Holidays[i]
		h.Destination = strings.TrimSpace(h.Destination)
		h.By = strings.TrimSpace(h.By)
		if h.Destination == "" {
			return fmt.Errorf("holiday %d has an empty destination", i+1)
		}
		if h.By == "" {
			return fmt.Errorf("holiday %q has no proposer", h.Destination)
		}
		if seen[h.Destination] {
			return fmt.Errorf("duplicate holiday %q", h.Destination)
		}
		seen[h.Destination] = true
	}
	return nil
}

// SeedIfEmpty inserts the seed travelers if the traveler table is empty and
// the seed holidays if the holiday table is empty. Safe to call on every start.
func SeedIfEmpty(ctx context.Context, db *sql.DB, seed Seed) (SeedReport, error) {
	var report SeedReport

	if err := seed.normalize(); err != nil {
		return report, fmt.Errorf("invalid seed: %w", err)
	}

	n, err := seedTable(ctx, db, "traveler", len(seed.Travelers), func(tx *sql.Tx) error {
		for i, name := range seed.Travelers {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO traveler (id, name, has_voted)
				VALUES ($1, $2, FALSE)
			`, i+1, name); err != nil {
				return fmt.Errorf("failed to insert traveler %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return report, err
	}
	report.TravelersInserted = n
	if n > 0 {
		slog.Info("database initialized with travelers", "count", n)
	}

	n, err = seedTable(ctx, db, "holiday", len(seed.Holidays), func(tx *sql.Tx) error {
		for i, h := range seed.Holidays {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO holiday (id, destination, proposed_by, latitude, longitude)
				VALUES ($1, $2, $3, $4, $5)
			`, i+1, h.Destination, h.By, nullFloat(h.Latitude), nullFloat(h.Longitude)); err != nil {
				return fmt.Errorf("failed to insert holiday %q: %w", h.Destination, err)
			}
		}
		return nil
	})
	if err != nil {
		return report, err
	}
	report.HolidaysInserted = n
	if n > 0 {
		slog.Info("database initialized with holiday options", "count", n)
	}

	return report, nil
}

// seedTable runs insert in a transaction only when table has no rows
func seedTable(ctx context.Context, db *sql.DB, table string, rows int, insert func(*sql.Tx) error) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	// table is one of our own constants, never user input
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s rows: %w", table, err)
	}
	if count > 0 {
		slog.Debug("table already seeded", "table", table, "rows", count)
		return 0, nil
	}

	if err := insert(tx); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit %s seed: %w", table, err)
	}
	return rows, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
