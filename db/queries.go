// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/holiday-vote/models"
)

// ListHolidays returns the destination catalog in seed (id) order
func ListHolidays(ctx context.Context, db *sql.DB) ([]models.Holiday, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, destination, proposed_by, latitude, longitude
		FROM holiday
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	holidays := []models.Holiday{}
	for rows.Next() {
		var h models.Holiday
		var lat, lng sql.NullFloat64
		if err := rows.Scan(&h.ID, &h.Destination, &h.ProposedBy, &lat, &lng); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		if lat.Valid {
			h.Latitude = &lat.Float64
		}
		if lng.Valid {
			h.Longitude = &lng.Float64
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read holidays: %w", err)
	}

	return holidays, nil
}

// ListEligibleTravelers returns travelers who have not voted yet, ordered by name
func ListEligibleTravelers(ctx context.Context, db *sql.DB) ([]models.Traveler, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, has_voted
		FROM traveler
		WHERE has_voted = FALSE
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query travelers: %w", err)
	}
	defer rows.Close()

	travelers := []models.Traveler{}
	for rows.Next() {
		var tr models.Traveler
		if err := rows.Scan(&tr.ID, &tr.Name, &tr.HasVoted); err != nil {
			return nil, fmt.Errorf("failed to scan traveler: %w", err)
		}
		travelers = append(travelers, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read travelers: %w", err)
	}

	return travelers, nil
}

// CountTravelers returns the roster size, voted or not
func CountTravelers(ctx context.Context, db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM traveler`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count travelers: %w", err)
	}
	return count, nil
}

func CountBallots(ctx context.Context, db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ballot`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count ballots: %w", err)
	}
	return count, nil
}
