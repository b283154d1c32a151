// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/danielhkuo/holiday-vote/db"
	"github.com/danielhkuo/holiday-vote/models"
)

type Engine struct {
	db       *sql.DB
	cache    Cache
	validate *validator.Validate
	now      func() time.Time
}

// NewEngine returns an engine over the given store. cache may be nil.
func NewEngine(conn *sql.DB, cache Cache) *Engine {
	return &Engine{
		db:       conn,
		cache:    cache,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

type ballotInput struct {
	VoterName    string `validate:"required"`
	FirstChoice  string `validate:"required"`
	SecondChoice string `validate:"required"`
}

// SubmitBallot validates and records one traveler's vote, returning the
// stored ballot and the ballot count after it. The has_voted flag and the
// ballot row commit together or not at all.
//
// The choices are not checked against the holiday catalog and may be equal.
func (e *Engine) SubmitBallot(ctx context.Context, req models.VoteRequest) (models.Ballot, int, error) {
	in := ballotInput{
		VoterName:    strings.TrimSpace(req.VoterName),
		FirstChoice:  strings.TrimSpace(req.FirstChoice),
		SecondChoice: strings.TrimSpace(req.SecondChoice),
	}
	if err := e.validate.StructCtx(ctx, in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return models.Ballot{}, 0, ErrMissingFields
		}
		return models.Ballot{}, 0, fmt.Errorf("failed to validate ballot: %w", err)
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Ballot{}, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var hasVoted bool
	err = tx.QueryRowContext(ctx, `
		SELECT has_voted FROM traveler WHERE name = $1
	`, in.VoterName).Scan(&hasVoted)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ballot{}, 0, ErrUnknownVoter
	}
	if err != nil {
		return models.Ballot{}, 0, fmt.Errorf("failed to query traveler: %w", err)
	}
	if hasVoted {
		return models.Ballot{}, 0, ErrAlreadyVoted
	}

	// Conditional flip: a concurrent vote that committed first leaves zero rows to update
	res, err := tx.ExecContext(ctx, `
		UPDATE traveler SET has_voted = TRUE
		WHERE name = $1 AND has_voted = FALSE
	`, in.VoterName)
	if err != nil {
		return models.Ballot{}, 0, fmt.Errorf("failed to mark traveler voted: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Ballot{}, 0, fmt.Errorf("failed to mark traveler voted: %w", err)
	}
	if affected != 1 {
		return models.Ballot{}, 0, ErrAlreadyVoted
	}

	ballot := models.Ballot{
		ID:           uuid.NewString(),
		VoterName:    in.VoterName,
		FirstChoice:  in.FirstChoice,
		SecondChoice: in.SecondChoice,
		SubmittedAt:  e.now().UTC(),
		IPHash:       optional(req.IPHash),
		UserAgent:    optional(req.UserAgent),
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO ballot (id, voter_name, first_choice, second_choice, submitted_at, ip_hash, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, ballot.ID, ballot.VoterName, ballot.FirstChoice, ballot.SecondChoice,
		ballot.SubmittedAt, ballot.IPHash, ballot.UserAgent)
	if db.IsUniqueViolation(err) {
		return models.Ballot{}, 0, ErrAlreadyVoted
	}
	if err != nil {
		return models.Ballot{}, 0, fmt.Errorf("failed to insert ballot: %w", err)
	}

	var total int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM ballot`).Scan(&total); err != nil {
		return models.Ballot{}, 0, fmt.Errorf("failed to count ballots: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if db.IsUniqueViolation(err) {
			return models.Ballot{}, 0, ErrAlreadyVoted
		}
		return models.Ballot{}, 0, fmt.Errorf("failed to commit ballot: %w", err)
	}

	if e.cache != nil {
		if err := e.cache.Invalidate(ctx); err != nil {
			slog.Warn("failed to invalidate results cache", "error", err)
		}
	}

	return ballot, total, nil
}

// ComputeResults tallies every ballot against the holiday catalog
func (e *Engine) ComputeResults(ctx context.Context) (models.Results, error) {
	// The generation is read before the store so a vote committed during
	// the recomputation makes the cache write a no-op
	cacheable := false
	var gen int64
	if e.cache != nil {
		cached, ok, err := e.cache.Get(ctx)
		if err != nil {
			slog.Warn("failed to read results cache", "error", err)
		} else if ok {
			return cached, nil
		}

		gen, err = e.cache.Generation(ctx)
		if err != nil {
			slog.Warn("failed to read results cache generation", "error", err)
		} else {
			cacheable = true
		}
	}

	holidays, err := db.ListHolidays(ctx, e.db)
	if err != nil {
		return models.Results{}, err
	}

	rows, err := e.db.QueryContext(ctx, `
		SELECT first_choice, second_choice FROM ballot
	`)
	if err != nil {
		return models.Results{}, fmt.Errorf("failed to query ballots: %w", err)
	}
	defer rows.Close()

	var ballots []models.Ballot
	for rows.Next() {
		var b models.Ballot
		if err := rows.Scan(&b.FirstChoice, &b.SecondChoice); err != nil {
			return models.Results{}, fmt.Errorf("failed to scan ballot: %w", err)
		}
		ballots = append(ballots, b)
	}
	if err := rows.Err(); err != nil {
		return models.Results{}, fmt.Errorf("failed to read ballots: %w", err)
	}

	results := Tally(holidays, ballots)

	if cacheable {
		if err := e.cache.Set(ctx, gen, results); err != nil {
			slog.Warn("failed to write results cache", "error", err)
		}
	}

	return results, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
