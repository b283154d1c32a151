// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/holiday-vote/cliparse"
	"github.com/danielhkuo/holiday-vote/db"
	"github.com/danielhkuo/holiday-vote/middleware"
	"github.com/danielhkuo/holiday-vote/models"
	"github.com/danielhkuo/holiday-vote/tally"
)

// Messages shown on the re-rendered voting form
const (
	msgMissingFields = "Please fill in all fields!"
	msgUnknownVoter  = "Invalid traveler selected!"
	msgAlreadyVoted  = "%s has already voted!"
	msgVoteFailed    = "Could not record your vote, please try again"
)

type VotingHandler struct {
	db     *sql.DB
	engine *tally.Engine
	cfg    cliparse.Config
}

func NewVotingHandler(db *sql.DB, engine *tally.Engine, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, engine: engine, cfg: cfg}
}

// Index handles GET /
// Returns the holiday catalog and the travelers who can still vote
func (h *VotingHandler) Index(w http.ResponseWriter, r *http.Request) {
	holidays, travelers, err := h.formState(r)
	if err != nil {
		slog.Error("failed to load voting form", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.IndexResponse{
		Holidays:  holidays,
		Travelers: travelers,
	})
}

// Vote handles POST /vote
// Accepts a url-encoded form or a JSON body with voter_name, first_choice, second_choice
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	req, err := parseVoteRequest(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if h.cfg.IPHashSalt != "" {
		req.IPHash = middleware.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)
	}
	req.UserAgent = r.UserAgent()

	ballot, total, err := h.engine.SubmitBallot(r.Context(), req)
	switch {
	case errors.Is(err, tally.ErrMissingFields):
		h.renderFormError(w, r, http.StatusBadRequest, msgMissingFields)
		return
	case errors.Is(err, tally.ErrUnknownVoter):
		h.renderFormError(w, r, http.StatusBadRequest, msgUnknownVoter)
		return
	case errors.Is(err, tally.ErrAlreadyVoted):
		h.renderFormError(w, r, http.StatusConflict, fmt.Sprintf(msgAlreadyVoted, strings.TrimSpace(req.VoterName)))
		return
	case err != nil:
		slog.Error("failed to submit ballot", "error", err, "voter", req.VoterName)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgVoteFailed)
		return
	}

	slog.Info("ballot submitted", "ballot_id", ballot.ID, "voter", ballot.VoterName, "total_votes", total)

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		BallotID:     ballot.ID,
		VoterName:    ballot.VoterName,
		FirstChoice:  ballot.FirstChoice,
		SecondChoice: ballot.SecondChoice,
		TotalVotes:   total,
		Message:      fmt.Sprintf("Thanks %s! You are the %s traveler to vote.", ballot.VoterName, humanize.Ordinal(total)),
	})
}

// renderFormError returns the form state again with a validation message
func (h *VotingHandler) renderFormError(w http.ResponseWriter, r *http.Request, status int, message string) {
	holidays, travelers, err := h.formState(r)
	if err != nil {
		slog.Error("failed to load voting form", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, status, models.VoteFormResponse{
		Error:     message,
		Holidays:  holidays,
		Travelers: travelers,
	})
}

func (h *VotingHandler) formState(r *http.Request) ([]models.Holiday, []models.Traveler, error) {
	holidays, err := db.ListHolidays(r.Context(), h.db)
	if err != nil {
		return nil, nil, err
	}
	travelers, err := db.ListEligibleTravelers(r.Context(), h.db)
	if err != nil {
		return nil, nil, err
	}
	return holidays, travelers, nil
}

func parseVoteRequest(r *http.Request) (models.VoteRequest, error) {
	var req models.VoteRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			return models.VoteRequest{}, err
		}
		return req, nil
	}

	// PostFormValue also handles multipart bodies
	req.VoterName = r.PostFormValue("voter_name")
	req.FirstChoice = r.PostFormValue("first_choice")
	req.SecondChoice = r.PostFormValue("second_choice")
	return req, nil
}
