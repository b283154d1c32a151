// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"math"
	"net/http"

	"github.com/danielhkuo/holiday-vote/db"
	"github.com/danielhkuo/holiday-vote/middleware"
	"github.com/danielhkuo/holiday-vote/models"
	"github.com/danielhkuo/holiday-vote/tally"
)

type ResultsHandler struct {
	db     *sql.DB
	engine *tally.Engine
}

func NewResultsHandler(db *sql.DB, engine *tally.Engine) *ResultsHandler {
	return &ResultsHandler{db: db, engine: engine}
}

// GetResults handles GET /results
// Returns destinations ranked by score, the ballot count and the roster size
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.engine.ComputeResults(r.Context())
	if err != nil {
		slog.Error("failed to compute results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	maxVotes, err := db.CountTravelers(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to count travelers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Results:       results.Rankings,
		TotalVotes:    results.TotalBallots,
		MaxVotes:      maxVotes,
		Participation: participation(results.TotalBallots, maxVotes),
	})
}

// GetHolidays handles GET /api/holidays
// Returns the catalog with coordinates for the map
func (h *ResultsHandler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := db.ListHolidays(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to list holidays", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, holidays)
}

// participation is the percentage of the roster that has voted, to one decimal
func participation(votes, roster int) float64 {
	if roster == 0 {
		return 0
	}
	return math.Round(float64(votes)/float64(roster)*1000) / 10
}
