// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/holiday-vote/cliparse"
	"github.com/danielhkuo/holiday-vote/handlers"
	"github.com/danielhkuo/holiday-vote/middleware"
	"github.com/danielhkuo/holiday-vote/tally"
)

func NewRouter(db *sql.DB, engine *tally.Engine, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(db, engine, cfg)
	resultsHandler := handlers.NewResultsHandler(db, engine)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting
	mux.HandleFunc("GET /{$}", middleware.WithLogging(votingHandler.Index))
	mux.HandleFunc("POST /vote", middleware.WithLogging(votingHandler.Vote))

	// Results
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /api/holidays", middleware.WithLogging(resultsHandler.GetHolidays))

	return mux
}
