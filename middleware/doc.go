// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Logging

WithLogging logs request start and completion with method, path, client IP,
status and duration via slog:

	mux.HandleFunc("POST /vote", middleware.WithLogging(handler.Vote))

# CORS

CORS reflects the request Origin (or "*") so the map page can call the API
from another host:

	server := http.Server{Handler: middleware.CORS(mux)}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	err := middleware.ParseJSONBody(r, &req)

# Client Identification

GetClientIP checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
HashIP turns it into a salted 64-bit fingerprint stored on ballots for
auditing; raw addresses are never persisted.
*/
package middleware
