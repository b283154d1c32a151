// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/holiday-vote/cliparse"
)

const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, cfg cliparse.Config) (*sql.DB, error) {
	var conn *sql.DB
	var err error

	switch cfg.DatabaseType {
	case cliparse.DatabasePostgres:
		conn, err = sql.Open("postgres", cfg.DatabaseURL)
	case cliparse.DatabaseSQLite:
		conn, err = sql.Open("sqlite", sqliteDSN(cfg.DatabaseURL))
		if err == nil {
			// SQLite allows a single writer; serialize on one connection
			conn.SetMaxOpenConns(1)
		}
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// sqliteDSN turns a plain path into a file: URI carrying the pragmas we rely on
func sqliteDSN(url string) string {
	if url == ":memory:" {
		return "file::memory:?" + sqlitePragmas
	}
	if !strings.HasPrefix(url, "file:") {
		url = "file:" + url
	}
	if strings.Contains(url, "_pragma=") {
		return url
	}
	if strings.Contains(url, "?") {
		return url + "&" + sqlitePragmas
	}
	return url + "?" + sqlitePragmas
}
