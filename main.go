package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/holiday-vote/cliparse"
	"github.com/danielhkuo/holiday-vote/db"
	"github.com/danielhkuo/holiday-vote/logging"
	"github.com/danielhkuo/holiday-vote/middleware"
	"github.com/danielhkuo/holiday-vote/router"
	"github.com/danielhkuo/holiday-vote/tally"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	cliparse.LoadEnv()
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error parsing flags: %w", err)
	}

	logger, err := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(ctx, dbConn); err != nil {
		return err
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Seed the roster and holidays on first start
	seed := db.DefaultSeed()
	if cfg.SeedFile != "" {
		if seed, err = db.LoadSeed(cfg.SeedFile); err != nil {
			return err
		}
	}
	if _, err := db.SeedIfEmpty(ctx, dbConn, seed); err != nil {
		return err
	}

	// Results cache is optional
	var cache tally.Cache
	if cfg.RedisURL != "" {
		client, err := tally.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		cache = tally.NewRedisCache(client, cfg.CacheTTL)
		slog.Info("Results cache enabled", "ttl", cfg.CacheTTL)
	}

	engine := tally.NewEngine(dbConn, cache)

	// Create router
	mux := router.NewRouter(dbConn, engine, cfg)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return err
	}

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	if err := serve(ctx, &server, ln); err != nil {
		return err
	}
	slog.Info("Server closed")
	return nil
}

// serve runs server on ln until ctx is done, then waits for in-flight
// requests to drain before returning.
func serve(ctx context.Context, server *http.Server, ln net.Listener) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		// Wait for Ctrl-C or SIGTERM
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	err := server.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	// Serve returns as soon as Shutdown starts
	<-done
	return nil
}
