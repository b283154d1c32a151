package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"

	defaultPort      = 5000
	defaultSQLiteURL = "votes.db"
	defaultCacheTTL  = 30 * time.Second
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	SeedFile     string
	RedisURL     string
	CacheTTL     time.Duration
	IPHashSalt   string
	LogFormat    string
	LogLevel     string
}

// LoadEnv reads a .env file into the environment if one exists.
// Variables already set in the environment are not overwritten.
func LoadEnv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		slog.Debug("no .env file loaded, using environment variables", "error", err)
	}
}

// ParseFlags parses CLI flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var cacheTTL string

	fs := flag.NewFlagSet("holiday-vote", flag.ContinueOnError)

	// Network and storage
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (file path for sqlite)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.SeedFile, "seed", "", "YAML file with travelers and holidays to seed")

	// Results cache
	fs.StringVar(&cfg.RedisURL, "redis", "", "Redis URL for the results cache (optional)")
	fs.StringVar(&cacheTTL, "cache-ttl", "", "Results cache TTL, e.g. 30s")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", "", "Salt for hashing voter IPs (prefer env)")

	// Logging
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (auto, text or json)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = defaultSQLiteURL
	}

	if cfg.SeedFile == "" {
		cfg.SeedFile = os.Getenv("SEED_FILE")
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = os.Getenv("REDIS_URL")
	}

	if cacheTTL == "" {
		cacheTTL = os.Getenv("CACHE_TTL")
	}
	cfg.CacheTTL = defaultCacheTTL
	if cacheTTL != "" {
		ttl, err := time.ParseDuration(cacheTTL)
		if err != nil {
			return Config{}, fmt.Errorf("invalid cache TTL %q: %w", cacheTTL, err)
		}
		cfg.CacheTTL = ttl
	}

	if cfg.IPHashSalt == "" {
		cfg.IPHashSalt = os.Getenv("IP_HASH_SALT")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = os.Getenv("LOG_FORMAT")
		if cfg.LogFormat == "" {
			cfg.LogFormat = "auto"
		}
	}
	switch cfg.LogFormat {
	case "auto", "text", "json":
	default:
		return Config{}, fmt.Errorf("unsupported log format %q", cfg.LogFormat)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
	}

	return cfg, nil
}
