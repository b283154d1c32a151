// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 5000 {
		t.Errorf("expected port 5000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "votes.db" {
		t.Errorf("expected votes.db, got %s", cfg.DatabaseURL)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("expected 30s cache TTL, got %s", cfg.CacheTTL)
	}
	if cfg.LogFormat != "auto" || cfg.LogLevel != "info" {
		t.Errorf("unexpected log settings: %s/%s", cfg.LogFormat, cfg.LogLevel)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("REDIS_URL", "redis://localhost:6379/0")
	os.Setenv("CACHE_TTL", "1m")
	os.Setenv("SEED_FILE", "seed.yaml")
	os.Setenv("IP_HASH_SALT", "pepper")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://test" {
		t.Errorf("expected DATABASE_URL from env, got %s", cfg.DatabaseURL)
	}
	if cfg.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("expected REDIS_URL from env, got %s", cfg.RedisURL)
	}
	if cfg.CacheTTL != time.Minute {
		t.Errorf("expected 1m cache TTL, got %s", cfg.CacheTTL)
	}
	if cfg.SeedFile != "seed.yaml" || cfg.IPHashSalt != "pepper" {
		t.Errorf("unexpected seed/salt: %s/%s", cfg.SeedFile, cfg.IPHashSalt)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "env.db")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "cli.db", "-log-format", "json"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "cli.db" {
		t.Errorf("CLI should override env: expected cli.db, got %s", cfg.DatabaseURL)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected json log format, got %s", cfg.LogFormat)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"postgres without url", nil, []string{"-t", "postgres"}},
		{"unknown database type", nil, []string{"-t", "mysql"}},
		{"bad port", map[string]string{"PORT": "abc"}, nil},
		{"bad cache ttl", nil, []string{"-cache-ttl", "soon"}},
		{"bad log format", nil, []string{"-log-format", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.env {
				os.Setenv(k, v)
			}
			defer os.Clearenv()

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT=7070\nDATABASE_URL=from-dotenv.db\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	os.Setenv("DATABASE_URL", "already-set.db")

	LoadEnv(path)

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 7070 {
		t.Errorf("expected port from .env, got %d", cfg.Port)
	}
	// godotenv never overrides existing variables
	if cfg.DatabaseURL != "already-set.db" {
		t.Errorf("expected existing env to win, got %s", cfg.DatabaseURL)
	}
}

func TestLoadEnv_MissingFile(t *testing.T) {
	// Must not panic or exit
	LoadEnv(filepath.Join(t.TempDir(), "does-not-exist.env"))
}
