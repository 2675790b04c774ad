package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration. Every field is optional; the zero
// values give the plain console game with no network listener.
type Config struct {
	LogLevel        string `env:"RPS_LOG_LEVEL" envDefault:"warn"`
	LogJSON         bool   `env:"RPS_LOG_JSON"`
	Seed            int64  `env:"RPS_SEED"`
	SpectatorAddr   string `env:"RPS_SPECTATOR_ADDR"`
	SpectatorSecret string `env:"RPS_SPECTATOR_SECRET"`
	SpectatorOrigin string `env:"RPS_SPECTATOR_ORIGIN"`
}

// SpectatorEnabled reports whether the HTTP spectator surface should start.
func (c Config) SpectatorEnabled() bool {
	return c.SpectatorAddr != ""
}

// ParseConfig layers .env, environment and flags, in increasing priority.
func ParseConfig(flags *flag.FlagSet, args []string) (Config, error) {
	// A missing .env file is the normal case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error (default: RPS_LOG_LEVEL or warn)")
	flags.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "write logs as JSON")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the computer's moves (0 = random)")
	flags.StringVar(&cfg.SpectatorAddr, "spectator-addr", cfg.SpectatorAddr, "listen address for the read-only spectator API (empty = disabled)")
	flags.StringVar(&cfg.SpectatorSecret, "spectator-secret", cfg.SpectatorSecret, "HMAC secret; when set, spectators need a bearer token")
	flags.StringVar(&cfg.SpectatorOrigin, "spectator-origin", cfg.SpectatorOrigin, "allowed Origin for the live websocket (empty = any)")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
