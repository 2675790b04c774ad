package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// inDir runs the rest of the test from dir, where godotenv looks for .env.
func inDir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	unsetEnv(t, "RPS_LOG_LEVEL", "RPS_SPECTATOR_ADDR", "RPS_SEED")

	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.SpectatorEnabled() {
		t.Fatal("spectator enabled by default")
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("RPS_LOG_LEVEL", "debug")
	t.Setenv("RPS_SEED", "99")
	t.Setenv("RPS_SPECTATOR_ADDR", ":9000")

	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.Seed != 99 || cfg.SpectatorAddr != ":9000" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("RPS_SEED", "99")
	unsetEnv(t, "RPS_SPECTATOR_ADDR")

	cfg, err := ParseConfig(newFlagSet(), []string{"-seed", "7", "-spectator-addr", "127.0.0.1:8081", "-log-json"})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Seed != 7 || cfg.SpectatorAddr != "127.0.0.1:8081" || !cfg.LogJSON {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseConfigBadEnv(t *testing.T) {
	t.Setenv("RPS_SEED", "not-a-number")
	if _, err := ParseConfig(newFlagSet(), nil); err == nil {
		t.Fatal("expected error for bad RPS_SEED")
	}
}

func TestParseConfigBadFlag(t *testing.T) {
	unsetEnv(t, "RPS_SEED")
	if _, err := ParseConfig(newFlagSet(), []string{"-nope"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestParseConfigDotEnv(t *testing.T) {
	unsetEnv(t, "RPS_SEED", "RPS_SPECTATOR_ADDR")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("RPS_SEED=42\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	inDir(t, dir)

	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("Seed = %d, want 42 from .env", cfg.Seed)
	}
}

func TestParseConfigMalformedDotEnv(t *testing.T) {
	unsetEnv(t, "RPS_SEED")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BAD-KEY=1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	inDir(t, dir)

	if _, err := ParseConfig(newFlagSet(), nil); err == nil {
		t.Fatal("expected error for malformed .env")
	}
}

func TestParseConfigMissingDotEnv(t *testing.T) {
	unsetEnv(t, "RPS_SEED")
	inDir(t, t.TempDir())

	if _, err := ParseConfig(newFlagSet(), nil); err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
}
