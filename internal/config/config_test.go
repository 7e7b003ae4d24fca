package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvDB, EnvAddr, EnvShareBase, EnvLogLevel, EnvSessionTTL, EnvRateLimit} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != DefaultAddr {
		t.Errorf("expected %s, got %s", DefaultAddr, cfg.Addr)
	}
	if cfg.SessionTTL != DefaultSessionTTL {
		t.Errorf("expected %s, got %s", DefaultSessionTTL, cfg.SessionTTL)
	}
	if cfg.DBPath != DefaultDBPath() {
		t.Errorf("expected %s, got %s", DefaultDBPath(), cfg.DBPath)
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("expected info, got %s", cfg.SlogLevel())
	}
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAddr, ":9999")
	t.Setenv(EnvSessionTTL, "30m")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvRateLimit, "2.5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("expected :9999, got %s", cfg.Addr)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected 30m, got %s", cfg.SessionTTL)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug, got %s", cfg.SlogLevel())
	}
	if cfg.RateLimit != 2.5 {
		t.Errorf("expected 2.5, got %v", cfg.RateLimit)
	}
}

func TestLoad_EnvFileDoesNotOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	content := "RIONIDO_ADDR=:7000\nRIONIDO_SHARE_BASE=https://rionido.example/\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvShareBase, "https://override.example/")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7000" {
		t.Errorf("expected :7000 from env file, got %s", cfg.Addr)
	}
	if cfg.ShareBase != "https://override.example/" {
		t.Errorf("expected environment to win, got %s", cfg.ShareBase)
	}
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.env")); err == nil {
		t.Error("expected error for missing env file")
	}
}

func TestLoad_BadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSessionTTL, "forever")
	if _, err := Load(""); err == nil {
		t.Error("expected ttl error")
	}

	os.Unsetenv(EnvSessionTTL)
	t.Setenv(EnvLogLevel, "chatty")
	if _, err := Load(""); err == nil {
		t.Error("expected log level error")
	}
}

func TestParseTTL(t *testing.T) {
	cases := map[string]time.Duration{
		"7d":  7 * 24 * time.Hour,
		"24h": 24 * time.Hour,
		"30m": 30 * time.Minute,
		"60s": time.Minute,
	}
	for in, want := range cases {
		got, err := ParseTTL(in)
		if err != nil || got != want {
			t.Errorf("%s: expected %s, got %s (%v)", in, want, got, err)
		}
	}
	for _, bad := range []string{"", "0h", "1w", "h"} {
		if _, err := ParseTTL(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestParseTTL_OutOfRange(t *testing.T) {
	for _, in := range []string{"99999999999999999999h", "9999999999999d"} {
		_, err := ParseTTL(in)
		if err == nil || !strings.Contains(err.Error(), "out of range") {
			t.Errorf("%q: expected out of range error, got %v", in, err)
		}
	}
}
