// Package config resolves runtime settings from the environment and an
// optional .env file. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvDB         = "RIONIDO_DB"
	EnvAddr       = "RIONIDO_ADDR"
	EnvShareBase  = "RIONIDO_SHARE_BASE"
	EnvLogLevel   = "RIONIDO_LOG_LEVEL"
	EnvSessionTTL = "RIONIDO_SESSION_TTL"
	EnvRateLimit  = "RIONIDO_RATE_LIMIT"
)

const (
	DefaultAddr       = ":8080"
	DefaultShareBase  = "http://localhost:8080/"
	DefaultLogLevel   = "info"
	DefaultSessionTTL = 24 * time.Hour
	DefaultRateLimit  = 10.0
)

type Config struct {
	DBPath     string
	Addr       string
	ShareBase  string
	LogLevel   string
	SessionTTL time.Duration
	// RateLimit is the sustained requests per second allowed per client.
	RateLimit float64
}

// Load reads envFile (or ./.env when empty and present) without overriding
// variables already set, then resolves every setting.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		DBPath:     getEnv(EnvDB, DefaultDBPath()),
		Addr:       getEnv(EnvAddr, DefaultAddr),
		ShareBase:  getEnv(EnvShareBase, DefaultShareBase),
		LogLevel:   getEnv(EnvLogLevel, DefaultLogLevel),
		SessionTTL: DefaultSessionTTL,
		RateLimit:  DefaultRateLimit,
	}

	if v := os.Getenv(EnvSessionTTL); v != "" {
		d, err := ParseTTL(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSessionTTL, err)
		}
		cfg.SessionTTL = d
	}
	if v := os.Getenv(EnvRateLimit); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			return Config{}, fmt.Errorf("%s: invalid rate %q", EnvRateLimit, v)
		}
		cfg.RateLimit = r
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	return cfg, nil
}

// DefaultDBPath is ~/.rionido/catalog.db.
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".rionido", "catalog.db")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// SlogLevel returns the configured log level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

// ParseTTL parses a TTL string like "7d", "24h", "30m" into a time.Duration.
var ttlRegex = regexp.MustCompile(`^(\d+)([dhms])$`)

func ParseTTL(s string) (time.Duration, error) {
	m := ttlRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid format %q (use e.g. 7d, 24h, 30m, 60s)", s)
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ttl out of range: %q", s)
	}
	if n == 0 {
		return 0, fmt.Errorf("ttl must be positive: %q", s)
	}
	var unit time.Duration
	switch m[2] {
	case "d":
		unit = 24 * time.Hour
	case "h":
		unit = time.Hour
	case "m":
		unit = time.Minute
	case "s":
		unit = time.Second
	default:
		return 0, fmt.Errorf("unknown unit %q", m[2])
	}
	if n > int64(math.MaxInt64/unit) {
		return 0, fmt.Errorf("ttl out of range: %q", s)
	}
	return time.Duration(n) * unit, nil
}
