package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"golang.org/x/crypto/bcrypt"
)

const (
	TokenStrategyJWT  = "jwt"
	TokenStrategyHMAC = "hmac"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	JWTSecret       string
	TokenStrategy   string
	TokenTTL        time.Duration
	BcryptCost      int
	Timezone        string
	Location        *time.Location
	DailyTarget     int
	LogLevel        slog.Level
	LogFile         string
	ShutdownTimeout time.Duration
}

const (
	defaultPort            = "5000"
	defaultJWTSecret       = "change-me-in-production"
	defaultTokenTTL        = 7 * 24 * time.Hour
	defaultBcryptCost      = 10
	defaultTimezone        = "Local"
	defaultDailyTarget     = 10
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

// LoadEnv reads configuration from the environment only, for tools that parse their own flags.
func LoadEnv() (*Config, error) {
	return load(nil, os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:    getString(lookup, "RUN_ADDRESS", ":"+getString(lookup, "PORT", defaultPort)),
		DatabaseURI:   getString(lookup, "DATABASE_URI", ""),
		JWTSecret:     getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenStrategy: getString(lookup, "TOKEN_STRATEGY", TokenStrategyJWT),
		Timezone:      getString(lookup, "TIMEZONE", defaultTimezone),
		LogFile:       getString(lookup, "LOG_FILE", ""),
	}

	var err error
	if cfg.BcryptCost, err = getInt(lookup, "BCRYPT_COST", defaultBcryptCost); err != nil {
		return nil, err
	}
	if cfg.DailyTarget, err = getInt(lookup, "DAILY_TARGET", defaultDailyTarget); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("kicktracker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Durations are parsed once, after flags override env.
	var (
		tokenTTLStr        = getString(lookup, "TOKEN_TTL", defaultTokenTTL.String())
		shutdownTimeoutStr = getString(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())
		logLevelStr        = getString(lookup, "LOG_LEVEL", "info")
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.TokenStrategy, "token-strategy", cfg.TokenStrategy, "Auth token format: jwt or hmac")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Validity window of issued tokens")
	fs.StringVar(&cfg.Timezone, "tz", cfg.Timezone, "IANA zone used to bucket kicks into days")
	fs.IntVar(&cfg.DailyTarget, "daily-target", cfg.DailyTarget, "Kicks per day considered a met goal")
	fs.StringVar(&logLevelStr, "log-level", logLevelStr, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Optional rotating log file")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if cfg.Location, err = time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	cfg.TokenStrategy = strings.ToLower(strings.TrimSpace(cfg.TokenStrategy))
	if cfg.TokenStrategy != TokenStrategyJWT && cfg.TokenStrategy != TokenStrategyHMAC {
		return nil, fmt.Errorf("unknown token strategy %q", cfg.TokenStrategy)
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.BcryptCost <= 0 {
		cfg.BcryptCost = defaultBcryptCost
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d outside %d..%d", cfg.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.DailyTarget <= 0 {
		cfg.DailyTarget = defaultDailyTarget
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
