package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	TokenStrategyJWT  = "jwt"
	TokenStrategyHMAC = "hmac"

	// DefaultJWTSecret is used when no secret is configured. It is meant for local development only.
	DefaultJWTSecret = "change-me-in-production"
)

// Config holds application level configuration loaded from .env, environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	JWTSecret       string
	TokenStrategy   string
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
	CORSOrigins     []string

	// UpdateValidateDate makes book updates parse publication_date like creation does.
	UpdateValidateDate bool
	// UpdateRejectEmpty makes book updates reject explicitly blank fields.
	UpdateRejectEmpty bool
}

const (
	defaultRunAddress      = ":8080"
	defaultTokenStrategy   = TokenStrategyJWT
	defaultTokenTTL        = 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultCORSOrigins     = "*"
	defaultEnvFile         = ".env"
)

// Load parses configuration from an optional .env file, environment variables and flags.
func Load() (*Config, error) {
	if err := loadEnvFile(defaultEnvFile); err != nil {
		return nil, err
	}
	return load(os.Args[1:], os.LookupEnv)
}

// loadEnvFile populates missing environment variables from path. A missing file is not an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		JWTSecret:          getString(lookup, "JWT_SECRET", DefaultJWTSecret),
		TokenStrategy:      getString(lookup, "TOKEN_STRATEGY", defaultTokenStrategy),
		TokenTTL:           getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:           getString(lookup, "LOG_LEVEL", defaultLogLevel),
		UpdateValidateDate: getBool(lookup, "UPDATE_VALIDATE_DATE", false),
		UpdateRejectEmpty:  getBool(lookup, "UPDATE_REJECT_EMPTY", false),
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	fs := flag.NewFlagSet("bookcatalog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		corsOrigins        = getString(lookup, "CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.TokenStrategy, "token-strategy", cfg.TokenStrategy, "Token format: jwt or hmac")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Lifetime of issued tokens")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&corsOrigins, "cors-origins", corsOrigins, "Comma separated list of allowed CORS origins")
	fs.BoolVar(&cfg.UpdateValidateDate, "update-validate-date", cfg.UpdateValidateDate, "Validate publication_date on book update")
	fs.BoolVar(&cfg.UpdateRejectEmpty, "update-reject-empty", cfg.UpdateRejectEmpty, "Reject blank fields on book update")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	cfg.CORSOrigins = parseCSV(corsOrigins)
	cfg.TokenStrategy = strings.ToLower(strings.TrimSpace(cfg.TokenStrategy))

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	switch cfg.TokenStrategy {
	case TokenStrategyJWT, TokenStrategyHMAC:
	default:
		return nil, fmt.Errorf("unknown token strategy %q", cfg.TokenStrategy)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

// UsesDefaultSecret reports whether tokens are signed with the built-in development secret.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{defaultCORSOrigins}
	}
	return out
}
