// Package config reads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string
	Environment string
	LogLevel    string

	SessionSigningKey string
	SessionTTL        time.Duration

	// ReferencePricesFile optionally replaces the built-in price bands.
	ReferencePricesFile string
	LockTerminalStatus  bool
	VerificationPacing  bool
	LedgerExplorerURL   string
	// AuditBuffer is the async audit queue size; 0 publishes synchronously.
	AuditBuffer    int
	SeedDemoData   bool
	AllowedOrigins []string

	ShutdownTimeout time.Duration
}

const (
	// DefaultSigningKey is the dev-only session key.
	DefaultSigningKey = "dev-secret-key-change-in-production"
	defaultExplorer   = "https://sepolia.etherscan.io/tx/"
)

// IsDev reports whether the server runs in the local development environment.
func (s Server) IsDev() bool { return s.Environment == "dev" }

// Load reads an optional .env file, then the environment.
func Load(envFiles ...string) (Server, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load(envFiles...)
	return FromEnv()
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:                getEnv("CONTIUM_ADDR", ":8080"),
		Environment:         getEnv("ENVIRONMENT", "dev"),
		LogLevel:            strings.ToLower(getEnv("LOG_LEVEL", "info")),
		SessionSigningKey:   getEnv("SESSION_SIGNING_KEY", DefaultSigningKey),
		ReferencePricesFile: os.Getenv("REFERENCE_PRICES_FILE"),
		LedgerExplorerURL:   getEnv("LEDGER_EXPLORER_URL", defaultExplorer),
		AllowedOrigins:      listEnv("CORS_ALLOWED_ORIGINS"),
	}

	var err error
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 8*time.Hour); err != nil {
		return Server{}, err
	}
	if cfg.ShutdownTimeout, err = durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Server{}, err
	}
	if cfg.LockTerminalStatus, err = boolEnv("LOCK_TERMINAL_STATUS", false); err != nil {
		return Server{}, err
	}
	if cfg.VerificationPacing, err = boolEnv("VERIFICATION_PACING", false); err != nil {
		return Server{}, err
	}
	if cfg.SeedDemoData, err = boolEnv("SEED_DEMO_DATA", true); err != nil {
		return Server{}, err
	}
	if cfg.AuditBuffer, err = intEnv("AUDIT_BUFFER", 0); err != nil {
		return Server{}, err
	}
	if cfg.AuditBuffer < 0 {
		return Server{}, fmt.Errorf("AUDIT_BUFFER must not be negative, got %d", cfg.AuditBuffer)
	}
	if !cfg.IsDev() && cfg.SessionSigningKey == DefaultSigningKey {
		return Server{}, fmt.Errorf("SESSION_SIGNING_KEY must be set outside dev")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// listEnv splits a comma-separated value, dropping blanks.
func listEnv(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
