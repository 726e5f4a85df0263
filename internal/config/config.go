package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application level configuration loaded from .env files,
// environment variables, and flags, in that order of precedence.
type Config struct {
	RunAddress      string        `envconfig:"RUN_ADDRESS" default:":8090"`
	SupabaseURL     string        `envconfig:"SUPABASE_URL"`
	SupabaseAnonKey string        `envconfig:"SUPABASE_ANON_KEY"`
	BackendURL      string        `envconfig:"BACKEND_URL" default:"http://localhost:8080"`
	AIServiceURL    string        `envconfig:"AI_SERVICE_URL" default:"http://localhost:8000"`
	SessionFile     string        `envconfig:"SESSION_FILE" default:"session.json"`
	ProbeInterval   time.Duration `envconfig:"PROBE_INTERVAL" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

const (
	defaultProbeInterval   = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from the environment and command line flags.
// Missing managed-provider credentials are fatal; the other two services
// have local-development defaults.
func Load() (*Config, error) {
	// Absence of a .env file is fine, exported variables still apply.
	_ = godotenv.Load()
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	fs := flag.NewFlagSet("loyaltylink", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		probeIntervalStr   = cfg.ProbeInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP gateway listen address")
	fs.StringVar(&cfg.SupabaseURL, "supabase-url", cfg.SupabaseURL, "Managed auth/data provider base URL")
	fs.StringVar(&cfg.SupabaseAnonKey, "supabase-key", cfg.SupabaseAnonKey, "Managed provider anon API key")
	fs.StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "Custom REST backend base URL")
	fs.StringVar(&cfg.AIServiceURL, "ai-url", cfg.AIServiceURL, "Analytics microservice base URL")
	fs.StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "Path of the persisted session file")
	fs.StringVar(&probeIntervalStr, "probe-interval", probeIntervalStr, "Interval between connectivity probes")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ProbeInterval, err = time.ParseDuration(probeIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid probe interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.ProbeInterval <= 0 {
		cfg.ProbeInterval = defaultProbeInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("supabase URL must be provided")
	}

	if cfg.SupabaseAnonKey == "" {
		return nil, fmt.Errorf("supabase anon key must be provided")
	}

	if cfg.SessionFile == "" {
		return nil, fmt.Errorf("session file path must be provided")
	}

	return cfg, nil
}
