package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	SessionSecret   string
	SessionTTL      time.Duration
	UploadDir       string
	MaxUploadBytes  int64
	ShutdownTimeout time.Duration
	SweepInterval   time.Duration
	PhotoMinAge     time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultSessionSecret   = "change-me-in-production"
	defaultSessionTTL      = 24 * time.Hour
	defaultUploadDir       = "data/uploads"
	defaultMaxUploadBytes  = 16 << 20
	defaultShutdownTimeout = 10 * time.Second
	defaultSweepInterval   = 10 * time.Minute
	defaultPhotoMinAge     = time.Hour
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		SessionSecret:   getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:      getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		UploadDir:       getString(lookup, "UPLOAD_DIR", defaultUploadDir),
		MaxUploadBytes:  getInt64(lookup, "MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		SweepInterval:   getDuration(lookup, "SWEEP_INTERVAL", defaultSweepInterval),
		PhotoMinAge:     getDuration(lookup, "PHOTO_MIN_AGE", defaultPhotoMinAge),
	}

	fs := flag.NewFlagSet("cleanearth", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		sweepIntervalStr   = cfg.SweepInterval.String()
		photoMinAgeStr     = cfg.PhotoMinAge.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.UploadDir, "u", cfg.UploadDir, "Directory for uploaded cleanup photos")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Session token lifetime")
	fs.Int64Var(&cfg.MaxUploadBytes, "max-upload", cfg.MaxUploadBytes, "Maximum accepted photo size in bytes")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "How often to sweep orphaned photos")
	fs.StringVar(&photoMinAgeStr, "photo-min-age", photoMinAgeStr, "Minimum photo age before it can be swept")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.SweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	if cfg.PhotoMinAge, err = time.ParseDuration(photoMinAgeStr); err != nil {
		return nil, fmt.Errorf("invalid photo min age: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = string(content)
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}

	if cfg.PhotoMinAge <= 0 {
		cfg.PhotoMinAge = defaultPhotoMinAge
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = defaultUploadDir
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

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
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
