package config

import (
	"fmt"
	"os"
	"time"
)

// Env represents the runtime environment of the application.
type Env string

const (
	EnvLocal      Env = "local"
	EnvProduction Env = "production"
)

// Config holds the runtime configuration of the API server.
type Config struct {
	AppEnv          Env
	Port            string
	DatabaseURL     string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where a variable is unset.
func Load() (Config, error) {
	cfg := Config{}

	appEnv := Env(getString("APP_ENV", string(EnvLocal)))
	if appEnv != EnvLocal && appEnv != EnvProduction {
		return Config{}, fmt.Errorf("invalid APP_ENV: %s (must be 'local' or 'production')", appEnv)
	}
	cfg.AppEnv = appEnv

	cfg.Port = getString("APP_PORT", "8080")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.LogLevel = getString("LOG_LEVEL", "info")

	shutdownTimeout, err := time.ParseDuration(getString("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = shutdownTimeout

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func getString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
