package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application.
// Following 12-factor app principles, all config is loaded from environment variables.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Host            string `envconfig:"HOST" default:"0.0.0.0"`
	Port            string `envconfig:"PORT" default:"8000"`
	ReadTimeout     int    `envconfig:"READ_TIMEOUT" default:"15"`
	WriteTimeout    int    `envconfig:"WRITE_TIMEOUT" default:"15"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"30"`
}

type DatabaseConfig struct {
	URL            string `envconfig:"DATABASE_URL"`
	Name           string `envconfig:"DATABASE_NAME" default:"ecommerce"`
	ConnectTimeout int    `envconfig:"DATABASE_CONNECT_TIMEOUT" default:"10"`

	// Whether DATABASE_NAME came from the environment; envconfig fills the
	// default in either case, so presence has to be captured at load time.
	nameFromEnv bool
}

type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from environment variables. Sections are processed
// without a prefix so the variable names stay exactly as tagged.
func Load() (*Config, error) {
	var cfg Config
	for _, section := range []any{&cfg.Server, &cfg.Database, &cfg.Logging} {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("process environment: %w", err)
		}
	}
	cfg.Database.nameFromEnv = os.Getenv("DATABASE_NAME") != ""

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.Name == "" {
		return fmt.Errorf("DATABASE_NAME is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}

	return nil
}

// URLConfigured reports whether a database connection string is present,
// without exposing its value.
func (c *DatabaseConfig) URLConfigured() bool {
	return c.URL != ""
}

// NameConfigured reports whether a database name was present in the
// environment, as opposed to the built-in default being used.
func (c *DatabaseConfig) NameConfigured() bool {
	return c.nameFromEnv
}

// ConnectTimeoutDuration returns the connect timeout as a time.Duration.
func (c *DatabaseConfig) ConnectTimeoutDuration() time.Duration {
	return time.Duration(c.ConnectTimeout) * time.Second
}
