package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/osa911/contact-api/internal/logging"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment     string        `env:"ENV" envDefault:"development"`
	Port            string        `env:"API_PORT" envDefault:"8080"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES" envDefault:"65536"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging Configuration
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`
	LogRequests bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// Email provider. An empty key is reported per request, not at startup.
	ResendAPIKey string `env:"RESEND_API_KEY"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"false"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"contact-api"`
}

// Load loads the configuration from .env files and environment variables.
// Variables already present in the environment win over file values.
func Load() (*Config, error) {
	envLocations := []string{
		"internal/config/env/.env.development",
		".env",
	}

	// If ENV is set, try to load that specific file first
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf("internal/config/env/.env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	return Parse()
}

// Parse reads the configuration from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.ResendAPIKey = strings.TrimSpace(cfg.ResendAPIKey)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late at listen time.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return logging.WrapError(logging.ErrInvalidConfig, fmt.Sprintf("API_PORT %q", c.Port))
	}
	if c.MaxBodyBytes <= 0 {
		return logging.WrapError(logging.ErrInvalidConfig, "MAX_BODY_BYTES must be positive")
	}
	if err := c.Logging().Validate(); err != nil {
		return logging.WrapError(logging.ErrInvalidConfig, err.Error())
	}
	return nil
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// EmailConfigured reports whether a provider credential is present.
func (c *Config) EmailConfigured() bool {
	return c.ResendAPIKey != ""
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Logging derives the logger settings.
func (c *Config) Logging() *logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.LogLevel
	lc.File = c.LogFile
	lc.Requests = c.LogRequests
	return lc
}
