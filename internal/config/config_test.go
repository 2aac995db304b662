package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/contact-api/internal/logging"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ENV", "API_PORT", "ALLOWED_ORIGINS", "MAX_BODY_BYTES", "SHUTDOWN_TIMEOUT",
		"LOG_LEVEL", "LOG_FILE", "LOG_REQUESTS", "RESEND_API_KEY",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE", "OTEL_SERVICE_NAME",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestParseDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, int64(65536), cfg.MaxBodyBytes)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "contact-api", cfg.ServiceName)
	assert.False(t, cfg.EmailConfigured())
	assert.False(t, cfg.IsProduction())
}

func TestParseOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("API_PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_REQUESTS", "true")
	t.Setenv("RESEND_API_KEY", "  re_123  ")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "re_123", cfg.ResendAPIKey)
	assert.True(t, cfg.EmailConfigured())
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)

	lc := cfg.Logging()
	assert.Equal(t, "debug", lc.Level)
	assert.True(t, lc.Requests)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non numeric port", "API_PORT", "http"},
		{"port out of range", "API_PORT", "70000"},
		{"zero body cap", "MAX_BODY_BYTES", "0"},
		{"unknown log level", "LOG_LEVEL", "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Parse()
			require.Error(t, err)
			assert.ErrorIs(t, err, logging.ErrInvalidConfig)
		})
	}
}

func TestParseMalformedDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	_, err := Parse()
	assert.Error(t, err)
}
