package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "bad level", mutate: func(c *Config) { c.Level = "verbose" }, wantErr: true},
		{name: "file without size", mutate: func(c *Config) { c.File = "x.log"; c.MaxSize = 0 }, wantErr: true},
		{name: "stdout without size", mutate: func(c *Config) { c.MaxSize = 0 }},
		{name: "negative backups", mutate: func(c *Config) { c.MaxBackups = -1 }, wantErr: true},
		{name: "negative age", mutate: func(c *Config) { c.MaxAge = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelWarn)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	assert.Empty(t, buf.String())

	l.Warn("warn %d", 3)
	l.Error("error %d", 4)
	assert.Contains(t, buf.String(), "[WARN]")
	assert.Contains(t, buf.String(), "warn 3")
	assert.Contains(t, buf.String(), "error 4")
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "loud")

	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "api.log")
	cfg := DefaultConfig()
	cfg.File = path

	l, err := NewLogger(cfg)
	require.NoError(t, err)
	l.Info("hello %s", "file")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}

func TestHTTPRequestLogGated(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelInfo)

	l.LogHTTPRequest("rid", "POST", "/api/contact", "127.0.0.1", 200, 10, "1ms")
	assert.Empty(t, buf.String())

	l.requests = true
	l.LogHTTPRequest("rid", "POST", "/api/contact", "127.0.0.1", 200, 10, "1ms")
	assert.Contains(t, buf.String(), "/api/contact")

	buf.Reset()
	l.LogHTTPError("rid", "POST", "/api/contact", "127.0.0.1", 500, "boom", errors.New("cause"))
	assert.Contains(t, buf.String(), "boom: cause")
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "ctx"))

	base := errors.New("base")
	err := WrapError(base, "loading")
	assert.EqualError(t, err, "loading: base")
	assert.ErrorIs(t, err, base)
}
