package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON must be valid for time.Duration's TextUnmarshal (string, e.g. "30s").
	jsonBody := `{
		"server": {
			"address": "localhost:8080",
			"read_timeout": "1m",
			"read_header_timeout": "10s",
			"write_timeout": "10m",
			"idle_timeout": "2m",
			"shutdown_timeout": "10s"
		},
		"jncep": {
			"email": "reader@example.com",
			"password": "hunter2",
			"output": "/var/output",
			"binary": "/usr/local/bin/jncep",
			"generation_timeout": "15m",
			"purchase_delay": "10s"
		},
		"api": {
			"base_url": "https://labs.example.com",
			"request_timeout": "10s"
		},
		"log": {
			"level": "info",
			"file": "/var/log/jncep-web.log"
		},
		"workers": {
			"sweep_interval": "1h",
			"retention": "24h"
		},
		"client": {
			"server_address": "http://localhost:5000",
			"output_dir": "/tmp/books",
			"request_timeout": "20m"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "localhost:8080", cfg.Server.Address)
	assert.Equal(t, time.Minute, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Server.WriteTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "reader@example.com", cfg.JNCEP.Email)
	assert.Equal(t, "hunter2", cfg.JNCEP.Password)
	assert.Equal(t, "/var/output", cfg.JNCEP.Output)
	assert.Equal(t, "/usr/local/bin/jncep", cfg.JNCEP.Binary)
	assert.Equal(t, 15*time.Minute, cfg.JNCEP.GenerationTimeout)
	assert.Equal(t, 10*time.Second, cfg.JNCEP.PurchaseDelay)

	assert.Equal(t, "https://labs.example.com", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.RequestTimeout)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/var/log/jncep-web.log", cfg.Log.File)

	assert.Equal(t, time.Hour, cfg.Workers.SweepInterval)
	assert.Equal(t, 24*time.Hour, cfg.Workers.Retention)

	assert.Equal(t, "http://localhost:5000", cfg.Client.ServerAddress)
	assert.Equal(t, "/tmp/books", cfg.Client.OutputDir)
	assert.Equal(t, 20*time.Minute, cfg.Client.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	// generation_timeout should be a duration string; make it invalid.
	jsonBody := `{
		"jncep": { "generation_timeout": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"server": { "address": "127.0.0.1:8000" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.Address)
	assert.Zero(t, cfg.Server.ReadTimeout)
	assert.Zero(t, cfg.Server.ShutdownTimeout)

	// Others remain zero
	assert.Equal(t, JNCEP{}, cfg.JNCEP)
	assert.Equal(t, API{}, cfg.API)
	assert.Equal(t, Client{}, cfg.Client)
}
