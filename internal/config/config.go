// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// jncep-web application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JNCEP holds the external EPUB generator contract: fallback
	// credentials, the output root, and invocation settings.
	JNCEP JNCEP `envPrefix:"JNCEP_"`

	// API holds the J-Novel Club labs API settings used by the
	// purchase-retry flow.
	API API `envPrefix:"API_"`

	// Log holds logging settings shared by both binaries.
	Log Log `envPrefix:"LOG_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Client holds settings used only by the terminal client binary.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// Address is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// ReadTimeout bounds reading the entire request, including the body.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// ReadHeaderTimeout bounds reading the request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// WriteTimeout bounds writing the response. Generous here: a download
	// response is produced only after a full generator run.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// IdleTimeout bounds how long keep-alive connections stay open.
	// Env: SERVER_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`

	// ShutdownTimeout is the budget for draining in-flight requests after
	// a termination signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// JNCEP describes the external EPUB generator and its inputs. The EMAIL,
// PASSWORD, and OUTPUT variable names are part of the public contract and
// are forwarded to the generator process as-is.
type JNCEP struct {
	// Email is the fallback J-Novel Club account email used when a request
	// does not carry its own credentials pair.
	// Env: JNCEP_EMAIL
	Email string `env:"EMAIL"`

	// Password is the fallback account password paired with Email.
	// Env: JNCEP_PASSWORD
	Password string `env:"PASSWORD"`

	// Output is the root directory under which per-request working
	// directories are created.
	// Env: JNCEP_OUTPUT
	Output string `env:"OUTPUT"`

	// Binary is the generator executable name or path.
	// Env: JNCEP_BINARY
	Binary string `env:"BINARY"`

	// GenerationTimeout is the upper bound on a single generator run.
	// Env: JNCEP_GENERATION_TIMEOUT
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT"`

	// PurchaseDelay is the fixed pause used by the purchase-retry branch,
	// both before resolving the volume and before redeeming coins.
	// Env: JNCEP_PURCHASE_DELAY
	PurchaseDelay time.Duration `env:"PURCHASE_DELAY"`
}

// API holds connection settings for the J-Novel Club labs API.
type API struct {
	// BaseURL is the labs API origin (e.g. "https://labs.j-novel.club").
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-call timeout for labs API requests.
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum emitted level ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is an optional path for a size-rotated log file. Empty disables
	// file output; entries then go to stdout only.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SweepInterval is how often the workspace janitor scans the output
	// root for leftovers.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`

	// Retention is how old a request directory must be before the janitor
	// removes it.
	// Env: WORKERS_RETENTION
	Retention time.Duration `env:"RETENTION"`
}

// Client holds settings for the terminal client binary.
type Client struct {
	// ServerAddress is the base URL of a running jncep-web server.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// OutputDir is the directory downloaded files are saved into.
	// Env: CLIENT_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`

	// RequestTimeout bounds one download request end to end. Generation on
	// the server side can take many minutes, so this is deliberately long.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// defaults returns the built-in configuration. It is merged in with the
// lowest priority: any field already set by the environment, flags, or the
// JSON file keeps its value.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			Address:           ":5000",
			ReadTimeout:       time.Minute,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      10 * time.Minute,
			IdleTimeout:       2 * time.Minute,
			ShutdownTimeout:   10 * time.Second,
		},
		JNCEP: JNCEP{
			Output:            "/output",
			Binary:            "jncep",
			GenerationTimeout: 15 * time.Minute,
			PurchaseDelay:     10 * time.Second,
		},
		API: API{
			BaseURL:        "https://labs.j-novel.club",
			RequestTimeout: 10 * time.Second,
		},
		Log: Log{
			Level: "debug",
		},
		Workers: Workers{
			SweepInterval: time.Hour,
			Retention:     24 * time.Hour,
		},
		Client: Client{
			ServerAddress:  "http://localhost:5000",
			OutputDir:      ".",
			RequestTimeout: 20 * time.Minute,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
