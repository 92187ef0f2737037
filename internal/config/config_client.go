package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerAddress is the base URL of the jncep-web server the client
	// talks to (e.g. "http://localhost:5000").
	ServerAddress string
	// RequestTimeout is the end-to-end timeout for one download request.
	RequestTimeout time.Duration
}

// ClientFiles holds file-system settings used by the client.
type ClientFiles struct {
	// OutputDir is the directory downloaded files are saved into.
	OutputDir string
}

// ClientLog holds client logging settings.
type ClientLog struct {
	// Level is the minimum emitted log level.
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Files contains download directory settings.
	Files ClientFiles
	// Log contains client logging settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerAddress:  cfg.Client.ServerAddress,
			RequestTimeout: cfg.Client.RequestTimeout,
		},
		Files: ClientFiles{
			OutputDir: cfg.Client.OutputDir,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
		},
	}

	return clientCfg, clientCfg.validate()
}
