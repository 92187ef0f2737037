// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The built-in defaults cover every required field, so validation only fails
// when a source explicitly supplies a broken value or the defaults layer is
// left out of the builder chain.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Address == "" || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.JNCEP.Output == "" || cfg.JNCEP.Binary == "" || cfg.JNCEP.GenerationTimeout <= 0 {
		return ErrInvalidGeneratorConfigs
	}

	if cfg.API.BaseURL == "" || cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Workers.SweepInterval <= 0 || cfg.Workers.Retention <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Files.OutputDir == "" {
		return ErrInvalidFilesConfigs
	}

	return nil
}
