// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/jncep-web/internal/config"
	"github.com/MKhiriev/jncep-web/internal/logger"
)

// Janitor периодически вычищает рабочие каталоги, оставшиеся после
// аварийных запусков.
//
// The download flow removes its per-client subtree as soon as the payload is
// buffered, so under normal operation the output root stays empty. A crash or
// a kill between generation and cleanup leaves the subtree behind; the
// janitor sweeps the root on a timer and removes request directories older
// than the retention window, then drops client directories that became empty.
type Janitor struct {
	outputRoot    string
	sweepInterval time.Duration
	retention     time.Duration

	logger *logger.Logger
}

func NewJanitor(outputRoot string, cfg config.Workers, logger *logger.Logger) *Janitor {
	return &Janitor{
		outputRoot:    outputRoot,
		sweepInterval: cfg.SweepInterval,
		retention:     cfg.Retention,
		logger:        logger,
	}
}

// Run implements [Worker]. It sweeps once at startup, catching leftovers from
// a previous crashed process, then keeps sweeping on the configured interval
// until ctx is cancelled.
func (j *Janitor) Run(ctx context.Context) {
	j.logger.Info().
		Str("output_root", j.outputRoot).
		Dur("sweep_interval", j.sweepInterval).
		Dur("retention", j.retention).
		Msg("workspace janitor started")

	j.sweep(time.Now())

	ticker := time.NewTicker(j.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("workspace janitor stopped")
			return
		case now := <-ticker.C:
			j.sweep(now)
		}
	}
}

// sweep removes expired request directories and empty client directories.
// Age is judged by modification time, not by directory name, so renamed or
// foreign leftovers are collected as well.
func (j *Janitor) sweep(now time.Time) {
	clients, err := os.ReadDir(j.outputRoot)
	if err != nil {
		if !os.IsNotExist(err) {
			j.logger.Warn().Err(err).Str("dir", j.outputRoot).Msg("janitor failed to read output root")
		}
		return
	}

	removed := 0
	for _, client := range clients {
		if !client.IsDir() {
			continue
		}

		clientDir := filepath.Join(j.outputRoot, client.Name())
		removed += j.sweepClientDir(clientDir, now)

		// A client directory left empty has no reason to stay.
		if remaining, readErr := os.ReadDir(clientDir); readErr == nil && len(remaining) == 0 {
			if rmErr := os.Remove(clientDir); rmErr != nil {
				j.logger.Warn().Err(rmErr).Str("dir", clientDir).Msg("janitor failed to remove empty client directory")
			}
		}
	}

	if removed > 0 {
		j.logger.Info().Int("removed", removed).Msg("janitor removed expired request directories")
	}
}

func (j *Janitor) sweepClientDir(clientDir string, now time.Time) int {
	requests, err := os.ReadDir(clientDir)
	if err != nil {
		j.logger.Warn().Err(err).Str("dir", clientDir).Msg("janitor failed to read client directory")
		return 0
	}

	removed := 0
	for _, request := range requests {
		info, err := request.Info()
		if err != nil {
			continue
		}

		if now.Sub(info.ModTime()) <= j.retention {
			continue
		}

		requestDir := filepath.Join(clientDir, request.Name())
		if err := os.RemoveAll(requestDir); err != nil {
			j.logger.Warn().Err(err).Str("dir", requestDir).Msg("janitor failed to remove request directory")
			continue
		}

		j.logger.Debug().Str("dir", requestDir).Msg("janitor removed expired request directory")
		removed++
	}

	return removed
}
