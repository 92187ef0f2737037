// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jncep

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/generator_mock.go -package=mock

// Generator defines the behaviour required by the download flow.
// Implementations are responsible for invoking the EPUB generator and
// mapping its failures to the sentinel values defined in this package.
type Generator interface {
	// Generate runs the generator once and leaves the produced .epub files
	// in request.Workdir. A nil return means the run exited cleanly; it does
	// not guarantee any files were produced.
	Generate(ctx context.Context, request GenerateRequest) error

	// Version reports the generator's version string, mainly for startup
	// diagnostics.
	Version(ctx context.Context) (string, error)
}

// Executor abstracts command execution for testability. The env slice is
// appended to the parent environment of the child process. onLine receives
// one output line at a time and is never called concurrently.
type Executor interface {
	Run(ctx context.Context, binary string, args, env []string, onLine func(string)) error
}
