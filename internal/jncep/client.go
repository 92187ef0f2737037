// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jncep

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/jncep-web/internal/logger"
)

// tailLimit is how many trailing output lines are kept for error
// classification after a failed run.
const tailLimit = 40

// GenerateRequest describes one generator invocation.
type GenerateRequest struct {
	// NovelURL is the J-Novel Club series or reader URL to generate from.
	NovelURL string

	// Parts is the optional part specification forwarded verbatim to the
	// generator (e.g. "2", "1.5:3"). Empty means all available parts.
	Parts string

	// Workdir is the directory the generator writes .epub files into.
	// Created if it does not exist.
	Workdir string

	// Email and Password are the account credentials for the run. They are
	// handed to the child process through its environment, never through
	// argv.
	Email    string
	Password string
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(executor Executor) Option {
	return func(c *Client) {
		if executor != nil {
			c.exec = executor
		}
	}
}

// Client wraps jncep CLI interactions.
type Client struct {
	binary  string
	timeout time.Duration
	exec    Executor
	logger  *logger.Logger
}

// New constructs a generator client. binary is the executable name or path,
// timeout bounds a single Generate run (zero disables the bound).
func New(binary string, timeout time.Duration, log *logger.Logger, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("generator binary required")
	}

	client := &Client{
		binary:  binary,
		timeout: timeout,
		exec:    commandExecutor{},
		logger:  log,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Generate implements [Generator]. It runs one `jncep epub` invocation and
// waits for it to finish. Output lines are logged at debug level and the
// trailing lines are used to classify failures into the package's sentinel
// errors.
func (c *Client) Generate(ctx context.Context, request GenerateRequest) error {
	if request.Workdir == "" {
		return fmt.Errorf("%w: working directory required", ErrGeneration)
	}
	if err := os.MkdirAll(request.Workdir, 0o755); err != nil {
		return fmt.Errorf("%w: create working directory: %v", ErrGeneration, err)
	}

	runCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	args := []string{"epub", "--output", request.Workdir, "--byvolume"}
	if request.Parts != "" {
		args = append(args, "--parts", request.Parts)
	}
	args = append(args, request.NovelURL)

	env := []string{
		"JNCEP_EMAIL=" + request.Email,
		"JNCEP_PASSWORD=" + request.Password,
	}

	var tail []string
	err := c.exec.Run(runCtx, c.binary, args, env, func(line string) {
		if c.logger != nil {
			c.logger.Debug().Str("line", line).Msg("generator output")
		}
		tail = append(tail, line)
		if len(tail) > tailLimit {
			tail = tail[1:]
		}
	})
	if err != nil {
		return c.classify(runCtx, err, tail)
	}

	return nil
}

// Version implements [Generator]. It runs `jncep --version` and returns the
// first non-empty output line.
func (c *Client) Version(ctx context.Context) (string, error) {
	var version string
	err := c.exec.Run(ctx, c.binary, []string{"--version"}, nil, func(line string) {
		if version == "" {
			version = strings.TrimSpace(line)
		}
	})
	if err != nil {
		return "", fmt.Errorf("generator version: %w", err)
	}
	if version == "" {
		return "", errors.New("generator version: no output")
	}
	return version, nil
}

// classify inspects the run error and the trailing output to pick the most
// specific sentinel. The generator surfaces upstream HTTP failures in its
// traceback, so the status reason phrases are the most reliable markers.
func (c *Client) classify(ctx context.Context, runErr error, tail []string) error {
	if errors.Is(runErr, exec.ErrNotFound) {
		return fmt.Errorf("%w: binary %q not found in PATH", ErrGeneration, c.binary)
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: timed out after %s", ErrGeneration, c.timeout)
	}

	joined := strings.Join(tail, "\n")
	switch {
	case strings.Contains(joined, "Payment Required") || strings.Contains(joined, "402 Client Error"):
		return fmt.Errorf("%w: %s", ErrPaymentRequired, lastLine(tail))
	case strings.Contains(joined, "Unauthorized") || strings.Contains(joined, "401 Client Error"):
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, lastLine(tail))
	case strings.Contains(joined, "BadWebURLError"),
		strings.Contains(joined, "not a valid JNovel Club URL"),
		strings.Contains(joined, "Invalid URL"):
		return fmt.Errorf("%w: %s", ErrInvalidNovelURL, lastLine(tail))
	default:
		return fmt.Errorf("%w: %v: %s", ErrGeneration, runErr, lastLine(tail))
	}
}

// lastLine returns the last non-blank output line, or empty when there is
// none.
func lastLine(tail []string) string {
	for i := len(tail) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(tail[i]); line != "" {
			return line
		}
	}
	return ""
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args, env []string, onLine func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Env = append(os.Environ(), env...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	var wg sync.WaitGroup
	var scanErr error
	var once sync.Once

	// stdout and stderr are scanned concurrently; the callback contract is
	// one line at a time, so calls are serialized here.
	var lineMu sync.Mutex

	scan := func(r io.Reader) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if onLine != nil {
				lineMu.Lock()
				onLine(scanner.Text())
				lineMu.Unlock()
			}
		}
		if err := scanner.Err(); err != nil {
			once.Do(func() {
				scanErr = err
			})
		}
	}

	wg.Add(2)
	go scan(stdout)
	go scan(stderr)

	wg.Wait()
	if scanErr != nil {
		_ = cmd.Process.Kill()
		return fmt.Errorf("scan output: %w", scanErr)
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("wait command: %w", err)
	}
	return nil
}
