// Package server wires and runs the application's HTTP transport.
//
// It owns the server lifecycle: startup, background worker supervision,
// termination signal handling, and graceful shutdown with a configurable
// drain budget.
package server
