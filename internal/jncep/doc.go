// Package jncep mediates access to the jncep CLI used for EPUB generation.
//
// It normalizes command invocation, forwards account credentials through the
// child process environment instead of argv so they never show up in process
// listings, classifies generator failures into typed errors, and exposes a
// testable interface for the download flow.
//
// Prefer this package over ad-hoc exec.Command usage when interacting with
// the generator so credential handling and timeout behavior remain consistent.
package jncep
