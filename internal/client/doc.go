// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the terminal UI and the download services into a single process
// lifecycle: the application runs the form/progress/result loop until the
// user leaves.
package client
