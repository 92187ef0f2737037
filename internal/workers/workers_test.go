// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/jncep-web/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface that blocks
// until its context is cancelled and tracks start/finish transitions.
type mockWorker struct {
	started  atomic.Int32
	finished atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.started.Add(1)
	<-ctx.Done()
	m.finished.Add(1)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal("condition not met in time")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestWorkers_Run_StartsAllWorkers(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(logger.Nop(), w1, w2, w3)
	ws.Run(context.Background())
	defer ws.Stop()

	waitFor(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1 && w3.started.Load() == 1
	})
}

func TestWorkers_Stop_WaitsForAllWorkers(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}

	ws := NewWorkers(logger.Nop(), w1, w2)
	ws.Run(context.Background())

	waitFor(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1
	})

	ws.Stop()

	// Stop returns only after every Run has exited.
	assert.Equal(t, int32(1), w1.finished.Load())
	assert.Equal(t, int32(1), w2.finished.Load())
}

func TestWorkers_ParentContextCancelStopsWorkers(t *testing.T) {
	w := &mockWorker{}

	ctx, cancel := context.WithCancel(context.Background())
	ws := NewWorkers(logger.Nop(), w)
	ws.Run(ctx)

	waitFor(t, func() bool { return w.started.Load() == 1 })

	cancel()

	waitFor(t, func() bool { return w.finished.Load() == 1 })

	// Stop after an external cancellation is still a clean no-op.
	ws.Stop()
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers(logger.Nop())

	// Should not panic without any workers.
	ws.Run(context.Background())
	ws.Stop()
}

func TestWorkers_Stop_WithoutRun(t *testing.T) {
	ws := NewWorkers(logger.Nop(), &mockWorker{})

	require.NotPanics(t, func() {
		ws.Stop()
	})
}

func TestWorkers_Stop_Twice(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(logger.Nop(), w)
	ws.Run(context.Background())

	waitFor(t, func() bool { return w.started.Load() == 1 })

	ws.Stop()
	require.NotPanics(t, func() {
		ws.Stop()
	})

	assert.Equal(t, int32(1), w.finished.Load())
}
