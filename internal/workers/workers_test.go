// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called and blocks until ctx is done.
type mockWorker struct {
	runCount atomic.Int32
	stopped  atomic.Bool
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
	m.stopped.Store(true)
}

func runUntilCancelled(t *testing.T, ws *Workers) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Workers.Run did not return after cancel")
	}
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	runUntilCancelled(t, NewWorkers(w1, w2, w3))

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
		if !w.stopped.Load() {
			t.Errorf("worker[%d]: Run returned before worker stopped", i)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not block or panic on empty workers list
	runUntilCancelled(t, NewWorkers())
}

func TestWorkers_Run_Nil(t *testing.T) {
	// Should not panic when workers field is nil
	runUntilCancelled(t, &Workers{})
}

func TestWorkers_Run_Concurrent(t *testing.T) {
	started := make(chan struct{}, 2)
	blocking := func() Worker {
		return workerFunc(func(ctx context.Context) {
			started <- struct{}{}
			<-ctx.Done()
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go NewWorkers(blocking(), blocking()).Run(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatalf("worker %d did not start while the other was running", i)
		}
	}
}

// workerFunc adapts a function to the Worker interface.
type workerFunc func(ctx context.Context)

func (f workerFunc) Run(ctx context.Context) { f(ctx) }
