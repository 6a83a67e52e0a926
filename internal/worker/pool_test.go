package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_RunsAllTasks(t *testing.T) {
	p := NewPool(3, 8)
	results := p.Run(context.Background())

	var ran atomic.Int32
	for i := 0; i < 8; i++ {
		p.Submit(func(ctx context.Context) error {
			ran.Add(1)
			return nil
		})
	}
	p.Close()

	count := 0
	for r := range results {
		if r.Err != nil {
			t.Fatalf("unexpected task error: %v", r.Err)
		}
		count++
	}
	if count != 8 {
		t.Fatalf("expected 8 results, got %d", count)
	}
	if ran.Load() != 8 {
		t.Fatalf("expected 8 tasks run, got %d", ran.Load())
	}
}

func TestPool_ReportsTaskErrors(t *testing.T) {
	p := NewPool(1, 2)
	results := p.Run(context.Background())

	boom := errors.New("boom")
	p.Submit(func(ctx context.Context) error { return boom })
	p.Submit(func(ctx context.Context) error { return nil })
	p.Close()

	var errs int
	for r := range results {
		if r.Err != nil {
			errs++
		}
	}
	if errs != 1 {
		t.Fatalf("expected 1 error result, got %d", errs)
	}
}

func TestPool_ContextCancelStopsWorkers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPool(2, 0)
	results := p.Run(ctx)

	cancel()

	select {
	case _, open := <-results:
		if open {
			t.Fatal("expected closed results channel after cancel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("results channel did not close after cancel")
	}
}
