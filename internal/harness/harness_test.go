package harness

import (
	"context"
	"testing"
	"time"

	"github.com/HiroakiMikami/deep-coder/internal/config"
)

func TestNewWorkerBuildsPrefixFromReads(t *testing.T) {
	w := NewWorker(config.BucketSpec{Name: "b", Reads: []string{"list", "int"}, TargetSize: 1}, 2)
	prefix := prefixProgram(w.Bucket.Reads)
	if prefix.Len() != 2 {
		t.Fatalf("prefix.Len() = %d, want 2", prefix.Len())
	}
	if prefix.Statements[0].Function.String() != "read_list" {
		t.Errorf("prefix.Statements[0].Function = %v, want read_list", prefix.Statements[0].Function)
	}
	if prefix.Statements[1].Function.String() != "read_int" {
		t.Errorf("prefix.Statements[1].Function = %v, want read_int", prefix.Statements[1].Function)
	}
}

func TestRunFillsBucketToTargetSize(t *testing.T) {
	w := NewWorker(config.BucketSpec{Name: "small", Reads: []string{"list"}, TargetSize: 3}, 2)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Run(ctx, []*Worker{w}, 3, 20*time.Millisecond, 1, 1); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if w.Size() < 1 {
		t.Error("expected the worker to have accumulated at least one entry")
	}
	if w.Size() > 3 {
		t.Errorf("Size() = %d, should never exceed the target size 3", w.Size())
	}
}

func TestRunBoundsConcurrencyByMaxWorkers(t *testing.T) {
	// Three buckets but a concurrency limit of 1: Run must still fill every
	// bucket, just not all at once.
	workers := []*Worker{
		NewWorker(config.BucketSpec{Name: "a", Reads: []string{"int"}, TargetSize: 2}, 1),
		NewWorker(config.BucketSpec{Name: "b", Reads: []string{"int"}, TargetSize: 2}, 1),
		NewWorker(config.BucketSpec{Name: "c", Reads: []string{"int"}, TargetSize: 2}, 1),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Run(ctx, workers, 2, 20*time.Millisecond, 1, 1); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for _, w := range workers {
		if w.Size() < 1 {
			t.Errorf("bucket %s: expected at least one entry, got %d", w.Bucket.Name, w.Size())
		}
	}
}

func TestRunStopsOnStall(t *testing.T) {
	// An unreachable target (larger than the search space can plausibly
	// fill within one short interval) should still terminate once the
	// monitor observes no growth between samples.
	w := NewWorker(config.BucketSpec{Name: "tiny", Reads: []string{"int"}, TargetSize: 1000000}, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- Run(ctx, []*Worker{w}, 1000000, 10*time.Millisecond, 1, 1) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
	case <-time.After(4 * time.Second):
		t.Fatal("Run did not stop after the search space was exhausted / stalled")
	}
}
