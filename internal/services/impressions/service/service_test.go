package service

import (
	"context"
	"sync"
	"testing"
	"time"

	perr "bazaar/internal/platform/errors"
	"bazaar/internal/platform/store"
)

// fakeCH records inserted batches
type fakeCH struct {
	mu      sync.Mutex
	batches [][][]any
	fail    bool
}

func (f *fakeCH) Insert(_ context.Context, table string, cols []string, rows [][]any) error {
	if f.fail {
		return perr.Unavailablef("ch down")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, rows)
	return nil
}

func (f *fakeCH) Query(context.Context, string, ...any) (store.Rows, error) {
	panic("unexpected Query")
}

func (f *fakeCH) Close() error { return nil }

func (f *fakeCH) rows() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, b := range f.batches {
		n += len(b)
	}
	return n
}

func TestSinkFlushesOnBatchPressure(t *testing.T) {
	ch := &fakeCH{}
	s := New(ch, Options{BatchSize: 4, FlushEvery: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = s.Run(ctx) }()

	s.Record(context.Background(), "cat=lamps", 1, []string{"a", "b"})
	s.Record(context.Background(), "cat=lamps", 2, []string{"c", "d"})

	deadline := time.Now().Add(2 * time.Second)
	for ch.rows() < 4 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if got := ch.rows(); got != 4 {
		t.Fatalf("flushed rows = %d, want 4", got)
	}

	cancel()
	s.Wait()
}

func TestSinkDrainsOnShutdown(t *testing.T) {
	ch := &fakeCH{}
	s := New(ch, Options{BatchSize: 100, FlushEvery: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() { _ = s.Run(ctx); close(done) }()

	s.Record(context.Background(), "cat=rugs", 1, []string{"a", "b", "c"})
	cancel()
	<-done

	if got := ch.rows(); got != 3 {
		t.Fatalf("drained rows = %d, want 3", got)
	}
}

func TestSinkDropsBatchOnInsertFailure(t *testing.T) {
	ch := &fakeCH{fail: true}
	s := New(ch, Options{BatchSize: 1, FlushEvery: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() { _ = s.Run(ctx); close(done) }()

	// must not panic or wedge when the backend is down
	s.Record(context.Background(), "cat=rugs", 1, []string{"a"})
	time.Sleep(20 * time.Millisecond)
	cancel()
	<-done
}

func TestNilRecipientsAreSafe(t *testing.T) {
	var s *Sink
	s.Record(context.Background(), "cat=lamps", 1, []string{"a"}) // nil sink is a no op

	s2 := New(&fakeCH{}, Options{})
	s2.Record(context.Background(), "cat=lamps", 1, nil) // empty page records nothing
}
