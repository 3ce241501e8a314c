// Package service batches search impressions into clickhouse
package service

import (
	"context"
	"sync"
	"time"

	"bazaar/internal/platform/logger"
	"bazaar/internal/platform/store"
)

const table = "search_impressions"

var cols = []string{"ts", "scope_key", "page", "listing_id"}

// Options tune batching
type Options struct {
	BatchSize  int           // rows per insert, default 512
	FlushEvery time.Duration // max row age before a forced flush, default 5s
}

// Sink buffers impression rows and writes them in batches.
// Record never blocks the request path and never surfaces errors to it
type Sink struct {
	ch  store.Clickhouse
	log *logger.Logger

	mu  sync.Mutex
	buf [][]any

	batch int
	every time.Duration

	wake chan struct{}
	done chan struct{}
}

// New constructs a sink over the clickhouse seam
func New(ch store.Clickhouse, opts Options) *Sink {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 512
	}
	if opts.FlushEvery <= 0 {
		opts.FlushEvery = 5 * time.Second
	}
	return &Sink{
		ch:    ch,
		log:   logger.Named("impressions"),
		batch: opts.BatchSize,
		every: opts.FlushEvery,
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Record enqueues one impression row per served listing
func (s *Sink) Record(_ context.Context, scopeKey string, page int, ids []string) {
	if s == nil || len(ids) == 0 {
		return
	}
	now := time.Now().UTC()

	s.mu.Lock()
	for _, id := range ids {
		s.buf = append(s.buf, []any{now, scopeKey, int32(page), id})
	}
	full := len(s.buf) >= s.batch
	s.mu.Unlock()

	if full {
		select {
		case s.wake <- struct{}{}:
		default:
		}
	}
}

// Run flushes on batch pressure and on a timer until ctx is done,
// then drains what is left
func (s *Sink) Run(ctx context.Context) error {
	tick := time.NewTicker(s.every)
	defer tick.Stop()
	defer close(s.done)

	for {
		select {
		case <-ctx.Done():
			s.flush(context.WithoutCancel(ctx))
			return ctx.Err()
		case <-s.wake:
			s.flush(ctx)
		case <-tick.C:
			s.flush(ctx)
		}
	}
}

// Wait blocks until Run has drained and returned
func (s *Sink) Wait() { <-s.done }

func (s *Sink) flush(ctx context.Context) {
	s.mu.Lock()
	rows := s.buf
	s.buf = nil
	s.mu.Unlock()

	if len(rows) == 0 {
		return
	}
	if err := s.ch.Insert(ctx, table, cols, rows); err != nil {
		// impressions are best effort, log and drop the batch
		s.log.Warn().Err(err).Int("rows", len(rows)).Msg("impression flush failed")
	}
}
