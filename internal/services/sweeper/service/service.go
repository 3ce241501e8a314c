// Package service runs the periodic boost expiry sweep
package service

import (
	"context"
	"time"

	"bazaar/internal/modkit/repokit"
	"bazaar/internal/platform/logger"
	"bazaar/internal/services/sweeper/repo"
)

// Config controls cadence and retention grace
type Config struct {
	// Every is the sweep interval, default 5m
	Every time.Duration
	// Grace keeps just-expired windows untouched for this long so the
	// ranked queries, which check expiry themselves, stay authoritative
	Grace time.Duration
}

// Service clears expired boost windows on a timer.
// Hygiene only, correctness never depends on a sweep having run
type Service struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	cfg    Config
	log    *logger.Logger
}

// New constructs the sweeper service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config) *Service {
	if db == nil {
		panic("sweeper.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("sweeper.Service requires a non nil Repo binder")
	}
	if cfg.Every <= 0 {
		cfg.Every = 5 * time.Minute
	}
	if cfg.Grace <= 0 {
		cfg.Grace = time.Hour
	}
	return &Service{db: db, binder: binder, cfg: cfg, log: logger.Named("sweeper")}
}

// Run sweeps once immediately, then on every tick until ctx is done
func (s *Service) Run(ctx context.Context) error {
	s.sweep(ctx)

	tick := time.NewTicker(s.cfg.Every)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			s.sweep(ctx)
		}
	}
}

// SweepOnce runs a single sweep, exposed for the cli and tests
func (s *Service) SweepOnce(ctx context.Context) (int64, bool, error) {
	var cleared int64
	var swept bool
	err := repokit.WithTx(ctx, s.db, s.binder, func(r repo.Repo) error {
		var err error
		cleared, swept, err = r.SweepExpired(ctx, int64(s.cfg.Grace/time.Second))
		return err
	})
	return cleared, swept, err
}

func (s *Service) sweep(ctx context.Context) {
	cleared, swept, err := s.SweepOnce(ctx)
	switch {
	case err != nil:
		s.log.Error().Err(err).Msg("sweep failed")
	case !swept:
		s.log.Debug().Msg("sweep skipped, lock held elsewhere")
	case cleared > 0:
		s.log.Info().Int64("cleared", cleared).Msg("expired boost windows cleared")
	}
}
