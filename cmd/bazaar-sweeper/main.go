package main

import (
	"context"
	"os/signal"
	"syscall"

	"bazaar/internal/platform/config"
	"bazaar/internal/platform/logger"
	"bazaar/internal/platform/store"

	"bazaar/internal/modkit"
	sweepmod "bazaar/internal/services/sweeper/module"
)

func main() {
	root := config.New()
	wrkCfg := root.Prefix("CORE_SWEEPER_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "bazaar-sweeper",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 2)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	mod := sweepmod.New(modkit.Deps{Log: *l, Cfg: wrkCfg, PG: st.PG})

	if err := mod.Service().Run(ctx); err != nil && ctx.Err() == nil {
		l.Panic().Err(err).Msg("sweeper stopped")
	}
}
