package pg

import (
	"context"
	stderrs "errors"
	"testing"

	kit "bazaar/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestOpenRejectsBadURL(t *testing.T) {
	_, err := Open(context.Background(), Config{URL: "not a dsn"}, nil, nil)
	if err == nil {
		t.Fatal("bad DSN must fail to parse")
	}
}

func TestOpenAppliesConfigAndMutator(t *testing.T) {
	kit.Serial(t)

	var got *pgxpool.Config
	kit.Swap(t, &newPool, func(_ context.Context, cfg *pgxpool.Config) (*pgxpool.Pool, error) {
		got = cfg
		return nil, stderrs.New("stop before dialing")
	})

	mutated := false
	_, err := Open(context.Background(),
		Config{URL: "postgres://u:p@localhost:5432/db?sslmode=disable", MaxConns: 7, SlowMs: 250},
		nil,
		func(pc *pgxpool.Config) { mutated = true },
	)
	if err == nil || err.Error() != "stop before dialing" {
		t.Fatalf("pool error should propagate, got %v", err)
	}
	if got == nil || got.MaxConns != 7 {
		t.Fatalf("MaxConns not applied: %+v", got)
	}
	if !mutated {
		t.Fatal("pool config mutator not invoked")
	}
}

func TestCloseOnNilIsSafe(t *testing.T) {
	var p *PG
	p.Close()
	(&PG{}).Close()
}

func TestCompactCollapsesWhitespace(t *testing.T) {
	in := "select 1\n\tfrom listings\r\n  where visible"
	if got := compact(in); got != "select 1 from listings where visible" {
		t.Fatalf("compact = %q", got)
	}
}
