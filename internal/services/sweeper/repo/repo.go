// Package repo provides postgres access for boost window hygiene
package repo

import (
	"context"

	"bazaar/internal/modkit/repokit"
	perr "bazaar/internal/platform/errors"
)

// lockKey scopes the advisory lock so only one sweeper runs at a time
const lockKey int64 = 0x62617a_73777065 // "baz swpe"

// Repo is the persistence surface for the sweeper
type Repo interface {
	// SweepExpired nulls boost windows that ended at least grace ago,
	// under a transaction scoped advisory lock. Returns rows cleared,
	// swept=false means another worker held the lock
	SweepExpired(ctx context.Context, graceSeconds int64) (cleared int64, swept bool, err error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// SweepExpired must run inside a transaction so the xact lock releases on commit
func (r *queries) SweepExpired(ctx context.Context, graceSeconds int64) (int64, bool, error) {
	var got bool
	if err := r.q.QueryRow(ctx, "select pg_try_advisory_xact_lock($1)", lockKey).Scan(&got); err != nil {
		return 0, false, perr.FromPostgresf(err, "sweep lock")
	}
	if !got {
		return 0, false, nil
	}

	const sql = `
update listings
set boost_starts_at = null, boost_expires_at = null
where boost_expires_at is not null
and boost_expires_at <= now() - make_interval(secs => $1)
`
	tag, err := r.q.Exec(ctx, sql, graceSeconds)
	if err != nil {
		return 0, true, perr.FromPostgresf(err, "sweep expired")
	}
	return tag.RowsAffected(), true, nil
}
