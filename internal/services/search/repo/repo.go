// Package repo provides postgres access for ranked listing search
package repo

import (
	"context"
	"encoding/json"
	"strconv"

	"bazaar/internal/modkit/repokit"
	perr "bazaar/internal/platform/errors"
	"bazaar/internal/services/search/domain"
)

// Repo is the catalog query surface the ranked pager runs on.
// Boosted and regular windows are mutually exclusive partitions of the
// same matching predicate, CountBoosted is always exact
type Repo interface {
	CountMatching(ctx context.Context, sc domain.Scope, exact bool) (int64, error)
	CountBoosted(ctx context.Context, sc domain.Scope) (int64, error)
	BoostedWindow(ctx context.Context, sc domain.Scope, limit, offset int) ([]domain.Listing, error)
	RegularWindow(ctx context.Context, sc domain.Scope, limit, offset int) ([]domain.Listing, error)
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

const listingCols = `id::text, title, description, price_cents, rating, sale_pct,
coalesce(city, ''), category_path, ` + boostActive + ` as boosted, boost_expires_at, created_at`

// CountMatching counts listings in scope regardless of boost state.
// exact runs count(*), otherwise the planner row estimate is used, which
// is an accepted imprecision for the result total only
func (r *queries) CountMatching(ctx context.Context, sc domain.Scope, exact bool) (int64, error) {
	p := scopeWhere(sc)
	if exact {
		var n int64
		err := r.q.QueryRow(ctx, "select count(*) from listings where "+p.where(), p.args...).Scan(&n)
		if err != nil {
			return 0, perr.FromPostgresf(err, "count matching")
		}
		return n, nil
	}
	return r.plannedCount(ctx, "select 1 from listings where "+p.where(), p.args...)
}

// plannedCount parses the row estimate out of explain json
func (r *queries) plannedCount(ctx context.Context, sql string, args ...any) (int64, error) {
	var raw []byte
	err := r.q.QueryRow(ctx, "explain (format json) "+sql, args...).Scan(&raw)
	if err != nil {
		return 0, perr.FromPostgresf(err, "planned count")
	}
	var plans []struct {
		Plan struct {
			PlanRows float64 `json:"Plan Rows"`
		} `json:"Plan"`
	}
	if err := json.Unmarshal(raw, &plans); err != nil || len(plans) == 0 {
		return 0, perr.DBf("planned count: unreadable plan")
	}
	return int64(plans[0].Plan.PlanRows), nil
}

// CountBoosted counts the boosted subset, always exact.
// Partition boundary arithmetic depends on this number
func (r *queries) CountBoosted(ctx context.Context, sc domain.Scope) (int64, error) {
	p := scopeWhere(sc)
	var n int64
	err := r.q.QueryRow(ctx,
		"select count(*) from listings where "+p.where()+" and "+boostActive,
		p.args...,
	).Scan(&n)
	if err != nil {
		return 0, perr.FromPostgresf(err, "count boosted")
	}
	return n, nil
}

// BoostedWindow pages the boosted partition, longest remaining boost first
func (r *queries) BoostedWindow(ctx context.Context, sc domain.Scope, limit, offset int) ([]domain.Listing, error) {
	p := scopeWhere(sc)
	sql := "select " + listingCols + " from listings where " + p.where() +
		" and " + boostActive +
		" order by boost_expires_at desc, id asc"
	return r.window(ctx, sql, p.args, limit, offset)
}

// RegularWindow pages the non boosted partition in the requested sort order
func (r *queries) RegularWindow(ctx context.Context, sc domain.Scope, limit, offset int) ([]domain.Listing, error) {
	p := scopeWhere(sc)
	sql := "select " + listingCols + " from listings where " + p.where() +
		" and not " + boostActive +
		" order by " + orderBy(sc.Sort)
	return r.window(ctx, sql, p.args, limit, offset)
}

func (r *queries) window(ctx context.Context, sql string, args []any, limit, offset int) ([]domain.Listing, error) {
	n := len(args)
	sql += " limit $" + strconv.Itoa(n+1) + " offset $" + strconv.Itoa(n+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.FromPostgresf(err, "listing window")
	}
	defer rows.Close()

	var out []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(
			&l.ID, &l.Title, &l.Description, &l.PriceCents, &l.Rating, &l.SalePct,
			&l.City, &l.CategoryPath, &l.Boosted, &l.BoostExpiresAt, &l.CreatedAt,
		); err != nil {
			return nil, perr.FromPostgresf(err, "listing scan")
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgresf(err, "listing window")
	}
	return out, nil
}
