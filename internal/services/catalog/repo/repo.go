// Package repo provides postgres access for the catalog
package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bazaar/internal/modkit/repokit"
	perr "bazaar/internal/platform/errors"
	"bazaar/internal/services/catalog/domain"
)

// Repo is the minimal persistence surface for the catalog
type Repo interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	ListingByID(ctx context.Context, id uuid.UUID) (domain.Listing, error)
	AttrVocabFor(ctx context.Context, category string) (domain.AttrVocab, error)
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

func (r *queries) Categories(ctx context.Context) ([]domain.Category, error) {
	const sql = `
select id, coalesce(parent_id, ''), name, path
from categories
order by path asc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgresf(err, "categories")
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.ParentID, &c.Name, &c.Path); err != nil {
			return nil, perr.FromPostgresf(err, "category scan")
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *queries) ListingByID(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	const sql = `
select id::text, title, description, price_cents, rating, sale_pct, coalesce(city, ''),
attrs, category_path, boost_starts_at, boost_expires_at, visible, created_at
from listings
where id = $1
`
	var l domain.Listing
	err := r.q.QueryRow(ctx, sql, id).Scan(
		&l.ID, &l.Title, &l.Description, &l.PriceCents, &l.Rating, &l.SalePct, &l.City,
		&l.Attrs, &l.CategoryPath, &l.BoostStartsAt, &l.BoostExpiresAt, &l.Visible, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Listing{}, perr.NotFoundf("listing %s not found", id)
		}
		return domain.Listing{}, perr.FromPostgresf(err, "listing %s", id)
	}
	return l, nil
}

func (r *queries) AttrVocabFor(ctx context.Context, category string) (domain.AttrVocab, error) {
	// distinct observed key value pairs within the category subtree
	const sql = `
select kv.key, kv.value
from listings, jsonb_each_text(attrs) as kv
where visible and $1 = any(category_path)
group by kv.key, kv.value
order by kv.key, kv.value
`
	rows, err := r.q.Query(ctx, sql, category)
	if err != nil {
		return nil, perr.FromPostgresf(err, "attr vocab")
	}
	defer rows.Close()

	vocab := domain.AttrVocab{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, perr.FromPostgresf(err, "attr vocab scan")
		}
		vocab[k] = append(vocab[k], v)
	}
	return vocab, rows.Err()
}
