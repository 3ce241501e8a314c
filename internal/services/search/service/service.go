// Package service contains the ranked pager workflow
package service

import (
	"context"
	"time"

	"bazaar/internal/modkit/repokit"
	"bazaar/internal/services/search/domain"
	"bazaar/internal/services/search/repo"
)

// countBudget caps the auxiliary count queries so a slow planner never
// stalls a page fetch for long
const countBudget = 2 * time.Second

// Service defines the search service contract
type Service interface {
	domain.ServicePort
}

// Options tune totals accounting
type Options struct {
	// ExactTotal switches the overall total between count(*) and the
	// planner estimate. The boosted subset count stays exact either way
	ExactTotal bool
}

// Svc implements the ranked pager
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	opts   Options
}

// New constructs a search service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts Options) *Svc {
	if db == nil {
		panic("search.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("search.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, opts: opts}
}

// Search returns the requested window over the global ranked order,
// boosted partition first, then regular in the requested sort.
// Stateless per call, query failures propagate with no retries
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.Page, error) {
	sc := in.Scope()
	page, size := in.Window()
	offset := (page - 1) * size

	boosted, err := s.countBoosted(ctx, sc)
	if err != nil {
		return domain.Page{}, err
	}

	if sc.PromotedOnly {
		return s.promotedOnly(ctx, sc, page, size, offset, boosted)
	}

	total, err := s.countMatching(ctx, sc)
	if err != nil {
		return domain.Page{}, err
	}

	items, err := s.window(ctx, sc, size, offset, int(boosted))
	if err != nil {
		return domain.Page{}, err
	}

	return domain.Page{
		Items:   items,
		Total:   int(total),
		HasMore: s.hasMore(offset, len(items), size, int(total)),
		Page:    page,
		Size:    size,
	}, nil
}

// window partitions [offset, offset+size) against the boosted count.
// The two partitions are disjoint by construction, so a single page can
// never contain the same listing twice
func (s *Svc) window(ctx context.Context, sc domain.Scope, size, offset, boosted int) ([]domain.Listing, error) {
	switch {
	case offset+size <= boosted:
		// page lies entirely inside the boosted partition
		return s.Repo.BoostedWindow(ctx, sc, size, offset)

	case offset >= boosted:
		// page lies entirely past the boosted partition
		return s.Repo.RegularWindow(ctx, sc, size, offset-boosted)

	default:
		// page straddles the boundary, the only two query case
		head, err := s.Repo.BoostedWindow(ctx, sc, boosted-offset, offset)
		if err != nil {
			return nil, err
		}
		tail, err := s.Repo.RegularWindow(ctx, sc, size-len(head), 0)
		if err != nil {
			return nil, err
		}
		return append(head, tail...), nil
	}
}

// promotedOnly serves the boosted partition exclusively.
// An empty partition short circuits with no regular set query
func (s *Svc) promotedOnly(
	ctx context.Context,
	sc domain.Scope,
	page, size, offset int,
	boosted int64,
) (domain.Page, error) {
	out := domain.Page{Items: []domain.Listing{}, Total: int(boosted), Page: page, Size: size}
	if boosted == 0 || offset >= int(boosted) {
		return out, nil
	}
	items, err := s.Repo.BoostedWindow(ctx, sc, size, offset)
	if err != nil {
		return domain.Page{}, err
	}
	out.Items = items
	out.HasMore = offset+len(items) < int(boosted)
	return out, nil
}

// hasMore is exact when total is exact, otherwise a full page implies more
func (s *Svc) hasMore(offset, got, size, total int) bool {
	if s.opts.ExactTotal {
		return offset+got < total
	}
	return got == size
}

func (s *Svc) countBoosted(ctx context.Context, sc domain.Scope) (int64, error) {
	cctx, cancel := context.WithTimeout(ctx, countBudget)
	defer cancel()
	return s.Repo.CountBoosted(cctx, sc)
}

func (s *Svc) countMatching(ctx context.Context, sc domain.Scope) (int64, error) {
	cctx, cancel := context.WithTimeout(ctx, countBudget)
	defer cancel()
	return s.Repo.CountMatching(cctx, sc, s.opts.ExactTotal)
}
