package feed

import (
	"context"
	"sync"
	"time"

	"bazaar/internal/platform/logger"
	"bazaar/internal/services/search/domain"
)

// Options tune one controller instance
type Options struct {
	// PageSize is the window size requested per fetch, default 24
	PageSize int
	// Timeout is the soft per fetch budget, default 10s
	Timeout time.Duration
	// Debounce coalesces SetScope bursts, 0 fetches immediately
	Debounce time.Duration
}

// Controller orchestrates scope changes into a minimal set of fetches.
// All state is private to the instance and guarded by one mutex, at most
// one fetch is in flight at any time
type Controller struct {
	mu  sync.Mutex
	tr  Transport
	opt Options
	log *logger.Logger

	cache *scopeCache
	scope domain.Scope
	key   string
	phase Phase
	err   error

	// gen marks the fetch allowed to resolve into visible state.
	// Compared at resolution time, a stale result is dropped silently
	gen    uint64
	cancel context.CancelFunc
	deb    *time.Timer
}

// NewController builds a controller over the given transport
func NewController(tr Transport, opt Options) *Controller {
	if tr == nil {
		panic("feed.Controller requires a non nil Transport")
	}
	if opt.PageSize <= 0 {
		opt.PageSize = domain.DefaultPageSize
	}
	if opt.Timeout <= 0 {
		opt.Timeout = 10 * time.Second
	}
	return &Controller{
		tr:    tr,
		opt:   opt,
		log:   logger.Named("feed"),
		cache: newScopeCache(),
		phase: PhaseIdle,
	}
}

// SetScope switches the active scope. A cached non empty entry is shown
// synchronously with no fetch, a miss fetches page 1. Any in flight
// fetch is superseded first, last write wins
func (c *Controller) SetScope(sc domain.Scope) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.supersedeLocked()
	c.scope = sc
	c.key = sc.Key()
	c.err = nil

	if e, ok := c.cache.get(c.key); ok && len(e.items) > 0 {
		c.phase = PhaseSuccess
		return
	}

	if c.opt.Debounce <= 0 {
		c.beginFetchLocked(1, false)
		return
	}

	c.phase = PhaseIdle
	myGen := c.gen
	c.deb = time.AfterFunc(c.opt.Debounce, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.gen != myGen {
			return // a newer scope change won
		}
		c.beginFetchLocked(1, false)
	})
}

// LoadNextPage fetches the page after the last merged one.
// Dropped while a fetch is in flight, after an error, or when the
// active entry has no more pages
func (c *Controller) LoadNextPage() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseFetching || c.phase == PhaseError {
		return
	}
	e, ok := c.cache.get(c.key)
	if !ok || !e.hasMore {
		return
	}
	c.beginFetchLocked(e.page+1, true)
}

// Retry discards the active cache entry and refetches page 1.
// The only transition out of PhaseError
func (c *Controller) Retry() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.supersedeLocked()
	c.cache.invalidate(c.key)
	c.err = nil
	c.beginFetchLocked(1, false)
}

// Filters is the mutable part of a scope for SetFilters.
// Sort empty keeps the current sort
type Filters struct {
	Attrs        map[string]string
	MinPrice     *int64
	MaxPrice     *int64
	MinRating    *float64
	City         string
	Nearby       bool
	Sort         domain.SortKey
	PromotedOnly bool
}

// SetFilters recomputes the scope keeping category and query, then
// delegates to SetScope
func (c *Controller) SetFilters(f Filters) {
	c.mu.Lock()
	sc := c.scope
	c.mu.Unlock()

	sc.Attrs = f.Attrs
	sc.MinPrice = f.MinPrice
	sc.MaxPrice = f.MaxPrice
	sc.MinRating = f.MinRating
	sc.City = f.City
	sc.Nearby = f.Nearby
	sc.PromotedOnly = f.PromotedOnly
	if f.Sort != "" {
		sc.Sort = f.Sort
	}
	c.SetScope(sc)
}

// ClearFilters drops every filter keeping category, query, and sort
func (c *Controller) ClearFilters() {
	c.mu.Lock()
	sc := domain.Scope{Category: c.scope.Category, Query: c.scope.Query, Sort: c.scope.Sort}
	c.mu.Unlock()
	c.SetScope(sc)
}

// Snapshot returns the visible state, items are copied
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := Snapshot{Phase: c.phase, Err: c.err, Scope: c.scope}
	if e, ok := c.cache.get(c.key); ok {
		out.Items = append([]domain.Listing(nil), e.items...)
		out.Total = e.total
		out.HasMore = e.hasMore
	}
	return out
}

// Close cancels any in flight fetch and pending debounce
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.supersedeLocked()
	c.phase = PhaseIdle
}

// supersedeLocked invalidates the in flight fetch and pending debounce.
// Bumping gen makes any late resolution a silent no op
func (c *Controller) supersedeLocked() {
	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.deb != nil {
		c.deb.Stop()
		c.deb = nil
	}
}

// beginFetchLocked enters PhaseFetching and launches the fetch goroutine
func (c *Controller) beginFetchLocked(page int, appendMode bool) {
	c.gen++
	if c.cancel != nil {
		c.cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.opt.Timeout)
	c.cancel = cancel
	c.phase = PhaseFetching
	c.err = nil

	gen, sc, key := c.gen, c.scope, c.key
	go c.fetch(ctx, cancel, gen, sc, key, page, appendMode)
}

func (c *Controller) fetch(
	ctx context.Context,
	cancel context.CancelFunc,
	gen uint64,
	sc domain.Scope,
	key string,
	page int,
	appendMode bool,
) {
	res, err := c.tr.Fetch(ctx, sc, page, c.opt.PageSize)
	defer cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		// superseded while in flight, result is discarded not surfaced
		return
	}
	c.cancel = nil

	if err != nil {
		if ctx.Err() == context.Canceled {
			return // aborted, never an error state
		}
		c.phase = PhaseError
		c.err = err
		// a failed append keeps prior items visible and does not flip hasMore
		c.log.Debug().Err(err).Int("page", page).Msg("fetch failed")
		return
	}

	e, ok := c.cache.get(key)
	if !ok || !appendMode {
		e = &entry{}
		c.cache.set(key, e)
	}
	e.appendDedup(res.Items)
	e.page = page
	e.total = res.Total
	e.hasMore = res.HasMore

	c.phase = PhaseSuccess
}
