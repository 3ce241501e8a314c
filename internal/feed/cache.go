package feed

import "bazaar/internal/services/search/domain"

// entry is the append only aggregate for one scope
type entry struct {
	items   []domain.Listing
	seen    map[string]struct{}
	page    int // highest page merged so far
	total   int
	hasMore bool
}

// appendDedup merges a page into the entry dropping ids already present.
// This is the backstop for boundary shifts between sequential fetches
func (e *entry) appendDedup(items []domain.Listing) {
	if e.seen == nil {
		e.seen = make(map[string]struct{}, len(items))
	}
	for _, it := range items {
		if _, dup := e.seen[it.ID]; dup {
			continue
		}
		e.seen[it.ID] = struct{}{}
		e.items = append(e.items, it)
	}
}

// scopeCache maps normalized scope keys to entries, private to one controller
type scopeCache struct {
	m map[string]*entry
}

func newScopeCache() *scopeCache {
	return &scopeCache{m: make(map[string]*entry)}
}

func (c *scopeCache) get(key string) (*entry, bool) {
	e, ok := c.m[key]
	return e, ok
}

func (c *scopeCache) set(key string, e *entry) {
	c.m[key] = e
}

func (c *scopeCache) invalidate(key string) {
	delete(c.m, key)
}
