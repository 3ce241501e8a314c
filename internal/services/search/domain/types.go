// Package domain holds the scope, listing, and page types for ranked search
package domain

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"bazaar/internal/core/normalize"
)

// SortKey selects the secondary ordering of the regular partition.
// Boosted listings always rank first regardless of sort key
type SortKey string

// Supported sort keys
const (
	SortRelevance SortKey = "relevance"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// Scope is the tuple identifying one logical result set.
// Two scopes are equal iff Key() is equal, independent of input order
type Scope struct {
	Category     string            // category id, matches by ancestry containment
	Attrs        map[string]string // attribute equality filters, open vocabulary
	MinPrice     *int64            // cents
	MaxPrice     *int64            // cents
	MinRating    *float64
	Query        string // free text, tokenized OR match
	City         string
	Nearby       bool
	Sort         SortKey
	PromotedOnly bool
}

// Key returns the normalized order-independent encoding of the scope.
// Used as the cache key client side and as the canonical wire shape.
// Pagination never participates: page and size are not scope identity
func (s Scope) Key() string {
	parts := make([]string, 0, 8+len(s.Attrs))

	if s.Category != "" {
		parts = append(parts, "cat="+s.Category)
	}
	if len(s.Attrs) > 0 {
		keys := make([]string, 0, len(s.Attrs))
		for k := range s.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			parts = append(parts, "attr_"+strings.ToLower(k)+"="+strings.ToLower(s.Attrs[k]))
		}
	}
	if s.MinPrice != nil {
		parts = append(parts, "minPrice="+strconv.FormatInt(*s.MinPrice, 10))
	}
	if s.MaxPrice != nil {
		parts = append(parts, "maxPrice="+strconv.FormatInt(*s.MaxPrice, 10))
	}
	if s.MinRating != nil {
		parts = append(parts, "minRating="+strconv.FormatFloat(*s.MinRating, 'f', -1, 64))
	}
	if q := normalize.Query(s.Query); q != "" {
		parts = append(parts, "q="+q)
	}
	if s.City != "" {
		parts = append(parts, "city="+strings.ToLower(strings.TrimSpace(s.City)))
	}
	if s.Nearby {
		parts = append(parts, "nearby=1")
	}
	if s.Sort != "" && s.Sort != SortRelevance {
		parts = append(parts, "sort="+string(s.Sort))
	}
	if s.PromotedOnly {
		parts = append(parts, "promoted=1")
	}
	return strings.Join(parts, "&")
}

// Listing is one visible catalog item as served by search
type Listing struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	PriceCents     int64      `json:"price_cents"`
	Rating         float64    `json:"rating"`
	SalePct        int        `json:"sale_pct,omitempty"`
	City           string     `json:"city,omitempty"`
	CategoryPath   []string   `json:"category_path"`
	Boosted        bool       `json:"boosted"`
	BoostExpiresAt *time.Time `json:"boost_expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Page is the result of one ranked window request.
// Never mutated after creation, append composition lives client side
type Page struct {
	Items   []Listing `json:"items"`
	Total   int       `json:"total"`
	HasMore bool      `json:"has_more"`
	Page    int       `json:"page"`
	Size    int       `json:"size"`
}
