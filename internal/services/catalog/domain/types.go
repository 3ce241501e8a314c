// Package domain holds catalog types for categories and listing detail
package domain

import "time"

// Category is one node of the category tree
type Category struct {
	ID       string   `json:"id"`
	ParentID string   `json:"parent_id,omitempty"`
	Name     string   `json:"name"`
	Path     []string `json:"path"`
}

// Listing is the full catalog view of one item, including fields the
// search surface does not serve
type Listing struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description,omitempty"`
	PriceCents     int64             `json:"price_cents"`
	Rating         float64           `json:"rating"`
	SalePct        int               `json:"sale_pct,omitempty"`
	City           string            `json:"city,omitempty"`
	Attrs          map[string]string `json:"attrs,omitempty"`
	CategoryPath   []string          `json:"category_path"`
	BoostStartsAt  *time.Time        `json:"boost_starts_at,omitempty"`
	BoostExpiresAt *time.Time        `json:"boost_expires_at,omitempty"`
	Visible        bool              `json:"visible"`
	CreatedAt      time.Time         `json:"created_at"`
}

// AttrVocab lists the values observed for each attribute key in a category
type AttrVocab map[string][]string
