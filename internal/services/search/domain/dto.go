package domain

// Defaults and caps for the page window
const (
	DefaultPageSize = 24
	MaxPageSize     = 100
)

// SearchInput is the wire shape for a ranked search request.
// Attribute keys are open vocabulary, unknown keys match nothing
type SearchInput struct {
	Category     string            `json:"category,omitempty" validate:"omitempty,max=64" example:"electronics"`
	Attrs        map[string]string `json:"attrs,omitempty" validate:"omitempty,max=20,dive,keys,max=64,endkeys,max=128"`
	MinPrice     *int64            `json:"min_price,omitempty" validate:"omitempty,min=0" example:"1000"`
	MaxPrice     *int64            `json:"max_price,omitempty" validate:"omitempty,min=0" example:"250000"`
	MinRating    *float64          `json:"min_rating,omitempty" validate:"omitempty,min=0,max=5" example:"4"`
	Query        string            `json:"q,omitempty" validate:"omitempty,max=200" example:"vintage lamp"`
	City         string            `json:"city,omitempty" validate:"omitempty,max=80" example:"lisbon"`
	Nearby       bool              `json:"nearby,omitempty"`
	Sort         string            `json:"sort,omitempty" validate:"omitempty,oneof=relevance price_asc price_desc rating newest" example:"price_asc"`
	PromotedOnly bool              `json:"promoted_only,omitempty"`

	Page int `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	Size int `json:"size,omitempty" validate:"omitempty,min=1,max=100" example:"24"`
}

// Scope builds the normalized scope for the input
func (in SearchInput) Scope() Scope {
	sort := SortKey(in.Sort)
	if sort == "" {
		sort = SortRelevance
	}
	return Scope{
		Category:     in.Category,
		Attrs:        in.Attrs,
		MinPrice:     in.MinPrice,
		MaxPrice:     in.MaxPrice,
		MinRating:    in.MinRating,
		Query:        in.Query,
		City:         in.City,
		Nearby:       in.Nearby,
		Sort:         sort,
		PromotedOnly: in.PromotedOnly,
	}
}

// Window returns the 1-based page and clamped size with defaults applied
func (in SearchInput) Window() (page, size int) {
	page = in.Page
	if page < 1 {
		page = 1
	}
	size = in.Size
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}
