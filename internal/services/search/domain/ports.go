package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Search(ctx context.Context, in SearchInput) (Page, error)
}

// ImpressionSink records which listings were served for a scope and page.
// Fire and forget, a nil sink is valid and records nothing
type ImpressionSink interface {
	Record(ctx context.Context, scopeKey string, page int, ids []string)
}
