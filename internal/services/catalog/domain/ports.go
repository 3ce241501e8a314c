package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Categories(ctx context.Context) ([]Category, error)
	ListingByID(ctx context.Context, id string) (Listing, error)
	AttrVocabFor(ctx context.Context, category string) (AttrVocab, error)
}
