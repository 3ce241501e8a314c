package module

import (
	"context"

	"bazaar/internal/services/catalog/domain"
)

// adaptCatalogPort exposes the service as a domain.ServicePort
type adaptCatalogPort struct{ svc domain.ServicePort }

func (a adaptCatalogPort) Categories(ctx context.Context) ([]domain.Category, error) {
	return a.svc.Categories(ctx)
}

func (a adaptCatalogPort) ListingByID(ctx context.Context, id string) (domain.Listing, error) {
	return a.svc.ListingByID(ctx, id)
}

func (a adaptCatalogPort) AttrVocabFor(ctx context.Context, category string) (domain.AttrVocab, error) {
	return a.svc.AttrVocabFor(ctx, category)
}
