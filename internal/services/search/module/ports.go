package module

import (
	"context"

	"bazaar/internal/services/search/domain"
)

// adaptSearchPort exposes the service as a domain.ServicePort
type adaptSearchPort struct{ svc domain.ServicePort }

func (a adaptSearchPort) Search(ctx context.Context, in domain.SearchInput) (domain.Page, error) {
	return a.svc.Search(ctx, in)
}
