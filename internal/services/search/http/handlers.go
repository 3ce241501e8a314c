// Package http provides http transport for ranked search
package http

import (
	stdhttp "net/http"

	"bazaar/internal/modkit/httpkit"
	"bazaar/internal/services/search/domain"
	svc "bazaar/internal/services/search/service"
)

// Register mounts search endpoints on the given router
func Register(r httpkit.Router, s svc.Service, sink domain.ImpressionSink) {
	h := &handlers{svc: s, sink: sink}

	// canonical body form
	httpkit.PostJSON[domain.SearchInput](r, "/listings", h.search)

	// query string form for shareable urls, same semantics
	httpkit.Get(r, "/listings", h.searchQuery)
}

type handlers struct {
	svc  svc.Service
	sink domain.ImpressionSink
}

// @Summary Ranked listing search
// @Description Boosted listings first by remaining boost time, then the regular set in the requested sort
// @Tags Search
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Scope and page window"
// @Success 200 {object} domain.Page "ok"
// @Router /search/listings [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	page, err := h.svc.Search(r.Context(), in)
	if err != nil {
		return nil, err
	}
	h.record(r, in, page)
	return httpkit.List(page.Items, page.Total, page.Page, page.Size, page.HasMore), nil
}

// @Summary Ranked listing search (query form)
// @Tags Search
// @Produce json
// @Param q query string false "free text"
// @Param category query string false "category id"
// @Param sort query string false "relevance price_asc price_desc rating newest"
// @Success 200 {object} domain.Page "ok"
// @Router /search/listings [get]
func (h *handlers) searchQuery(r *stdhttp.Request) (any, error) {
	in, err := parseQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}
	return h.search(r, in)
}

// record fires an impression row, detached from the request outcome
func (h *handlers) record(r *stdhttp.Request, in domain.SearchInput, page domain.Page) {
	if h.sink == nil || len(page.Items) == 0 {
		return
	}
	ids := make([]string, len(page.Items))
	for i, it := range page.Items {
		ids[i] = it.ID
	}
	h.sink.Record(r.Context(), in.Scope().Key(), page.Page, ids)
}
