// Package http provides http transport for the catalog
package http

import (
	stdhttp "net/http"

	"bazaar/internal/modkit/httpkit"
	svc "bazaar/internal/services/catalog/service"
)

// Register mounts catalog endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/categories", h.categories)
	httpkit.Get(r, "/categories/{id}/attrs", h.attrVocab)
	httpkit.Get(r, "/listings/{id}", h.listing)
}

type handlers struct{ svc svc.Service }

// @Summary Category tree
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Category "ok"
// @Router /catalog/categories [get]
func (h *handlers) categories(r *stdhttp.Request) (any, error) {
	return h.svc.Categories(r.Context())
}

// @Summary Attribute vocabulary for a category subtree
// @Tags Catalog
// @Produce json
// @Success 200 {object} domain.AttrVocab "ok"
// @Router /catalog/categories/{id}/attrs [get]
func (h *handlers) attrVocab(r *stdhttp.Request) (any, error) {
	return h.svc.AttrVocabFor(r.Context(), httpkit.Param(r, "id"))
}

// @Summary Listing detail by id
// @Tags Catalog
// @Produce json
// @Success 200 {object} domain.Listing "ok"
// @Router /catalog/listings/{id} [get]
func (h *handlers) listing(r *stdhttp.Request) (any, error) {
	return h.svc.ListingByID(r.Context(), httpkit.Param(r, "id"))
}
