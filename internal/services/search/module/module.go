// Package module wires search into the API using modkit
package module

import (
	"net/http"

	modkit "bazaar/internal/modkit"
	"bazaar/internal/modkit/httpkit"
	str "bazaar/internal/platform/strings"
	"bazaar/internal/services/search/domain"
	searchhttp "bazaar/internal/services/search/http"
	searchrepo "bazaar/internal/services/search/repo"
	searchsvc "bazaar/internal/services/search/service"
)

// Module implements the search module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc searchsvc.Service
}

// New constructs the search module.
// An impressions sink can be injected through modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("search"), modkit.WithPrefix("/search")}, opts...)...)

	repo := searchrepo.NewPG()
	svc := searchsvc.New(deps.PG, repo, searchsvc.Options{
		ExactTotal: deps.Cfg.MayBool("SEARCH_EXACT_TOTAL", true),
	})

	sink, _ := b.Ports.(domain.ImpressionSink)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptSearchPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		searchhttp.Register(r, m.svc, sink)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports exposes the search service port for other modules
func (m *Module) Ports() any { return m.ports }
