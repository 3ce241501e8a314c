// Package module wires the impression sink using modkit
package module

import (
	modkit "bazaar/internal/modkit"
	"bazaar/internal/modkit/httpkit"
	str "bazaar/internal/platform/strings"
	impsvc "bazaar/internal/services/impressions/service"
)

// Module implements the impressions module.
// It mounts no routes, its port is consumed by search
type Module struct {
	name string
	sink *impsvc.Sink
}

// New constructs the impressions module, nil CH yields a disabled module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("impressions")}, opts...)...)

	m := &Module{name: b.Name}
	if deps.CH != nil {
		m.sink = impsvc.New(deps.CH, impsvc.Options{
			BatchSize:  deps.Cfg.MayInt("IMPRESSIONS_BATCH", 512),
			FlushEvery: deps.Cfg.MayDuration("IMPRESSIONS_FLUSH", 0),
		})
	}
	return m
}

// MountRoutes is a no op, impressions have no HTTP surface
func (m *Module) MountRoutes(httpkit.Router) {}

// Ports exposes the sink, nil when clickhouse is not configured
func (m *Module) Ports() any { return m.Sink() }

// Sink returns the concrete sink for lifecycle management, may be nil
func (m *Module) Sink() *impsvc.Sink { return m.sink }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }
