// Package module wires the sweeper using modkit
package module

import (
	modkit "bazaar/internal/modkit"
	"bazaar/internal/modkit/httpkit"
	str "bazaar/internal/platform/strings"
	sweeprepo "bazaar/internal/services/sweeper/repo"
	sweepsvc "bazaar/internal/services/sweeper/service"
)

// Module implements the sweeper module, a worker with no HTTP surface
type Module struct {
	name string
	svc  *sweepsvc.Service
}

// New constructs the sweeper module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("sweeper")}, opts...)...)

	svc := sweepsvc.New(deps.PG, sweeprepo.NewPG(), sweepsvc.Config{
		Every: deps.Cfg.MayDuration("SWEEP_EVERY", 0),
		Grace: deps.Cfg.MayDuration("SWEEP_GRACE", 0),
	})
	return &Module{name: b.Name, svc: svc}
}

// MountRoutes is a no op
func (m *Module) MountRoutes(httpkit.Router) {}

// Ports exposes the service for the worker binary
func (m *Module) Ports() any { return m.svc }

// Service returns the concrete sweeper service
func (m *Module) Service() *sweepsvc.Service { return m.svc }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }
