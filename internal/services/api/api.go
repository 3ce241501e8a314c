// Package api provides the HTTP API for the application
package api

import (
	"bazaar/internal/platform/config"
	"bazaar/internal/platform/logger"
	phttp "bazaar/internal/platform/net/http"
	"bazaar/internal/platform/store"

	"bazaar/internal/modkit"
	"bazaar/internal/modkit/httpkit"
	"bazaar/internal/modkit/module"
	"bazaar/internal/modkit/swaggerkit"

	metahttp "bazaar/internal/services/api/meta/http"
	metamod "bazaar/internal/services/api/meta/module"
	catalogmod "bazaar/internal/services/catalog/module"
	impmod "bazaar/internal/services/impressions/module"
	impsvc "bazaar/internal/services/impressions/service"
	searchmod "bazaar/internal/services/search/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router and returns the
// impression sink so the caller can run its flush loop
func Mount(r phttp.Router, opt Options) *impsvc.Sink {
	deps := modkit.Deps{
		Log: *opt.Logger,
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// impressions first so search can consume its sink port
	impressions := impmod.New(deps)

	searchOpts := []modkit.Option{}
	if sink := impressions.Sink(); sink != nil {
		searchOpts = append(searchOpts, modkit.WithPorts[any](sink))
	}

	mods := []module.Module{
		metamod.New(metamod.Deps{
			Deps:   deps,
			PGPing: pingerOf(opt.Store.PG),
			CHPing: pingerOf(opt.Store.CH),
		}),
		searchmod.New(deps, searchOpts...),
		catalogmod.New(deps),
		impressions,
	}

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Config), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	return impressions.Sink()
}

// pingerOf narrows a backend seam to the meta Pinger, nil when it cannot ping
func pingerOf(v any) metahttp.Pinger {
	if v == nil {
		return nil
	}
	p, ok := v.(metahttp.Pinger)
	if !ok {
		return nil
	}
	return p
}
