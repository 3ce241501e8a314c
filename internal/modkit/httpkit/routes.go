package httpkit

import (
	"net/http"
)

// MountUnder mounts register under prefix with optional middleware,
// or directly on r when prefix is empty
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, register func(Router)) {
	if prefix == "" {
		if len(mw) > 0 {
			r.Group(func(g Router) {
				g.Use(mw...)
				register(g)
			})
			return
		}
		register(r)
		return
	}
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		register(sub)
	})
}
