package httpkit

import "net/http"

// MountAPI mounts register under /api/<version> with a middleware stack
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, register func(Router)) {
	r.Route("/api", func(api Router) {
		api.Route(version, func(v Router) {
			if len(mw) > 0 {
				v.Use(mw...)
			}
			register(v)
		})
	})
}

// MountAPIV1 mounts register under /api/v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, register func(Router)) {
	MountAPI(r, "/v1", mw, register)
}
