package swaggerkit

import "net/http"

// docReader is a seam so tests can swap the served spec
var docReader = func() string {
	return `{"openapi":"3.0.3","info":{"title":"Bazaar API","version":"0.0.0"},"paths":{}}`
}

// serveDocJSON serves the spec skeleton so the UI can load without generated docs
// a swag generated doc package can replace docReader at init when present
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(docReader()))
	}
}
