// Package httpkit re-exports the platform HTTP seams for module authors
// so service packages import one kit instead of three platform paths
package httpkit

import (
	"net/http"

	phttp "bazaar/internal/platform/net/http"
)

// Router aliases the platform router seam
type Router = phttp.Router

// Response aliases the platform response shape
type Response = phttp.Response

// Envelope aliases the platform wire envelope
type Envelope = phttp.Envelope

// Page aliases the platform pagination block
type Page = phttp.Page

// NewRouter constructs the platform chi router
func NewRouter() Router { return phttp.NewRouter() }

// Param reads a chi URL parameter from the request
func Param(r *http.Request, name string) string { return phttp.Param(r, name) }
