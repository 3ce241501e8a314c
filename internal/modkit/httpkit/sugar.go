package httpkit

import (
	"net/http"

	phttp "bazaar/internal/platform/net/http"
)

// Get mounts a bodyless handler on GET.
// Handlers may return a Response to control status or page metadata,
// any other value is wrapped in the standard OK envelope
func Get(r Router, pattern string, h func(*http.Request) (any, error)) {
	r.Get(pattern, phttp.JSONHandlerNoBody(h))
}

// Delete mounts a bodyless handler on DELETE
func Delete(r Router, pattern string, h func(*http.Request) (any, error)) {
	r.Delete(pattern, phttp.JSONHandlerNoBody(h))
}

// GetJSON mounts a GET handler that binds the JSON body into In.
// GET bodies are tolerated empty, validation still runs on the zero value
func GetJSON[In any](r Router, pattern string, h func(*http.Request, In) (any, error)) {
	r.Get(pattern, phttp.JSONHandler(h))
}

// PostJSON mounts a POST handler that binds and validates the JSON body into In
func PostJSON[In any](r Router, pattern string, h func(*http.Request, In) (any, error)) {
	r.Post(pattern, phttp.JSONHandler(h))
}

// PutJSON mounts a PUT handler that binds and validates the JSON body into In
func PutJSON[In any](r Router, pattern string, h func(*http.Request, In) (any, error)) {
	r.Put(pattern, phttp.JSONHandler(h))
}

// OK is sugar over the platform success response
func OK(data any) phttp.Response { return phttp.OK(data) }

// NoContent is sugar over the platform 204 response
func NoContent() phttp.Response { return phttp.NoContent() }

// Error is sugar over the platform error response
func Error(err error) phttp.Response { return phttp.Error(err) }

// List is sugar over the platform paginated list response
func List(items any, total, page, size int, hasMore bool) phttp.Response {
	return phttp.List(items, total, page, size, hasMore)
}
