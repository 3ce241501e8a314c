// Package feed implements the client side discovery feed controller:
// per scope page caching, request cancellation, and append de-duplication
// over the ranked listing search API
package feed

import (
	"context"

	"bazaar/internal/services/search/domain"
)

// Phase is the fetch lifecycle state visible to the UI
type Phase int

// Lifecycle phases
const (
	PhaseIdle Phase = iota
	PhaseFetching
	PhaseSuccess
	PhaseError
)

// String implements fmt.Stringer for logs and tests
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFetching:
		return "fetching"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// FetchResult is one page as returned by the transport
type FetchResult struct {
	Items   []domain.Listing
	Total   int
	HasMore bool
}

// Transport fetches one ranked page for a scope.
// Implementations must honor ctx cancellation
type Transport interface {
	Fetch(ctx context.Context, sc domain.Scope, page, limit int) (FetchResult, error)
}

// TransportFunc adapts a function to the Transport interface
type TransportFunc func(ctx context.Context, sc domain.Scope, page, limit int) (FetchResult, error)

// Fetch implements Transport
func (f TransportFunc) Fetch(ctx context.Context, sc domain.Scope, page, limit int) (FetchResult, error) {
	return f(ctx, sc, page, limit)
}

// Snapshot is the controller state handed to the UI, items are a copy
type Snapshot struct {
	Items   []domain.Listing
	Phase   Phase
	Total   int
	HasMore bool
	Err     error
	Scope   domain.Scope
}
