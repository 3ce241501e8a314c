package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	perr "bazaar/internal/platform/errors"
	phttp "bazaar/internal/platform/net/http"
	"bazaar/internal/services/search/domain"
)

// HTTPTransport fetches ranked pages from the bazaar API
type HTTPTransport struct {
	base   string // e.g. http://localhost:4000
	client *http.Client
}

// NewHTTPTransport builds a transport for the API at base.
// A nil client falls back to http.DefaultClient, the per request budget
// comes from the controller's context
func NewHTTPTransport(base string, client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{base: strings.TrimRight(base, "/"), client: client}
}

// wirePage mirrors the envelope shape for one search response
type wirePage struct {
	Data []domain.Listing `json:"data"`
	Page *phttp.Page      `json:"page"`

	StatusCode int    `json:"status_code"`
	ErrMsg     string `json:"error"`
}

// Fetch implements Transport over GET /api/v1/search/listings
func (t *HTTPTransport) Fetch(ctx context.Context, sc domain.Scope, page, limit int) (FetchResult, error) {
	q := scopeValues(sc)
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(limit))

	u := t.base + "/api/v1/search/listings?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return FetchResult{}, perr.InvalidArgf("feed: bad request url: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		if ctx.Err() == context.Canceled {
			return FetchResult{}, perr.Abortedf("feed: fetch aborted")
		}
		return FetchResult{}, perr.Unavailablef("feed: fetch: %v", err)
	}
	defer resp.Body.Close()

	var wire wirePage
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return FetchResult{}, perr.JSONErrf("feed: decode: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := wire.ErrMsg
		if msg == "" {
			msg = resp.Status
		}
		return FetchResult{}, perr.Unavailablef("feed: api %d: %s", resp.StatusCode, msg)
	}

	out := FetchResult{Items: wire.Data}
	if wire.Page != nil {
		out.Total = wire.Page.Total
		out.HasMore = wire.Page.HasMore
	}
	return out, nil
}

// scopeValues renders the wire query form of a scope, the inverse of the
// server side query parser
func scopeValues(sc domain.Scope) url.Values {
	q := url.Values{}
	if sc.Category != "" {
		q.Set("category", sc.Category)
	}
	for k, v := range sc.Attrs {
		q.Set("attr_"+k, v)
	}
	if sc.MinPrice != nil {
		q.Set("minPrice", strconv.FormatInt(*sc.MinPrice, 10))
	}
	if sc.MaxPrice != nil {
		q.Set("maxPrice", strconv.FormatInt(*sc.MaxPrice, 10))
	}
	if sc.MinRating != nil {
		q.Set("minRating", strconv.FormatFloat(*sc.MinRating, 'f', -1, 64))
	}
	if sc.Query != "" {
		q.Set("q", sc.Query)
	}
	if sc.City != "" {
		q.Set("city", sc.City)
	}
	if sc.Nearby {
		q.Set("nearby", "1")
	}
	if sc.Sort != "" {
		q.Set("sort", string(sc.Sort))
	}
	if sc.PromotedOnly {
		q.Set("promoted", "1")
	}
	return q
}
