package http

import (
	"net/url"
	"strconv"
	"strings"

	perr "bazaar/internal/platform/errors"
	"bazaar/internal/platform/net/http/bind"
	"bazaar/internal/services/search/domain"
)

// parseQuery maps the url form of a scope onto SearchInput.
// Attribute filters arrive as repeated attr_<key>=<value> pairs
func parseQuery(q url.Values) (domain.SearchInput, error) {
	var in domain.SearchInput

	in.Query = q.Get("q")
	in.Category = q.Get("category")
	in.City = q.Get("city")
	in.Sort = q.Get("sort")
	in.Nearby = truthy(q.Get("nearby"))
	in.PromotedOnly = truthy(q.Get("promoted"))

	for key, vals := range q {
		if !strings.HasPrefix(key, "attr_") || len(vals) == 0 {
			continue
		}
		if in.Attrs == nil {
			in.Attrs = map[string]string{}
		}
		in.Attrs[strings.TrimPrefix(key, "attr_")] = vals[0]
	}

	var err error
	if in.MinPrice, err = cents(q.Get("minPrice")); err != nil {
		return in, perr.WithField(err, "minPrice")
	}
	if in.MaxPrice, err = cents(q.Get("maxPrice")); err != nil {
		return in, perr.WithField(err, "maxPrice")
	}
	if s := q.Get("minRating"); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return in, perr.WithField(perr.InvalidArgf("minRating must be a number"), "minRating")
		}
		in.MinRating = &f
	}
	if s := q.Get("page"); s != "" {
		if in.Page, err = strconv.Atoi(s); err != nil {
			return in, perr.WithField(perr.InvalidArgf("page must be an integer"), "page")
		}
	}
	if s := q.Get("size"); s != "" {
		if in.Size, err = strconv.Atoi(s); err != nil {
			return in, perr.WithField(perr.InvalidArgf("size must be an integer"), "size")
		}
	}

	if err := bind.Validate(&in); err != nil {
		return in, err
	}
	return in, nil
}

func cents(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, perr.InvalidArgf("price must be integer cents")
	}
	return &v, nil
}

func truthy(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
