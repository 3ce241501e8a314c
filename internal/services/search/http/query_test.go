package http

import (
	"net/url"
	"testing"

	perr "bazaar/internal/platform/errors"
)

func TestParseQueryMapsWireShape(t *testing.T) {
	q := url.Values{}
	q.Set("q", "vintage lamp")
	q.Set("category", "lamps")
	q.Set("attr_color", "red")
	q.Set("attr_material", "brass")
	q.Set("minPrice", "1500")
	q.Set("maxPrice", "90000")
	q.Set("minRating", "4.5")
	q.Set("city", "lisbon")
	q.Set("nearby", "1")
	q.Set("sort", "price_asc")
	q.Set("promoted", "true")
	q.Set("page", "2")
	q.Set("size", "10")

	in, err := parseQuery(q)
	if err != nil {
		t.Fatalf("parseQuery: %v", err)
	}
	if in.Query != "vintage lamp" || in.Category != "lamps" {
		t.Fatalf("basics: %+v", in)
	}
	if in.Attrs["color"] != "red" || in.Attrs["material"] != "brass" {
		t.Fatalf("attrs: %+v", in.Attrs)
	}
	if *in.MinPrice != 1500 || *in.MaxPrice != 90000 || *in.MinRating != 4.5 {
		t.Fatalf("bounds: %+v", in)
	}
	if !in.Nearby || !in.PromotedOnly || in.Sort != "price_asc" {
		t.Fatalf("flags: %+v", in)
	}
	if in.Page != 2 || in.Size != 10 {
		t.Fatalf("window: %+v", in)
	}
}

func TestParseQueryRejectsBadNumbers(t *testing.T) {
	for key, val := range map[string]string{
		"minPrice":  "abc",
		"maxPrice":  "12.5",
		"minRating": "high",
		"page":      "one",
		"size":      "big",
	} {
		q := url.Values{}
		q.Set(key, val)
		if _, err := parseQuery(q); err == nil {
			t.Fatalf("%s=%q should fail", key, val)
		} else if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
			t.Fatalf("%s: code = %v", key, perr.CodeOf(err))
		}
	}
}

func TestParseQueryValidates(t *testing.T) {
	q := url.Values{}
	q.Set("sort", "sideways")
	if _, err := parseQuery(q); err == nil {
		t.Fatal("unknown sort key should fail validation")
	}

	q = url.Values{}
	q.Set("size", "500")
	if _, err := parseQuery(q); err == nil {
		t.Fatal("size beyond the cap should fail validation")
	}
}

func TestParseQueryEmptyIsValid(t *testing.T) {
	in, err := parseQuery(url.Values{})
	if err != nil {
		t.Fatalf("empty query: %v", err)
	}
	if in.Attrs != nil || in.MinPrice != nil {
		t.Fatalf("zero input expected, got %+v", in)
	}
}
