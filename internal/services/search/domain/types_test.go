package domain

import "testing"

func i64(v int64) *int64 { return &v }

func TestScopeKeyOrderIndependent(t *testing.T) {
	a := Scope{
		Category: "lamps",
		Attrs:    map[string]string{"color": "Red", "material": "brass"},
		MinPrice: i64(1000),
		City:     "Lisbon",
		Sort:     SortPriceAsc,
	}
	b := Scope{
		Sort:     SortPriceAsc,
		City:     "lisbon",
		MinPrice: i64(1000),
		Attrs:    map[string]string{"material": "Brass", "color": "red"},
		Category: "lamps",
	}
	if a.Key() != b.Key() {
		t.Fatalf("keys differ:\n%q\n%q", a.Key(), b.Key())
	}
}

func TestScopeKeyNormalizesQuery(t *testing.T) {
	a := Scope{Query: "  Vintage   LAMP "}
	b := Scope{Query: "vintage lamp"}
	if a.Key() != b.Key() {
		t.Fatalf("query not normalized: %q vs %q", a.Key(), b.Key())
	}

	c := Scope{Query: "çınar"}
	d := Scope{Query: "cinar"}
	if c.Key() != d.Key() {
		t.Fatalf("diacritics not folded: %q vs %q", c.Key(), d.Key())
	}
}

func TestScopeKeyDistinguishesFilters(t *testing.T) {
	base := Scope{Category: "lamps"}
	cases := []Scope{
		{Category: "rugs"},
		{Category: "lamps", Attrs: map[string]string{"color": "red"}},
		{Category: "lamps", MinPrice: i64(1)},
		{Category: "lamps", PromotedOnly: true},
		{Category: "lamps", Nearby: true},
		{Category: "lamps", Sort: SortRating},
	}
	for i, sc := range cases {
		if sc.Key() == base.Key() {
			t.Fatalf("case %d: key collision with base: %q", i, sc.Key())
		}
	}
}

func TestScopeKeyIgnoresDefaultSort(t *testing.T) {
	a := Scope{Category: "lamps"}
	b := Scope{Category: "lamps", Sort: SortRelevance}
	if a.Key() != b.Key() {
		t.Fatalf("default sort should not change the key")
	}
}

func TestSearchInputWindow(t *testing.T) {
	var in SearchInput
	page, size := in.Window()
	if page != 1 || size != DefaultPageSize {
		t.Fatalf("defaults = (%d,%d)", page, size)
	}

	in = SearchInput{Page: 3, Size: 1000}
	page, size = in.Window()
	if page != 3 || size != MaxPageSize {
		t.Fatalf("clamp = (%d,%d)", page, size)
	}
}

func TestSearchInputScopeDefaultsSort(t *testing.T) {
	in := SearchInput{Category: "lamps"}
	if got := in.Scope().Sort; got != SortRelevance {
		t.Fatalf("Sort = %q, want relevance", got)
	}
}
