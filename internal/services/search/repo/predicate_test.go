package repo

import (
	"strings"
	"testing"

	"bazaar/internal/services/search/domain"
)

func i64(v int64) *int64 { return &v }

func TestScopeWhereEmptyScopeMatchesVisible(t *testing.T) {
	p := scopeWhere(domain.Scope{})
	if p.where() != "visible" {
		t.Fatalf("where = %q", p.where())
	}
	if len(p.args) != 0 {
		t.Fatalf("args = %v", p.args)
	}
}

func TestScopeWhereNumbersPlaceholders(t *testing.T) {
	min := 4.0
	p := scopeWhere(domain.Scope{
		Category:  "lamps",
		MinPrice:  i64(100),
		MaxPrice:  i64(900),
		MinRating: &min,
	})
	w := p.where()
	for _, frag := range []string{
		"$1 = any(category_path)",
		"price_cents >= $2",
		"price_cents <= $3",
		"rating >= $4",
	} {
		if !strings.Contains(w, frag) {
			t.Fatalf("where %q missing %q", w, frag)
		}
	}
	if len(p.args) != 4 {
		t.Fatalf("args = %v", p.args)
	}
}

func TestScopeWhereAttrsUseContainment(t *testing.T) {
	p := scopeWhere(domain.Scope{Attrs: map[string]string{"color": "red"}})
	if !strings.Contains(p.where(), "attrs @> $1::jsonb") {
		t.Fatalf("where = %q", p.where())
	}
	if p.args[0] != `{"color":"red"}` {
		t.Fatalf("args = %v", p.args)
	}
}

func TestScopeWhereTextTokens(t *testing.T) {
	p := scopeWhere(domain.Scope{Query: "Vintage LAMP!"})
	w := p.where()
	if !strings.Contains(w, "title ilike any($1)") || !strings.Contains(w, "description ilike any($2)") {
		t.Fatalf("where = %q", w)
	}
	pats, ok := p.args[0].([]string)
	if !ok || len(pats) != 2 || pats[0] != "%vintage%" || pats[1] != "%lamp%" {
		t.Fatalf("patterns = %v", p.args[0])
	}
}

func TestScopeWhereCityAndNearby(t *testing.T) {
	p := scopeWhere(domain.Scope{City: " Lisbon "})
	if !strings.Contains(p.where(), "lower(city) = $1") || p.args[0] != "lisbon" {
		t.Fatalf("city: %q %v", p.where(), p.args)
	}

	p = scopeWhere(domain.Scope{City: "Lisbon", Nearby: true})
	if !strings.Contains(p.where(), "(lower(city) = $1 or city = '')") {
		t.Fatalf("nearby: %q", p.where())
	}
}

func TestOrderByAlwaysBreaksTiesByID(t *testing.T) {
	for _, k := range []domain.SortKey{
		domain.SortRelevance, domain.SortPriceAsc, domain.SortPriceDesc,
		domain.SortRating, domain.SortNewest, domain.SortKey("bogus"),
	} {
		if !strings.HasSuffix(orderBy(k), "id asc") {
			t.Fatalf("orderBy(%q) = %q lacks id tiebreak", k, orderBy(k))
		}
	}
}
