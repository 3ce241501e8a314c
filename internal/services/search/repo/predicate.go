package repo

import (
	"encoding/json"
	"fmt"
	"strings"

	"bazaar/internal/core/normalize"
	"bazaar/internal/services/search/domain"
)

// boostActive is the partition predicate.
// A listing is boosted iff its window covers now, everything else is regular
const boostActive = "(boost_starts_at is not null and boost_starts_at <= now()" +
	" and boost_expires_at is not null and boost_expires_at > now())"

// predicate accumulates where fragments with positional args
type predicate struct {
	frags []string
	args  []any
}

// add appends a fragment, substituting %s placeholders with the next arg positions
func (p *predicate) add(frag string, vals ...any) {
	pos := make([]any, len(vals))
	for i := range vals {
		pos[i] = fmt.Sprintf("$%d", len(p.args)+i+1)
	}
	p.frags = append(p.frags, fmt.Sprintf(frag, pos...))
	p.args = append(p.args, vals...)
}

func (p *predicate) where() string {
	if len(p.frags) == 0 {
		return "true"
	}
	return strings.Join(p.frags, " and ")
}

// scopeWhere renders the matching predicate shared by both partitions.
// Unknown attribute keys fall through to the jsonb containment check and
// simply match nothing, which is the contract for open filter vocab
func scopeWhere(sc domain.Scope) *predicate {
	p := &predicate{}
	p.frags = append(p.frags, "visible")

	if sc.Category != "" {
		p.add("%s = any(category_path)", sc.Category)
	}
	if len(sc.Attrs) > 0 {
		// containment keeps one index-friendly check for all attr filters
		b, err := json.Marshal(sc.Attrs)
		if err != nil {
			// unmarshalable filters match nothing rather than erroring
			p.frags = append(p.frags, "false")
		} else {
			p.add("attrs @> %s::jsonb", string(b))
		}
	}
	if sc.MinPrice != nil {
		p.add("price_cents >= %s", *sc.MinPrice)
	}
	if sc.MaxPrice != nil {
		p.add("price_cents <= %s", *sc.MaxPrice)
	}
	if sc.MinRating != nil {
		p.add("rating >= %s", *sc.MinRating)
	}
	if toks := normalize.Tokens(sc.Query); len(toks) > 0 {
		pats := make([]string, len(toks))
		for i, t := range toks {
			pats[i] = "%" + t + "%"
		}
		p.add("(title ilike any(%s) or description ilike any(%s))", pats, pats)
	}
	if city := strings.ToLower(strings.TrimSpace(sc.City)); city != "" {
		if sc.Nearby {
			// nearby widens the city filter to listings without a pinned city
			p.add("(lower(city) = %s or city = '')", city)
		} else {
			p.add("lower(city) = %s", city)
		}
	}
	return p
}

// orderBy maps the sort key to a deterministic order clause, id breaks ties
func orderBy(sort domain.SortKey) string {
	switch sort {
	case domain.SortPriceAsc:
		return "price_cents asc, id asc"
	case domain.SortPriceDesc:
		return "price_cents desc, id asc"
	case domain.SortRating:
		return "rating desc, id asc"
	case domain.SortNewest:
		return "created_at desc, id asc"
	default:
		// relevance without a text rank degrades to recency
		return "created_at desc, id asc"
	}
}
