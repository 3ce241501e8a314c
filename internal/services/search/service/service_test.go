package service

import (
	"context"
	"fmt"
	"testing"

	"bazaar/internal/modkit/repokit"
	perr "bazaar/internal/platform/errors"
	"bazaar/internal/platform/store"
	"bazaar/internal/services/search/domain"
	"bazaar/internal/services/search/repo"
)

// nopDB satisfies repokit.TxRunner, the fake repo never touches it
type nopDB struct{}

func (nopDB) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	panic("unexpected Exec")
}
func (nopDB) Query(context.Context, string, ...any) (store.Rows, error) { panic("unexpected Query") }
func (nopDB) QueryRow(context.Context, string, ...any) store.Row       { panic("unexpected QueryRow") }
func (nopDB) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(nopDB{})
}

// call records one window query issued against the fake repo
type call struct {
	kind   string // boosted or regular
	limit  int
	offset int
}

// fakeRepo serves deterministic partitions: boosted ids b0..b(B-1),
// regular ids r0..r(N-B-1)
type fakeRepo struct {
	boosted int
	total   int

	calls   []call
	failOn  string
	countEx bool // exact flag seen by CountMatching
}

func (f *fakeRepo) CountMatching(_ context.Context, _ domain.Scope, exact bool) (int64, error) {
	if f.failOn == "count" {
		return 0, perr.Unavailablef("count down")
	}
	f.countEx = exact
	return int64(f.total), nil
}

func (f *fakeRepo) CountBoosted(context.Context, domain.Scope) (int64, error) {
	if f.failOn == "boostedCount" {
		return 0, perr.Unavailablef("boosted count down")
	}
	return int64(f.boosted), nil
}

func (f *fakeRepo) BoostedWindow(_ context.Context, _ domain.Scope, limit, offset int) ([]domain.Listing, error) {
	f.calls = append(f.calls, call{"boosted", limit, offset})
	if f.failOn == "boosted" {
		return nil, perr.Unavailablef("boosted window down")
	}
	return f.window("b", f.boosted, limit, offset), nil
}

func (f *fakeRepo) RegularWindow(_ context.Context, _ domain.Scope, limit, offset int) ([]domain.Listing, error) {
	f.calls = append(f.calls, call{"regular", limit, offset})
	if f.failOn == "regular" {
		return nil, perr.Unavailablef("regular window down")
	}
	return f.window("r", f.total-f.boosted, limit, offset), nil
}

func (f *fakeRepo) window(prefix string, size, limit, offset int) []domain.Listing {
	var out []domain.Listing
	for i := offset; i < size && len(out) < limit; i++ {
		out = append(out, domain.Listing{ID: fmt.Sprintf("%s%d", prefix, i), Boosted: prefix == "b"})
	}
	return out
}

func newSvc(f *fakeRepo, exact bool) *Svc {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f })
	return New(nopDB{}, binder, Options{ExactTotal: exact})
}

func ids(items []domain.Listing) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func wantIDs(t *testing.T, got []domain.Listing, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("items = %v, want %v", ids(got), want)
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("items = %v, want %v", ids(got), want)
		}
	}
}

// The canonical walk: 3 boosted, page size 5, 12 matching listings.
// Page 1 straddles, page 2 and 3 are regular only
func TestSearchScenarioThreeBoostedTwelveTotal(t *testing.T) {
	f := &fakeRepo{boosted: 3, total: 12}
	s := newSvc(f, true)

	page1, err := s.Search(context.Background(), domain.SearchInput{Page: 1, Size: 5})
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	wantIDs(t, page1.Items, "b0", "b1", "b2", "r0", "r1")
	if page1.Total != 12 || !page1.HasMore {
		t.Fatalf("page 1 total=%d hasMore=%v", page1.Total, page1.HasMore)
	}
	// straddle is the only two query case
	if len(f.calls) != 2 || f.calls[0] != (call{"boosted", 3, 0}) || f.calls[1] != (call{"regular", 2, 0}) {
		t.Fatalf("page 1 calls = %+v", f.calls)
	}

	f.calls = nil
	page2, err := s.Search(context.Background(), domain.SearchInput{Page: 2, Size: 5})
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	wantIDs(t, page2.Items, "r2", "r3", "r4", "r5", "r6")
	if len(f.calls) != 1 || f.calls[0] != (call{"regular", 5, 2}) {
		t.Fatalf("page 2 calls = %+v", f.calls)
	}
	if !page2.HasMore {
		t.Fatalf("page 2 should have more")
	}

	f.calls = nil
	page3, err := s.Search(context.Background(), domain.SearchInput{Page: 3, Size: 5})
	if err != nil {
		t.Fatalf("page 3: %v", err)
	}
	wantIDs(t, page3.Items, "r7", "r8")
	if page3.HasMore {
		t.Fatalf("page 3 should be the last")
	}
	if len(f.calls) != 1 || f.calls[0] != (call{"regular", 5, 7}) {
		t.Fatalf("page 3 calls = %+v", f.calls)
	}
}

func TestSearchAllBoostedPage(t *testing.T) {
	f := &fakeRepo{boosted: 10, total: 20}
	s := newSvc(f, true)

	out, err := s.Search(context.Background(), domain.SearchInput{Page: 1, Size: 5})
	if err != nil {
		t.Fatal(err)
	}
	wantIDs(t, out.Items, "b0", "b1", "b2", "b3", "b4")
	if len(f.calls) != 1 || f.calls[0] != (call{"boosted", 5, 0}) {
		t.Fatalf("calls = %+v", f.calls)
	}

	// second boosted page keeps the raw offset
	f.calls = nil
	out, err = s.Search(context.Background(), domain.SearchInput{Page: 2, Size: 5})
	if err != nil {
		t.Fatal(err)
	}
	wantIDs(t, out.Items, "b5", "b6", "b7", "b8", "b9")
	if f.calls[0] != (call{"boosted", 5, 5}) {
		t.Fatalf("calls = %+v", f.calls)
	}
}

func TestSearchRegularOffsetShiftsByBoostedCount(t *testing.T) {
	f := &fakeRepo{boosted: 3, total: 50}
	s := newSvc(f, true)

	_, err := s.Search(context.Background(), domain.SearchInput{Page: 4, Size: 10})
	if err != nil {
		t.Fatal(err)
	}
	// offset 30 into the global order is offset 27 of the regular set
	if len(f.calls) != 1 || f.calls[0] != (call{"regular", 10, 27}) {
		t.Fatalf("calls = %+v", f.calls)
	}
}

func TestSearchPromotedOnlyEmptySkipsRegularQuery(t *testing.T) {
	f := &fakeRepo{boosted: 0, total: 40}
	s := newSvc(f, true)

	out, err := s.Search(context.Background(), domain.SearchInput{PromotedOnly: true, Page: 1, Size: 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Items) != 0 || out.HasMore || out.Total != 0 {
		t.Fatalf("want empty page, got %+v", out)
	}
	if len(f.calls) != 0 {
		t.Fatalf("no window query expected, got %+v", f.calls)
	}
}

func TestSearchPromotedOnlyWindows(t *testing.T) {
	f := &fakeRepo{boosted: 7, total: 40}
	s := newSvc(f, true)

	out, err := s.Search(context.Background(), domain.SearchInput{PromotedOnly: true, Page: 2, Size: 5})
	if err != nil {
		t.Fatal(err)
	}
	wantIDs(t, out.Items, "b5", "b6")
	if out.Total != 7 || out.HasMore {
		t.Fatalf("total=%d hasMore=%v", out.Total, out.HasMore)
	}
	// the regular partition is never consulted in promoted only mode
	for _, c := range f.calls {
		if c.kind == "regular" {
			t.Fatalf("regular query issued: %+v", f.calls)
		}
	}
}

func TestSearchEstimateModeHasMoreFromFullPage(t *testing.T) {
	f := &fakeRepo{boosted: 0, total: 10}
	s := newSvc(f, false)

	out, err := s.Search(context.Background(), domain.SearchInput{Page: 1, Size: 5})
	if err != nil {
		t.Fatal(err)
	}
	if f.countEx {
		t.Fatalf("estimate mode should not request an exact count")
	}
	if !out.HasMore {
		t.Fatalf("full page implies more in estimate mode")
	}

	out, err = s.Search(context.Background(), domain.SearchInput{Page: 2, Size: 7})
	if err != nil {
		t.Fatal(err)
	}
	// short page implies the end even if the estimate is off
	if out.HasMore {
		t.Fatalf("short page must end pagination in estimate mode")
	}
}

func TestSearchPropagatesRepoErrors(t *testing.T) {
	for _, failOn := range []string{"boostedCount", "count", "boosted", "regular"} {
		f := &fakeRepo{boosted: 3, total: 12, failOn: failOn}
		s := newSvc(f, true)
		_, err := s.Search(context.Background(), domain.SearchInput{Page: 1, Size: 5})
		if err == nil {
			t.Fatalf("failOn=%s: expected error", failOn)
		}
		if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
			t.Fatalf("failOn=%s: code = %v", failOn, perr.CodeOf(err))
		}
	}
}
