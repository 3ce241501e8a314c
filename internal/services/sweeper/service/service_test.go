package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"bazaar/internal/modkit/repokit"
	"bazaar/internal/platform/store"
	"bazaar/internal/services/sweeper/repo"
)

type fakeTag int64

func (f fakeTag) String() string      { return "UPDATE" }
func (f fakeTag) RowsAffected() int64 { return int64(f) }

type boolRow struct{ v bool }

func (r boolRow) Scan(dest ...any) error {
	*(dest[0].(*bool)) = r.v
	return nil
}

// fakeDB hands out the advisory lock result and counts update executions
type fakeDB struct {
	lock     bool
	affected int64

	inTx  bool
	execs []string
}

func (f *fakeDB) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return fakeTag(f.affected), nil
}

func (f *fakeDB) Query(context.Context, string, ...any) (store.Rows, error) {
	panic("unexpected Query")
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, _ ...any) store.Row {
	if !strings.Contains(sql, "pg_try_advisory_xact_lock") {
		panic("unexpected QueryRow: " + sql)
	}
	return boolRow{v: f.lock}
}

func (f *fakeDB) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	f.inTx = true
	return fn(f)
}

func TestSweepOnceClearsUnderLock(t *testing.T) {
	db := &fakeDB{lock: true, affected: 9}
	s := New(db, repo.NewPG(), Config{Grace: time.Hour})

	cleared, swept, err := s.SweepOnce(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !swept || cleared != 9 {
		t.Fatalf("swept=%v cleared=%d", swept, cleared)
	}
	if !db.inTx {
		t.Fatal("sweep must run inside a transaction")
	}
	if len(db.execs) != 1 || !strings.Contains(db.execs[0], "boost_expires_at") {
		t.Fatalf("execs = %v", db.execs)
	}
}

func TestSweepOnceSkipsWhenLockHeld(t *testing.T) {
	db := &fakeDB{lock: false}
	s := New(db, repo.NewPG(), Config{})

	cleared, swept, err := s.SweepOnce(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if swept || cleared != 0 {
		t.Fatalf("swept=%v cleared=%d, want clean skip", swept, cleared)
	}
	if len(db.execs) != 0 {
		t.Fatalf("no update expected when the lock is held: %v", db.execs)
	}
}

func TestNewRequiresDeps(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("nil TxRunner must panic")
		}
	}()
	New(nil, repo.NewPG(), Config{})
}

var _ repokit.TxRunner = (*fakeDB)(nil)
