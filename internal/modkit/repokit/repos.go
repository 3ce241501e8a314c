// Package repokit holds the repo layer seams shared across service verticals
package repokit

import (
	"context"

	"bazaar/internal/platform/store"
)

// Queryer is the narrow sql surface a bound repo runs against,
// either a pool or an open transaction
type Queryer = store.RowQuerier

// TxRunner adds transaction scoping on top of Queryer
type TxRunner = store.TxRunner

// Rows re-exports the store row set for repo scan helpers
type Rows = store.Rows

// Row re-exports the store single row
type Row = store.Row

// WithTx runs fn inside a transaction, binding repo T to the tx queryer.
// Commit on nil error, rollback otherwise
func WithTx[T any](ctx context.Context, run TxRunner, b Binder[T], fn func(repo T) error) error {
	return run.Tx(ctx, func(q Queryer) error {
		return fn(b.Bind(q))
	})
}
