package repokit

// Binder builds a repo of type T bound to a specific Queryer.
// Repos are constructed unbound once (NewPG) and bound per call or per tx
type Binder[T any] interface {
	Bind(q Queryer) T
}

// BindFunc adapts a function to the Binder interface
type BindFunc[T any] func(q Queryer) T

// Bind implements Binder
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// MustBind panics when q is nil, for constructors that require a live queryer
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: bind called with nil queryer")
	}
	return b.Bind(q)
}
