// Package binding connects a component to values owned by its host.
//
// A Binding is a getter/setter pair. The component reads through it on every
// render and writes through it when it produces a new value; the host decides
// where the value lives and who gets notified.
package binding

// Binding is a read/write view of a host-owned value.
type Binding[V any] struct {
	get func() V
	set func(V)
}

// New returns a binding backed by get and set. A nil set makes the binding
// read-only: Set becomes a no-op.
func New[V any](get func() V, set func(V)) Binding[V] {
	return Binding[V]{get: get, set: set}
}

// Var binds to the variable p points at.
func Var[V any](p *V) Binding[V] {
	return Binding[V]{
		get: func() V { return *p },
		set: func(v V) { *p = v },
	}
}

// Constant returns a read-only binding that always yields v.
func Constant[V any](v V) Binding[V] {
	return Binding[V]{get: func() V { return v }}
}

// Get returns the current value, or the zero value for an unset binding.
func (b Binding[V]) Get() V {
	if b.get == nil {
		var zero V
		return zero
	}
	return b.get()
}

// Set writes v through the binding.
func (b Binding[V]) Set(v V) {
	if b.set != nil {
		b.set(v)
	}
}

// ReadOnly reports whether Set discards values.
func (b Binding[V]) ReadOnly() bool {
	return b.set == nil
}

// OnSet returns a binding that calls fn with every value written through it,
// after the write.
func (b Binding[V]) OnSet(fn func(V)) Binding[V] {
	set := b.set
	return Binding[V]{
		get: b.get,
		set: func(v V) {
			if set != nil {
				set(v)
			}
			fn(v)
		},
	}
}
