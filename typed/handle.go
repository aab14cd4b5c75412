package typed

import "github.com/nmxmxh/arenakit/arena"

// TypedHandle is a phantom-typed wrapper around arena.Handle,
// parameterized by the element type T it refers to. The [0]T field
// carries T only at compile time — it occupies no space at runtime.
// Equality and the underlying handle are identical to the wrapped
// arena.Handle; TypedHandle exists purely to stop a caller from
// presenting an F64Arena handle to an I32Arena at compile time.
type TypedHandle[T any] struct {
	h Handle
	_ [0]T
}

// Handle is the plain generational handle this type wraps.
type Handle = arena.Handle

func newTypedHandle[T any](h Handle) TypedHandle[T] {
	return TypedHandle[T]{h: h}
}

// Inner returns the wrapped, type-erased Handle.
func (t TypedHandle[T]) Inner() Handle { return t.h }
