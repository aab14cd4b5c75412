package typed

import (
	"github.com/nmxmxh/arenakit/arena"
	"github.com/nmxmxh/arenakit/bump"
	"github.com/nmxmxh/arenakit/genstore"
)

// F64Arena is a single-value typed façade over a generic arena.Arena
// whose slot size is exactly 8 bytes — one float64 per slot.
type F64Arena[B bump.Region, G genstore.Store] struct {
	inner *arena.Arena[B, G]
}

// NewF64Arena builds an F64Arena over Managed capabilities sized for
// capacity values.
func NewF64Arena(capacity int32) *F64Arena[*bump.Managed, *genstore.Managed] {
	return &F64Arena[*bump.Managed, *genstore.Managed]{inner: arena.New(capacity, 8)}
}

// NewF64ArenaWith builds an F64Arena over caller-supplied capabilities.
func NewF64ArenaWith[B bump.Region, G genstore.Store](region B, gens G, maxSlots int32) *F64Arena[B, G] {
	return &F64Arena[B, G]{inner: arena.NewWith[B, G](region, gens, 8, maxSlots)}
}

// Alloc allocates a slot and writes value into it. Since the inner
// Alloc already succeeded, the write that follows can only fail if the
// bump region broke its own post-alloc write guarantee — that is a
// capability contract violation, not caller error, so it aborts rather
// than returning ok=false.
func (a *F64Arena[B, G]) Alloc(value float64) (TypedHandle[float64], bool) {
	h, ok := a.inner.Alloc()
	if !ok {
		return TypedHandle[float64]{}, false
	}
	a.inner.RequireSucceeded(a.inner.WriteF64(h, 0, value), "typed.F64Arena", "post-alloc write failed")
	return newTypedHandle[float64](h), true
}

func (a *F64Arena[B, G]) Get(h TypedHandle[float64]) (float64, bool) {
	return a.inner.ReadF64(h.Inner(), 0)
}

func (a *F64Arena[B, G]) Set(h TypedHandle[float64], v float64) bool {
	return a.inner.WriteF64(h.Inner(), 0, v)
}

func (a *F64Arena[B, G]) IsValid(h TypedHandle[float64]) bool {
	return a.inner.IsValid(h.Inner())
}

func (a *F64Arena[B, G]) Reset() { a.inner.Reset() }

func (a *F64Arena[B, G]) Stats() arena.Stats { return a.inner.Stats() }
