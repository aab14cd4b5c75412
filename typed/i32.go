package typed

import (
	"github.com/nmxmxh/arenakit/arena"
	"github.com/nmxmxh/arenakit/bump"
	"github.com/nmxmxh/arenakit/genstore"
)

// I32Arena is a single-value typed façade over a generic arena.Arena
// whose slot size is exactly 4 bytes — one int32 per slot.
type I32Arena[B bump.Region, G genstore.Store] struct {
	inner *arena.Arena[B, G]
}

// NewI32Arena builds an I32Arena over Managed capabilities sized for
// capacity values.
func NewI32Arena(capacity int32) *I32Arena[*bump.Managed, *genstore.Managed] {
	return &I32Arena[*bump.Managed, *genstore.Managed]{inner: arena.New(capacity, 4)}
}

// NewI32ArenaWith builds an I32Arena over caller-supplied capabilities.
func NewI32ArenaWith[B bump.Region, G genstore.Store](region B, gens G, maxSlots int32) *I32Arena[B, G] {
	return &I32Arena[B, G]{inner: arena.NewWith[B, G](region, gens, 4, maxSlots)}
}

func (a *I32Arena[B, G]) Alloc(value int32) (TypedHandle[int32], bool) {
	h, ok := a.inner.Alloc()
	if !ok {
		return TypedHandle[int32]{}, false
	}
	a.inner.RequireSucceeded(a.inner.WriteI32(h, 0, value), "typed.I32Arena", "post-alloc write failed")
	return newTypedHandle[int32](h), true
}

func (a *I32Arena[B, G]) Get(h TypedHandle[int32]) (int32, bool) {
	return a.inner.ReadI32(h.Inner(), 0)
}

func (a *I32Arena[B, G]) Set(h TypedHandle[int32], v int32) bool {
	return a.inner.WriteI32(h.Inner(), 0, v)
}

func (a *I32Arena[B, G]) IsValid(h TypedHandle[int32]) bool {
	return a.inner.IsValid(h.Inner())
}

func (a *I32Arena[B, G]) Reset() { a.inner.Reset() }

func (a *I32Arena[B, G]) Stats() arena.Stats { return a.inner.Stats() }
