package typed

import (
	"github.com/nmxmxh/arenakit/arena"
	"github.com/nmxmxh/arenakit/bump"
	"github.com/nmxmxh/arenakit/genstore"
)

// StorableArena is the generic extension point for caller-defined
// record types that implement Storable. Unlike F64Arena/I32Arena/
// AudioArena it does not use arena.Arena's fixed-width accessors
// directly; every Alloc/Get round-trips T through a scratch buffer and
// arena.Arena.WriteBytes/ReadBytes, at the cost of one copy.
type StorableArena[T Storable, B bump.Region, G genstore.Store] struct {
	inner   *arena.Arena[B, G]
	read    StorableReader[T]
	scratch []byte
}

// NewStorableArena builds a StorableArena over Managed capabilities.
// byteSize must equal every value's ByteSize(); read reconstructs T
// from the bytes a prior WriteBytes produced.
func NewStorableArena[T Storable](capacity, byteSize int32, read StorableReader[T]) *StorableArena[T, *bump.Managed, *genstore.Managed] {
	return &StorableArena[T, *bump.Managed, *genstore.Managed]{
		inner:   arena.New(capacity, byteSize),
		read:    read,
		scratch: make([]byte, byteSize),
	}
}

// NewStorableArenaWith builds a StorableArena over caller-supplied
// capabilities.
func NewStorableArenaWith[T Storable, B bump.Region, G genstore.Store](region B, gens G, byteSize, maxSlots int32, read StorableReader[T]) *StorableArena[T, B, G] {
	return &StorableArena[T, B, G]{
		inner:   arena.NewWith[B, G](region, gens, byteSize, maxSlots),
		read:    read,
		scratch: make([]byte, byteSize),
	}
}

// Alloc serializes value into a scratch buffer and copies it into a
// freshly allocated slot. As with the built-in façades, a write failure
// here would mean the bump region broke its post-alloc guarantee, which
// is a capability contract violation and aborts rather than returning
// ok=false.
func (a *StorableArena[T, B, G]) Alloc(value T) (TypedHandle[T], bool) {
	h, ok := a.inner.Alloc()
	if !ok {
		return TypedHandle[T]{}, false
	}
	value.WriteBytes(a.scratch, 0)
	a.inner.RequireSucceeded(a.inner.WriteBytes(h, 0, a.scratch[:value.ByteSize()]), "typed.StorableArena", "post-alloc write failed")
	return newTypedHandle[T](h), true
}

// Get reconstructs T from h's slot, or reports ok=false for a
// stale/invalid handle.
func (a *StorableArena[T, B, G]) Get(h TypedHandle[T]) (T, bool) {
	var zero T
	if !a.inner.ReadBytes(h.Inner(), 0, int32(len(a.scratch)), a.scratch) {
		return zero, false
	}
	return a.read(a.scratch, 0), true
}

// Set overwrites h's slot with a freshly serialized value.
func (a *StorableArena[T, B, G]) Set(h TypedHandle[T], value T) bool {
	value.WriteBytes(a.scratch, 0)
	return a.inner.WriteBytes(h.Inner(), 0, a.scratch[:value.ByteSize()])
}

func (a *StorableArena[T, B, G]) IsValid(h TypedHandle[T]) bool {
	return a.inner.IsValid(h.Inner())
}

func (a *StorableArena[T, B, G]) Reset() { a.inner.Reset() }

func (a *StorableArena[T, B, G]) Stats() arena.Stats { return a.inner.Stats() }
