package typed

import (
	"github.com/nmxmxh/arenakit/arena"
	"github.com/nmxmxh/arenakit/bump"
	"github.com/nmxmxh/arenakit/genstore"
)

// AudioArena is a single-value typed façade whose slot size is exactly
// 16 bytes — one AudioFrame per slot, left at field offset 0 and right
// at field offset 8.
type AudioArena[B bump.Region, G genstore.Store] struct {
	inner *arena.Arena[B, G]
}

// NewAudioArena builds an AudioArena over Managed capabilities sized
// for capacity frames.
func NewAudioArena(capacity int32) *AudioArena[*bump.Managed, *genstore.Managed] {
	return &AudioArena[*bump.Managed, *genstore.Managed]{inner: arena.New(capacity, audioFrameSize)}
}

// NewAudioArenaWith builds an AudioArena over caller-supplied capabilities.
func NewAudioArenaWith[B bump.Region, G genstore.Store](region B, gens G, maxSlots int32) *AudioArena[B, G] {
	return &AudioArena[B, G]{inner: arena.NewWith[B, G](region, gens, audioFrameSize, maxSlots)}
}

func (a *AudioArena[B, G]) Alloc(value AudioFrame) (TypedHandle[AudioFrame], bool) {
	h, ok := a.inner.Alloc()
	if !ok {
		return TypedHandle[AudioFrame]{}, false
	}
	a.inner.RequireSucceeded(a.inner.WriteF64(h, 0, value.Left), "typed.AudioArena", "post-alloc write failed")
	a.inner.RequireSucceeded(a.inner.WriteF64(h, 8, value.Right), "typed.AudioArena", "post-alloc write failed")
	return newTypedHandle[AudioFrame](h), true
}

func (a *AudioArena[B, G]) Get(h TypedHandle[AudioFrame]) (AudioFrame, bool) {
	left, ok := a.inner.ReadF64(h.Inner(), 0)
	if !ok {
		return AudioFrame{}, false
	}
	right, ok := a.inner.ReadF64(h.Inner(), 8)
	if !ok {
		return AudioFrame{}, false
	}
	return AudioFrame{Left: left, Right: right}, true
}

func (a *AudioArena[B, G]) Set(h TypedHandle[AudioFrame], v AudioFrame) bool {
	if !a.inner.WriteF64(h.Inner(), 0, v.Left) {
		return false
	}
	return a.inner.WriteF64(h.Inner(), 8, v.Right)
}

func (a *AudioArena[B, G]) IsValid(h TypedHandle[AudioFrame]) bool {
	return a.inner.IsValid(h.Inner())
}

func (a *AudioArena[B, G]) Reset() { a.inner.Reset() }

func (a *AudioArena[B, G]) Stats() arena.Stats { return a.inner.Stats() }
