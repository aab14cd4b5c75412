// Package audio implements component E.3 of arenakit's engine: a pool
// of multi-sample audio buffers, one slot per buffer, keyed by a
// BufferHandle rather than a typed handle since a buffer holds many
// samples, not one value.
package audio

import (
	"math"

	"github.com/nmxmxh/arenakit/arena"
	"github.com/nmxmxh/arenakit/bump"
	"github.com/nmxmxh/arenakit/genstore"
)

// BufferHandle wraps an arena.Handle for one audio buffer slot. Unlike
// typed.TypedHandle it is not parameterized by element type.
type BufferHandle struct {
	h arena.Handle
}

// AudioBufferPool is a pool of frames-per-buffer × channels interleaved
// float64 sample buffers, all sharing one lifetime ended by Reset — the
// per-callback allocation pattern a real-time audio DSP loop uses.
type AudioBufferPool[B bump.Region, G genstore.Store] struct {
	inner           *arena.Arena[B, G]
	framesPerBuffer int32
	channels        int32
}

// NewAudioBufferPool builds a pool over Managed capabilities holding
// bufferCount buffers of framesPerBuffer*channels float64 samples each.
// Overflow in the frames*channels*8 slot-size product, or non-positive
// dimensions, yields a zero-capacity pool whose Alloc always fails.
func NewAudioBufferPool(framesPerBuffer, channels, bufferCount int32) *AudioBufferPool[*bump.Managed, *genstore.Managed] {
	slotSize, ok := bufferSlotSize(framesPerBuffer, channels)
	if !ok {
		framesPerBuffer, channels, slotSize = 0, 0, 0
		bufferCount = 0
	}

	return &AudioBufferPool[*bump.Managed, *genstore.Managed]{
		inner:           arena.New(bufferCount, slotSize),
		framesPerBuffer: framesPerBuffer,
		channels:        channels,
	}
}

// NewAudioBufferPoolWith builds a pool over caller-supplied capabilities.
func NewAudioBufferPoolWith[B bump.Region, G genstore.Store](region B, gens G, framesPerBuffer, channels, bufferCount int32) *AudioBufferPool[B, G] {
	slotSize, ok := bufferSlotSize(framesPerBuffer, channels)
	if !ok {
		framesPerBuffer, channels, slotSize, bufferCount = 0, 0, 0, 0
	}

	return &AudioBufferPool[B, G]{
		inner:           arena.NewWith[B, G](region, gens, slotSize, bufferCount),
		framesPerBuffer: framesPerBuffer,
		channels:        channels,
	}
}

func bufferSlotSize(framesPerBuffer, channels int32) (int32, bool) {
	if framesPerBuffer <= 0 || channels <= 0 {
		return 0, false
	}
	product := int64(framesPerBuffer) * int64(channels) * 8
	if product > math.MaxInt32 {
		return 0, false
	}
	return int32(product), true
}

// Alloc returns an uninitialized buffer slot: unlike the single-value
// typed façades, no write happens here, since DSP code is expected to
// overwrite every sample. Because nothing is written, Alloc can never
// trigger a contract-violation abort — it only returns ok=false at
// capacity exhaustion.
func (p *AudioBufferPool[B, G]) Alloc() (BufferHandle, bool) {
	h, ok := p.inner.Alloc()
	if !ok {
		return BufferHandle{}, false
	}
	return BufferHandle{h: h}, true
}

func (p *AudioBufferPool[B, G]) sampleOffset(frame, channel int32) (int32, bool) {
	if frame < 0 || frame >= p.framesPerBuffer {
		return 0, false
	}
	if channel < 0 || channel >= p.channels {
		return 0, false
	}
	return (frame*p.channels + channel) * 8, true
}

// WriteSample writes one interleaved sample at (frame, channel).
func (p *AudioBufferPool[B, G]) WriteSample(h BufferHandle, frame, channel int32, v float64) bool {
	off, ok := p.sampleOffset(frame, channel)
	if !ok {
		return false
	}
	return p.inner.WriteF64(h.h, off, v)
}

// ReadSample reads one interleaved sample at (frame, channel).
func (p *AudioBufferPool[B, G]) ReadSample(h BufferHandle, frame, channel int32) (float64, bool) {
	off, ok := p.sampleOffset(frame, channel)
	if !ok {
		return 0, false
	}
	return p.inner.ReadF64(h.h, off)
}

func (p *AudioBufferPool[B, G]) IsValid(h BufferHandle) bool { return p.inner.IsValid(h.h) }

func (p *AudioBufferPool[B, G]) Reset() { p.inner.Reset() }

func (p *AudioBufferPool[B, G]) FramesPerBuffer() int32 { return p.framesPerBuffer }
func (p *AudioBufferPool[B, G]) Channels() int32        { return p.channels }

func (p *AudioBufferPool[B, G]) Stats() arena.Stats { return p.inner.Stats() }
