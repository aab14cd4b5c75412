// Package arena implements components C and D of arenakit's engine: the
// generational Handle (component C) and the generic slot arena
// (component D) that composes a bump.Region with a genstore.Store to
// give slots identity and stale-handle detection.
package arena

import (
	"math"

	"go.uber.org/zap"

	"github.com/nmxmxh/arenakit/bump"
	"github.com/nmxmxh/arenakit/genstore"
	"github.com/nmxmxh/arenakit/internal/obs"
)

const slotAlign = 8

// destroyer is implemented by backends that own releasable native
// memory (bump.Native, genstore.Native). Arena.Destroy forwards to it
// when present and is a no-op for Go-GC-managed backends.
type destroyer interface {
	Destroy()
}

// Arena is the generational slot arena. It is generic
// over the two capability interfaces so that a given (B, G) pairing —
// e.g. (*bump.Managed, *genstore.Managed) or (*bump.Native,
// *genstore.Native) — is monomorphized by the Go compiler into its own
// concrete instantiation: there is no shared vtable walk across backend
// kinds on the alloc/read/write hot path.
type Arena[B bump.Region, G genstore.Store] struct {
	region B
	gens   G

	generation int32
	count      int32
	slotSize   int32
	maxSlots   int32

	metrics *obs.ArenaMetrics
	log     *zap.Logger
}

// New builds an Arena from Managed capabilities sized to hold slotCount
// slots of slotSize bytes each. Overflow in slotCount*slotSize, or a
// non-positive slotCount/slotSize, yields a zero-capacity arena whose
// Alloc always returns ok=false — it never panics on bad construction
// input, only on the fatal conditions documented on Reset below.
func New(slotCount, slotSize int32) *Arena[*bump.Managed, *genstore.Managed] {
	capacity, maxSlots, ok := boundedCapacity(slotCount, slotSize)
	if !ok {
		capacity, maxSlots = 0, 0
	}

	a := &Arena[*bump.Managed, *genstore.Managed]{
		region:   bump.NewManaged(capacity),
		gens:     genstore.NewManaged(maxSlots),
		slotSize: slotSize,
		maxSlots: maxSlots,
		metrics:  obs.NewArenaMetrics("arena"),
		log:      obs.Component("arena"),
	}
	a.observe()
	a.log.Debug("arena constructed", zap.Int32("maxSlots", maxSlots), zap.Int32("slotSize", slotSize))
	return a
}

// NewWith builds an Arena from caller-supplied, already-constructed
// capabilities. The bump region must be empty (Used() == 0); violating
// this precondition aborts, because a non-empty region would desync
// slot offsets from slot indices. maxSlots is clamped to the minimum of
// the caller's request, region.Capacity()/slotSize, and gens.Length()
// — a silent clamp, matching the upstream behavior this module's
// constructors otherwise follow.
func NewWith[B bump.Region, G genstore.Store](region B, gens G, slotSize, maxSlots int32) *Arena[B, G] {
	if region.Used() != 0 {
		// No *obs.ArenaMetrics exists yet at this point in construction,
		// so there is nothing to increment AbortOccurred against.
		obs.Abort("arena", "NewWith requires an empty bump region")
	}

	if slotSize > 0 {
		if byCapacity := region.Capacity() / slotSize; byCapacity < maxSlots {
			maxSlots = byCapacity
		}
	} else {
		maxSlots = 0
	}
	if gens.Length() < maxSlots {
		maxSlots = gens.Length()
	}
	if maxSlots < 0 {
		maxSlots = 0
	}

	a := &Arena[B, G]{
		region:   region,
		gens:     gens,
		slotSize: slotSize,
		maxSlots: maxSlots,
		metrics:  obs.NewArenaMetrics("arena"),
		log:      obs.Component("arena"),
	}
	a.observe()
	a.log.Debug("arena constructed from caller-supplied capabilities", zap.Int32("maxSlots", maxSlots), zap.Int32("slotSize", slotSize))
	return a
}

// boundedCapacity computes slotCount*slotSize overflow-safely and
// returns the capacity plus the (unchanged) slot count as maxSlots.
func boundedCapacity(slotCount, slotSize int32) (capacity, maxSlots int32, ok bool) {
	if slotCount <= 0 || slotSize <= 0 {
		return 0, 0, false
	}
	if int64(slotCount)*int64(slotSize) > math.MaxInt32 {
		return 0, 0, false
	}
	return slotCount * slotSize, slotCount, true
}

// Alloc appends a slot and returns a Handle that is valid immediately
// after this call. It returns ok=false once count reaches maxSlots or
// the underlying bump region is exhausted.
func (a *Arena[B, G]) Alloc() (Handle, bool) {
	if a.count >= a.maxSlots {
		return Handle{}, false
	}
	if _, ok := a.region.Alloc(a.slotSize, slotAlign); !ok {
		return Handle{}, false
	}

	i := a.count
	a.gens.Set(i, a.generation)
	a.count++
	a.observe()

	return Handle{SlotIndex: i, Generation: a.generation}, true
}

// IsValid evaluates the central validity predicate: h must
// index a slot allocated in the current generation, and the generation
// store must still record that same generation at that slot.
func (a *Arena[B, G]) IsValid(h Handle) bool {
	if h.SlotIndex < 0 || h.SlotIndex >= a.count {
		return false
	}
	if h.Generation != a.generation {
		return false
	}
	return a.gens.Get(h.SlotIndex) == h.Generation
}

// SlotOffset returns the byte offset of h's slot within the bump
// region, or ok=false if h is not valid. Overflow cannot occur here:
// slotSize*maxSlots was already bounded at construction.
func (a *Arena[B, G]) SlotOffset(h Handle) (int32, bool) {
	if !a.IsValid(h) {
		return 0, false
	}
	return h.SlotIndex * a.slotSize, true
}

// Reset rewinds the bump region, bumps the generation, and zeros count,
// in O(1): the generation store is left untouched (lazy invalidation),
// so every handle minted before this call becomes stale the instant its
// stored generation stops matching a.generation.
func (a *Arena[B, G]) Reset() {
	a.region.Reset()
	if a.generation == math.MaxInt32 {
		a.metrics.AbortOccurred()
		obs.Abort("arena", "generation counter exhausted")
	}
	a.generation++
	a.count = 0
	a.metrics.ResetOccurred()
	a.observe()
}

// RequireSucceeded aborts this arena's component if ok is false,
// recording the abort against this arena's own metrics first. Typed
// façades built on top of Arena call this instead of obs.RequireSucceeded
// directly so their post-alloc-write contract violations are visible in
// the same aborts_total series as the arena's own.
func (a *Arena[B, G]) RequireSucceeded(ok bool, component, reason string) {
	if !ok {
		a.metrics.AbortOccurred()
	}
	obs.RequireSucceeded(ok, component, reason)
}

func fieldFits(fieldOff, typeSize, slotSize int32) bool {
	if fieldOff < 0 {
		return false
	}
	return typeSize <= slotSize-fieldOff
}

// WriteI32 writes a 4-byte field at fieldOff within h's slot.
func (a *Arena[B, G]) WriteI32(h Handle, fieldOff, v int32) bool {
	off, ok := a.fieldOffset(h, fieldOff, 4)
	if !ok {
		return false
	}
	return a.region.WriteI32(off, v)
}

// ReadI32 reads a 4-byte field at fieldOff within h's slot.
func (a *Arena[B, G]) ReadI32(h Handle, fieldOff int32) (int32, bool) {
	off, ok := a.fieldOffset(h, fieldOff, 4)
	if !ok {
		return 0, false
	}
	return a.region.ReadI32(off)
}

// WriteF64 writes an 8-byte field at fieldOff within h's slot.
func (a *Arena[B, G]) WriteF64(h Handle, fieldOff int32, v float64) bool {
	off, ok := a.fieldOffset(h, fieldOff, 8)
	if !ok {
		return false
	}
	return a.region.WriteF64(off, v)
}

// ReadF64 reads an 8-byte field at fieldOff within h's slot.
func (a *Arena[B, G]) ReadF64(h Handle, fieldOff int32) (float64, bool) {
	off, ok := a.fieldOffset(h, fieldOff, 8)
	if !ok {
		return 0, false
	}
	return a.region.ReadF64(off)
}

// WriteByte writes a 1-byte field at fieldOff within h's slot.
func (a *Arena[B, G]) WriteByte(h Handle, fieldOff int32, v byte) bool {
	off, ok := a.fieldOffset(h, fieldOff, 1)
	if !ok {
		return false
	}
	return a.region.WriteByte(off, v)
}

// ReadByte reads a 1-byte field at fieldOff within h's slot.
func (a *Arena[B, G]) ReadByte(h Handle, fieldOff int32) (byte, bool) {
	off, ok := a.fieldOffset(h, fieldOff, 1)
	if !ok {
		return 0, false
	}
	return a.region.ReadByte(off)
}

// WriteBytes writes a variable-length field at fieldOff within h's
// slot. It underlies the typed.Storable extension point, where
// caller-defined records do not fit one of the fixed-width accessors
// above.
func (a *Arena[B, G]) WriteBytes(h Handle, fieldOff int32, src []byte) bool {
	off, ok := a.fieldOffset(h, fieldOff, int32(len(src)))
	if !ok {
		return false
	}
	return a.region.WriteBytes(off, src)
}

// ReadBytes reads a length-byte field at fieldOff within h's slot into
// dst.
func (a *Arena[B, G]) ReadBytes(h Handle, fieldOff, length int32, dst []byte) bool {
	off, ok := a.fieldOffset(h, fieldOff, length)
	if !ok {
		return false
	}
	return a.region.ReadBytes(off, length, dst)
}

func (a *Arena[B, G]) fieldOffset(h Handle, fieldOff, typeSize int32) (int32, bool) {
	slotOff, ok := a.SlotOffset(h)
	if !ok {
		return 0, false
	}
	if !fieldFits(fieldOff, typeSize, a.slotSize) {
		return 0, false
	}
	return slotOff + fieldOff, true
}

// Stats is a read-only snapshot of an arena's bookkeeping fields,
// exposed for metrics and tests.
type Stats struct {
	Capacity   int32
	Used       int32
	Count      int32
	MaxSlots   int32
	Generation int32
}

// Stats returns a snapshot of this arena's current bookkeeping.
func (a *Arena[B, G]) Stats() Stats {
	return Stats{
		Capacity:   a.region.Capacity(),
		Used:       a.region.Used(),
		Count:      a.count,
		MaxSlots:   a.maxSlots,
		Generation: a.generation,
	}
}

func (a *Arena[B, G]) observe() {
	a.metrics.Observe(a.region.Capacity(), a.region.Used(), a.count)
}

// Destroy releases the underlying capabilities if they support explicit
// release (the Native backends do); it is a no-op for Managed backends,
// which rely entirely on the Go garbage collector.
func (a *Arena[B, G]) Destroy() {
	if d, ok := any(a.region).(destroyer); ok {
		d.Destroy()
	}
	if d, ok := any(a.gens).(destroyer); ok {
		d.Destroy()
	}
}
