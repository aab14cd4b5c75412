// Package bump implements capability A of arenakit's engine: a bump
// allocator over a contiguous byte region with aligned, overflow-safe
// allocation and typed accessors. It has no notion of slots, handles,
// or generations — those live one layer up, in package arena.
package bump

// Region is the bump-allocator capability. Two implementations are
// provided: Managed (a Go-GC-backed byte slice) and Native (an mmap'd,
// manually-released region with a finalizer). Both obey the same
// contract, so arena.Arena can be instantiated over either without any
// change to its own logic.
type Region interface {
	// Alloc returns a byte offset that is a multiple of align such that
	// [offset, offset+size) lies within the region, or ok=false if size
	// or align are non-positive, the aligned cursor would overflow
	// int32, or the aligned range would exceed Capacity.
	Alloc(size, align int32) (offset int32, ok bool)

	// Reset rewinds the cursor to 0 without zeroing memory.
	Reset()

	Capacity() int32
	Used() int32

	WriteI32(off, v int32) bool
	ReadI32(off int32) (int32, bool)
	WriteF64(off int32, v float64) bool
	ReadF64(off int32) (float64, bool)
	WriteByte(off int32, v byte) bool
	ReadByte(off int32) (byte, bool)

	// WriteBytes copies src into the region starting at off, or reports
	// ok=false if src does not fully fit. It underlies the Storable
	// extension point, where a caller-defined record serializes into a
	// scratch buffer that is then copied in as one run of bytes rather
	// than field by field.
	WriteBytes(off int32, src []byte) bool
	// ReadBytes copies length bytes starting at off into dst (which must
	// be at least length long), or reports ok=false if the range does
	// not fully fit.
	ReadBytes(off, length int32, dst []byte) bool
}

// align8 is the alignment arena.Arena requests for every slot: it is
// sufficient for a float64 field and is a safe upper bound for int32
// and byte fields too.
const align8 = 8

// computeAlloc implements the modulo-padding alignment rule from the
// spec: it never computes cursor+align-1 (which can overflow for a
// large align) and never computes cursor+padding+size in one step
// (which can overflow for a cursor near int32 max). It returns the
// aligned offset and the new cursor, or ok=false.
func computeAlloc(cursor, capacity, size, align int32) (aligned, newCursor int32, ok bool) {
	if size <= 0 || align <= 0 {
		return 0, 0, false
	}

	r := cursor % align
	var padding int32
	if r != 0 {
		padding = align - r
	}

	if padding > capacity-cursor {
		return 0, 0, false
	}
	aligned = cursor + padding

	if size > capacity-aligned {
		return 0, 0, false
	}
	newCursor = aligned + size
	return aligned, newCursor, true
}

// fits reports whether a type_size-byte field at off lies within
// [0, capacity), checked overflow-safely (no off+size addition that
// could wrap before comparison against a bound derived the same way).
func fits(off, typeSize, capacity int32) bool {
	if off < 0 {
		return false
	}
	return typeSize <= capacity-off
}
