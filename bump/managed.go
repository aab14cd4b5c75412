package bump

import (
	"encoding/binary"
	"math"
)

// Managed is a Region backed by a Go-GC-managed byte slice. Bounds
// checks are enforced twice over: once by this type's own arithmetic,
// once implicitly by the Go runtime on every slice index. It is the
// default backend for arena.New.
type Managed struct {
	buf    []byte
	cursor int32
}

// NewManaged allocates a Managed region of the given byte capacity.
// Negative or zero capacity yields a zero-capacity region whose Alloc
// always reports ok=false.
func NewManaged(capacity int32) *Managed {
	if capacity < 0 {
		capacity = 0
	}
	return &Managed{buf: make([]byte, capacity)}
}

func (m *Managed) Capacity() int32 { return int32(len(m.buf)) }
func (m *Managed) Used() int32     { return m.cursor }

func (m *Managed) Alloc(size, align int32) (int32, bool) {
	aligned, newCursor, ok := computeAlloc(m.cursor, m.Capacity(), size, align)
	if !ok {
		return 0, false
	}
	m.cursor = newCursor
	return aligned, true
}

func (m *Managed) Reset() {
	m.cursor = 0
}

func (m *Managed) WriteI32(off, v int32) bool {
	if !fits(off, 4, m.Capacity()) {
		return false
	}
	binary.LittleEndian.PutUint32(m.buf[off:off+4], uint32(v))
	return true
}

func (m *Managed) ReadI32(off int32) (int32, bool) {
	if !fits(off, 4, m.Capacity()) {
		return 0, false
	}
	return int32(binary.LittleEndian.Uint32(m.buf[off : off+4])), true
}

func (m *Managed) WriteF64(off int32, v float64) bool {
	if !fits(off, 8, m.Capacity()) {
		return false
	}
	binary.LittleEndian.PutUint64(m.buf[off:off+8], math.Float64bits(v))
	return true
}

func (m *Managed) ReadF64(off int32) (float64, bool) {
	if !fits(off, 8, m.Capacity()) {
		return 0, false
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(m.buf[off : off+8])), true
}

func (m *Managed) WriteByte(off int32, v byte) bool {
	if !fits(off, 1, m.Capacity()) {
		return false
	}
	m.buf[off] = v
	return true
}

func (m *Managed) ReadByte(off int32) (byte, bool) {
	if !fits(off, 1, m.Capacity()) {
		return 0, false
	}
	return m.buf[off], true
}

func (m *Managed) WriteBytes(off int32, src []byte) bool {
	if !fits(off, int32(len(src)), m.Capacity()) {
		return false
	}
	copy(m.buf[off:], src)
	return true
}

func (m *Managed) ReadBytes(off, length int32, dst []byte) bool {
	if !fits(off, length, m.Capacity()) || int32(len(dst)) < length {
		return false
	}
	copy(dst[:length], m.buf[off:off+length])
	return true
}
