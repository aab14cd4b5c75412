package bump

import (
	"encoding/binary"
	"math"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/nmxmxh/arenakit/internal/obs"
)

// Native is a Region backed by an anonymous, private mmap region —
// memory the Go garbage collector does not manage — following the
// MemoryProvider pattern in kernel/threads/sab/hal_native.go, but
// anonymous rather than file-backed since arenakit has no shared-memory
// peer to hand the mapping to.
//
// A finalizer is attached at construction so a forgotten Native region
// still releases its mapping; Destroy is available for deterministic
// early release and is idempotent.
type Native struct {
	data      []byte // the mmap'd region as returned by unix.Mmap; nil once destroyed
	cursor    int32
	destroyed bool
}

var log = obs.Component("bump")

// NewNative mmaps a private, anonymous region of the given byte
// capacity. Negative or zero capacity yields a zero-capacity region
// whose Alloc always reports ok=false, mirroring NewManaged — no
// mapping is made in that case, so Destroy on it is a no-op.
func NewNative(capacity int32) (*Native, error) {
	if capacity <= 0 {
		return &Native{}, nil
	}

	data, err := unix.Mmap(-1, 0, int(capacity), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}

	n := &Native{data: data}
	runtime.SetFinalizer(n, func(n *Native) { n.Destroy() })
	return n, nil
}

// Destroy unmaps the native buffer and nils the backing slice so a
// subsequent finalizer invocation — or a second explicit Destroy call —
// observes the nil pointer and does nothing. Two destroys can never
// double-unmap: this type is only ever owned by one goroutine.
func (n *Native) Destroy() {
	if n.destroyed || n.data == nil {
		n.destroyed = true
		return
	}
	if err := unix.Munmap(n.data); err != nil {
		log.Error("munmap failed", zap.Error(err))
	}
	n.data = nil
	n.destroyed = true
	runtime.SetFinalizer(n, nil)
}

func (n *Native) Capacity() int32 {
	if n.destroyed || n.data == nil {
		return 0
	}
	return int32(len(n.data))
}

func (n *Native) Used() int32 { return n.cursor }

func (n *Native) Alloc(size, align int32) (int32, bool) {
	if n.destroyed || n.data == nil {
		return 0, false
	}
	aligned, newCursor, ok := computeAlloc(n.cursor, n.Capacity(), size, align)
	if !ok {
		return 0, false
	}
	n.cursor = newCursor
	return aligned, true
}

func (n *Native) Reset() {
	if n.destroyed {
		return
	}
	n.cursor = 0
}

func (n *Native) WriteI32(off, v int32) bool {
	if n.destroyed || !fits(off, 4, n.Capacity()) {
		return false
	}
	binary.LittleEndian.PutUint32(n.data[off:off+4], uint32(v))
	return true
}

func (n *Native) ReadI32(off int32) (int32, bool) {
	if n.destroyed || !fits(off, 4, n.Capacity()) {
		return 0, false
	}
	return int32(binary.LittleEndian.Uint32(n.data[off : off+4])), true
}

func (n *Native) WriteF64(off int32, v float64) bool {
	if n.destroyed || !fits(off, 8, n.Capacity()) {
		return false
	}
	binary.LittleEndian.PutUint64(n.data[off:off+8], math.Float64bits(v))
	return true
}

func (n *Native) ReadF64(off int32) (float64, bool) {
	if n.destroyed || !fits(off, 8, n.Capacity()) {
		return 0, false
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(n.data[off : off+8])), true
}

func (n *Native) WriteByte(off int32, v byte) bool {
	if n.destroyed || !fits(off, 1, n.Capacity()) {
		return false
	}
	n.data[off] = v
	return true
}

func (n *Native) ReadByte(off int32) (byte, bool) {
	if n.destroyed || !fits(off, 1, n.Capacity()) {
		return 0, false
	}
	return n.data[off], true
}

func (n *Native) WriteBytes(off int32, src []byte) bool {
	if n.destroyed || !fits(off, int32(len(src)), n.Capacity()) {
		return false
	}
	copy(n.data[off:], src)
	return true
}

func (n *Native) ReadBytes(off, length int32, dst []byte) bool {
	if n.destroyed || !fits(off, length, n.Capacity()) || int32(len(dst)) < length {
		return false
	}
	copy(dst[:length], n.data[off:off+length])
	return true
}
