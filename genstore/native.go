package genstore

import (
	"encoding/binary"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/nmxmxh/arenakit/internal/obs"
)

var log = obs.Component("genstore")

// Native is a Store backed by an anonymous mmap region holding
// length int32 generation counters, mirroring bump.Native: manually
// managed memory, finalizer-backed, with an idempotent Destroy. It
// exists so a Native-backed arena.Arena never has to fall back to a
// Go-GC-managed slice for its generation array.
type Native struct {
	data      []byte
	length    int32
	destroyed bool
}

// NewNative mmaps room for length int32 generation counters, clamping a
// negative length to 0 (which makes no mapping at all).
func NewNative(length int32) (*Native, error) {
	length = clampLength(length)
	if length == 0 {
		return &Native{}, nil
	}

	size := int(length) * 4
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}

	n := &Native{data: data, length: length}
	runtime.SetFinalizer(n, func(n *Native) { n.Destroy() })
	return n, nil
}

func (n *Native) Length() int32 {
	if n.destroyed {
		return 0
	}
	return n.length
}

func (n *Native) Get(index int32) int32 {
	if n.destroyed || index < 0 || index >= n.length {
		return 0
	}
	off := index * 4
	return int32(binary.LittleEndian.Uint32(n.data[off : off+4]))
}

func (n *Native) Set(index int32, generation int32) {
	if n.destroyed || index < 0 || index >= n.length {
		return
	}
	off := index * 4
	binary.LittleEndian.PutUint32(n.data[off:off+4], uint32(generation))
}

// Destroy unmaps the backing region and nils it so a later finalizer
// firing, or a repeat explicit Destroy, is a no-op.
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
