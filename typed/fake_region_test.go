package typed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nmxmxh/arenakit/genstore"
	"github.com/nmxmxh/arenakit/internal/obs"
	"github.com/nmxmxh/arenakit/typed"
)

// fakeRegion is a bump.Region whose Alloc always succeeds but whose
// writes always fail — a backend that breaks its own post-alloc write
// guarantee. It exists only to drive the typed façades' abort path,
// which a well-behaved backend never reaches.
type fakeRegion struct {
	capacity int32
	cursor   int32
}

func newFakeRegion(capacity int32) *fakeRegion {
	return &fakeRegion{capacity: capacity}
}

func (f *fakeRegion) Alloc(size, align int32) (int32, bool) {
	if size <= 0 || f.cursor+size > f.capacity {
		return 0, false
	}
	off := f.cursor
	f.cursor += size
	return off, true
}

func (f *fakeRegion) Reset()          { f.cursor = 0 }
func (f *fakeRegion) Capacity() int32 { return f.capacity }
func (f *fakeRegion) Used() int32     { return f.cursor }

func (f *fakeRegion) WriteI32(off int32, v int32) bool { return false }
func (f *fakeRegion) ReadI32(off int32) (int32, bool) { return 0, false }
func (f *fakeRegion) WriteF64(off int32, v float64) bool { return false }
func (f *fakeRegion) ReadF64(off int32) (float64, bool) { return 0, false }
func (f *fakeRegion) WriteByte(off int32, v byte) bool { return false }
func (f *fakeRegion) ReadByte(off int32) (byte, bool) { return 0, false }
func (f *fakeRegion) WriteBytes(off int32, src []byte) bool { return false }
func (f *fakeRegion) ReadBytes(off, length int32, dst []byte) bool { return false }

// requirePanicsWithContractViolation fails t unless fn panics with an
// obs.ContractViolation, mirroring arena/internal_test.go's white-box
// panic pattern but additionally checking the panic value's type, since
// a typed façade must abort rather than panic on some unrelated bug.
func requirePanicsWithContractViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		_, ok := r.(obs.ContractViolation)
		require.True(t, ok, "expected obs.ContractViolation, got %T: %v", r, r)
	}()
	fn()
}

func TestF64Arena_AbortsWhenBackendRejectsPostAllocWrite(t *testing.T) {
	region := newFakeRegion(64)
	gens := genstore.NewManaged(4)
	a := typed.NewF64ArenaWith[*fakeRegion, *genstore.Managed](region, gens, 4)

	requirePanicsWithContractViolation(t, func() { a.Alloc(1.0) })
}

func TestI32Arena_AbortsWhenBackendRejectsPostAllocWrite(t *testing.T) {
	region := newFakeRegion(64)
	gens := genstore.NewManaged(4)
	a := typed.NewI32ArenaWith[*fakeRegion, *genstore.Managed](region, gens, 4)

	requirePanicsWithContractViolation(t, func() { a.Alloc(7) })
}

func TestAudioArena_AbortsWhenBackendRejectsPostAllocWrite(t *testing.T) {
	region := newFakeRegion(64)
	gens := genstore.NewManaged(4)
	a := typed.NewAudioArenaWith[*fakeRegion, *genstore.Managed](region, gens, 4)

	requirePanicsWithContractViolation(t, func() { a.Alloc(typed.AudioFrame{Left: 1, Right: 2}) })
}

func TestStorableArena_AbortsWhenBackendRejectsPostAllocWrite(t *testing.T) {
	region := newFakeRegion(64)
	gens := genstore.NewManaged(4)
	a := typed.NewStorableArenaWith[typed.Float64Storable, *fakeRegion, *genstore.Managed](
		region, gens, 8, 4, typed.ReadFloat64Storable,
	)

	requirePanicsWithContractViolation(t, func() { a.Alloc(typed.Float64Storable(3.5)) })
}
