package arena

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmxmxh/arenakit/bump"
	"github.com/nmxmxh/arenakit/genstore"
)

// TestArena_GenerationSaturationAborts drives generation to the
// documented unreachable boundary directly (white-box, since no public
// constructor lets a caller start near math.MaxInt32) and asserts Reset
// aborts.
func TestArena_GenerationSaturationAborts(t *testing.T) {
	region := bump.NewManaged(16)
	gens := genstore.NewManaged(1)
	a := NewWith[*bump.Managed, *genstore.Managed](region, gens, 16, 1)
	a.generation = math.MaxInt32

	require.Panics(t, func() { a.Reset() })
}

func TestArena_PostAllocWriteGuaranteeHolds(t *testing.T) {
	a := New(2, 16)
	h, ok := a.Alloc()
	require.True(t, ok)

	assert.True(t, a.WriteF64(h, 0, 1))
	assert.True(t, a.WriteI32(h, 8, 2))
}
