package typed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmxmxh/arenakit/typed"
)

func TestStorableArena_RoundTripUserDefinedRecord(t *testing.T) {
	a := typed.NewStorableArena[typed.AudioFrame](2, 16, typed.ReadAudioFrame)

	h, ok := a.Alloc(typed.AudioFrame{Left: 1.5, Right: -2.5})
	require.True(t, ok)

	got, ok := a.Get(h)
	require.True(t, ok)
	assert.Equal(t, typed.AudioFrame{Left: 1.5, Right: -2.5}, got)

	require.True(t, a.Set(h, typed.AudioFrame{Left: 0, Right: 0}))
	got, ok = a.Get(h)
	require.True(t, ok)
	assert.Equal(t, typed.AudioFrame{Left: 0, Right: 0}, got)
}

func TestStorableArena_StaleHandleAfterReset(t *testing.T) {
	a := typed.NewStorableArena[typed.Float64Storable](1, 8, typed.ReadFloat64Storable)

	h, ok := a.Alloc(typed.Float64Storable(3.0))
	require.True(t, ok)

	a.Reset()

	assert.False(t, a.IsValid(h))
	_, ok = a.Get(h)
	assert.False(t, ok)
}

func TestStorableArena_CapacityExhaustion(t *testing.T) {
	a := typed.NewStorableArena[typed.Float64Storable](1, 8, typed.ReadFloat64Storable)
	_, ok := a.Alloc(typed.Float64Storable(1))
	require.True(t, ok)
	_, ok = a.Alloc(typed.Float64Storable(2))
	assert.False(t, ok)
}
