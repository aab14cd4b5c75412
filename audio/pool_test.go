package audio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmxmxh/arenakit/audio"
)

func TestAudioBufferPool_PerCallbackLifecycle(t *testing.T) {
	pool := audio.NewAudioBufferPool(4, 2, 1)

	// First "callback".
	pool.Reset()
	b, ok := pool.Alloc()
	require.True(t, ok)
	require.True(t, pool.WriteSample(b, 2, 1, 0.5))
	v, ok := pool.ReadSample(b, 2, 1)
	require.True(t, ok)
	assert.Equal(t, 0.5, v)

	// Second "callback": reset on entry makes the previous handle stale.
	pool.Reset()
	assert.False(t, pool.IsValid(b))
	_, ok = pool.ReadSample(b, 2, 1)
	assert.False(t, ok)
}

func TestAudioBufferPool_SampleIndependence(t *testing.T) {
	pool := audio.NewAudioBufferPool(4, 2, 1)
	b, ok := pool.Alloc()
	require.True(t, ok)

	require.True(t, pool.WriteSample(b, 0, 0, 1.0))
	require.True(t, pool.WriteSample(b, 1, 0, 2.0))
	require.True(t, pool.WriteSample(b, 1, 1, 3.0))

	v, ok := pool.ReadSample(b, 0, 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	v, ok = pool.ReadSample(b, 1, 0)
	require.True(t, ok)
	assert.Equal(t, 2.0, v, "writing (1,1) must not change (1,0)")

	v, ok = pool.ReadSample(b, 1, 1)
	require.True(t, ok)
	assert.Equal(t, 3.0, v)
}

func TestAudioBufferPool_OutOfRangeFrameOrChannel(t *testing.T) {
	pool := audio.NewAudioBufferPool(4, 2, 1)
	b, ok := pool.Alloc()
	require.True(t, ok)

	assert.False(t, pool.WriteSample(b, 4, 0, 1.0), "frame == framesPerBuffer is out of range")
	assert.False(t, pool.WriteSample(b, 0, 2, 1.0), "channel == channels is out of range")
	assert.False(t, pool.WriteSample(b, -1, 0, 1.0))
	_, ok = pool.ReadSample(b, 0, -1)
	assert.False(t, ok)
}

func TestAudioBufferPool_Accessors(t *testing.T) {
	pool := audio.NewAudioBufferPool(4, 2, 1)
	assert.Equal(t, int32(4), pool.FramesPerBuffer())
	assert.Equal(t, int32(2), pool.Channels())
}

func TestAudioBufferPool_AllocIsUninitialized(t *testing.T) {
	pool := audio.NewAudioBufferPool(2, 1, 1)
	b, ok := pool.Alloc()
	require.True(t, ok)

	// Uninitialized does not mean unreadable: a freshly allocated slot
	// reads back whatever the backing region currently holds there.
	_, ok = pool.ReadSample(b, 0, 0)
	assert.True(t, ok)
}

func TestAudioBufferPool_DimensionOverflowYieldsZeroCapacity(t *testing.T) {
	pool := audio.NewAudioBufferPool(1<<20, 1<<20, 4)
	_, ok := pool.Alloc()
	assert.False(t, ok)
}

func TestAudioBufferPool_CapacityExhaustion(t *testing.T) {
	pool := audio.NewAudioBufferPool(4, 2, 1)
	_, ok := pool.Alloc()
	require.True(t, ok)
	_, ok = pool.Alloc()
	assert.False(t, ok)
}
