package genstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmxmxh/arenakit/genstore"
)

func backends(t *testing.T) map[string]func(length int32) genstore.Store {
	return map[string]func(length int32) genstore.Store{
		"managed": func(length int32) genstore.Store {
			return genstore.NewManaged(length)
		},
		"native": func(length int32) genstore.Store {
			n, err := genstore.NewNative(length)
			require.NoError(t, err)
			t.Cleanup(n.Destroy)
			return n
		},
	}
}

func TestStore_InitialValueIsZero(t *testing.T) {
	for name, newStore := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore(4)
			assert.Equal(t, int32(4), s.Length())
			for i := int32(0); i < 4; i++ {
				assert.Equal(t, int32(0), s.Get(i))
			}
		})
	}
}

func TestStore_SetThenGet(t *testing.T) {
	for name, newStore := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore(4)
			s.Set(2, 7)
			assert.Equal(t, int32(7), s.Get(2))
			assert.Equal(t, int32(0), s.Get(1), "unrelated slot is untouched")
		})
	}
}

func TestStore_NegativeLengthClampsToZero(t *testing.T) {
	for name, newStore := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore(-5)
			assert.Equal(t, int32(0), s.Length())
		})
	}
}
