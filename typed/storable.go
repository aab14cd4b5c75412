// Package typed implements component E.1/E.2 of arenakit's engine:
// single-value typed façades over a generic arena.Arena, plus the
// Storable extension point for user-defined fixed-size records.
package typed

// Storable is the published extension surface: callers may define
// further typed arenas for their own fixed-size records by implementing
// ByteSize/WriteBytes and pairing the type with a StorableReader,
// instantiated via NewStorableArena. The built-in façades below
// (F64Arena, I32Arena, AudioArena) do NOT go through this path — they
// use arena.Arena's typed accessors directly for zero-copy speed.
type Storable interface {
	// ByteSize is the fixed serialized size of this value.
	ByteSize() int32
	// WriteBytes serializes the value into buf starting at off.
	WriteBytes(buf []byte, off int32)
}

// StorableReader reconstructs a Storable-typed value of type T from a
// byte buffer. It is separate from Storable because Go methods cannot
// return Self by value for an arbitrary receiver in the way a static
// "read" constructor needs to.
type StorableReader[T any] func(buf []byte, off int32) T

// Float64Storable adapts float64 to Storable for callers who want a
// Storable-based arena over plain floats instead of F64Arena.
type Float64Storable float64

func (v Float64Storable) ByteSize() int32 { return 8 }

func (v Float64Storable) WriteBytes(buf []byte, off int32) {
	putF64(buf, off, float64(v))
}

// ReadFloat64Storable is the StorableReader for Float64Storable.
func ReadFloat64Storable(buf []byte, off int32) Float64Storable {
	return Float64Storable(getF64(buf, off))
}

// Int32Storable adapts int32 to Storable.
type Int32Storable int32

func (v Int32Storable) ByteSize() int32 { return 4 }

func (v Int32Storable) WriteBytes(buf []byte, off int32) {
	putI32(buf, off, int32(v))
}

// ReadInt32Storable is the StorableReader for Int32Storable.
func ReadInt32Storable(buf []byte, off int32) Int32Storable {
	return Int32Storable(getI32(buf, off))
}
