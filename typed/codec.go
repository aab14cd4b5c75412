package typed

import (
	"encoding/binary"
	"math"
)

// Byte layout is internal only: i32 little-endian 4 bytes, f64
// little-endian IEEE-754 8 bytes. Callers must not persist it.

func putF64(buf []byte, off int32, v float64) {
	binary.LittleEndian.PutUint64(buf[off:off+8], math.Float64bits(v))
}

func getF64(buf []byte, off int32) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[off : off+8]))
}

func putI32(buf []byte, off int32, v int32) {
	binary.LittleEndian.PutUint32(buf[off:off+4], uint32(v))
}

func getI32(buf []byte, off int32) int32 {
	return int32(binary.LittleEndian.Uint32(buf[off : off+4]))
}
