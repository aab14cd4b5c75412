// Package genstore implements capability B of arenakit's engine: a
// fixed-length array of per-slot generation numbers. It has no notion
// of validity or staleness — that predicate lives in package arena,
// which is the only thing that compares a slot's stored generation
// against the arena's current one.
package genstore

// Store is the generation-store capability. Get/Set have defined
// behavior only for 0 <= index < Length(); the generic arena is
// responsible for validating index before calling either. Every slot
// starts at generation 0.
type Store interface {
	Get(index int32) int32
	Set(index int32, generation int32)
	Length() int32
}

func clampLength(length int32) int32 {
	if length < 0 {
		return 0
	}
	return length
}
