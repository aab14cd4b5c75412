package genstore

// Managed is a Store backed by a Go-GC-managed []int32.
type Managed struct {
	gens []int32
}

// NewManaged creates a Managed store of the given length, clamping a
// negative length to 0.
func NewManaged(length int32) *Managed {
	return &Managed{gens: make([]int32, clampLength(length))}
}

func (m *Managed) Length() int32 { return int32(len(m.gens)) }

func (m *Managed) Get(index int32) int32 {
	return m.gens[index]
}

func (m *Managed) Set(index int32, generation int32) {
	m.gens[index] = generation
}
