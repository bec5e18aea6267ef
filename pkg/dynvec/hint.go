package dynvec

// CapacityHint carries a capacity request for NewWithHint. It lets a
// caller pre-size storage without creating logical elements.
type CapacityHint struct {
	capacity int
}

// WithCapacity returns a hint requesting storage for n elements.
// It panics if n is negative.
func WithCapacity(n int) CapacityHint {
	if n < 0 {
		panic("dynvec: negative capacity hint")
	}
	return CapacityHint{capacity: n}
}

// Capacity returns the requested capacity.
func (h CapacityHint) Capacity() int {
	return h.capacity
}
