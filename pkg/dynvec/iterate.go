package dynvec

import (
	"fmt"
	"iter"
	"strings"
)

// Slice returns the live range [0, Len()) as a slice sharing the
// vector's storage. Element writes through the slice are visible in
// the vector; appending to the slice is not. For an empty vector the
// result may or may not be nil.
func (v *Vector[T]) Slice() []T {
	return v.data()[:v.size]
}

// All returns an iterator over index/element pairs of the live range,
// in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data()[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements, in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data()[i]) {
				return
			}
		}
	}
}

// String formats the live elements like a Go slice literal.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", v.data()[i])
	}
	sb.WriteByte(']')
	return sb.String()
}
