package dynvec

import "cmp"

// Equal reports whether a and b hold the same live elements in the
// same order. Capacity does not participate.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.Get(i) != b.Get(i) {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element equality, for
// element types that are not comparable.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(a.Get(i), b.Get(i)) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically over their live elements,
// returning -1, 0 or +1. A proper prefix orders before the longer
// sequence.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	for i := 0; i < n; i++ {
		if c := cmp.Compare(a.Get(i), b.Get(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T any](a, b *Vector[T], cmpFn func(T, T) int) int {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	for i := 0; i < n; i++ {
		if c := cmpFn(a.Get(i), b.Get(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

// Less reports whether a orders strictly before b. The remaining
// relations derive from Equal and Compare.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}
