package dynvec

import (
	"fmt"

	"github.com/dynvec/dynvec-go/pkg/rawbuf"
)

// Vector is a growable contiguous sequence of T. The zero value is an
// empty vector ready for use; most callers construct one with New, Of
// or one of the other constructors below.
//
// Use pointers to share a Vector; copying the struct value would alias
// the underlying storage between two owners.
type Vector[T any] struct {
	buf  *rawbuf.Buffer[T]
	size int
}

// New returns an empty vector with no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{buf: rawbuf.New[T](0)}
}

// NewSized returns a vector of n zero-valued elements, with capacity
// equal to n. It panics if n is negative.
func NewSized[T any](n int) *Vector[T] {
	return &Vector[T]{buf: rawbuf.New[T](n), size: n}
}

// NewFilled returns a vector of n elements, each a copy of value, with
// capacity equal to n. It panics if n is negative.
func NewFilled[T any](n int, value T) *Vector[T] {
	v := &Vector[T]{buf: rawbuf.New[T](n), size: n}
	d := v.buf.Data()
	for i := range d {
		d[i] = value
	}
	return v
}

// Of returns a vector holding the given values in order, with size and
// capacity both equal to len(values).
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{buf: rawbuf.New[T](len(values)), size: len(values)}
	copyForward(v.buf.Data(), values)
	return v
}

// NewWithHint returns an empty vector whose storage is pre-sized to
// the hint's capacity. No logical elements are created.
func NewWithHint[T any](h CapacityHint) *Vector[T] {
	return &Vector[T]{buf: rawbuf.New[T](h.Capacity())}
}

// Clone returns a deep copy of the live elements. The clone's capacity
// equals its size: excess capacity of the source is not preserved.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{buf: rawbuf.New[T](v.size), size: v.size}
	copyForward(c.buf.Data(), v.data()[:v.size])
	return c
}

// Take transfers ownership of v's storage and size to a new vector.
// Afterwards v is empty with size 0, capacity 0 and no allocation
// retained.
func (v *Vector[T]) Take() *Vector[T] {
	v.lazyInit()
	c := &Vector[T]{buf: rawbuf.New[T](0), size: v.size}
	c.buf.Swap(v.buf)
	v.size = 0
	return c
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the allocated capacity in elements.
func (v *Vector[T]) Cap() int {
	if v.buf == nil {
		return 0
	}
	return v.buf.Len()
}

// IsEmpty reports whether the vector holds no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Get returns the element at index i without bounds checking against
// the live range. The caller guarantees 0 <= i < Len(); the result is
// unspecified for an index in [Len(), Cap()) and the runtime panics
// beyond the allocated extent.
func (v *Vector[T]) Get(i int) T {
	return v.data()[i]
}

// Set stores val at index i. Same contract as Get: the caller
// guarantees i is a live index.
func (v *Vector[T]) Set(i int, val T) {
	v.data()[i] = val
}

// Ptr returns a pointer to the element at index i for in-place
// mutation. Same contract as Get.
func (v *Vector[T]) Ptr(i int) *T {
	return &v.data()[i]
}

// At returns the element at index i, or a *RangeError if i is not a
// live index. This is the only bounds-checked accessor.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, &RangeError{Index: i, Len: v.size}
	}
	return v.data()[i], nil
}

// Clear resets the size to 0. Capacity and allocation are retained for
// reuse; the previous elements become logically dead.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize changes the logical size to n. Shrinking truncates without
// releasing storage. Growing within capacity zero-fills the newly
// exposed slots. Growing past capacity reallocates to
// max(Cap()*2, n), carries the live elements over and zero-fills the
// rest of the new live range. Resize panics if n is negative.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic("dynvec: Resize with negative size")
	}
	switch {
	case n <= v.size:
		v.size = n
	case n <= v.Cap():
		// Slots past the old size may hold stale values from earlier
		// truncations; new live elements must start out zero-valued.
		zeroFill(v.data()[v.size:n])
		v.size = n
	default:
		v.lazyInit()
		newCap := v.Cap() * 2
		if newCap < n {
			newCap = n
		}
		nb := rawbuf.New[T](newCap)
		copyForward(nb.Data(), v.data()[:v.size])
		v.buf.Swap(nb)
		v.size = n
	}
}

// Append adds val at the end, growing capacity by the Resize rule when
// the vector is full. Amortized constant time.
func (v *Vector[T]) Append(val T) {
	if v.size == v.Cap() {
		v.Resize(v.size + 1)
	} else {
		v.size++
	}
	v.data()[v.size-1] = val
}

// Insert places val at index i, shifting the suffix [i, Len()) one
// slot rightward. i may equal Len(), which appends. When the vector is
// full the allocation grows to max(1, Cap()*2). Insert returns the
// index of the inserted element and panics if i is outside [0, Len()].
func (v *Vector[T]) Insert(i int, val T) int {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("dynvec: Insert index %d out of range [0, %d]", i, v.size))
	}
	if v.size == v.Cap() {
		v.lazyInit()
		newCap := v.Cap() * 2
		if newCap == 0 {
			newCap = 1
		}
		nb := rawbuf.New[T](newCap)
		dst := nb.Data()
		copyForward(dst[:i], v.data()[:i])
		copyBackward(dst[i+1:v.size+1], v.data()[i:v.size])
		dst[i] = val
		v.buf.Swap(nb)
	} else {
		d := v.data()
		// Right-to-left so the overlapping ranges do not corrupt.
		copyBackward(d[i+1:v.size+1], d[i:v.size])
		d[i] = val
	}
	v.size++
	return i
}

// Pop removes the last element. It is a no-op, not an error, on an
// empty vector. The vacated slot's value is not cleared.
func (v *Vector[T]) Pop() {
	if v.size > 0 {
		v.size--
	}
}

// Delete removes the element at index i, shifting the suffix
// [i+1, Len()) one slot leftward. It returns i, which now holds the
// following element (or equals Len() when the last element was
// removed). Delete panics if the vector is empty or i is not a live
// index.
func (v *Vector[T]) Delete(i int) int {
	if v.size == 0 {
		panic("dynvec: Delete on empty vector")
	}
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("dynvec: Delete index %d out of range [0, %d)", i, v.size))
	}
	d := v.data()
	// Left-to-right so the overlapping ranges do not corrupt.
	copyForward(d[i:v.size-1], d[i+1:v.size])
	v.size--
	return i
}

// Reserve grows the allocation to exactly n slots when n exceeds the
// current capacity, carrying the live elements over. Size is
// unchanged. It is a no-op when n <= Cap().
func (v *Vector[T]) Reserve(n int) {
	if n <= v.Cap() {
		return
	}
	v.lazyInit()
	nb := rawbuf.New[T](n)
	copyForward(nb.Data(), v.data()[:v.size])
	v.buf.Swap(nb)
}

// Swap exchanges storage, size and capacity with other in constant
// time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.lazyInit()
	other.lazyInit()
	v.buf.Swap(other.buf)
	v.size, other.size = other.size, v.size
}

// lazyInit gives a zero-value Vector its buffer handle.
func (v *Vector[T]) lazyInit() {
	if v.buf == nil {
		v.buf = rawbuf.New[T](0)
	}
}

// data returns the raw storage, nil for a vector with no allocation.
func (v *Vector[T]) data() []T {
	if v.buf == nil {
		return nil
	}
	return v.buf.Data()
}

// copyForward copies src into dst left to right. Safe when dst is the
// same storage shifted leftward (shrinking shifts).
func copyForward[T any](dst, src []T) {
	for i := 0; i < len(src); i++ {
		dst[i] = src[i]
	}
}

// copyBackward copies src into dst right to left. Safe when dst is the
// same storage shifted rightward (growing shifts).
func copyBackward[T any](dst, src []T) {
	for i := len(src) - 1; i >= 0; i-- {
		dst[i] = src[i]
	}
}

// zeroFill resets every slot of s to the zero value of T.
func zeroFill[T any](s []T) {
	var zero T
	for i := range s {
		s[i] = zero
	}
}
