package rawbuf

// noCopy is embedded in types that must not be copied after first use.
// go vet's copylocks check reports copies of values containing it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer exclusively owns a single contiguous allocation of elements
// of type T. The zero extent is represented by a nil storage slice.
//
// A Buffer must not be copied by value; transfer ownership with Swap.
type Buffer[T any] struct {
	noCopy noCopy

	data []T
}

// New allocates a buffer sized for count elements. A count of zero
// allocates nothing and the buffer holds the nil sentinel.
// New panics if count is negative; allocation failure for a valid
// count surfaces as a runtime panic from the allocator.
func New[T any](count int) *Buffer[T] {
	if count < 0 {
		panic("rawbuf: negative count")
	}
	b := &Buffer[T]{}
	if count > 0 {
		b.data = make([]T, count)
	}
	return b
}

// Data returns the raw storage. It is nil exactly when the buffer was
// created with count 0.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Ref returns a pointer to the element at offset i. The caller
// guarantees 0 <= i < Len(); this layer performs no bounds check of
// its own.
func (b *Buffer[T]) Ref(i int) *T {
	return &b.data[i]
}

// Len returns the allocated extent in elements.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Swap exchanges the owned allocations of b and other in constant
// time. No allocation occurs.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
}
