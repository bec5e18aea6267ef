// Package rawbuf provides a minimal owning wrapper over a contiguous
// heap allocation.
//
// A Buffer exclusively owns one allocation of N elements. It exposes
// raw element access with no bounds checking of its own and transfers
// ownership only by Swap - buffers are never duplicated implicitly.
// Copying a Buffer value would alias the underlying storage between
// two owners, so Buffer carries a copy guard that go vet reports.
//
// Buffer is the storage layer underneath dynvec.Vector; callers of the
// higher-level container normally never touch this package directly.
package rawbuf
