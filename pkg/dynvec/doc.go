// Package dynvec implements a growable contiguous-storage sequence.
//
// Vector wraps a rawbuf.Buffer plus a logical size. Elements at
// indices [0, Len()) are live; slots in [Len(), Cap()) are allocated
// but unspecified. Capacity grows by the double-or-exact rule: when an
// operation needs more room than is allocated, the new capacity is
// max(Cap()*2, required), with the single-element insert path growing
// a zero-capacity vector to exactly 1.
//
// Error handling is two-tier. Precondition breaches - negative sizes,
// Insert positions outside [0, Len()], Delete on an empty vector -
// are caller bugs and panic. The only checked accessor is At, which
// returns a *RangeError for an out-of-range index; every other indexed
// accessor is an unchecked fast path whose behavior is unspecified
// when the index is not a live one.
//
// A Vector is not safe for concurrent mutation without external
// synchronization. Storage is exclusively owned; it is shared between
// instances only transiently during Swap and Take.
package dynvec
