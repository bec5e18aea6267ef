package dynvec

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is the sentinel matched by errors.Is for checked
// accesses outside the live element range.
var ErrOutOfRange = errors.New("index out of range")

// RangeError reports a checked access at an index outside [0, Len).
type RangeError struct {
	// Index is the requested index.
	Index int

	// Len is the vector's logical size at the time of the access.
	Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("dynvec: index %d out of range [0, %d)", e.Index, e.Len)
}

// Unwrap makes errors.Is(err, ErrOutOfRange) hold.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
