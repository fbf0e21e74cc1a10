// Package buf implements the capacity arithmetic shared by the vect, str
// and slice containers: the growth step used when a buffer must be
// reallocated, and overflow-safe size calculations for allocation requests.
//
// The package is pure arithmetic. It never allocates and never mutates
// caller state, so a failed check always leaves the caller's structure in
// its prior, fully usable state.
package buf

import (
	"fmt"
	"math"

	"github.com/c2h5oh/datasize"
)

// Next returns the capacity a buffer should be reallocated to.
//
// A requested capacity of zero asks for the default super-linear step,
// which doubles the current capacity (seeded so that a zero capacity still
// grows). A requested capacity at or below current is already satisfied
// and Next returns current unchanged. Anything larger is an exact-fit
// request and is returned as-is.
func Next(current, requested int) int {
	if requested == 0 {
		next, ok := MulNoOverflow(current+1, 2)
		if !ok {
			return math.MaxInt
		}
		return next
	}
	if requested <= current {
		return current
	}
	return requested
}

// CheckSize validates that capacity elements of elemSize bytes each are
// addressable, returning the total byte size. Overflow is reported as an
// error wrapping ErrTooLarge rather than wrapping around.
func CheckSize(capacity, elemSize int) (int, error) {
	total, ok := MulNoOverflow(capacity, elemSize)
	if !ok {
		return 0, fmt.Errorf("%d elements of %s each: %w",
			capacity, datasize.ByteSize(elemSize).HumanReadable(), ErrTooLarge)
	}
	return total, nil
}
