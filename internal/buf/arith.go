package buf

import "math"

// AddNoOverflow adds the non-negative sizes a and b, returning ok = false
// when the result would overflow int.
func AddNoOverflow(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// MulNoOverflow multiplies the non-negative sizes a and b, returning
// ok = false when the result would overflow int. This is the check behind
// every capacity * elementSize calculation in the containers.
func MulNoOverflow(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}
