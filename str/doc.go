// Package str provides an exclusively owned, growable byte string with a
// forced trailing terminator.
//
// # Terminator invariant
//
// Every mutating operation maintains a zero byte at offset Len, so the
// buffer returned by CString is always safe to hand to routines expecting
// a conventional terminated byte string. Cap counts usable bytes
// excluding the terminator, and a capacity of zero (the zero value, or a
// freed string) is the valid unallocated empty state.
//
// # Failure model
//
// Growth failure is recoverable: Grow, Reserve, Append and friends return
// an error and leave the string in its last valid state, never corrupted.
// Truncate ignores out-of-range requests silently so callers may truncate
// speculatively. Indexed access out of range is a contract violation and
// panics, as everywhere else in this module.
package str
