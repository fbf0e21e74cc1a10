// Package vect provides an exclusively owned, type-homogeneous growable
// array with value-copy semantics.
//
// # Overview
//
// Vector stores elements contiguously with separate length and capacity
// bookkeeping. Appending past the current capacity reallocates through
// the shared growth engine (capacity doubling). Elements are always
// copied by value: the vector never retains pointers into caller memory.
//
// # Failure model
//
// Two failure kinds are kept strictly apart:
//
//   - Capacity exhaustion (the byte size of the requested buffer is not
//     representable) is recoverable: Append returns an error wrapping
//     buf.ErrTooLarge and the vector is unchanged.
//   - Misuse (Get or Set with an index at or beyond Len) is a contract
//     violation and panics, reporting the offending index and the
//     current length. Callers who cannot tolerate termination must
//     validate indices themselves.
//
// # Equality
//
// Contains uses the language's == operator and therefore requires a
// comparable element type. For types where == is not the right notion of
// equality, ContainsFunc takes a caller-supplied predicate.
//
// # Concurrency
//
// A Vector is unsynchronized and assumes exclusive single-threaded
// access. Concurrent mutation, including reads concurrent with a
// structural mutation, must be serialized by the caller.
package vect
