package vect

import (
	"fmt"
	"unsafe"

	"github.com/ejv2/hlc/internal/buf"
)

// Vector is an exclusively owned, growable array of T. Elements are
// stored contiguously and copied by value on every insertion, so a value
// appended from caller memory cannot dangle.
//
// The zero value is ready to use and allocates lazily on first Append.
// A Vector must not be mutated concurrently; callers serialize access.
type Vector[T any] struct {
	buf    []T
	length int
}

// New returns an initialized, empty vector. It is equivalent to the zero
// value and exists for symmetry with the other containers.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// Len returns the number of elements currently stored.
func (v *Vector[T]) Len() int {
	return v.length
}

// Cap returns the number of elements which can be stored before the next
// reallocation.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.length == 0
}

// grow reallocates the backing buffer to the capacity chosen by the
// growth engine. Requested follows buf.Next semantics: zero doubles,
// anything at or below the current capacity is a no-op. On failure the
// vector is left unchanged.
func (v *Vector[T]) grow(requested int) error {
	newcap := buf.Next(len(v.buf), requested)
	if newcap == len(v.buf) {
		return nil
	}

	var zero T
	if _, err := buf.CheckSize(newcap, int(unsafe.Sizeof(zero))); err != nil {
		return fmt.Errorf("vect: grow to %d elements: %w", newcap, err)
	}

	next := make([]T, newcap)
	copy(next, v.buf[:v.length])
	v.buf = next
	return nil
}

// Append copies val into a new slot at the end of the vector, growing the
// backing buffer when full. Capacity exhaustion is reported as an error
// wrapping buf.ErrTooLarge and leaves the vector unchanged.
func (v *Vector[T]) Append(val T) error {
	if v.length == len(v.buf) {
		if err := v.grow(0); err != nil {
			return err
		}
	}
	v.buf[v.length] = val
	v.length++
	return nil
}

// Get returns the element at index i. An index at or beyond Len is a
// contract violation and panics with the offending index and the current
// length.
func (v *Vector[T]) Get(i int) T {
	if i < 0 || i >= v.length {
		panic(fmt.Sprintf("vect: access out of range (index: %d, len: %d)", i, v.length))
	}
	return v.buf[i]
}

// Set overwrites the element at index i with val. An index at or beyond
// Len is a contract violation and panics with the offending index and the
// current length.
func (v *Vector[T]) Set(i int, val T) {
	if i < 0 || i >= v.length {
		panic(fmt.Sprintf("vect: set out of range (index: %d, len: %d)", i, v.length))
	}
	v.buf[i] = val
}

// ForEach calls fn for each element in index order, passing the index and
// a copy of the element. Traversal stops early if fn returns false.
func (v *Vector[T]) ForEach(fn func(i int, elem T) bool) {
	for i := 0; i < v.length; i++ {
		if !fn(i, v.buf[i]) {
			return
		}
	}
}

// Clear truncates the vector to zero elements. No memory is released and
// the capacity is unchanged; see Free to drop the backing buffer.
func (v *Vector[T]) Clear() {
	v.length = 0
}

// Free releases the backing buffer and resets the vector to its zero
// state. Freeing twice is harmless, and a freed vector may be reused at
// the cost of reallocation.
func (v *Vector[T]) Free() {
	v.buf = nil
	v.length = 0
}

// Data returns the occupied region as a plain contiguous slice of
// v.Len() elements, suitable for handing to any routine expecting a
// pointer-plus-count pair. The slice aliases the vector's storage and is
// invalidated by the next growth.
func (v *Vector[T]) Data() []T {
	return v.buf[:v.length]
}

// Contains reports whether the vector holds an element equal to val under
// the language's == operator. Identity-sensitive types (those where ==
// over-distinguishes, such as structs carrying cached pointers) should
// use ContainsFunc with a semantic predicate instead.
func Contains[T comparable](v *Vector[T], val T) bool {
	for i := 0; i < v.length; i++ {
		if v.buf[i] == val {
			return true
		}
	}
	return false
}

// ContainsFunc reports whether the vector holds an element for which
// eq(elem, val) is true.
func ContainsFunc[T any](v *Vector[T], val T, eq func(a, b T) bool) bool {
	for i := 0; i < v.length; i++ {
		if eq(v.buf[i], val) {
			return true
		}
	}
	return false
}
