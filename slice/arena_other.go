//go:build !unix

package slice

import (
	"fmt"

	"github.com/ejv2/hlc/internal/buf"
)

// newMapped falls back to a heap buffer on platforms without anonymous
// mappings. Semantics are identical apart from the backing storage.
func newMapped[T any](capacity int) (*arena[T], error) {
	if _, err := buf.CheckSize(capacity, esize[T]()); err != nil {
		return nil, fmt.Errorf("slice: make: %w", err)
	}
	return &arena[T]{buf: make([]T, capacity)}, nil
}

// reallocate moves the arena to a fresh zero-filled buffer of capacity
// elements, preserving existing contents.
func (a *arena[T]) reallocate(capacity int) error {
	next := make([]T, capacity)
	copy(next, a.buf)
	a.buf = next
	return nil
}

// release drops the arena's backing storage.
func (a *arena[T]) release() {
	a.buf = nil
}
