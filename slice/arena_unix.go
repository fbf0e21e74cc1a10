//go:build unix

package slice

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/ejv2/hlc/internal/buf"
)

// newMapped allocates an arena backed by an anonymous private mapping.
// The kernel delivers the pages zero-filled and page-aligned, which
// satisfies the alignment of any element type.
func newMapped[T any](capacity int) (*arena[T], error) {
	size, err := buf.CheckSize(capacity, esize[T]())
	if err != nil {
		return nil, fmt.Errorf("slice: make: %w", err)
	}
	if size == 0 {
		// Zero-sized elements cannot be mapped; the heap serves them fine.
		return &arena[T]{buf: make([]T, capacity)}, nil
	}

	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("slice: anonymous mapping of %d bytes: %w", size, err)
	}
	return &arena[T]{
		buf:    unsafe.Slice((*T)(unsafe.Pointer(&mem[0])), capacity),
		mapped: mem,
	}, nil
}

// reallocate moves the arena to a fresh zero-filled buffer of capacity
// elements, preserving existing contents. A mapped arena stays mapped;
// the old mapping is released once the contents have moved.
func (a *arena[T]) reallocate(capacity int) error {
	if a.mapped == nil {
		next := make([]T, capacity)
		copy(next, a.buf)
		a.buf = next
		return nil
	}

	size, err := buf.CheckSize(capacity, esize[T]())
	if err != nil {
		return fmt.Errorf("slice: grow: %w", err)
	}
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return fmt.Errorf("slice: anonymous mapping of %d bytes: %w", size, err)
	}

	next := unsafe.Slice((*T)(unsafe.Pointer(&mem[0])), capacity)
	copy(next, a.buf)

	old := a.mapped
	a.buf = next
	a.mapped = mem
	_ = unix.Munmap(old)
	return nil
}

// release drops the arena's backing storage.
func (a *arena[T]) release() {
	if a.mapped != nil {
		_ = unix.Munmap(a.mapped)
		a.mapped = nil
	}
	a.buf = nil
}
