package slice

import (
	"fmt"
	"unsafe"

	"github.com/ejv2/hlc/internal/buf"
)

// DefaultCap is the capacity allocated when Make or New is asked for a
// capacity of zero.
const DefaultCap = 2

// arena is the single owner of a buffer shared by every view derived
// from it. The generation counter is bumped by every relocating
// operation (owner grow, free), staling all views created against an
// earlier generation.
type arena[T any] struct {
	buf    []T
	gen    uint64
	freed  bool
	mapped []byte // non-nil when backed by an anonymous mapping
}

// Slice is a length+capacity window over an arena's buffer. Exactly one
// view per buffer is owning and may perform structural operations (Grow,
// Free); all other views, including every view produced by Ref or
// Reslice, may only read and write element contents.
//
// Content access through a view whose generation lags the arena's panics
// with a stale-view diagnostic instead of dereferencing relocated or
// freed memory.
type Slice[T any] struct {
	a        *arena[T]
	base     int
	length   int
	capacity int
	gen      uint64
	owning   bool
}

// esize returns the in-memory size of one element in bytes.
func esize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// checkMake validates a length/capacity pair, substituting DefaultCap for
// a zero capacity. A length exceeding the capacity is a contract
// violation.
func checkMake(length, capacity int) int {
	if capacity == 0 {
		capacity = DefaultCap
	}
	if length < 0 || capacity < 0 || length > capacity {
		panic(fmt.Sprintf("slice: invalid slice len/cap (len: %d, cap: %d)", length, capacity))
	}
	return capacity
}

// Make returns a new owning slice of the given length and capacity over
// a zero-filled buffer. A capacity of zero allocates DefaultCap elements
// instead. length > capacity panics; a capacity whose byte size is not
// representable is reported as an error wrapping buf.ErrTooLarge.
func Make[T any](length, capacity int) (*Slice[T], error) {
	capacity = checkMake(length, capacity)
	if _, err := buf.CheckSize(capacity, esize[T]()); err != nil {
		return nil, fmt.Errorf("slice: make: %w", err)
	}
	return &Slice[T]{
		a:        &arena[T]{buf: make([]T, capacity)},
		length:   length,
		capacity: capacity,
		owning:   true,
	}, nil
}

// New returns a new owning slice of length zero and capacity DefaultCap.
func New[T any]() *Slice[T] {
	s, err := Make[T](0, 0)
	if err != nil {
		panic(err) // DefaultCap of any element type is representable
	}
	return s
}

// MakeMapped is Make over an anonymous memory mapping instead of the Go
// heap, intended for large page-aligned buffers. On platforms without
// mmap it falls back to a heap buffer. The mapping is released by Free.
func MakeMapped[T any](length, capacity int) (*Slice[T], error) {
	capacity = checkMake(length, capacity)
	a, err := newMapped[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Slice[T]{
		a:        a,
		length:   length,
		capacity: capacity,
		owning:   true,
	}, nil
}

// check panics if the view can no longer safely touch the arena's
// memory: either the owner has freed the buffer, or a relocating
// operation has moved it since this view was created.
func (s *Slice[T]) check() {
	if s.a.freed {
		panic(fmt.Sprintf("slice: view into freed buffer (view generation: %d)", s.gen))
	}
	if s.gen != s.a.gen {
		panic(fmt.Sprintf("slice: stale view (view generation: %d, buffer generation: %d)", s.gen, s.a.gen))
	}
}

// Len returns the current length of the view, in elements.
func (s *Slice[T]) Len() int {
	return s.length
}

// Cap returns the capacity of the view, in elements: how far the view
// may be resliced, counted from the view's own base to the end of the
// underlying allocation.
func (s *Slice[T]) Cap() int {
	return s.capacity
}

// BufLen returns the length of the viewed region in bytes.
func (s *Slice[T]) BufLen() int {
	return s.length * esize[T]()
}

// BufCap returns the capacity of the viewed region in bytes.
func (s *Slice[T]) BufCap() int {
	return s.capacity * esize[T]()
}

// Owning reports whether this view owns the buffer and may perform
// structural operations.
func (s *Slice[T]) Owning() bool {
	return s.owning
}

// Get returns the element at index i. Access through a stale view and an
// index at or beyond Len both panic.
func (s *Slice[T]) Get(i int) T {
	s.check()
	if i < 0 || i >= s.length {
		panic(fmt.Sprintf("slice: access out of range (index: %d, len: %d)", i, s.length))
	}
	return s.a.buf[s.base+i]
}

// Set overwrites the element at index i. The write is visible through
// every sibling view sharing the buffer. Access through a stale view and
// an index at or beyond Len both panic.
func (s *Slice[T]) Set(i int, val T) {
	s.check()
	if i < 0 || i >= s.length {
		panic(fmt.Sprintf("slice: set out of range (index: %d, len: %d)", i, s.length))
	}
	s.a.buf[s.base+i] = val
}

// Data returns the view's occupied elements as a plain contiguous slice,
// suitable for handing to any routine expecting a pointer-plus-count
// pair. The result aliases the shared buffer and is invalidated, like
// the view itself, by the next relocating operation.
func (s *Slice[T]) Data() []T {
	s.check()
	return s.a.buf[s.base : s.base+s.length]
}

// Grow grows the buffer to hold at least capacity elements, zero-filling
// the newly exposed region. Only the owning view may relocate the
// buffer: on a non-owning view Grow is a silent no-op. Growing below the
// current capacity is also a no-op. A successful grow bumps the arena
// generation, staling every derived view.
func (s *Slice[T]) Grow(capacity int) error {
	if !s.owning {
		return nil
	}
	if capacity <= s.capacity {
		return nil
	}
	if _, err := buf.CheckSize(capacity, esize[T]()); err != nil {
		return fmt.Errorf("slice: grow to %d elements: %w", capacity, err)
	}

	if err := s.a.reallocate(capacity); err != nil {
		return err
	}
	s.a.freed = false
	s.a.gen++
	s.gen = s.a.gen
	s.capacity = capacity
	return nil
}

// Ref returns an aliased copy of s sharing the same buffer, with the
// owning flag forced off. The copy is safe to pass by value to code
// which must not free or relocate the buffer.
func (s *Slice[T]) Ref() *Slice[T] {
	ref := *s
	ref.owning = false
	return &ref
}

// Reslice returns a non-owning window over the half-open element range
// [lower, upper) of s's reachable capacity. The result has length
// upper-lower and capacity s.Cap()-lower, with its base advanced by
// lower. No data is copied. Bounds with lower >= upper, lower >= Cap or
// upper > Cap are a contract violation and panic.
func (s *Slice[T]) Reslice(lower, upper int) *Slice[T] {
	s.check()
	if lower < 0 || lower >= s.capacity || upper > s.capacity {
		panic(fmt.Sprintf("slice: reslice bounds out of range (bounds [%d:%d] with cap %d)", lower, upper, s.capacity))
	}
	if lower >= upper {
		panic(fmt.Sprintf("slice: invalid reslice bounds (bounds [%d:%d] with cap %d)", lower, upper, s.capacity))
	}

	ret := s.Ref()
	ret.base = s.base + lower
	ret.length = upper - lower
	ret.capacity = s.capacity - lower
	return ret
}

// Copy copies min(dst.Len(), src.Len()) elements from src into dst and
// returns the count. Source and destination may overlap; the copy is
// performed as a move. Identical element types are enforced by the
// shared type parameter.
func Copy[T any](dst, src *Slice[T]) int {
	dst.check()
	src.check()

	n := dst.length
	if src.length < n {
		n = src.length
	}
	copy(dst.a.buf[dst.base:dst.base+n], src.a.buf[src.base:src.base+n])
	return n
}

// Free releases the buffer if, and only if, this view owns it, bumping
// the arena generation so every derived view fails loudly on its next
// content access. Freeing a non-owning view is always a no-op and leaves
// its counters untouched, regardless of call count. Freeing the owner
// twice is harmless.
func (s *Slice[T]) Free() {
	if !s.owning {
		return
	}
	if !s.a.freed {
		s.a.release()
		s.a.freed = true
		s.a.gen++
	}
	s.length, s.capacity = 0, 0
}
