package str

import (
	"fmt"

	"github.com/ejv2/hlc/internal/buf"
)

// initialBufSize is the buffer size allocated by New in bytes, including
// the terminator.
const initialBufSize = 32

// String is a dynamically sized byte string with an associated length.
// The buffer is always terminated by a zero byte at offset Len, so it may
// be handed to any routine expecting a conventional terminated byte
// string (see CString). Cap counts the usable bytes excluding that
// terminator.
//
// The zero value is a valid, unallocated empty string and is ready to
// use; it materializes a buffer on first growth. A String is exclusively
// owned and unsynchronized.
type String struct {
	buf    []byte // nil, or always length Cap()+1 with buf[length] == 0
	length int
}

// New returns an empty string with a small pre-allocated buffer, for
// callers that know they are about to build content. The zero value is
// equally valid.
func New() *String {
	return &String{buf: make([]byte, initialBufSize)}
}

// From returns a string initialized with a copy of s.
func From(s string) *String {
	size := len(s) + 1
	if size < initialBufSize {
		size = initialBufSize
	}
	b := make([]byte, size)
	copy(b, s)
	return &String{buf: b, length: len(s)}
}

// FromBytes returns a string initialized with a copy of b. The input may
// be discarded afterwards.
func FromBytes(b []byte) *String {
	size := len(b) + 1
	if size < initialBufSize {
		size = initialBufSize
	}
	n := make([]byte, size)
	copy(n, b)
	return &String{buf: n, length: len(b)}
}

// Clone returns an independent copy of s. Cloning an empty string yields
// the unallocated degenerate state.
func (s *String) Clone() *String {
	if s.length == 0 {
		return &String{}
	}
	return FromBytes(s.Bytes())
}

// Len returns the number of bytes the string currently holds, excluding
// the terminator.
func (s *String) Len() int {
	return s.length
}

// Cap returns how many bytes can be stored before a reallocation occurs.
// The terminator does not count towards the capacity.
func (s *String) Cap() int {
	if len(s.buf) == 0 {
		return 0
	}
	return len(s.buf) - 1
}

// Empty reports whether the string holds no bytes.
func (s *String) Empty() bool {
	return s.length == 0
}

// Grow grows the string by delta bytes, meaning delta more bytes can be
// written with no reallocation. If delta is zero the capacity is doubled
// instead. Growth past the maximum representable size fails with an error
// wrapping buf.ErrTooLarge and leaves the string unchanged; this is the
// recoverable half of the failure model.
func (s *String) Grow(delta int) error {
	if delta < 0 {
		panic(fmt.Sprintf("str: negative grow delta (delta: %d)", delta))
	}

	var newcap int
	if delta == 0 {
		newcap = buf.Next(s.Cap(), 0)
	} else {
		var ok bool
		newcap, ok = buf.AddNoOverflow(s.Cap(), delta)
		if !ok {
			return fmt.Errorf("str: grow by %d bytes: %w", delta, buf.ErrTooLarge)
		}
	}

	total, ok := buf.AddNoOverflow(newcap, 1) // terminator
	if !ok {
		return fmt.Errorf("str: grow by %d bytes: %w", delta, buf.ErrTooLarge)
	}

	next := make([]byte, total)
	copy(next, s.buf[:s.length])
	s.buf = next
	return nil
}

// Reserve ensures at least delta bytes of slack, growing at most once.
// The result is three-way: (false, nil) when the existing slack already
// suffices, (true, nil) when the string grew, and a non-nil error when
// growth failed (string unchanged).
func (s *String) Reserve(delta int) (grew bool, err error) {
	if s.Cap()-s.length >= delta {
		return false, nil
	}
	if err := s.Grow(delta); err != nil {
		return false, err
	}
	return true, nil
}

// Truncate shrinks the string to n bytes and rewrites the terminator.
// The capacity is unaffected. An out-of-range n is silently ignored;
// unlike indexed access this is not a contract violation, so a caller may
// truncate speculatively.
func (s *String) Truncate(n int) {
	if n < 0 || n >= s.length {
		return
	}
	s.length = n
	s.buf[n] = 0
}

// Reset truncates the string to zero length without changing capacity.
func (s *String) Reset() {
	s.Truncate(0)
}

// Compact reallocates the buffer down to exactly Len+1 bytes. Useful once
// processing is complete and the string is to be stored. Compacting an
// already-compact or unallocated string is a no-op.
func (s *String) Compact() {
	if s.buf == nil || len(s.buf) == s.length+1 {
		return
	}
	next := make([]byte, s.length+1)
	copy(next, s.buf[:s.length])
	s.buf = next
}

// Free releases the buffer and resets the string to the unallocated empty
// state. Freeing twice is harmless, and a freed string may be reused at
// the cost of reallocation.
func (s *String) Free() {
	s.buf = nil
	s.length = 0
}

// Get returns the byte at index i. An index at or beyond Len is a
// contract violation and panics with the offending index and the current
// length.
func (s *String) Get(i int) byte {
	if i < 0 || i >= s.length {
		panic(fmt.Sprintf("str: index out of range (index: %d, len: %d)", i, s.length))
	}
	return s.buf[i]
}

// Set overwrites the byte at index i. An index at or beyond Len is a
// contract violation and panics; in particular the terminator byte cannot
// be overwritten through Set.
func (s *String) Set(i int, c byte) {
	if i < 0 || i >= s.length {
		panic(fmt.Sprintf("str: index out of range (index: %d, len: %d)", i, s.length))
	}
	s.buf[i] = c
}

// Append appends the contents of src, growing at most once. A nil or
// empty src is a no-op. On growth failure dst is unchanged.
func (s *String) Append(src *String) error {
	if src == nil || src.length == 0 {
		return nil
	}
	return s.AppendBytes(src.Bytes())
}

// AppendString appends the contents of the Go string v, growing at most
// once.
func (s *String) AppendString(v string) error {
	if len(v) == 0 {
		return nil
	}
	if _, err := s.Reserve(len(v)); err != nil {
		return err
	}
	copy(s.buf[s.length:], v)
	s.length += len(v)
	s.buf[s.length] = 0
	return nil
}

// AppendBytes appends a copy of b, growing at most once.
func (s *String) AppendBytes(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if _, err := s.Reserve(len(b)); err != nil {
		return err
	}
	copy(s.buf[s.length:], b)
	s.length += len(b)
	s.buf[s.length] = 0
	return nil
}

// Concat returns a fresh string holding the contents of a followed by b,
// sized to fit both inputs in a single growth call. Nil inputs read as
// empty.
func Concat(a, b *String) (*String, error) {
	ab, bb := a.Bytes(), b.Bytes()

	total, ok := buf.AddNoOverflow(len(ab), len(bb))
	if !ok {
		return nil, fmt.Errorf("str: concat of %d and %d bytes: %w", len(ab), len(bb), buf.ErrTooLarge)
	}

	out := &String{}
	if err := out.Grow(total); err != nil {
		return nil, err
	}
	n := copy(out.buf, ab)
	copy(out.buf[n:], bb)
	out.length = total
	out.buf[out.length] = 0
	return out, nil
}

// String returns the contents as a Go string.
func (s *String) String() string {
	return string(s.Bytes())
}

// Bytes returns the logical contents, excluding the terminator. The slice
// aliases the string's buffer and is invalidated by any mutating call.
func (s *String) Bytes() []byte {
	if s == nil || s.buf == nil {
		return nil
	}
	return s.buf[:s.length]
}

// CString returns the contents including the trailing zero byte, safe to
// hand to any routine expecting a terminated byte string. The unallocated
// state yields a single terminator.
func (s *String) CString() []byte {
	if s.buf == nil {
		return []byte{0}
	}
	return s.buf[:s.length+1]
}
