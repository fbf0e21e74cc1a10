package str

import "fmt"

// countingWriter measures formatted output without storing it.
type countingWriter int

func (w *countingWriter) Write(p []byte) (int, error) {
	*w += countingWriter(len(p))
	return len(p), nil
}

// Format renders the fmt-style format string into a new String. The
// operation is two-pass: a counting pass measures the rendered length,
// the buffer is grown to the exact size in one call, then the second pass
// writes in place. The buffer is therefore sized exactly once with no
// overflow or truncation.
func Format(format string, args ...any) (*String, error) {
	var n countingWriter
	fmt.Fprintf(&n, format, args...)
	if n == 0 {
		return &String{}, nil
	}

	s := &String{}
	if err := s.Grow(int(n)); err != nil {
		return nil, err
	}

	out := fmt.Appendf(s.buf[:0], format, args...)
	if len(out)+1 > len(s.buf) {
		// A misbehaving Stringer rendered differently between the two
		// passes; fall back to owning the render's buffer.
		return FromBytes(out), nil
	}
	s.length = len(out)
	s.buf[s.length] = 0
	return s, nil
}
