package str

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether s and o hold identical bytes.
func (s *String) Equal(o *String) bool {
	return bytes.Equal(s.Bytes(), o.Bytes())
}

// Compare lexicographically compares s and o byte-wise, returning -1, 0
// or +1 in the manner of a standard string comparison.
func (s *String) Compare(o *String) int {
	return bytes.Compare(s.Bytes(), o.Bytes())
}

// Contains reports whether substr occurs within s. The empty substring is
// contained in every string.
func (s *String) Contains(substr string) bool {
	return bytes.Contains(s.Bytes(), []byte(substr))
}

// ContainsChar reports whether the byte c occurs within s.
func (s *String) ContainsChar(c byte) bool {
	return bytes.IndexByte(s.Bytes(), c) >= 0
}

// Prefixed reports whether s begins with pref.
func (s *String) Prefixed(pref string) bool {
	return bytes.HasPrefix(s.Bytes(), []byte(pref))
}

// Suffixed reports whether s ends with suff.
func (s *String) Suffixed(suff string) bool {
	return bytes.HasSuffix(s.Bytes(), []byte(suff))
}

// Hash returns a 64-bit content hash of the logical bytes, suitable for
// use as a map key or interning handle. Strings that are Equal hash
// identically.
func (s *String) Hash() uint64 {
	return xxhash.Sum64(s.Bytes())
}
