package str

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Equal(t *testing.T) {
	require.True(t, From("abc").Equal(From("abc")))
	require.False(t, From("abc").Equal(From("abd")))
	require.False(t, From("abc").Equal(From("ab")))
	require.True(t, (&String{}).Equal(From("")))
}

func Test_Compare_Lexicographic(t *testing.T) {
	require.Zero(t, From("abc").Compare(From("abc")))
	require.Equal(t, -1, From("abc").Compare(From("abd")))
	require.Equal(t, 1, From("abd").Compare(From("abc")))
	require.Equal(t, -1, From("ab").Compare(From("abc")))
	require.Equal(t, -1, (&String{}).Compare(From("a")))
}

func Test_Contains(t *testing.T) {
	s := From("Hello, world!")
	require.True(t, s.Contains("world"))
	require.True(t, s.Contains("Hello"))
	require.True(t, s.Contains(""))
	require.False(t, s.Contains("worlds"))
}

func Test_ContainsChar(t *testing.T) {
	s := From("abc")
	require.True(t, s.ContainsChar('b'))
	require.False(t, s.ContainsChar('z'))
	require.False(t, (&String{}).ContainsChar('a'))
}

func Test_PrefixedSuffixed(t *testing.T) {
	s := From("Hello, world!")
	require.True(t, s.Prefixed("Hello"))
	require.True(t, s.Prefixed(""))
	require.False(t, s.Prefixed("world"))
	require.False(t, s.Prefixed("Hello, world! and more"))

	require.True(t, s.Suffixed("world!"))
	require.True(t, s.Suffixed(""))
	require.False(t, s.Suffixed("Hello"))
	require.False(t, s.Suffixed("longer than the string itself"))
}

func Test_Hash_ContentAddressed(t *testing.T) {
	a, b := From("abc"), From("abc")
	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, From("abc").Hash(), From("abd").Hash())

	// Capacity differences must not leak into the hash.
	c := From("abc")
	require.NoError(t, c.Grow(100))
	require.Equal(t, a.Hash(), c.Hash())
}
