package slice

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_MakeMapped_RoundTrip(t *testing.T) {
	pages := os.Getpagesize() / 4 // an int32-sized element per 4 bytes
	s, err := MakeMapped[int32](pages, pages)
	require.NoError(t, err)

	for i := 0; i < s.Len(); i++ {
		require.Zero(t, s.Get(i), "mapped region must be zero-filled")
	}
	for i := 0; i < s.Len(); i++ {
		s.Set(i, int32(i))
	}
	for i := 0; i < s.Len(); i++ {
		require.Equal(t, int32(i), s.Get(i))
	}

	s.Free()
	require.Zero(t, s.Len())
	require.Zero(t, s.Cap())
	s.Free() // idempotent
}

func Test_MakeMapped_ViewsBehaveIdentically(t *testing.T) {
	s, err := MakeMapped[byte](8, 8)
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		s.Set(i, byte(i))
	}

	sub := s.Reslice(4, 8)
	require.Equal(t, 4, sub.Len())
	require.Equal(t, byte(4), sub.Get(0))

	// A grow relocates the mapping and stales the window.
	require.NoError(t, s.Grow(4096))
	require.Panics(t, func() { sub.Get(0) })
	require.Equal(t, byte(7), s.Get(7))

	s.Free()
}

func Test_MakeMapped_GrowZeroFills(t *testing.T) {
	s, err := MakeMapped[uint64](2, 2)
	require.NoError(t, err)
	defer s.Free()
	s.Set(0, ^uint64(0))
	s.Set(1, 1)

	require.NoError(t, s.Grow(1024))
	require.Equal(t, ^uint64(0), s.Get(0))
	require.Equal(t, uint64(1), s.Get(1))

	rest := s.Reslice(2, 1024)
	for i := 0; i < rest.Len(); i++ {
		require.Zero(t, rest.Get(i))
	}
}

func Test_MakeMapped_LenOverCap_Panics(t *testing.T) {
	require.Panics(t, func() { _, _ = MakeMapped[int](9, 4) })
}
