package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_Next_DoublingStrictlyIncreases verifies the default growth step
// always yields a capacity strictly greater than the current one.
func Test_Next_DoublingStrictlyIncreases(t *testing.T) {
	cap := 0
	for i := 0; i < 20; i++ {
		next := Next(cap, 0)
		require.Greater(t, next, cap)
		require.Equal(t, (cap+1)*2, next)
		cap = next
	}
}

func Test_Next_NoOpWhenAlreadySufficient(t *testing.T) {
	require.Equal(t, 10, Next(10, 10))
	require.Equal(t, 10, Next(10, 5))
	require.Equal(t, 10, Next(10, 1))
}

func Test_Next_ExactFitWhenLarger(t *testing.T) {
	require.Equal(t, 11, Next(10, 11))
	require.Equal(t, 4096, Next(2, 4096))
}

func Test_Next_DoublingClampsNearMax(t *testing.T) {
	require.Equal(t, math.MaxInt, Next(math.MaxInt/2+1, 0))
}

func Test_CheckSize_ReportsTotal(t *testing.T) {
	total, err := CheckSize(128, 8)
	require.NoError(t, err)
	require.Equal(t, 1024, total)

	total, err = CheckSize(0, 8)
	require.NoError(t, err)
	require.Zero(t, total)
}

func Test_CheckSize_OverflowFails(t *testing.T) {
	_, err := CheckSize(math.MaxInt, 2)
	require.ErrorIs(t, err, ErrTooLarge)

	_, err = CheckSize(math.MaxInt/4, 8)
	require.ErrorIs(t, err, ErrTooLarge)
}

func Test_AddNoOverflow(t *testing.T) {
	sum, ok := AddNoOverflow(1, 2)
	require.True(t, ok)
	require.Equal(t, 3, sum)

	_, ok = AddNoOverflow(math.MaxInt, 1)
	require.False(t, ok)

	sum, ok = AddNoOverflow(math.MaxInt-1, 1)
	require.True(t, ok)
	require.Equal(t, math.MaxInt, sum)
}

func Test_MulNoOverflow(t *testing.T) {
	prod, ok := MulNoOverflow(3, 4)
	require.True(t, ok)
	require.Equal(t, 12, prod)

	prod, ok = MulNoOverflow(0, math.MaxInt)
	require.True(t, ok)
	require.Zero(t, prod)

	_, ok = MulNoOverflow(math.MaxInt/2, 3)
	require.False(t, ok)
}
