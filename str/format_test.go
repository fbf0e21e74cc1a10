package str

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Format_RendersExactly(t *testing.T) {
	s, err := Format("%s has %d items (%0.1f%%)", "cart", 3, 99.5)
	require.NoError(t, err)
	require.Equal(t, "cart has 3 items (99.5%)", s.String())
	require.Zero(t, s.CString()[s.Len()])
}

// Test_Format_SizedOnce verifies the measure pass sizes the buffer
// exactly, so the render pass performs no further growth.
func Test_Format_SizedOnce(t *testing.T) {
	s, err := Format("%s-%s", "aaaa", "bbbb")
	require.NoError(t, err)
	require.Equal(t, 9, s.Len())
	require.Equal(t, s.Len(), s.Cap())
}

func Test_Format_Empty(t *testing.T) {
	s, err := Format("")
	require.NoError(t, err)
	require.Zero(t, s.Len())
	require.Zero(t, s.Cap())
}

func Test_Format_PlainString(t *testing.T) {
	s, err := Format("no verbs here")
	require.NoError(t, err)
	require.Equal(t, "no verbs here", s.String())
}
