package set

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	var s Set[string]
	require.False(t, s.Has("a"))
	require.Zero(t, s.Len())

	require.True(t, s.Insert("a"))
	require.False(t, s.Insert("a"))
	require.True(t, s.Has("a"))

	s = Of("b", "a", "b")
	require.Equal(t, 2, s.Len())
	require.ElementsMatch(t, []string{"a", "b"}, slices.Collect(s.Values()))
}
