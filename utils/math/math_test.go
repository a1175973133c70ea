package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiv(t *testing.T) {
	require.Equal(t, 12, DivCeil(48, 4))
	require.Equal(t, 13, DivCeil(49, 4))
	require.Equal(t, 12, DivFloor(49, 4))
	require.Equal(t, 0, DivFloor(1, 2))
}

func TestMinMax(t *testing.T) {
	require.Equal(t, 5, Max(3, 5))
	require.Equal(t, "b", Max("a", "b"))
	require.Equal(t, -1, Min(-1, 4))
	require.Equal(t, 2.5, Min(2.5, 2.5))
}
