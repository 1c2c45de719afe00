package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
		require.Equal(t, a.Chance(0.3), b.Chance(0.3))
	}
}

func TestRNGBounds(t *testing.T) {
	r := NewRNG(1)
	require.Zero(t, r.IntN(0))
	for i := 0; i < 200; i++ {
		require.Less(t, r.IntN(3), 3)
		require.False(t, r.Chance(0))
		require.True(t, r.Chance(1))
	}
}
