package simulator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministicForSameSeed(t *testing.T) {
	a := New(42).Generate(10, 2, 0.1)
	b := New(42).Generate(10, 2, 0.1)
	require.Equal(t, a, b)
	require.NotEmpty(t, a)
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	a := New(1).Generate(10, 2, 0.1)
	b := New(2).Generate(10, 2, 0.1)
	require.NotEqual(t, a, b)
}

func TestFirstArrivalHasNoParents(t *testing.T) {
	arrivals := New(7).Generate(5, 1, 0.1)
	require.NotEmpty(t, arrivals)
	require.Empty(t, arrivals[0].ParentNames)
}

func TestArrivalsAreWithinDuration(t *testing.T) {
	arrivals := New(3).Generate(20, 5, 0.05)
	for _, a := range arrivals {
		require.LessOrEqual(t, a.Timestamp, 20.0)
	}
}

func TestZeroDelayFallsBackToMostRecentTip(t *testing.T) {
	arrivals := New(9).Generate(5, 3, 0)
	for i, a := range arrivals[1:] {
		require.NotEmpty(t, a.ParentNames, "arrival %d should have a parent once delay is zero", i+1)
	}
}

func TestKFromXIsMonotonicInDeltaTol(t *testing.T) {
	loose := KFromX(5, 0.1)
	tight := KFromX(5, 0.0001)
	require.LessOrEqual(t, loose, tight)
}

func TestKFromXZeroRate(t *testing.T) {
	// x=0: the Poisson(0) distribution puts all mass on k=0, so any
	// tolerance below 1 is satisfied immediately.
	require.Equal(t, 0, KFromX(0, 0.5))
}

func TestKFromNetworkMatchesKFromX(t *testing.T) {
	require.Equal(t, KFromX(2*0.5*4, 0.01), KFromNetwork(4, 0.5, 0.01))
}
