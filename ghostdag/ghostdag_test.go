package ghostdag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kaspaviz/dagcore/dag"
	"github.com/kaspaviz/dagcore/ghostdag"
)

func newStore(t *testing.T, k int) *dag.Store {
	t.Helper()
	e, err := ghostdag.NewEngine(k)
	require.NoError(t, err)
	return dag.NewStore(dag.StoreConfig{Consensus: e})
}

func TestNewEngineRejectsNegativeK(t *testing.T) {
	_, err := ghostdag.NewEngine(-1)
	require.Error(t, err)
}

func TestGenesisBlueScoreIsOne(t *testing.T) {
	s := newStore(t, 18)
	gen, err := s.Add("", nil, 0)
	require.NoError(t, err)
	require.Equal(t, 1, gen.BlueScore)
	require.Len(t, gen.BlueSet, 1)
	require.True(t, gen.IsBlue)
}

// S1: a linear chain climbs blue_score by exactly one per block.
func TestLinearChainBlueScoresClimb(t *testing.T) {
	s := newStore(t, 18)
	gen, _ := s.Add("", nil, 0)
	b1, err := s.Add("", []*dag.Block{gen}, 1)
	require.NoError(t, err)
	b2, err := s.Add("", []*dag.Block{b1}, 2)
	require.NoError(t, err)
	b3, err := s.Add("", []*dag.Block{b2}, 3)
	require.NoError(t, err)

	require.Equal(t, 1, gen.BlueScore)
	require.Equal(t, 2, b1.BlueScore)
	require.Equal(t, 3, b2.BlueScore)
	require.Equal(t, 4, b3.BlueScore)
	require.Empty(t, b1.Mergeset)
	require.True(t, b1.IsBlue)
	require.True(t, b2.IsBlue)
}

// S2: a diamond's mergeset is exactly the non-selected parent, and
// with a generous k both parents end up blue.
func TestDiamondAdmitsNonSelectedParentWhenKPermits(t *testing.T) {
	s := newStore(t, 18)
	gen, _ := s.Add("", nil, 0)
	a, _ := s.Add("", []*dag.Block{gen}, 1)
	b, _ := s.Add("", []*dag.Block{gen}, 1)
	merge, err := s.Add("", []*dag.Block{a, b}, 2)
	require.NoError(t, err)

	require.Len(t, merge.Mergeset, 1)
	nonSelected := a
	if merge.SelectedParent == a {
		nonSelected = b
	}
	require.Equal(t, nonSelected, merge.Mergeset[0])
	require.Len(t, merge.BlueSet, 2)
	require.True(t, nonSelected.IsBlue)
}

// S4: four pairwise-anticone blocks merged with k=0 — only the
// selected parent is admitted to blue, the other three are rejected.
func TestFourWayMergeWithZeroKAdmitsOnlySelectedParent(t *testing.T) {
	s := newStore(t, 0)
	gen, _ := s.Add("", nil, 0)
	a, _ := s.Add("", []*dag.Block{gen}, 1)
	b, _ := s.Add("", []*dag.Block{gen}, 1)
	c, _ := s.Add("", []*dag.Block{gen}, 1)
	d, _ := s.Add("", []*dag.Block{gen}, 1)

	merge, err := s.Add("", []*dag.Block{a, b, c, d}, 2)
	require.NoError(t, err)

	require.Len(t, merge.BlueSet, 1)
	require.Contains(t, merge.BlueSet, merge.SelectedParent)
	require.Equal(t, merge.SelectedParent.BlueScore+1, merge.BlueScore)

	for _, candidate := range []*dag.Block{a, b, c, d} {
		if candidate == merge.SelectedParent {
			continue
		}
		require.False(t, candidate.IsBlue, "%s should be red under k=0", candidate.Name)
	}
}

func TestBlueSetAlwaysContainsSelectedParent(t *testing.T) {
	s := newStore(t, 1)
	gen, _ := s.Add("", nil, 0)
	a, _ := s.Add("", []*dag.Block{gen}, 1)
	b, _ := s.Add("", []*dag.Block{gen}, 1)
	merge, err := s.Add("", []*dag.Block{a, b}, 2)
	require.NoError(t, err)
	require.Contains(t, merge.BlueSet, merge.SelectedParent)
}
