// Package ghostdag implements the blue/red classification and
// ordering algorithm described by spec §4.3: GHOSTDAG over a
// dag.Store, parameterized by k.
package ghostdag

import (
	"fmt"
	"sort"

	"github.com/kaspaviz/dagcore/config"
	"github.com/kaspaviz/dagcore/dag"
	"github.com/kaspaviz/dagcore/utils/set"
)

// Engine computes mergeset, blue set, blue score and blueness for
// each block as it is appended. It implements dag.ConsensusEngine.
type Engine struct {
	K int
}

// NewEngine returns a GHOSTDAG engine with the given k. k must be
// non-negative.
func NewEngine(k int) (*Engine, error) {
	if k < 0 {
		return nil, config.ErrInvalidK
	}
	return &Engine{K: k}, nil
}

// Compute fills in Mergeset, BlueSet and BlueScore for b, and
// finalizes IsBlue for every block b's computation newly classifies;
// b's own IsBlue is left at its provisional value.
//
// The selected parent itself (I4) is already recorded on b by the
// time Store.Add calls Compute — sorting parents by (blue_score desc,
// hash asc) is a structural property of the DAG (I4), not something
// GHOSTDAG needs to redo; this engine only performs §4.3 steps 2-4.
func (e *Engine) Compute(s *dag.Store, b *dag.Block) error {
	if b.IsGenesis() {
		b.BlueScore = 1
		b.BlueSet = set.Of(b)
		return nil
	}

	selectedParent := b.SelectedParent
	if selectedParent.BlueSet == nil {
		return fmt.Errorf("%w: selected parent %q", dag.ErrAncestorMissingConsensus, selectedParent.Name)
	}

	mergeset := e.mergeset(s, b, selectedParent)

	w := set.Of(mergeset...)
	w.Add(selectedParent)

	blue := set.Of(selectedParent)
	selectedParent.SetBlueness(true)

	admitted := 0
	for _, c := range mergeset {
		if e.admits(s, w, blue, c) {
			blue.Add(c)
			c.SetBlueness(true)
			admitted++
		} else {
			c.SetBlueness(false)
		}
	}

	b.Mergeset = mergeset
	b.BlueSet = blue
	b.BlueScore = selectedParent.BlueScore + 1 + admitted
	return nil
}

// mergeset returns past(b) minus (past(selectedParent) ∪
// {selectedParent}), sorted ascending by (blue_score, hash) per §4.3
// step 2.
func (e *Engine) mergeset(s *dag.Store, b, selectedParent *dag.Block) []*dag.Block {
	past := s.PastCone(b)
	excl := set.Of(selectedParent)
	excl.Union(set.Of(s.PastCone(selectedParent)...))

	var merge []*dag.Block
	for _, c := range past {
		if !excl.Contains(c) {
			merge = append(merge, c)
		}
	}
	sort.Slice(merge, func(i, j int) bool {
		if merge[i].BlueScore != merge[j].BlueScore {
			return merge[i].BlueScore < merge[j].BlueScore
		}
		return merge[i].Hash < merge[j].Hash
	})
	return merge
}

// admits reports whether candidate c may join blue under the k-cluster
// checks of §4.3 step 3: Check A bounds c's own anticone-within-blue
// count; Check B guards that admitting c does not push any existing
// blue member's anticone-within-blue count past k.
func (e *Engine) admits(s *dag.Store, w, blue set.Set[*dag.Block], c *dag.Block) bool {
	acC := anticoneWithin(s, w, c)

	count := 0
	for v := range blue {
		if acC.Contains(v) {
			count++
		}
	}
	if count > e.K {
		return false
	}

	for v := range blue {
		acV := anticoneWithin(s, w, v)
		if !acV.Contains(c) {
			continue
		}
		count := 1 // c itself, hypothetically admitted
		for other := range blue {
			if other == v {
				continue
			}
			if acV.Contains(other) {
				count++
			}
		}
		if count > e.K {
			return false
		}
	}
	return true
}

// anticoneWithin returns the subset of w that is neither an ancestor
// nor a descendant of x, and is not x itself.
func anticoneWithin(s *dag.Store, w set.Set[*dag.Block], x *dag.Block) set.Set[*dag.Block] {
	exclude := set.Of(x)
	exclude.Union(set.Of(s.PastCone(x)...))
	exclude.Union(set.Of(s.FutureCone(x)...))

	out := set.NewSet[*dag.Block](w.Len())
	for candidate := range w {
		if !exclude.Contains(candidate) {
			out.Add(candidate)
		}
	}
	return out
}
