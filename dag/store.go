// Package dag implements the append-only block DAG: Block, Store, and
// the cone queries (PastCone, FutureCone, Anticone) every other
// package in this module builds on.
package dag

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"sync"

	"github.com/kaspaviz/dagcore/hashgen"
	"github.com/kaspaviz/dagcore/log"
	"github.com/kaspaviz/dagcore/metrics"
	"github.com/kaspaviz/dagcore/utils/set"
)

var leadingInt = regexp.MustCompile(`\d+`)

// StoreConfig wires a Store's dependencies. Consensus is required;
// everything else defaults to a no-op implementation, the same
// pattern the teacher's protocol/nova.Context uses for Log and
// Registerer.
type StoreConfig struct {
	Consensus ConsensusEngine
	Hashgen   *hashgen.Generator
	Log       log.Logger
	Metrics   *metrics.Metrics
}

// Store owns every Block exclusively; all mutation happens through
// its methods, and the store's own maps are written under a single
// writer lock (spec's single-writer concurrency model — concurrent
// readers are safe, concurrent writers are not attempted). The lock
// is released while the consensus engine runs inside Add.
type Store struct {
	mu     sync.RWMutex
	byName map[string]*Block
	order  []*Block

	consensus ConsensusEngine
	hashgen   *hashgen.Generator
	log       log.Logger
	metrics   *metrics.Metrics
}

// NewStore constructs an empty Store. cfg.Consensus must not be nil.
func NewStore(cfg StoreConfig) *Store {
	if cfg.Hashgen == nil {
		cfg.Hashgen = hashgen.New()
	}
	if cfg.Log == nil {
		cfg.Log = log.Nop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.New(nil)
	}
	return &Store{
		byName:    make(map[string]*Block),
		consensus: cfg.Consensus,
		hashgen:   cfg.Hashgen,
		log:       cfg.Log,
		metrics:   cfg.Metrics,
	}
}

// Add appends a new block. name may be empty to request automatic
// naming ("Gen" for the first block, "B<round>[suffix]" thereafter).
// parents may be empty only for the very first block in the store.
func (s *Store) Add(name string, parents []*Block, timestamp float64) (*Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateParents(parents); err != nil {
		return nil, err
	}

	sorted := sortParents(parents)
	var selectedParent *Block
	round := 0
	if len(sorted) > 0 {
		selectedParent = sorted[0]
		round = selectedParent.Round + 1
	} else if len(s.order) != 0 {
		return nil, fmt.Errorf("%w: only the first block may omit parents", ErrInvalidParents)
	}

	if name == "" {
		name = s.generateName(round)
	} else if _, taken := s.byName[name]; taken {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	b := newBlock(name, s.hashgen.Uint32(), sorted, timestamp, round)
	if selectedParent != nil {
		b.SelectedParent = selectedParent
	}

	// The consensus engine reads the store through PastCone/FutureCone,
	// which take the read lock, so the write lock is released while it
	// runs and re-acquired before the block is published.
	s.mu.Unlock()
	err := s.consensus.Compute(s, b)
	s.mu.Lock()
	if err != nil {
		return nil, err
	}

	s.byName[name] = b
	s.order = append(s.order, b)
	for _, p := range sorted {
		p.addChild(b)
	}

	s.metrics.BlocksTotal.Inc()
	s.metrics.BlueScoreMax.Set(float64(s.maxBlueScoreLocked()))
	s.metrics.MergesetSize.Observe(float64(len(b.Mergeset)))
	s.log.Debugw("block added", "name", b.Name, "round", b.Round, "blue_score", b.BlueScore, "is_blue", b.IsBlue)

	return b, nil
}

func (s *Store) validateParents(parents []*Block) error {
	seen := make(map[string]struct{}, len(parents))
	for _, p := range parents {
		if p == nil {
			return fmt.Errorf("%w: nil parent", ErrInvalidParents)
		}
		stored, ok := s.byName[p.Name]
		if !ok || stored != p {
			return fmt.Errorf("%w: %q", ErrUnknownParent, p.Name)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: duplicate parent %q", ErrInvalidParents, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}

// sortParents returns a fresh slice ordered by (blue_score desc, hash
// asc) — I4: the head becomes the selected parent.
func sortParents(parents []*Block) []*Block {
	if len(parents) == 0 {
		return nil
	}
	out := make([]*Block, len(parents))
	copy(out, parents)
	sort.Slice(out, func(i, j int) bool {
		if out[i].BlueScore != out[j].BlueScore {
			return out[i].BlueScore > out[j].BlueScore
		}
		return out[i].Hash < out[j].Hash
	})
	return out
}

func (s *Store) generateName(round int) string {
	if len(s.order) == 0 {
		return "Gen"
	}
	base := fmt.Sprintf("B%d", round)
	if _, taken := s.byName[base]; !taken {
		return base
	}
	for i := 0; i < 26; i++ {
		candidate := base + string(rune('a'+i))
		if _, taken := s.byName[candidate]; !taken {
			return candidate
		}
	}
	// Exhausted a-z at this round; fall back to a numeric suffix.
	for i := 26; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if _, taken := s.byName[candidate]; !taken {
			return candidate
		}
	}
}

func (s *Store) maxBlueScoreLocked() int {
	max := 0
	for _, b := range s.order {
		if b.BlueScore > max {
			max = b.BlueScore
		}
	}
	return max
}

// Get looks up a block by exact name, falling back to the fuzzy
// lookup described by spec §4.2: extract the leading integer from the
// requested name and return the first block at that round (clamped to
// the highest round present); with no digits, return the most
// recently added block. Returns nil only when the store is empty.
func (s *Store) Get(name string) *Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b, ok := s.byName[name]; ok {
		return b
	}
	if len(s.order) == 0 {
		return nil
	}

	digits := leadingInt.FindString(name)
	if digits == "" {
		return s.order[len(s.order)-1]
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return s.order[len(s.order)-1]
	}

	maxRound := 0
	for _, b := range s.order {
		if b.Round > maxRound {
			maxRound = b.Round
		}
	}
	if n > maxRound {
		n = maxRound
	}
	for _, b := range s.order {
		if b.Round == n {
			return b
		}
	}
	return s.order[len(s.order)-1]
}

// Tips returns every block with no children, in insertion order.
func (s *Store) Tips() []*Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tips []*Block
	for _, b := range s.order {
		if len(b.children) == 0 {
			tips = append(tips, b)
		}
	}
	return tips
}

// IterAll returns every block in insertion order. The slice is a
// snapshot; later Adds do not retroactively extend it.
func (s *Store) IterAll() []*Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Block, len(s.order))
	copy(out, s.order)
	return out
}

// PastCone returns every strict ancestor of b (excluding b).
func (s *Store) PastCone(b *Block) []*Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := set.NewSet[*Block](0)
	stack := append([]*Block(nil), b.Parents...)
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		if seen.Contains(cur) {
			continue
		}
		seen.Add(cur)
		stack = append(stack, cur.Parents...)
	}
	return setToSlice(seen)
}

// FutureCone returns every strict descendant of b (excluding b).
func (s *Store) FutureCone(b *Block) []*Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := set.NewSet[*Block](0)
	stack := b.children.List()
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		if seen.Contains(cur) {
			continue
		}
		seen.Add(cur)
		stack = append(stack, cur.children.List()...)
	}
	return setToSlice(seen)
}

// Anticone returns every block that is neither an ancestor nor a
// descendant of b, and is not b itself.
func (s *Store) Anticone(b *Block) []*Block {
	past := s.PastCone(b)
	future := s.FutureCone(b)

	exclude := set.Of(b)
	exclude.Union(set.Of(past...))
	exclude.Union(set.Of(future...))

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Block
	for _, blk := range s.order {
		if !exclude.Contains(blk) {
			out = append(out, blk)
		}
	}
	return out
}

func setToSlice(members set.Set[*Block]) []*Block {
	out := members.List()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
