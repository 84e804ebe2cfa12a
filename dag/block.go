package dag

import (
	"sort"

	"github.com/kaspaviz/dagcore/utils/set"
)

// Position is the 2-D coordinate the layout engine assigns to a block.
// It is the zero value until a layout.Engine places the block.
type Position struct {
	X, Y float64
}

// Block is a single DAG vertex and the unit GHOSTDAG classifies.
//
// Parents is ordered: Parents[0] is always the selected parent (I4).
// SelectedParent and Round are set by the Store, and Mergeset, BlueSet
// and BlueScore by the consensus engine, once during Add; they never
// change afterward (I7) — except IsBlue, which a later descendant's
// mergeset computation may still finalize (see ghostdag.Engine.Compute).
//
// BlueScore counts genesis as its own first blue block, so the genesis
// block has BlueScore 1.
type Block struct {
	Name      string
	Hash      uint32
	Parents   []*Block
	Timestamp float64
	Round     int

	SelectedParent *Block
	Mergeset       []*Block
	BlueSet        set.Set[*Block]
	BlueScore      int
	IsBlue         bool

	Position Position

	blueDetermined bool
	children       set.Set[*Block]
}

func newBlock(name string, hash uint32, parents []*Block, timestamp float64, round int) *Block {
	return &Block{
		Name:      name,
		Hash:      hash,
		Parents:   parents,
		Timestamp: timestamp,
		Round:     round,
		IsBlue:    true, // provisional, per spec: a fresh tip is blue until a successor says otherwise
		children:  set.NewSet[*Block](0),
	}
}

// IsGenesis reports whether b has no parents.
func (b *Block) IsGenesis() bool {
	return len(b.Parents) == 0
}

func (b *Block) addChild(c *Block) {
	b.children.Add(c)
}

// Children returns b's children sorted by name for deterministic
// iteration.
func (b *Block) Children() []*Block {
	out := b.children.List()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SetBlueness records b's blue/red classification the first time a
// descendant's GHOSTDAG computation determines it. Later calls are
// no-ops (I7). Exported for the consensus engine implementation; not
// meant to be called from outside this module's own packages.
func (b *Block) SetBlueness(blue bool) {
	if b.blueDetermined {
		return
	}
	b.IsBlue = blue
	b.blueDetermined = true
}

func (b *Block) String() string {
	return b.Name
}
