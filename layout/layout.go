// Package layout implements the deterministic 2-D placement model of
// spec §4.4: column assignment by x, vertical centering within a
// column around genesis_y, and atomic move-batch notification to an
// external visual collaborator.
//
// Grounded on the teacher's graph package only by directory
// convention (graph/ held the teacher's transaction-conflict-set
// type, unrelated in content) — the placement algorithm itself comes
// straight from spec §4.4; the engine follows the teacher's
// metrics.Metrics constructor pattern: a plain value struct, no
// framework. Move batches are returned from Place to its caller; the
// engine takes no move callback and notifies no one itself.
package layout

import (
	"sort"

	"github.com/kaspaviz/dagcore/config"
	"github.com/kaspaviz/dagcore/dag"
	"github.com/kaspaviz/dagcore/log"
	"github.com/kaspaviz/dagcore/metrics"
)

// Move is one entry in a move batch: block b now belongs at (X, Y).
type Move struct {
	Block *dag.Block
	X, Y  float64
}

// Engine assigns positions on insertion and emits move batches when a
// column needs recentering.
type Engine struct {
	params  config.LayoutParams
	columns map[float64][]*dag.Block // keyed by a canonical x per column
	log     log.Logger
	metrics *metrics.Metrics
}

// NewEngine validates params and returns a placement engine.
func NewEngine(params config.LayoutParams, logger log.Logger, m *metrics.Metrics) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Nop()
	}
	if m == nil {
		m = metrics.New(nil)
	}
	return &Engine{
		params:  params,
		columns: make(map[float64][]*dag.Block),
		log:     logger,
		metrics: m,
	}, nil
}

// Place assigns b a position per spec §4.4 steps 1-3, recenters its
// column if needed, and returns the move batch to forward to the
// visual collaborator (nil when no recentering was needed).
func (e *Engine) Place(b *dag.Block) []Move {
	if b.IsGenesis() {
		b.Position = dag.Position{X: e.params.GenesisX, Y: e.params.GenesisY}
		e.addToColumn(e.params.GenesisX, b)
		return nil
	}

	targetX := e.rightmostParentX(b) + e.params.HorizontalSpacing
	columnKey, column := e.findColumn(targetX)

	targetY := e.params.GenesisY
	if len(column) > 0 {
		targetY = e.maxY(column) + e.params.VerticalSpacing
	}
	b.Position = dag.Position{X: targetX, Y: targetY}
	e.addToColumn(columnKey, b)

	return e.recenter(columnKey)
}

func (e *Engine) rightmostParentX(b *dag.Block) float64 {
	max := b.Parents[0].Position.X
	for _, p := range b.Parents[1:] {
		if p.Position.X > max {
			max = p.Position.X
		}
	}
	return max
}

// findColumn returns the canonical key and members of the column
// within ε of x, if any exist yet.
func (e *Engine) findColumn(x float64) (float64, []*dag.Block) {
	for key, members := range e.columns {
		if abs(key-x) < e.params.Epsilon {
			return key, members
		}
	}
	return x, nil
}

func (e *Engine) addToColumn(key float64, b *dag.Block) {
	e.columns[key] = append(e.columns[key], b)
}

func (e *Engine) maxY(column []*dag.Block) float64 {
	max := column[0].Position.Y
	for _, c := range column[1:] {
		if c.Position.Y > max {
			max = c.Position.Y
		}
	}
	return max
}

// recenter re-centers the column at key around genesis_y and returns
// the move batch if the shift is at least ε.
func (e *Engine) recenter(key float64) []Move {
	column := e.columns[key]
	if len(column) == 0 {
		return nil
	}

	minY, maxY := column[0].Position.Y, column[0].Position.Y
	for _, c := range column[1:] {
		if c.Position.Y < minY {
			minY = c.Position.Y
		}
		if c.Position.Y > maxY {
			maxY = c.Position.Y
		}
	}

	shiftY := e.params.GenesisY - (maxY+minY)/2
	if abs(shiftY) < e.params.Epsilon {
		return nil
	}

	batch := make([]Move, 0, len(column))
	for _, c := range column {
		c.Position.Y += shiftY
		batch = append(batch, Move{Block: c, X: c.Position.X, Y: c.Position.Y})
	}
	sort.Slice(batch, func(i, j int) bool { return batch[i].Block.Name < batch[j].Block.Name })

	e.metrics.MoveBatchesTotal.Inc()
	e.log.Debugw("column recentered", "x", key, "shift_y", shiftY, "members", len(batch))
	return batch
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
