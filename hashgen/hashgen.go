// Package hashgen produces the 32-bit uniform tiebreak values used to
// order otherwise-equal blocks in the DAG. These are not content
// addresses and carry no cryptographic guarantee.
package hashgen

import (
	"math/rand"
	"sync"
	"time"
)

// Generator yields independent, uniformly distributed uint32 samples.
// It is safe for concurrent use so that multiple DAGs sharing one
// Generator can create blocks from separate goroutines.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Generator seeded from the current time.
func New() *Generator {
	return &Generator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewDeterministic returns a Generator seeded with seed, for
// reproducible tests and simulator runs.
func NewDeterministic(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Uint32 returns the next uniform sample on [0, 2^32).
func (g *Generator) Uint32() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Uint32()
}

var defaultGenerator = New()

// NewHash returns a uniform uint32 from the package-level default
// generator. dag.Store does not use it: a Store without a supplied
// Generator builds its own with New.
func NewHash() uint32 {
	return defaultGenerator.Uint32()
}
