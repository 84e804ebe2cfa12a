// Package simulator generates deterministic-given-seed block arrival
// sequences under a Poisson process (spec §4.5), plus the k-derivation
// helpers used to pick a sound GHOSTDAG k for a given network profile.
package simulator

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// Arrival is one emitted block: spec §4.5 step 3's
// (name, timestamp, parent_names) tuple.
type Arrival struct {
	Name        string
	Timestamp   float64
	ParentNames []string
}

// Simulator draws inter-arrival times from an exponential
// distribution seeded deterministically, so two Simulators built with
// the same seed produce identical arrival sequences.
type Simulator struct {
	Seed uint64
}

// New returns a Simulator seeded for reproducible arrival sequences.
func New(seed uint64) *Simulator {
	return &Simulator{Seed: seed}
}

type arrivalRecord struct {
	name      string
	timestamp float64
}

type tipSnapshot struct {
	t    float64
	tips []string
}

// Generate runs the Poisson arrival process for duration seconds at
// rate blocks/second, gating tip visibility by propagationDelay
// seconds (spec §4.5).
func (s *Simulator) Generate(duration, rate, propagationDelay float64) []Arrival {
	rng := rand.New(rand.NewSource(int64(s.Seed)))
	exp := distuv.Exponential{Rate: rate, Src: rng}

	var arrivals []Arrival
	var history []arrivalRecord
	var tipLog []tipSnapshot
	currentTips := make(map[string]struct{})

	var t float64
	for i := 0; ; i++ {
		t += exp.Rand()
		if t > duration {
			break
		}

		visibleCutoff := t - propagationDelay
		parents := s.parentsAt(visibleCutoff, history, tipLog)

		name := fmt.Sprintf("block_%d", i)
		arrivals = append(arrivals, Arrival{Name: name, Timestamp: t, ParentNames: parents})

		history = append(history, arrivalRecord{name: name, timestamp: t})
		for _, p := range parents {
			delete(currentTips, p)
		}
		currentTips[name] = struct{}{}
		tipLog = append(tipLog, tipSnapshot{t: t, tips: sortedKeys(currentTips)})
	}

	return arrivals
}

// parentsAt implements spec §4.5 step 2: historical tips as of
// visibleCutoff via binary search over the tip-history log, falling
// back to the most recent visible block, falling back to genesis.
func (s *Simulator) parentsAt(visibleCutoff float64, history []arrivalRecord, tipLog []tipSnapshot) []string {
	idx := sort.Search(len(tipLog), func(j int) bool { return tipLog[j].t > visibleCutoff })
	if idx > 0 {
		return tipLog[idx-1].tips
	}

	for j := len(history) - 1; j >= 0; j-- {
		if history[j].timestamp <= visibleCutoff {
			return []string{history[j].name}
		}
	}
	return nil
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// KFromX returns the smallest k such that the Poisson(x) CDF at k is
// at least 1-deltaTol, computed by Horner-style incremental summation
// to avoid overflow for large x.
func KFromX(x, deltaTol float64) int {
	k := 0
	sigma := 0.0
	fraction := 1.0
	decay := math.Exp(-x)

	for {
		sigma += decay * fraction
		if 1.0-sigma < deltaTol {
			return k
		}
		k++
		fraction *= x / float64(k)
	}
}

// KFromNetwork derives a sound k for a network with block rate
// lambda, maximum propagation delay deltaMax, and tolerance deltaTol.
func KFromNetwork(lambda, deltaMax, deltaTol float64) int {
	return KFromX(2*deltaMax*lambda, deltaTol)
}
