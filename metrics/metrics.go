// Package metrics wires this module's DAG/simulator activity into
// Prometheus, the way the teacher's metrics package wires consensus
// activity: directly against prometheus.Registerer, gracefully
// degrading to unregistered (but still usable) collectors when no
// registerer is supplied or registration fails.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Averager tracks a running mean, mirroring the teacher's
// metrics.Averager abstraction (used here for mergeset size).
type Averager interface {
	Observe(value float64)
	Read() float64
}

type averager struct {
	mu    sync.RWMutex
	sum   float64
	count float64
	gauge prometheus.Gauge
}

func (a *averager) Observe(value float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sum += value
	a.count++
	a.gauge.Set(a.sum / a.count)
}

func (a *averager) Read() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.count == 0 {
		return 0
	}
	return a.sum / a.count
}

// Metrics collects the counters/gauges a DAG visualization wants to
// chart. A Metrics built with a nil Registerer still works — the
// collectors simply never get scraped — matching spec §6's headless
// requirement (on_move may be nil; the same graceful degradation
// applies here).
type Metrics struct {
	BlocksTotal      prometheus.Counter
	BlueScoreMax     prometheus.Gauge
	MoveBatchesTotal prometheus.Counter
	MergesetSize     Averager
}

// New builds and, if reg is non-nil, registers a Metrics bundle.
// Duplicate-registration errors (e.g. a shared registry reused across
// DAG instances in tests) are swallowed: the collectors remain usable
// even when a second registration attempt is rejected.
func New(reg prometheus.Registerer) *Metrics {
	blocksTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dagviz_blocks_total",
		Help: "Total number of blocks appended to the DAG.",
	})
	blueScoreMax := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dagviz_blue_score_max",
		Help: "Highest blue score observed across all blocks.",
	})
	moveBatchesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dagviz_move_batches_total",
		Help: "Total number of layout move batches emitted.",
	})
	mergesetGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dagviz_mergeset_size_avg",
		Help: "Running average mergeset size.",
	})

	if reg != nil {
		for _, c := range []prometheus.Collector{blocksTotal, blueScoreMax, moveBatchesTotal, mergesetGauge} {
			_ = reg.Register(c)
		}
	}

	return &Metrics{
		BlocksTotal:      blocksTotal,
		BlueScoreMax:     blueScoreMax,
		MoveBatchesTotal: moveBatchesTotal,
		MergesetSize:     &averager{gauge: mergesetGauge},
	}
}
