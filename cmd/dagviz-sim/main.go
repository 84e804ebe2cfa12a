// Command dagviz-sim drives the simulator, dag, ghostdag and layout
// packages end to end and prints a one-line-per-block summary to
// stdout — a headless stand-in for the external visual collaborator
// this module is meant to embed into.
package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/kaspaviz/dagcore/config"
	"github.com/kaspaviz/dagcore/dag"
	"github.com/kaspaviz/dagcore/ghostdag"
	"github.com/kaspaviz/dagcore/layout"
	"github.com/kaspaviz/dagcore/log"
	"github.com/kaspaviz/dagcore/metrics"
	"github.com/kaspaviz/dagcore/simulator"
)

var rootCmd = &cobra.Command{
	Use:   "dagviz-sim",
	Short: "Simulate a GHOSTDAG block DAG and print its layout",
	Long: `dagviz-sim runs a Poisson block-arrival simulation, replays the
resulting blocks through a GHOSTDAG-consensus DAG store, and prints
the round, hash, blue score and 2-D position assigned to each block.`,
	RunE: runSim,
}

func init() {
	flags := rootCmd.Flags()
	flags.Float64("duration", 30, "simulated network duration, in seconds")
	flags.Float64("rate", 2, "block arrival rate, in blocks/second")
	flags.Float64("delay", 0.5, "propagation delay, in seconds")
	flags.Int("k", config.DefaultDAGConfig().K, "GHOSTDAG k parameter")
	flags.Int64("seed", 1, "simulator seed, for reproducible runs")
	flags.Bool("verbose", false, "enable debug logging")
}

func runSim(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	duration, _ := flags.GetFloat64("duration")
	rate, _ := flags.GetFloat64("rate")
	delay, _ := flags.GetFloat64("delay")
	k, _ := flags.GetInt("k")
	seed, _ := flags.GetInt64("seed")
	verbose, _ := flags.GetBool("verbose")

	logger := log.Nop()
	if verbose {
		logger = log.Dev()
	}

	engine, err := ghostdag.NewEngine(k)
	if err != nil {
		return fmt.Errorf("dagviz-sim: %w", err)
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	store := dag.NewStore(dag.StoreConfig{Consensus: engine, Log: logger, Metrics: m})

	layoutParams := config.DefaultLayoutParams()
	layoutEngine, err := layout.NewEngine(layoutParams, logger, m)
	if err != nil {
		return fmt.Errorf("dagviz-sim: %w", err)
	}

	arrivals := simulator.New(uint64(seed)).Generate(duration, rate, delay)
	logger.Infow("simulation generated", "arrivals", len(arrivals))

	byName := make(map[string]*dag.Block, len(arrivals)+1)
	for _, arrival := range arrivals {
		parents := make([]*dag.Block, 0, len(arrival.ParentNames))
		for _, pn := range arrival.ParentNames {
			if p, ok := byName[pn]; ok {
				parents = append(parents, p)
			}
		}

		b, err := store.Add("", parents, arrival.Timestamp)
		if err != nil {
			logger.Warnw("block rejected", "name", arrival.Name, "err", err)
			continue
		}
		byName[arrival.Name] = b
		layoutEngine.Place(b)
	}

	for _, b := range store.IterAll() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s round=%-4d hash=%08x blue_score=%-4d blue=%-5t pos=(%.1f,%.1f)\n",
			b.Name, b.Round, b.Hash, b.BlueScore, b.IsBlue, b.Position.X, b.Position.Y)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
