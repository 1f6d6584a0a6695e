// Command flowfield builds a flow field from a scenario file, walks the
// scenario's agents along it and reports the result.
//
// Usage:
//
//	flowfield [-scenario file.yaml] [-strategy priority|fifo] [-ticks n]
//	          [-z slice] [-map] [-csv out.csv] [-v]
//
// Without -scenario the embedded wall-with-gap layout is used.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/flowfield/agent"
	"github.com/katalvlaran/flowfield/export"
	"github.com/katalvlaran/flowfield/field"
	"github.com/katalvlaran/flowfield/grid"
	"github.com/katalvlaran/flowfield/scenario"
)

func main() {
	var (
		scenarioPath = flag.String("scenario", "", "scenario YAML file (default: embedded wall-with-gap)")
		strategy     = flag.String("strategy", "", "override propagation strategy: priority or fifo")
		ticks        = flag.Int("ticks", -1, "override number of agent ticks")
		slice        = flag.Int("z", 0, "Z slice to draw for 3D scenarios")
		drawMap      = flag.Bool("map", true, "draw the arrow map before and after the run")
		csvPath      = flag.String("csv", "", "write per-cell CSV to this file")
		verbose      = flag.Bool("v", false, "log build statistics")
	)
	flag.Parse()

	sc, err := loadScenario(*scenarioPath)
	if err != nil {
		log.Fatalf("flowfield: %v", err)
	}
	if *strategy != "" {
		sc.Strategy = *strategy
	}
	if *ticks >= 0 {
		sc.Ticks = *ticks
	}

	if err = run(sc, *slice, *drawMap, *csvPath, *verbose); err != nil {
		log.Fatalf("flowfield: %v", err)
	}
}

func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Default()
	}
	return scenario.Load(path)
}

func run(sc *scenario.Scenario, z int, drawMap bool, csvPath string, verbose bool) error {
	strat, err := sc.FieldStrategy()
	if err != nil {
		return err
	}
	g, err := sc.Grid()
	if err != nil {
		return err
	}

	opts := []field.Option{field.WithStrategy(strat)}
	if verbose {
		opts = append(opts, field.WithVerbose())
	}
	f, err := field.Build(g, sc.TargetCoord(), opts...)
	if err != nil {
		return err
	}

	swarm := agent.NewSwarm(sc.AgentStarts()...)
	if drawMap {
		if err = export.WriteArrows(os.Stdout, f, z, positions(swarm)); err != nil {
			return err
		}
		fmt.Println()
	}

	elapsed := swarm.Run(f, g, sc.Ticks)
	fmt.Printf("scenario %q: %d ticks, %d/%d agents at target %v\n",
		sc.Name, elapsed, swarm.Arrived(f.Target()), len(swarm.Agents), f.Target())
	for _, a := range swarm.Agents {
		fmt.Printf("  agent %s at %v cost=%s\n", a.ID, a.Pos, costString(f.Cost(a.Pos)))
	}

	if drawMap {
		if err = export.WriteArrows(os.Stdout, f, z, positions(swarm)); err != nil {
			return err
		}
	}

	s := export.Summarize(f)
	fmt.Printf("cells=%d blocked=%d reachable=%d unreachable=%d\n",
		s.Cells, s.Blocked, s.Reachable, s.Unreachable)
	fmt.Printf("cost mean=%.1f stddev=%.1f median=%.0f max=%.0f\n",
		s.MeanCost, s.StdDevCost, s.MedianCost, s.MaxCost)

	if csvPath == "" {
		return nil
	}
	out, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", csvPath, err)
	}
	defer out.Close()
	return export.WriteCells(out, f)
}

func positions(s *agent.Swarm) []grid.Coord {
	out := make([]grid.Coord, len(s.Agents))
	for i, a := range s.Agents {
		out[i] = a.Pos
	}
	return out
}

func costString(c int) string {
	if c == field.Unreachable {
		return "unreachable"
	}
	return fmt.Sprint(c)
}
