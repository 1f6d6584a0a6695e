package export

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/flowfield/field"
)

// Summary aggregates the cost surface of a field. Cost statistics cover
// reachable cells only; they are zero when only the target is reachable.
type Summary struct {
	Cells       int
	Blocked     int
	Reachable   int // target included
	Unreachable int // free cells with no route

	MeanCost   float64
	StdDevCost float64
	MedianCost float64
	MaxCost    float64
}

// Summarize computes the Summary of f.
func Summarize(f *field.Field) Summary {
	s := Summary{Cells: f.Len()}
	costs := make([]float64, 0, f.Len())
	for i := 0; i < f.Len(); i++ {
		c := f.Coordinate(i)
		switch {
		case f.IsObstacle(c):
			s.Blocked++
		case !f.Reachable(c):
			s.Unreachable++
		default:
			s.Reachable++
			costs = append(costs, float64(f.Cost(c)))
		}
	}
	if len(costs) < 2 {
		return s
	}

	sort.Float64s(costs)
	s.MeanCost, s.StdDevCost = stat.MeanStdDev(costs, nil)
	s.MedianCost = stat.Quantile(0.5, stat.Empirical, costs, nil)
	s.MaxCost = floats.Max(costs)
	return s
}
