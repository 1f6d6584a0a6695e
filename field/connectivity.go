package field

import "github.com/katalvlaran/flowfield/grid"

// Step weights, integer approximations of 10×Euclidean length.
const (
	WeightFace   = 10 // one axis changes
	WeightEdge   = 14 // ≈ 10·√2, two axes change
	WeightCorner = 17 // ≈ 10·√3, three axes change
)

// Step is one entry of a connectivity table: a neighbor offset and the cost
// of moving along it.
type Step struct {
	Offset grid.Coord
	Weight int
}

var (
	steps2D = buildSteps(2)
	steps3D = buildSteps(3)
)

func buildSteps(dims int) []Step {
	offsets := grid.Neighbors(dims)
	out := make([]Step, len(offsets))
	for i, off := range offsets {
		out[i] = Step{Offset: off, Weight: weightOf(off)}
	}
	return out
}

func weightOf(off grid.Coord) int {
	switch off.Axes() {
	case 1:
		return WeightFace
	case 2:
		return WeightEdge
	default:
		return WeightCorner
	}
}

// Connectivity returns the ordered step table for 2 or 3 dimensions, nil
// otherwise. Order follows grid.Neighbors and decides direction ties.
// The returned slice is shared and must not be modified.
func Connectivity(dims int) []Step {
	switch dims {
	case 2:
		return steps2D
	case 3:
		return steps3D
	}
	return nil
}
