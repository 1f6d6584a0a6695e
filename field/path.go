package field

import (
	"fmt"

	"github.com/katalvlaran/flowfield/grid"
)

// Path follows the field from start until the target, returning every
// visited cell including start and the target. Costs strictly decrease along
// the way, so the walk ends in at most Len() steps.
//
// Returns ErrOutOfBounds for an off-grid start and ErrNoPath when start is an
// obstacle or cannot reach the target.
func (f *Field) Path(start grid.Coord) ([]grid.Coord, error) {
	if !f.inBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, start)
	}
	if f.cost[f.index(start)] == Unreachable {
		return nil, fmt.Errorf("%w: from %v", ErrNoPath, start)
	}

	path := []grid.Coord{start}
	for cur := start; cur != f.target; {
		d := f.directionOf(f.index(cur))
		if d.IsZero() {
			// only reachable cells other than the target get here
			return nil, fmt.Errorf("%w: stuck at %v", ErrNoPath, cur)
		}
		cur = cur.Add(d)
		path = append(path, cur)
		if len(path) > len(f.cost) {
			return nil, fmt.Errorf("%w: cycle through %v", ErrNoPath, cur)
		}
	}
	return path, nil
}
