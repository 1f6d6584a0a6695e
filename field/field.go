package field

import (
	"fmt"

	"github.com/katalvlaran/flowfield/grid"
)

// noDir marks a cell without a best step (target, obstacle, unreachable).
const noDir int8 = -1

// Field is an immutable flow field toward a single target.
// Costs and directions are stored row-major like grid.Grid.
type Field struct {
	dims    int
	extent  grid.Coord
	target  grid.Coord
	steps   []Step
	blocked []bool // owned snapshot of the source mask
	cost    []int  // Unreachable for obstacles and cut-off cells
	dir     []int8 // index into steps, or noDir
	stats   Stats
}

// Build computes the flow field of src toward target.
//
// Preconditions and validation (in order):
//  1. src must be non-nil (ErrNilGrid).
//  2. src.Dims() must be 2 or 3 (ErrBadDims).
//  3. src.Extent() must be positive on every axis (ErrEmptyGrid).
//  4. target must lie inside src.Extent() (ErrTargetOutOfBounds).
//  5. target must not be an obstacle (ErrTargetBlocked).
//
// The obstacle mask is copied before propagation; src is not retained.
//
// Complexity: see the package documentation.
func Build(src Source, target grid.Coord, opts ...Option) (*Field, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if src == nil {
		return nil, ErrNilGrid
	}
	dims := src.Dims()
	steps := Connectivity(dims)
	if steps == nil {
		return nil, fmt.Errorf("%w: got %d", ErrBadDims, dims)
	}
	extent := src.Extent()
	if dims == 2 {
		extent.Z = 1
	}
	if extent.X <= 0 || extent.Y <= 0 || extent.Z <= 0 {
		return nil, fmt.Errorf("%w: got %dx%dx%d", ErrEmptyGrid, extent.X, extent.Y, extent.Z)
	}

	f := &Field{
		dims:   dims,
		extent: extent,
		target: target,
		steps:  steps,
	}
	if !f.inBounds(target) {
		return nil, fmt.Errorf("%w: %v outside %dx%dx%d",
			ErrTargetOutOfBounds, target, extent.X, extent.Y, extent.Z)
	}

	n := extent.X * extent.Y * extent.Z
	f.blocked = make([]bool, n)
	for i := range f.blocked {
		f.blocked[i] = src.IsObstacle(f.coordinate(i))
	}
	if f.blocked[f.index(target)] {
		return nil, fmt.Errorf("%w: %v", ErrTargetBlocked, target)
	}

	r := newRunner(f, cfg.Strategy)
	r.run()
	f.derive()

	f.stats.Strategy = cfg.Strategy
	for i, c := range f.cost {
		if f.blocked[i] {
			f.stats.Blocked++
		} else if c != Unreachable {
			f.stats.Reachable++
		}
	}
	if cfg.Verbose {
		Logf("field: %dD %dx%dx%d toward %v (%s): reachable=%d blocked=%d processed=%d relaxations=%d",
			dims, extent.X, extent.Y, extent.Z, target, cfg.Strategy,
			f.stats.Reachable, f.stats.Blocked, f.stats.Processed, f.stats.Relaxations)
	}

	return f, nil
}

// Dims returns 2 or 3.
func (f *Field) Dims() int { return f.dims }

// Extent returns (width, height, depth); depth is 1 for 2D fields.
func (f *Field) Extent() grid.Coord { return f.extent }

// Target returns the cell every direction leads to.
func (f *Field) Target() grid.Coord { return f.target }

// Len returns the number of cells.
func (f *Field) Len() int { return len(f.cost) }

// Stats returns the build statistics.
func (f *Field) Stats() Stats { return f.stats }

// InBounds reports whether c lies inside the field extent.
func (f *Field) InBounds(c grid.Coord) bool { return f.inBounds(c) }

// Index maps an in-bounds coordinate to its row-major index.
func (f *Field) Index(c grid.Coord) int { return f.index(c) }

// Coordinate converts a row-major index back to a coordinate.
func (f *Field) Coordinate(idx int) grid.Coord { return f.coordinate(idx) }

// CostAt returns the traversal cost from c to the target, or Unreachable for
// obstacles and cells with no route. Returns ErrOutOfBounds off-grid.
// Complexity: O(1).
func (f *Field) CostAt(c grid.Coord) (int, error) {
	if !f.inBounds(c) {
		return Unreachable, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	return f.cost[f.index(c)], nil
}

// DirectionAt returns the step to take from c, each component in {-1,0,1}.
// The zero vector is returned for the target, obstacles and unreachable
// cells. Returns ErrOutOfBounds off-grid.
// Complexity: O(1).
func (f *Field) DirectionAt(c grid.Coord) (grid.Coord, error) {
	if !f.inBounds(c) {
		return grid.Coord{}, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	return f.directionOf(f.index(c)), nil
}

// Cost is CostAt without the error: off-grid coordinates report Unreachable.
func (f *Field) Cost(c grid.Coord) int {
	if !f.inBounds(c) {
		return Unreachable
	}
	return f.cost[f.index(c)]
}

// Direction is DirectionAt without the error: off-grid coordinates report
// the zero vector.
func (f *Field) Direction(c grid.Coord) grid.Coord {
	if !f.inBounds(c) {
		return grid.Coord{}
	}
	return f.directionOf(f.index(c))
}

// Reachable reports whether c is a free cell with a route to the target.
func (f *Field) Reachable(c grid.Coord) bool {
	return f.Cost(c) != Unreachable
}

// IsObstacle answers from the snapshot taken at build time.
func (f *Field) IsObstacle(c grid.Coord) bool {
	if !f.inBounds(c) {
		return true
	}
	return f.blocked[f.index(c)]
}

// Costs returns a copy of the cost array in row-major order.
func (f *Field) Costs() []int {
	out := make([]int, len(f.cost))
	copy(out, f.cost)
	return out
}

// Directions returns a copy of the direction array in row-major order.
func (f *Field) Directions() []grid.Coord {
	out := make([]grid.Coord, len(f.dir))
	for i := range f.dir {
		out[i] = f.directionOf(i)
	}
	return out
}

func (f *Field) directionOf(idx int) grid.Coord {
	k := f.dir[idx]
	if k == noDir {
		return grid.Coord{}
	}
	return f.steps[k].Offset
}

func (f *Field) inBounds(c grid.Coord) bool {
	return c.X >= 0 && c.X < f.extent.X &&
		c.Y >= 0 && c.Y < f.extent.Y &&
		c.Z >= 0 && c.Z < f.extent.Z
}

func (f *Field) index(c grid.Coord) int {
	return c.X + f.extent.X*(c.Y+f.extent.Y*c.Z)
}

func (f *Field) coordinate(idx int) grid.Coord {
	w, h := f.extent.X, f.extent.Y
	return grid.Coord{X: idx % w, Y: (idx / w) % h, Z: idx / (w * h)}
}
