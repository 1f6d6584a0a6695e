package grid

import "fmt"

// Grid is a dense obstacle mask over a fixed 2D or 3D extent.
// Cells are stored row-major: x varies fastest, then y, then z.
// The zero value is not usable; construct with New2D, New3D or New.
type Grid struct {
	dims    int
	extent  Coord // width, height, depth (depth is 1 for 2D)
	blocked []bool
}

// New2D allocates a width×height grid with every cell free.
// Returns ErrBadExtent if either side is not positive.
func New2D(width, height int) (*Grid, error) {
	return New(2, XYZ(width, height, 1))
}

// New3D allocates a width×height×depth grid with every cell free.
// Returns ErrBadExtent if any side is not positive.
func New3D(width, height, depth int) (*Grid, error) {
	return New(3, XYZ(width, height, depth))
}

// New allocates a grid of the given dimensionality. For dims == 2 the Z
// component of extent is ignored and forced to 1.
// Complexity: O(W×H×D) time and memory.
func New(dims int, extent Coord) (*Grid, error) {
	if dims != 2 && dims != 3 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDims, dims)
	}
	if dims == 2 {
		extent.Z = 1
	}
	if extent.X <= 0 || extent.Y <= 0 || extent.Z <= 0 {
		return nil, fmt.Errorf("%w: got %dx%dx%d", ErrBadExtent, extent.X, extent.Y, extent.Z)
	}

	return &Grid{
		dims:    dims,
		extent:  extent,
		blocked: make([]bool, extent.X*extent.Y*extent.Z),
	}, nil
}

// Dims returns 2 or 3.
func (g *Grid) Dims() int { return g.dims }

// Extent returns (width, height, depth); depth is 1 for a 2D grid.
func (g *Grid) Extent() Coord { return g.extent }

// Width returns the X extent.
func (g *Grid) Width() int { return g.extent.X }

// Height returns the Y extent.
func (g *Grid) Height() int { return g.extent.Y }

// Depth returns the Z extent (1 for 2D grids).
func (g *Grid) Depth() int { return g.extent.Z }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.blocked) }

// InBounds reports whether c lies within the grid extent.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.extent.X &&
		c.Y >= 0 && c.Y < g.extent.Y &&
		c.Z >= 0 && c.Z < g.extent.Z
}

// Index maps an in-bounds coordinate to its row-major flat index.
// The result is meaningless for out-of-bounds coordinates.
func (g *Grid) Index(c Coord) int {
	return c.X + g.extent.X*(c.Y+g.extent.Y*c.Z)
}

// Coordinate converts a row-major index back to a coordinate.
func (g *Grid) Coordinate(idx int) Coord {
	w, h := g.extent.X, g.extent.Y
	return Coord{X: idx % w, Y: (idx / w) % h, Z: idx / (w * h)}
}

// IsObstacle reports whether c is blocked. Every coordinate outside the
// extent is blocked.
// Complexity: O(1).
func (g *Grid) IsObstacle(c Coord) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[g.Index(c)]
}

// SetObstacle sets the blocked flag of a single cell. Out-of-bounds
// coordinates are ignored.
func (g *Grid) SetObstacle(c Coord, value bool) {
	if !g.InBounds(c) {
		return
	}
	g.blocked[g.Index(c)] = value
}

// Clamp pulls every component of c into the grid extent.
func (g *Grid) Clamp(c Coord) Coord {
	return Coord{
		X: clamp(c.X, g.extent.X-1),
		Y: clamp(c.Y, g.extent.Y-1),
		Z: clamp(c.Z, g.extent.Z-1),
	}
}

// Snapshot returns a copy of the blocked mask in row-major order.
// Later changes to g do not affect the returned slice.
func (g *Grid) Snapshot() []bool {
	out := make([]bool, len(g.blocked))
	copy(out, g.blocked)
	return out
}

// CountObstacles returns the number of blocked cells.
func (g *Grid) CountObstacles() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
