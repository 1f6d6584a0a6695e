package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrBadDims indicates a dimensionality other than 2 or 3.
	ErrBadDims = errors.New("grid: dimensionality must be 2 or 3")
	// ErrBadExtent indicates a non-positive width, height or depth.
	ErrBadExtent = errors.New("grid: extent must be positive on every axis")
)

// Coord is an integer cell coordinate or a step offset.
// For 2D grids Z is always 0.
type Coord struct {
	X, Y, Z int
}

// XY returns the planar coordinate (x, y, 0).
func XY(x, y int) Coord { return Coord{X: x, Y: y} }

// XYZ returns the volumetric coordinate (x, y, z).
func XYZ(x, y, z int) Coord { return Coord{X: x, Y: y, Z: z} }

// Add returns the component-wise sum c+o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// IsZero reports whether every component is 0.
func (c Coord) IsZero() bool {
	return c == Coord{}
}

// Axes counts the non-zero components of an offset: 1 for a face step,
// 2 for a planar diagonal, 3 for a corner diagonal.
func (c Coord) Axes() int {
	n := 0
	if c.X != 0 {
		n++
	}
	if c.Y != 0 {
		n++
	}
	if c.Z != 0 {
		n++
	}
	return n
}

// String formats the coordinate as "(x,y,z)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Obstacles is the read side of a grid: enough to answer "can I stand here".
type Obstacles interface {
	// IsObstacle reports true for blocked cells and for any out-of-bounds coordinate.
	IsObstacle(c Coord) bool
}
