package grid

// Neighbor offsets in their fixed enumeration order. Face offsets come first,
// then planar diagonals, then (3D only) corner diagonals. Direction ties are
// resolved by first occurrence in these tables, so the order is part of the
// observable behavior and must not change.
var (
	offsets2D = []Coord{
		// faces
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0},
		// diagonals
		{1, 1, 0}, {1, -1, 0}, {-1, 1, 0}, {-1, -1, 0},
	}

	offsets3D = []Coord{
		// faces
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
		// edges in the XY plane
		{1, 1, 0}, {1, -1, 0}, {-1, 1, 0}, {-1, -1, 0},
		// edges in the XZ plane
		{1, 0, 1}, {1, 0, -1}, {-1, 0, 1}, {-1, 0, -1},
		// edges in the YZ plane
		{0, 1, 1}, {0, 1, -1}, {0, -1, 1}, {0, -1, -1},
		// corners
		{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
		{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1},
	}
)

// Neighbors returns the ordered neighbor offsets for the given dimensionality:
// 8 offsets for 2, 26 for 3, nil otherwise. The returned slice is shared and
// must not be modified.
func Neighbors(dims int) []Coord {
	switch dims {
	case 2:
		return offsets2D
	case 3:
		return offsets3D
	}
	return nil
}
