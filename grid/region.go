package grid

// SetRegion sets every cell of the axis-aligned box starting at origin and
// spanning extent to value. The box is clamped to the grid: the part lying
// outside is ignored, and an empty or fully outside box is a no-op.
// For 2D grids the Z components are ignored.
// Complexity: O(volume of the clamped box).
func (g *Grid) SetRegion(origin, extent Coord, value bool) {
	if g.dims == 2 {
		origin.Z, extent.Z = 0, 1
	}
	lo := Coord{X: max(origin.X, 0), Y: max(origin.Y, 0), Z: max(origin.Z, 0)}
	hi := Coord{
		X: min(origin.X+extent.X, g.extent.X),
		Y: min(origin.Y+extent.Y, g.extent.Y),
		Z: min(origin.Z+extent.Z, g.extent.Z),
	}
	for z := lo.Z; z < hi.Z; z++ {
		for y := lo.Y; y < hi.Y; y++ {
			row := g.Index(Coord{X: 0, Y: y, Z: z})
			for x := lo.X; x < hi.X; x++ {
				g.blocked[row+x] = value
			}
		}
	}
}

// SetRect is the planar form of SetRegion: a w×h rectangle at (x, y).
func (g *Grid) SetRect(x, y, w, h int, value bool) {
	g.SetRegion(XY(x, y), XYZ(w, h, 1), value)
}

// SetCuboid is the volumetric form of SetRegion: a w×h×d box at (x, y, z).
func (g *Grid) SetCuboid(x, y, z, w, h, d int, value bool) {
	g.SetRegion(XYZ(x, y, z), XYZ(w, h, d), value)
}
