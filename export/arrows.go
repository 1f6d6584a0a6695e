package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/flowfield/field"
	"github.com/katalvlaran/flowfield/grid"
)

// Map glyphs.
const (
	GlyphTarget      = 'T'
	GlyphObstacle    = '#'
	GlyphUnreachable = '.'
	GlyphAgent       = '@'
)

// planar glyphs indexed by [dy+1][dx+1]; y grows downward.
var planar = [3][3]byte{
	{'\\', '^', '/'},
	{'<', ' ', '>'},
	{'/', 'v', '\\'},
}

// Glyph returns the character for a direction vector. Pure Z steps show as
// '+' (toward larger Z) or '-'.
func Glyph(d grid.Coord) byte {
	if d.X == 0 && d.Y == 0 && d.Z != 0 {
		if d.Z > 0 {
			return '+'
		}
		return '-'
	}
	return planar[d.Y+1][d.X+1]
}

// WriteArrows draws the z-th slice of f, one row per Y, marking agents.
// Returns an error for a slice outside the field depth.
func WriteArrows(w io.Writer, f *field.Field, z int, agents []grid.Coord) error {
	ext := f.Extent()
	if z < 0 || z >= ext.Z {
		return fmt.Errorf("%w: slice z=%d", field.ErrOutOfBounds, z)
	}
	occupied := make(map[grid.Coord]bool, len(agents))
	for _, a := range agents {
		occupied[a] = true
	}

	bw := bufio.NewWriter(w)
	row := make([]byte, ext.X+1)
	row[ext.X] = '\n'
	for y := 0; y < ext.Y; y++ {
		for x := 0; x < ext.X; x++ {
			c := grid.XYZ(x, y, z)
			switch {
			case occupied[c]:
				row[x] = GlyphAgent
			case c == f.Target():
				row[x] = GlyphTarget
			case f.IsObstacle(c):
				row[x] = GlyphObstacle
			case !f.Reachable(c):
				row[x] = GlyphUnreachable
			default:
				row[x] = Glyph(f.Direction(c))
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
