package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/katalvlaran/flowfield/field"
)

// CellRecord is one CSV row. Cost is -1 for unreachable and blocked cells.
type CellRecord struct {
	X       int  `csv:"x"`
	Y       int  `csv:"y"`
	Z       int  `csv:"z"`
	Blocked bool `csv:"blocked"`
	Cost    int  `csv:"cost"`
	DX      int  `csv:"dx"`
	DY      int  `csv:"dy"`
	DZ      int  `csv:"dz"`
}

// Records lists every cell of f in row-major order.
func Records(f *field.Field) []*CellRecord {
	out := make([]*CellRecord, 0, f.Len())
	for i := 0; i < f.Len(); i++ {
		c := f.Coordinate(i)
		cost := f.Cost(c)
		if cost == field.Unreachable {
			cost = -1
		}
		d := f.Direction(c)
		out = append(out, &CellRecord{
			X:       c.X,
			Y:       c.Y,
			Z:       c.Z,
			Blocked: f.IsObstacle(c),
			Cost:    cost,
			DX:      d.X,
			DY:      d.Y,
			DZ:      d.Z,
		})
	}
	return out
}

// WriteCells writes Records(f) as CSV with a header row.
func WriteCells(w io.Writer, f *field.Field) error {
	if err := gocsv.Marshal(Records(f), w); err != nil {
		return fmt.Errorf("export: writing cells: %w", err)
	}
	return nil
}

// ReadCells parses CSV written by WriteCells.
func ReadCells(r io.Reader) ([]*CellRecord, error) {
	var out []*CellRecord
	if err := gocsv.Unmarshal(r, &out); err != nil {
		return nil, fmt.Errorf("export: reading cells: %w", err)
	}
	return out, nil
}
