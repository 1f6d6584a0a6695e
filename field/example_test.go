// Package field_test provides runnable examples for building and querying flow fields.
package field_test

import (
	"fmt"

	"github.com/katalvlaran/flowfield/field"
	"github.com/katalvlaran/flowfield/grid"
)

// ExampleBuild builds a field on an open 10×10 grid and queries the corner.
// Five diagonal steps of weight 14 separate (0,0) from the target (5,5).
func ExampleBuild() {
	g, _ := grid.New2D(10, 10)

	f, err := field.Build(g, grid.XY(5, 5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	cost, _ := f.CostAt(grid.XY(0, 0))
	dir, _ := f.DirectionAt(grid.XY(0, 0))
	fmt.Println("cost:", cost)
	fmt.Println("step:", dir)
	// Output:
	// cost: 70
	// step: (1,1,0)
}

// ExampleField_Path walks a 3D field around a slab that splits the volume
// except for one open cell.
func ExampleField_Path() {
	g, _ := grid.New3D(3, 3, 3)
	g.SetCuboid(0, 0, 1, 3, 3, 1, true) // z=1 layer
	g.SetObstacle(grid.XYZ(2, 2, 1), false)

	f, _ := field.Build(g, grid.XYZ(0, 0, 2))
	path, err := f.Path(grid.XYZ(0, 0, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	fmt.Println("cost:", f.Cost(grid.XYZ(0, 0, 0)))
	// Output:
	// [(0,0,0) (1,1,0) (2,2,1) (1,1,2) (0,0,2)]
	// cost: 62
}

// ExampleBuild_invalidTarget shows the target checks.
func ExampleBuild_invalidTarget() {
	g, _ := grid.New2D(4, 4)
	g.SetObstacle(grid.XY(1, 1), true)

	_, err := field.Build(g, grid.XY(1, 1))
	fmt.Println(err)
	_, err = field.Build(g, grid.XY(4, 0))
	fmt.Println(err)
	// Output:
	// field: target is an obstacle: (1,1,0)
	// field: target out of bounds: (4,0,0) outside 4x4x1
}
