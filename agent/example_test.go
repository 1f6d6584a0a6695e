package agent_test

import (
	"fmt"

	"github.com/katalvlaran/flowfield/agent"
	"github.com/katalvlaran/flowfield/field"
	"github.com/katalvlaran/flowfield/grid"
)

// ExampleAgent_Advance walks one agent to the target, one cell per tick.
func ExampleAgent_Advance() {
	g, _ := grid.New2D(6, 4)
	g.SetRect(2, 0, 1, 3, true) // wall with an opening at (2,3)
	f, _ := field.Build(g, grid.XY(0, 0))

	a := agent.New(grid.XY(5, 0))
	for a.Advance(f, g) {
		fmt.Print(a.Pos, " ")
	}
	fmt.Println()
	// Output:
	// (4,1,0) (3,2,0) (2,3,0) (1,2,0) (0,1,0) (0,0,0)
}
