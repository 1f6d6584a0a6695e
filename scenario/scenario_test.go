package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowfield/field"
	"github.com/katalvlaran/flowfield/grid"
	"github.com/katalvlaran/flowfield/scenario"
)

// TestDefault_WallWithGap checks the embedded scenario end to end.
func TestDefault_WallWithGap(t *testing.T) {
	sc, err := scenario.Default()
	require.NoError(t, err)
	assert.Equal(t, "wall-with-gap", sc.Name)
	assert.Equal(t, 2, sc.Dims())
	assert.Equal(t, grid.XY(31, 10), sc.TargetCoord())
	assert.Equal(t, []grid.Coord{grid.XY(67, 30), grid.XY(99, 0), grid.XY(55, 80)}, sc.AgentStarts())

	g, err := sc.Grid()
	require.NoError(t, err)
	assert.Equal(t, grid.XYZ(100, 100, 1), g.Extent())
	assert.True(t, g.IsObstacle(grid.XY(40, 0)))
	assert.True(t, g.IsObstacle(grid.XY(42, 94)))
	assert.False(t, g.IsObstacle(grid.XY(41, 60)), "gap row")
	assert.False(t, g.IsObstacle(grid.XY(41, 95)), "below the wall")
	assert.Equal(t, 3*60+3*34, g.CountObstacles())

	strat, err := sc.FieldStrategy()
	require.NoError(t, err)
	f, err := field.Build(g, sc.TargetCoord(), field.WithStrategy(strat))
	require.NoError(t, err)
	for _, start := range sc.AgentStarts() {
		assert.True(t, f.Reachable(start), "agent at %v", start)
	}
}

// TestParse_3DWithClear checks 3D sizes, single-cell obstacles and clearing.
func TestParse_3DWithClear(t *testing.T) {
	sc, err := scenario.Parse([]byte(`
name: slab
size: [4, 4, 3]
target: [0, 0, 2]
strategy: fifo
obstacles:
  - origin: [0, 0, 1]
    extent: [4, 4, 1]
  - origin: [3, 3, 1]
    clear: true
  - origin: [1, 0, 0]
agents:
  - [0, 0, 0]
`))
	require.NoError(t, err)
	assert.Equal(t, 3, sc.Dims())

	strat, err := sc.FieldStrategy()
	require.NoError(t, err)
	assert.Equal(t, field.StrategyFIFO, strat)

	g, err := sc.Grid()
	require.NoError(t, err)
	assert.Equal(t, 15+1, g.CountObstacles())
	assert.False(t, g.IsObstacle(grid.XYZ(3, 3, 1)))
	assert.True(t, g.IsObstacle(grid.XYZ(1, 0, 0)))
	assert.Equal(t, []grid.Coord{grid.XYZ(0, 0, 0)}, sc.AgentStarts())
}

// TestParse_Errors checks validation sentinels.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		err  error
	}{
		{"NoSize", "target: [0, 0]", scenario.ErrBadSize},
		{"FourDims", "size: [1, 1, 1, 1]\ntarget: [0, 0, 0, 0]", scenario.ErrBadSize},
		{"TargetArity", "size: [3, 3]\ntarget: [0, 0, 0]", scenario.ErrBadCoord},
		{"OriginArity", "size: [3, 3]\ntarget: [0, 0]\nobstacles:\n  - origin: [1]", scenario.ErrBadCoord},
		{"ExtentArity", "size: [3, 3]\ntarget: [0, 0]\nobstacles:\n  - origin: [1, 1]\n    extent: [1, 1, 1]", scenario.ErrBadCoord},
		{"AgentArity", "size: [3, 3]\ntarget: [0, 0]\nagents:\n  - [1, 2, 3]", scenario.ErrBadCoord},
		{"NegativeTicks", "size: [3, 3]\ntarget: [0, 0]\nticks: -1", scenario.ErrBadTicks},
		{"Strategy", "size: [3, 3]\ntarget: [0, 0]\nstrategy: astar", scenario.ErrUnknownStrategy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := scenario.Parse([]byte("size: [oops"))
	assert.Error(t, err)
}

// TestParse_BadExtentSurfacesFromGrid leaves range checks to the grid.
func TestParse_BadExtentSurfacesFromGrid(t *testing.T) {
	sc, err := scenario.Parse([]byte("size: [0, 3]\ntarget: [0, 0]"))
	require.NoError(t, err)
	_, err = sc.Grid()
	assert.ErrorIs(t, err, grid.ErrBadExtent)
}

// TestLoad reads a scenario from disk and reports missing files.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: tiny\nsize: [2, 2]\ntarget: [1, 1]\n"), 0o644))

	sc, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", sc.Name)

	strat, err := sc.FieldStrategy()
	require.NoError(t, err)
	assert.Equal(t, field.StrategyPriority, strat)

	_, err = scenario.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
